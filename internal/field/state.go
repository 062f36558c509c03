package field

import (
	"fmt"

	"github.com/christiaansc/Codec-BoBAssistant/internal/property"
)

var statesByRaw = map[byte]property.State{
	100: property.SensorStart,
	101: property.SensorStop,
	104: property.SensorStartNoVib,
	105: property.SensorStopNoVib,
	106: property.SensorLearnKeepalive,
	110: property.SensorStopWithErase,
	125: property.MachineStop,
	126: property.MachineStart,
}

// StateFromRaw maps the start/stop state byte.
func StateFromRaw(raw byte) (property.State, error) {
	st, ok := statesByRaw[raw]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSensorState, raw)
	}
	return st, nil
}
