package property

import "fmt"

// State is the sensor or machine state carried by start/stop messages. The
// numbering follows the sensor firmware.
type State int

const (
	SensorStart State = iota
	SensorStop
	MachineStart
	MachineStop
	SensorStopWithErase
	SensorStopNoVib
	SensorStartNoVib
	SensorLearnKeepalive
)

var stateNames = [...]string{
	SensorStart:          "SENSOR_START",
	SensorStop:           "SENSOR_STOP",
	MachineStart:         "MACHINE_START",
	MachineStop:          "MACHINE_STOP",
	SensorStopWithErase:  "SENSOR_STOP_WITH_ERASE",
	SensorStopNoVib:      "SENSOR_STOP_NO_VIB",
	SensorStartNoVib:     "SENSOR_START_NO_VIB",
	SensorLearnKeepalive: "SENSOR_LEARN_KEEPALIVE",
}

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	return s >= 0 && int(s) < len(stateNames)
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("STATE(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown sensor state %d", int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown sensor state %q", string(text))
}
