package bob

import (
	"encoding/json"
	"fmt"

	"github.com/christiaansc/Codec-BoBAssistant/internal/property"
)

// State is the sensor or machine state of a start/stop message.
type State = property.State

const (
	SensorStart          = property.SensorStart
	SensorStop           = property.SensorStop
	MachineStart         = property.MachineStart
	MachineStop          = property.MachineStop
	SensorStopWithErase  = property.SensorStopWithErase
	SensorStopNoVib      = property.SensorStopNoVib
	SensorStartNoVib     = property.SensorStartNoVib
	SensorLearnKeepalive = property.SensorLearnKeepalive
)

// FieldSet offers typed helpers on top of a result's property map. It works
// on results produced by Decode as well as on results read back from JSON.
type FieldSet struct {
	data map[string]any
}

// FieldSet returns a FieldSet wrapper for the result's properties.
func (r Result) FieldSet() FieldSet {
	return FieldSet{data: r.Msg}
}

// Map exposes the underlying map.
func (fs FieldSet) Map() map[string]any {
	return fs.data
}

// Raw returns the stored value without conversions.
func (fs FieldSet) Raw(key string) (any, bool) {
	if fs.data == nil {
		return nil, false
	}
	v, ok := fs.data[key]
	return v, ok
}

// Float returns the property as float64.
func (fs FieldSet) Float(key string) (float64, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return 0, fmt.Errorf("property %q missing", key)
	}
	return toFloat(key, v)
}

// Series returns a multi-byte property such as the spectrum.
func (fs FieldSet) Series(key string) ([]float64, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return nil, fmt.Errorf("property %q missing", key)
	}
	switch s := v.(type) {
	case []float64:
		out := make([]float64, len(s))
		copy(out, s)
		return out, nil
	case []any:
		out := make([]float64, 0, len(s))
		for _, item := range s {
			f, err := toFloat(key, item)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("property %q has unsupported type %T", key, v)
	}
}

// State returns the start/stop state.
func (fs FieldSet) State(key string) (State, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return 0, fmt.Errorf("property %q missing", key)
	}
	switch s := v.(type) {
	case State:
		return s, nil
	case string:
		var st State
		if err := st.UnmarshalText([]byte(s)); err != nil {
			return 0, fmt.Errorf("property %q: %w", key, err)
		}
		return st, nil
	default:
		return 0, fmt.Errorf("property %q has unsupported type %T", key, v)
	}
}

func toFloat(key string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("property %q is not numeric: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("property %q has unsupported type %T", key, v)
	}
}
