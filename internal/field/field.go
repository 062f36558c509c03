// Package field extracts the primary properties of a payload according to a
// message layout and applies the per-property scaling.
package field

import (
	"errors"
	"fmt"

	"github.com/christiaansc/Codec-BoBAssistant/internal/anomaly"
	"github.com/christiaansc/Codec-BoBAssistant/internal/frame"
	"github.com/christiaansc/Codec-BoBAssistant/internal/message"
	"github.com/christiaansc/Codec-BoBAssistant/internal/property"
)

var (
	ErrInvalidByteIndex   = errors.New("invalid byte indexes configuration")
	ErrInvalidSensorState = errors.New("invalid sensor state")
)

// Decode reads every field of def from p, in table order. The payload length
// must already match def.
func Decode(p frame.Payload, def message.Definition, v message.Variant, obs anomaly.Observer) (property.Set, error) {
	obs = anomaly.OrNop(obs)
	var set property.Set
	for _, spec := range def.Fields {
		value, err := decodeField(p, spec, def.ByteLength)
		if err != nil {
			return property.Set{}, err
		}
		if !value.Usable() {
			obs.Observe(anomaly.Anomaly{
				Severity: anomaly.Warning,
				Code:     anomaly.InvalidValue,
				Kind:     def.Name(),
				Sensor:   v.String(),
				Property: spec.Name,
				Message:  fmt.Sprintf("property %s has value: %v", spec.Name, value),
			})
		}
		set = set.With(spec.Name, value)
	}
	return set, nil
}

func decodeField(p frame.Payload, spec message.FieldSpec, byteLength int) (property.Value, error) {
	if err := spec.Check(byteLength); err != nil {
		return property.Value{}, fmt.Errorf("%w: %v", ErrInvalidByteIndex, err)
	}
	raw, err := p.Bytes(spec.Offsets)
	if err != nil {
		return property.Value{}, fmt.Errorf("property %s: %w", spec.Name, err)
	}
	if t, ok := transforms[spec.Name]; ok {
		return t(spec, raw)
	}
	if spec.Multi {
		return property.Series(toFloats(raw)), nil
	}
	return property.Number(float64(raw[0])), nil
}

func toFloats(raw []byte) []float64 {
	out := make([]float64, len(raw))
	for i, b := range raw {
		out[i] = float64(b)
	}
	return out
}
