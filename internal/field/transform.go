package field

import (
	"fmt"
	"math"

	"github.com/christiaansc/Codec-BoBAssistant/internal/message"
	"github.com/christiaansc/Codec-BoBAssistant/internal/property"
)

type transform func(spec message.FieldSpec, raw []byte) (property.Value, error)

var transforms = map[string]transform{
	message.VibrationLevel:      vibrationLevel,
	message.PeakFrequencyIndex:  scalar(PeakFrequencyIndex),
	message.Temperature:         scalar(Temperature),
	message.ReportLength:        scalar(ReportLength),
	message.AnomalyLevel:        scalar(Percentage127),
	message.VibrationPercentage: scalar(Percentage127),
	message.BatteryPercentage:   scalar(BatteryPercentage),
	message.State:               sensorState,
}

func scalar(fn func(raw byte) float64) transform {
	return func(spec message.FieldSpec, raw []byte) (property.Value, error) {
		if spec.Multi || len(raw) != 1 {
			return property.Value{}, fmt.Errorf("%w: property %s expects one byte index, got %d", ErrInvalidByteIndex, spec.Name, len(raw))
		}
		return property.Number(fn(raw[0])), nil
	}
}

func vibrationLevel(spec message.FieldSpec, raw []byte) (property.Value, error) {
	if len(raw) != 3 {
		return property.Value{}, fmt.Errorf("%w: property %s expects three byte indexes, got %d", ErrInvalidByteIndex, spec.Name, len(raw))
	}
	return property.Number(VibrationLevel(raw[0], raw[1], raw[2])), nil
}

func sensorState(spec message.FieldSpec, raw []byte) (property.Value, error) {
	if spec.Multi || len(raw) != 1 {
		return property.Value{}, fmt.Errorf("%w: property %s expects one byte index, got %d", ErrInvalidByteIndex, spec.Name, len(raw))
	}
	st, err := StateFromRaw(raw[0])
	if err != nil {
		return property.Value{}, err
	}
	return property.StateValue(st), nil
}

// VibrationLevel combines the three vibration bytes: integer part in 7-bit
// groups, hundredths in the last byte, then scaled to g.
func VibrationLevel(b0, b1, b2 byte) float64 {
	v := (float64(b0)*128 + float64(b1) + float64(b2)/100) / 10 / 121.45
	return roundTo(v, 4)
}

// PeakFrequencyIndex converts the zero-based bin to the one-based index.
func PeakFrequencyIndex(raw byte) float64 { return float64(raw) + 1 }

// Temperature removes the 30 °C offset applied by the firmware.
func Temperature(raw byte) float64 { return float64(raw) - 30 }

// ReportLength decodes minutes up to 59 and whole hours above.
func ReportLength(raw byte) float64 {
	if raw <= 59 {
		return float64(raw)
	}
	return float64(raw-59) * 60
}

// Percentage127 maps 0..127 to 0..100 with one decimal.
func Percentage127(raw byte) float64 {
	return roundTo(float64(raw)*100/127, 1)
}

// BatteryPercentage maps 0..127 to 0..100 with two decimals.
func BatteryPercentage(raw byte) float64 {
	return roundTo(float64(raw)*100/127, 2)
}

func roundTo(value float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(value*pow) / pow
}
