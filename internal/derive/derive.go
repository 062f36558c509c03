// Package derive computes the secondary properties of a message from its
// already decoded primary ones.
package derive

import (
	"fmt"
	"math"

	"github.com/christiaansc/Codec-BoBAssistant/internal/anomaly"
	"github.com/christiaansc/Codec-BoBAssistant/internal/message"
	"github.com/christiaansc/Codec-BoBAssistant/internal/property"
)

// Input is the state a step works on.
type Input struct {
	Kind       message.Kind
	Sensor     message.Variant
	Properties property.Set
	Observer   anomaly.Observer
}

// Step returns Properties extended (or trimmed) by one derivation.
type Step func(Input) property.Set

// Steps run in this order; later steps read what earlier ones produced.
var Steps = []Step{
	OperatingTime,
	UnknownVibration,
	RescaleFFT,
}

// Run applies Steps to set.
func Run(kind message.Kind, sensor message.Variant, set property.Set, obs anomaly.Observer) property.Set {
	in := Input{Kind: kind, Sensor: sensor, Properties: set, Observer: anomaly.OrNop(obs)}
	for _, step := range Steps {
		in.Properties = step(in)
	}
	return in.Properties
}

// OperatingTime is the share of the report period the machine vibrated.
func OperatingTime(in Input) property.Set {
	set := in.Properties
	reportLength, ok := set.Number(message.ReportLength)
	if !ok {
		return set
	}
	vibration, ok := set.Number(message.VibrationPercentage)
	if !ok {
		return set
	}
	return set.With(message.OperatingTime, property.Number(round(reportLength*vibration/100)))
}

// UnknownVibration splits the operating time not explained by good vibration
// into the five bad-vibration buckets. Report messages only.
func UnknownVibration(in Input) property.Set {
	set := in.Properties
	if in.Kind != message.Report {
		return set
	}
	operating, ok := set.Number(message.OperatingTime)
	if !ok {
		in.missing(message.TotalOperatingTimeKnown, message.OperatingTime)
		return set
	}
	good, ok := set.Number(message.GoodVibration)
	if !ok {
		in.missing(message.TotalOperatingTimeKnown, message.GoodVibration)
		return set
	}
	known := round(good * operating / 127)
	set = set.With(message.TotalOperatingTimeKnown, property.Number(known))

	unknown := operating - known
	for _, bucket := range message.VibrationBuckets {
		pct, ok := set.Number(bucket.Percentage)
		if !ok {
			in.missing(bucket.Unknown, bucket.Percentage)
			continue
		}
		set = set.With(bucket.Unknown, property.Number(round(unknown*pct/127)))
	}
	return set
}

// RescaleFFT converts raw spectrum bins to the vibration level scale. Without
// a vibration level the spectrum cannot be interpreted and is dropped.
func RescaleFFT(in Input) property.Set {
	set := in.Properties
	bins, ok := set.Series(message.FFT)
	if !ok || len(bins) == 0 {
		return set
	}
	level, ok := set.Number(message.VibrationLevel)
	if !ok {
		in.Observer.Observe(anomaly.Anomaly{
			Severity: anomaly.Error,
			Code:     anomaly.DroppedProperty,
			Kind:     in.Kind.String(),
			Sensor:   in.Sensor.String(),
			Property: message.FFT,
			Message:  "cannot calculate fft without vibration level",
		})
		return set.Without(message.FFT)
	}
	for i, v := range bins {
		bins[i] = v * level / 127
	}
	return set.With(message.FFT, property.Series(bins))
}

func (in Input) missing(derived, input string) {
	in.Observer.Observe(anomaly.Anomaly{
		Severity: anomaly.Error,
		Code:     anomaly.MissingInput,
		Kind:     in.Kind.String(),
		Sensor:   in.Sensor.String(),
		Property: derived,
		Message:  fmt.Sprintf("cannot calculate %s without %s", derived, input),
	})
}

// round is half-up, matching the sensor vendor's reference decoder for
// negative halves as well.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}
