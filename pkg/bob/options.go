package bob

import (
	"github.com/sirupsen/logrus"

	"github.com/christiaansc/Codec-BoBAssistant/internal/anomaly"
)

// Anomaly is a non-fatal decoding problem, such as a spectrum dropped for
// lack of a vibration level.
type Anomaly = anomaly.Anomaly

// Observer receives anomalies.
type Observer = anomaly.Observer

// ObserverFunc adapts a function to Observer.
type ObserverFunc = anomaly.Func

// Options configures decoding.
type Options struct {
	// Observer receives anomalies; nil discards them.
	Observer Observer
}

// LogObserver reports anomalies as logrus entries.
func LogObserver(log logrus.FieldLogger) Observer {
	return anomaly.Logrus(log)
}

func (opts Options) observer() Observer {
	return anomaly.OrNop(opts.Observer)
}

// Recorder keeps anomalies in memory.
type Recorder = anomaly.Recorder

// MultiObserver forwards every anomaly to each non-nil observer.
func MultiObserver(observers ...Observer) Observer {
	return anomaly.Tee(observers...)
}
