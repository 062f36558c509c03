// Package anomaly carries non-fatal decoding problems out of the decoder
// without the decoder owning a logger.
package anomaly

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Severity mirrors the log level the anomaly deserves.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Code classifies an anomaly.
type Code string

const (
	// InvalidValue flags a property whose decoded value is not usable.
	InvalidValue Code = "invalid_value"
	// MissingInput flags a derived property skipped for lack of input.
	MissingInput Code = "missing_input"
	// DroppedProperty flags a primary property removed from the result.
	DroppedProperty Code = "dropped_property"
)

// Anomaly is one non-fatal finding.
type Anomaly struct {
	Severity Severity
	Code     Code
	Kind     string
	Sensor   string
	Property string
	Message  string
}

// Observer receives anomalies. Implementations must be safe for concurrent
// use when the decoder is shared between goroutines.
type Observer interface {
	Observe(Anomaly)
}

// Func adapts a function to Observer.
type Func func(Anomaly)

// Observe implements Observer.
func (f Func) Observe(a Anomaly) { f(a) }

// Nop discards everything.
var Nop Observer = Func(func(Anomaly) {})

// OrNop returns o, or Nop when o is nil.
func OrNop(o Observer) Observer {
	if o == nil {
		return Nop
	}
	return o
}

// Logrus reports anomalies as structured log entries.
func Logrus(log logrus.FieldLogger) Observer {
	return Func(func(a Anomaly) {
		entry := log.WithFields(logrus.Fields{
			"component": "bob",
			"code":      string(a.Code),
			"kind":      a.Kind,
		})
		if a.Sensor != "" {
			entry = entry.WithField("sensor", a.Sensor)
		}
		if a.Property != "" {
			entry = entry.WithField("property", a.Property)
		}
		if a.Severity == Error {
			entry.Error(a.Message)
			return
		}
		entry.Warn(a.Message)
	})
}

// Tee forwards to every non-nil observer.
func Tee(observers ...Observer) Observer {
	return Func(func(a Anomaly) {
		for _, o := range observers {
			if o != nil {
				o.Observe(a)
			}
		}
	})
}

// Recorder keeps anomalies in memory.
type Recorder struct {
	mu   sync.Mutex
	seen []Anomaly
}

// Observe implements Observer.
func (r *Recorder) Observe(a Anomaly) {
	r.mu.Lock()
	r.seen = append(r.seen, a)
	r.mu.Unlock()
}

// Anomalies returns a copy of everything observed so far.
func (r *Recorder) Anomalies() []Anomaly {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Anomaly, len(r.seen))
	copy(out, r.seen)
	return out
}
