// Package decoder wraps bob.Decode with the logging and metrics shared by the
// HTTP service and the MQTT bridge.
package decoder

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/christiaansc/Codec-BoBAssistant/internal/monitor"
	"github.com/christiaansc/Codec-BoBAssistant/pkg/bob"
)

type Decoder struct {
	metrics *monitor.Metrics
}

// New returns a decoder; metrics may be nil.
func New(metrics *monitor.Metrics) *Decoder {
	return &Decoder{metrics: metrics}
}

// Decode decodes raw, logging anomalies and failures on log.
func (d *Decoder) Decode(raw string, log logrus.FieldLogger) (bob.Result, error) {
	observers := []bob.Observer{bob.LogObserver(log)}
	if d.metrics != nil {
		observers = append(observers, d.metrics.Observer())
	}
	start := time.Now()
	res, err := bob.DecodeWithOptions(raw, bob.Options{Observer: bob.MultiObserver(observers...)})
	took := time.Since(start)
	if d.metrics != nil {
		d.metrics.ObserveDecode(res, err, took)
	}
	if err != nil {
		log.WithError(err).WithField("reason", bob.Reason(err)).Warn("payload rejected")
		return res, err
	}
	log.WithFields(logrus.Fields{
		"type":   res.Type,
		"sensor": res.Sensor,
		"took":   took,
	}).Debug("payload decoded")
	return res, nil
}
