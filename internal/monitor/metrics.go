// Package monitor exposes decoding metrics to prometheus.
package monitor

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/christiaansc/Codec-BoBAssistant/pkg/bob"
)

// Metrics groups the collectors of one process.
type Metrics struct {
	Decoded        *prometheus.CounterVec
	Failures       *prometheus.CounterVec
	Anomalies      *prometheus.CounterVec
	Duration       prometheus.Histogram
	VibrationLevel *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New registers the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		Decoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bob_payloads_decoded_total",
			Help: "Payloads decoded successfully.",
		}, []string{"type", "sensor"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bob_payload_decode_failures_total",
			Help: "Payloads rejected by the decoder.",
		}, []string{"reason"}),
		Anomalies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bob_decode_anomalies_total",
			Help: "Non-fatal anomalies raised while decoding.",
		}, []string{"code", "type"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bob_decode_duration_seconds",
			Help:    "Time spent decoding one payload.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		VibrationLevel: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bob_vibration_level_g",
			Help:    "Vibration level carried by decoded payloads.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"type", "sensor"}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(
		m.Decoded,
		m.Failures,
		m.Anomalies,
		m.Duration,
		m.VibrationLevel,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing Handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveDecode records the outcome of one decode call.
func (m *Metrics) ObserveDecode(res bob.Result, err error, took time.Duration) {
	m.Duration.Observe(took.Seconds())
	if err != nil {
		m.Failures.WithLabelValues(bob.Reason(err)).Inc()
		return
	}
	m.Decoded.WithLabelValues(res.Type, res.Sensor).Inc()
	if level, err := res.FieldSet().Float("vibration_level"); err == nil {
		m.VibrationLevel.WithLabelValues(res.Type, res.Sensor).Observe(level)
	}
}

// Observer counts anomalies.
func (m *Metrics) Observer() bob.Observer {
	return bob.ObserverFunc(func(a bob.Anomaly) {
		m.Anomalies.WithLabelValues(string(a.Code), a.Kind).Inc()
	})
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartServer serves /metrics and /health on port in the background. The
// returned server is shut down by the caller.
func (m *Metrics) StartServer(port int, log logrus.FieldLogger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithField("addr", srv.Addr).Info("metrics server listening")
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server stopped")
		}
	}()
	return srv
}
