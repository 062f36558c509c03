package anomaly

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLogrusObserver(t *testing.T) {
	log, hook := test.NewNullLogger()
	obs := Logrus(log)

	obs.Observe(Anomaly{Severity: Error, Code: MissingInput, Kind: "alarm", Property: "fft", Message: "cannot calculate fft without vibration level"})
	obs.Observe(Anomaly{Severity: Warning, Code: InvalidValue, Kind: "report", Message: "odd"})

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, logrus.ErrorLevel, entries[0].Level)
	require.Equal(t, "fft", entries[0].Data["property"])
	require.Equal(t, "alarm", entries[0].Data["kind"])
	require.Equal(t, logrus.WarnLevel, entries[1].Level)
	_, hasProperty := entries[1].Data["property"]
	require.False(t, hasProperty)
}

func TestTeeAndRecorder(t *testing.T) {
	var a, b Recorder
	obs := Tee(&a, nil, &b)
	obs.Observe(Anomaly{Code: DroppedProperty})
	require.Len(t, a.Anomalies(), 1)
	require.Len(t, b.Anomalies(), 1)

	OrNop(nil).Observe(Anomaly{})
}
