package monitor

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/christiaansc/Codec-BoBAssistant/pkg/bob"
)

func TestObserveDecode(t *testing.T) {
	m := New()

	res, err := bob.Decode("52406450033c3d070102320a0a141e281b64010203040506070809")
	require.NoError(t, err)
	m.ObserveDecode(res, nil, time.Millisecond)

	_, err = bob.Decode("536340")
	m.ObserveDecode(bob.Result{}, err, time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Decoded.WithLabelValues("report", "MPU6500")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Failures.WithLabelValues("invalid_sensor_state")))
	require.Equal(t, 1, testutil.CollectAndCount(m.VibrationLevel))

	m.Observer().Observe(bob.Anomaly{Code: "dropped_property", Kind: "alarm"})
	require.Equal(t, 1.0, testutil.ToFloat64(m.Anomalies.WithLabelValues("dropped_property", "alarm")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.Decoded.WithLabelValues("learning", "KX").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.Contains(body, `bob_payloads_decoded_total{sensor="KX",type="learning"} 1`), body)
}
