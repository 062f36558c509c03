// Package bob decodes uplinks of the BoB Assistant vibration sensor.
//
// A payload is the hex encoding of one message. Its first byte selects the
// message kind (learning, report, alarm or start/stop) and the accelerometer
// fitted to the sensor (MPU6500 or KX):
//
//	res, err := bob.Decode("52406450033c3d070102320a0a141e281b64010203040506070809")
//	// res.Type == "report", res.Sensor == "MPU6500"
//	// res.Msg["operating_time"] == 94.0
//
// Decode keeps no state between calls and is safe for concurrent use.
package bob

import (
	"encoding/json"
	"fmt"

	"github.com/christiaansc/Codec-BoBAssistant/internal/derive"
	"github.com/christiaansc/Codec-BoBAssistant/internal/field"
	"github.com/christiaansc/Codec-BoBAssistant/internal/frame"
	"github.com/christiaansc/Codec-BoBAssistant/internal/message"
)

const (
	StatusCodeOK = 200
	StatusOK     = "success"
)

// Result is the decoded form of one payload.
type Result struct {
	Code   int            `json:"code"`
	Status string         `json:"status"`
	Sensor string         `json:"sensor"`
	Type   string         `json:"type"`
	Msg    map[string]any `json:"msg"`
}

// String renders the result as indented JSON.
func (r Result) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf("type: %s sensor: %s (marshal error: %v)", r.Type, r.Sensor, err)
	}
	return string(data)
}

// Decode decodes one hex payload.
func Decode(raw string) (Result, error) {
	return DecodeWithOptions(raw, Options{})
}

// DecodeWithOptions decodes one hex payload, reporting non-fatal anomalies
// to opts.Observer.
func DecodeWithOptions(raw string, opts Options) (Result, error) {
	obs := opts.observer()
	payload, err := frame.Parse(raw)
	if err != nil {
		return Result{}, err
	}
	signification, err := payload.Signification()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	def, variant, err := message.Classify(signification)
	if err != nil {
		return Result{}, err
	}
	if payload.Len() != def.HexLength() {
		return Result{}, fmt.Errorf("%w \"%d\" for message type %s (expected %d)",
			ErrInvalidPayloadLength, payload.Len(), def.Name(), def.HexLength())
	}
	primary, err := field.Decode(payload, def, variant, obs)
	if err != nil {
		return Result{}, err
	}
	props := derive.Run(def.Kind, variant, primary, obs)
	return Result{
		Code:   StatusCodeOK,
		Status: StatusOK,
		Sensor: variant.String(),
		Type:   def.Name(),
		Msg:    props.Map(),
	}, nil
}
