package bob

import (
	"errors"

	"github.com/christiaansc/Codec-BoBAssistant/internal/field"
	"github.com/christiaansc/Codec-BoBAssistant/internal/frame"
	"github.com/christiaansc/Codec-BoBAssistant/internal/message"
)

// Errors returned by Decode. Match them with errors.Is; the error text adds
// the offending values.
var (
	ErrInvalidPayload       = frame.ErrInvalidPayload
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	ErrUnknownMessageKind   = message.ErrUnknownMessageKind
	ErrUnknownSensorVariant = message.ErrUnknownSensorVariant
	ErrInvalidSensorState   = field.ErrInvalidSensorState
	ErrInvalidByteIndex     = field.ErrInvalidByteIndex
)

// Reason returns a short stable label for a decode error, suitable for
// metric labels.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidPayloadLength):
		return "invalid_payload_length"
	case errors.Is(err, ErrUnknownMessageKind):
		return "unknown_message_kind"
	case errors.Is(err, ErrUnknownSensorVariant):
		return "unknown_sensor_variant"
	case errors.Is(err, ErrInvalidSensorState):
		return "invalid_sensor_state"
	case errors.Is(err, ErrInvalidByteIndex):
		return "invalid_byte_index"
	case errors.Is(err, ErrInvalidPayload):
		return "invalid_payload"
	default:
		return "other"
	}
}
