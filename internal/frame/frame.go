package frame

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPayload reports a payload that is empty or not hexadecimal.
var ErrInvalidPayload = errors.New("invalid payload")

// HexCharsPerByte is the number of payload characters encoding one byte.
const HexCharsPerByte = 2

// Payload is a hex-encoded BoB uplink as received from the network server.
// Offsets passed to its accessors are byte offsets, not character offsets.
type Payload struct {
	raw string
}

// Parse checks that raw only holds hexadecimal digits (either case). The
// length is validated later against the message kind.
func Parse(raw string) (Payload, error) {
	if raw == "" {
		return Payload{}, fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	}
	for i := 0; i < len(raw); i++ {
		if !isHexDigit(raw[i]) {
			return Payload{}, fmt.Errorf("%w: non-hex character %q at position %d", ErrInvalidPayload, raw[i], i)
		}
	}
	return Payload{raw: raw}, nil
}

// Raw returns the payload as received.
func (p Payload) Raw() string { return p.raw }

// Len returns the payload length in hex characters.
func (p Payload) Len() int { return len(p.raw) }

// Signification returns the leading byte, which selects kind and variant.
func (p Payload) Signification() (byte, error) {
	return p.Byte(0)
}

// Byte reads the two characters at idx*2. A trailing single character is
// left-padded with '0'.
func (p Payload) Byte(idx int) (byte, error) {
	start := idx * HexCharsPerByte
	if idx < 0 || start >= len(p.raw) {
		return 0, fmt.Errorf("byte %d outside payload of %d characters", idx, len(p.raw))
	}
	end := start + HexCharsPerByte
	if end > len(p.raw) {
		end = len(p.raw)
	}
	return hexToUnsigned(p.raw[start:end])
}

// Bytes reads each offset in order.
func (p Payload) Bytes(idxs []int) ([]byte, error) {
	out := make([]byte, 0, len(idxs))
	for _, idx := range idxs {
		b, err := p.Byte(idx)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func hexToUnsigned(s string) (byte, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return byte(v), nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
