package frame

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	p, err := Parse("5264ff")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sig, err := p.Signification()
	if err != nil {
		t.Fatalf("Signification: %v", err)
	}
	if sig != 0x52 {
		t.Fatalf("signification mismatch: %02X", sig)
	}
	if p.Len() != 6 {
		t.Fatalf("unexpected length %d", p.Len())
	}
	b, err := p.Byte(2)
	if err != nil {
		t.Fatalf("Byte: %v", err)
	}
	if b != 0xFF {
		t.Fatalf("unexpected byte 0x%02X", b)
	}
}

func TestParseMixedCase(t *testing.T) {
	p, err := Parse("aBcD")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := p.Bytes([]int{1, 0})
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if got[0] != 0xCD || got[1] != 0xAB {
		t.Fatalf("unexpected bytes % X", got)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, raw := range []string{"", "0x52", "52 64", "zz"} {
		if _, err := Parse(raw); !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("Parse(%q): expected ErrInvalidPayload, got %v", raw, err)
		}
	}
}

func TestByteOddTail(t *testing.T) {
	p, err := Parse("52a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := p.Byte(1)
	if err != nil {
		t.Fatalf("Byte: %v", err)
	}
	if b != 0x0A {
		t.Fatalf("expected padded 0x0A, got 0x%02X", b)
	}
	if _, err := p.Byte(2); err == nil {
		t.Fatalf("expected out of range error")
	}
}
