package message

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMessageKind   = errors.New("unknown message kind")
	ErrUnknownSensorVariant = errors.New("unknown sensor variant")
	ErrInvalidTable         = errors.New("invalid message table")
)

// Classify resolves the kind and the accelerometer variant from the leading
// payload byte.
func Classify(signification byte) (Definition, Variant, error) {
	return classify(signification, definitions[:], Variants)
}

func classify(signification byte, defs []Definition, variants []Variant) (Definition, Variant, error) {
	def, ok := kindFor(signification, defs)
	if !ok {
		return Definition{}, 0, fmt.Errorf("%w: invalid data signification %d", ErrUnknownMessageKind, signification)
	}
	v, ok := variantFor(signification, defs, variants)
	if !ok {
		return Definition{}, 0, fmt.Errorf("%w: invalid data signification %d for %s", ErrUnknownSensorVariant, signification, def.Name())
	}
	return def, v, nil
}

func kindFor(signification byte, defs []Definition) (Definition, bool) {
	for _, def := range defs {
		for _, sig := range def.Signification {
			if sig == signification {
				return def, true
			}
		}
	}
	return Definition{}, false
}

func variantFor(signification byte, defs []Definition, variants []Variant) (Variant, bool) {
	for _, v := range variants {
		for _, def := range defs {
			if def.Signification[v] == signification {
				return v, true
			}
		}
	}
	return 0, false
}

// Validate checks the invariants every table must hold: offsets fall inside
// the payload, property names are unique per kind and classification values
// are pairwise distinct across kinds and variants.
func Validate(defs []Definition) error {
	seen := make(map[byte]string)
	for _, def := range defs {
		if def.ByteLength <= 0 {
			return fmt.Errorf("%w: %s has byte length %d", ErrInvalidTable, def.Name(), def.ByteLength)
		}
		for _, v := range Variants {
			sig := def.Signification[v]
			where := def.Name() + "/" + v.String()
			if prev, dup := seen[sig]; dup {
				return fmt.Errorf("%w: signification %d used by %s and %s", ErrInvalidTable, sig, prev, where)
			}
			seen[sig] = where
		}
		names := make(map[string]struct{}, len(def.Fields))
		for _, f := range def.Fields {
			if _, dup := names[f.Name]; dup {
				return fmt.Errorf("%w: %s declares %s twice", ErrInvalidTable, def.Name(), f.Name)
			}
			names[f.Name] = struct{}{}
			if err := f.Check(def.ByteLength); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidTable, def.Name(), err)
			}
		}
	}
	return nil
}

// Check reports malformed offsets.
func (f FieldSpec) Check(byteLength int) error {
	if len(f.Offsets) == 0 {
		return fmt.Errorf("property %s has no byte index", f.Name)
	}
	if !f.Multi && len(f.Offsets) != 1 {
		return fmt.Errorf("property %s is single-byte but has %d byte indexes", f.Name, len(f.Offsets))
	}
	for _, off := range f.Offsets {
		if off < 0 || off >= byteLength {
			return fmt.Errorf("property %s byte index %d outside 0..%d", f.Name, off, byteLength-1)
		}
	}
	return nil
}
