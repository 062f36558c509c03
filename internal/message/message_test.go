package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		sig     byte
		kind    Kind
		variant Variant
	}{
		{76, Learning, MPU6500},
		{108, Learning, KX},
		{82, Report, MPU6500},
		{114, Report, KX},
		{65, Alarm, MPU6500},
		{97, Alarm, KX},
		{83, StartStop, MPU6500},
		{115, StartStop, KX},
	}
	for _, tc := range cases {
		def, v, err := Classify(tc.sig)
		require.NoError(t, err, "signification %d", tc.sig)
		require.Equal(t, tc.kind, def.Kind)
		require.Equal(t, tc.variant, v)
	}
}

func TestClassifyUnknown(t *testing.T) {
	known := map[byte]bool{76: true, 108: true, 82: true, 114: true, 65: true, 97: true, 83: true, 115: true}
	for i := 0; i <= 0xFF; i++ {
		sig := byte(i)
		if known[sig] {
			continue
		}
		_, _, err := Classify(sig)
		require.ErrorIs(t, err, ErrUnknownMessageKind, "signification %d", sig)
	}
}

func TestClassifyUnknownVariant(t *testing.T) {
	_, _, err := classify('l', definitions[:], []Variant{MPU6500})
	require.ErrorIs(t, err, ErrUnknownSensorVariant)
	require.Contains(t, err.Error(), "learning")
}

func TestBuiltinTableIsValid(t *testing.T) {
	require.NoError(t, Validate(Definitions()))

	want := map[Kind]int{Learning: 40, Report: 27, Alarm: 40, StartStop: 3}
	for kind, length := range want {
		def, ok := Lookup(kind)
		require.True(t, ok)
		require.Equal(t, length, def.ByteLength, kind.String())
		require.Equal(t, 2*length, def.HexLength())
	}
}

func TestValidateRejects(t *testing.T) {
	base, _ := Lookup(StartStop)

	dup := base
	dup.Signification = [2]byte{'R', 'x'}
	require.ErrorIs(t, Validate([]Definition{definitions[Report], dup}), ErrInvalidTable)

	outOfRange := base
	outOfRange.Fields = []FieldSpec{single(State, 3)}
	require.ErrorIs(t, Validate([]Definition{outOfRange}), ErrInvalidTable)

	empty := base
	empty.Fields = []FieldSpec{{Name: State}}
	require.ErrorIs(t, Validate([]Definition{empty}), ErrInvalidTable)

	twice := base
	twice.Fields = []FieldSpec{single(State, 1), single(State, 2)}
	require.ErrorIs(t, Validate([]Definition{twice}), ErrInvalidTable)
}

func TestVariantSampling(t *testing.T) {
	require.Equal(t, "MPU6500", MPU6500.String())
	require.Equal(t, 1000, MPU6500.HighFrequencySamplingHz())
	require.Equal(t, "KX", KX.String())
	require.Equal(t, 800, KX.LowFrequencySamplingHz())
	require.Equal(t, 25600, KX.HighFrequencySamplingHz())
}

func TestFFTSpansThirtyTwoBins(t *testing.T) {
	for _, kind := range []Kind{Learning, Alarm} {
		def, _ := Lookup(kind)
		var found bool
		for _, f := range def.Fields {
			if f.Name == FFT {
				found = true
				require.Len(t, f.Offsets, 32)
				require.Equal(t, 8, f.Offsets[0])
				require.Equal(t, 39, f.Offsets[31])
			}
		}
		require.True(t, found, kind.String())
	}
}
