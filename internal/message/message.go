// Package message holds the static layout of every BoB uplink: the four
// message kinds, the two accelerometer variants and the byte offsets of each
// property. The set is closed; there is no registration at runtime.
package message

import "fmt"

// Kind identifies a message layout.
type Kind int

const (
	Learning Kind = iota
	Report
	Alarm
	StartStop
)

var kindNames = [...]string{
	Learning:  "learning",
	Report:    "report",
	Alarm:     "alarm",
	StartStop: "startstop",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Variant is the accelerometer fitted to the sensor.
type Variant int

const (
	MPU6500 Variant = iota
	KX
)

// Variants lists every supported accelerometer in classification order.
var Variants = []Variant{MPU6500, KX}

type variantInfo struct {
	name string
	lfHz int
	hfHz int
}

var variantInfos = [...]variantInfo{
	MPU6500: {name: "MPU6500", lfHz: 1000, hfHz: 1000},
	KX:      {name: "KX", lfHz: 800, hfHz: 25600},
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantInfos) {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantInfos[v].name
}

// LowFrequencySamplingHz is the sampling rate of the low-frequency channel.
func (v Variant) LowFrequencySamplingHz() int { return variantInfos[v].lfHz }

// HighFrequencySamplingHz is the sampling rate of the high-frequency channel.
func (v Variant) HighFrequencySamplingHz() int { return variantInfos[v].hfHz }

// FieldSpec locates one property inside a payload.
type FieldSpec struct {
	Name    string
	Offsets []int
	// Multi marks properties spanning several bytes. A single-byte property
	// has exactly one offset and Multi unset.
	Multi bool
}

func single(name string, offset int) FieldSpec {
	return FieldSpec{Name: name, Offsets: []int{offset}}
}

func multi(name string, offsets ...int) FieldSpec {
	return FieldSpec{Name: name, Offsets: offsets, Multi: true}
}

func span(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// Definition is the immutable layout of one message kind. Callers must not
// modify the slices it holds.
type Definition struct {
	Kind       Kind
	ByteLength int
	// Signification is the leading byte value per variant.
	Signification [2]byte
	Fields        []FieldSpec
}

// Name is the kind name reported in decode results.
func (d Definition) Name() string { return d.Kind.String() }

// HexLength is the expected payload length in hex characters.
func (d Definition) HexLength() int { return d.ByteLength * 2 }
