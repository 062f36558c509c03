// Package property models decoded values and the ordered, immutable set the
// decode pipeline passes from stage to stage.
package property

import (
	"fmt"
	"math"
)

type valueKind int

const (
	kindNumber valueKind = iota + 1
	kindSeries
	kindState
)

// Value is a decoded property: a number, an ordered series of numbers or a
// sensor state. The zero Value holds nothing.
type Value struct {
	kind   valueKind
	number float64
	series []float64
	state  State
}

// Number wraps a scalar.
func Number(v float64) Value {
	return Value{kind: kindNumber, number: v}
}

// Series wraps a copy of v.
func Series(v []float64) Value {
	buf := make([]float64, len(v))
	copy(buf, v)
	return Value{kind: kindSeries, series: buf}
}

// StateValue wraps a sensor state.
func StateValue(s State) Value {
	return Value{kind: kindState, state: s}
}

// Number returns the scalar if v holds one.
func (v Value) Number() (float64, bool) {
	if v.kind != kindNumber {
		return 0, false
	}
	return v.number, true
}

// Series returns a copy of the series if v holds one.
func (v Value) Series() ([]float64, bool) {
	if v.kind != kindSeries {
		return nil, false
	}
	buf := make([]float64, len(v.series))
	copy(buf, v.series)
	return buf, true
}

// State returns the sensor state if v holds one.
func (v Value) State() (State, bool) {
	if v.kind != kindState {
		return 0, false
	}
	return v.state, true
}

// Usable reports whether v carries a meaningful value: a finite number, a
// non-empty series of finite numbers or a known state.
func (v Value) Usable() bool {
	switch v.kind {
	case kindNumber:
		return isFinite(v.number)
	case kindSeries:
		if len(v.series) == 0 {
			return false
		}
		for _, n := range v.series {
			if !isFinite(n) {
				return false
			}
		}
		return true
	case kindState:
		return v.state.Valid()
	default:
		return false
	}
}

// Interface returns the plain Go value used in result maps: float64,
// []float64 or State.
func (v Value) Interface() any {
	switch v.kind {
	case kindNumber:
		return v.number
	case kindSeries:
		buf, _ := v.Series()
		return buf
	case kindState:
		return v.state
	default:
		return nil
	}
}

func (v Value) String() string {
	if v.kind == 0 {
		return "<nil>"
	}
	return fmt.Sprintf("%v", v.Interface())
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
