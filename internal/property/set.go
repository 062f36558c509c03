package property

type entry struct {
	name  string
	value Value
}

// Set is an ordered collection of named values. Sets are never modified in
// place: With and Without return a new Set and leave the receiver intact, so
// one stage's output can be inspected after later stages ran.
type Set struct {
	entries []entry
}

// Len returns the number of properties.
func (s Set) Len() int { return len(s.entries) }

// Names returns the property names in insertion order.
func (s Set) Names() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.name
	}
	return out
}

// Get returns the value stored under name.
func (s Set) Get(name string) (Value, bool) {
	if i := s.index(name); i >= 0 {
		return s.entries[i].value, true
	}
	return Value{}, false
}

// Has reports whether name is present.
func (s Set) Has(name string) bool {
	return s.index(name) >= 0
}

// Number returns name as a scalar. It is absent when missing, not a number or
// not finite.
func (s Set) Number(name string) (float64, bool) {
	v, ok := s.Get(name)
	if !ok || !v.Usable() {
		return 0, false
	}
	return v.Number()
}

// Series returns name as a series.
func (s Set) Series(name string) ([]float64, bool) {
	v, ok := s.Get(name)
	if !ok {
		return nil, false
	}
	return v.Series()
}

// State returns name as a sensor state.
func (s Set) State(name string) (State, bool) {
	v, ok := s.Get(name)
	if !ok {
		return 0, false
	}
	return v.State()
}

// With returns a copy of s where name holds v. An existing entry keeps its
// position; a new one is appended.
func (s Set) With(name string, v Value) Set {
	out := make([]entry, len(s.entries), len(s.entries)+1)
	copy(out, s.entries)
	if i := s.index(name); i >= 0 {
		out[i].value = v
		return Set{entries: out}
	}
	return Set{entries: append(out, entry{name: name, value: v})}
}

// Without returns a copy of s without name.
func (s Set) Without(name string) Set {
	i := s.index(name)
	if i < 0 {
		return s
	}
	out := make([]entry, 0, len(s.entries)-1)
	out = append(out, s.entries[:i]...)
	out = append(out, s.entries[i+1:]...)
	return Set{entries: out}
}

// Map flattens the set for serialization.
func (s Set) Map() map[string]any {
	out := make(map[string]any, len(s.entries))
	for _, e := range s.entries {
		out[e.name] = e.value.Interface()
	}
	return out
}

func (s Set) index(name string) int {
	for i, e := range s.entries {
		if e.name == name {
			return i
		}
	}
	return -1
}
