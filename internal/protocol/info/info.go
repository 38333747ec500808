package info

import (
	"io"
	"iter"
)

type pair struct {
	key   Key
	value Value
}

// Info is an ordered key/value map. The zero value is an empty map.
// Info is not safe for concurrent mutation.
type Info struct {
	pairs []pair
	index map[Key]int
}

// New returns an empty info map.
func New() *Info {
	return &Info{}
}

// Insert sets key to value. An existing key keeps its position.
// Insert panics if key is the zero Key.
func (m *Info) Insert(key Key, value Value) {
	if key.IsZero() {
		panic("info: Insert with zero Key")
	}
	if i, ok := m.index[key]; ok {
		m.pairs[i].value = value
		return
	}
	if m.index == nil {
		m.index = make(map[Key]int)
	}
	m.index[key] = len(m.pairs)
	m.pairs = append(m.pairs, pair{key: key, value: value})
}

// Set validates name and value and inserts them.
func (m *Info) Set(name, value string) error {
	k, err := ParseKey(name)
	if err != nil {
		return err
	}
	v, err := ParseValue(value)
	if err != nil {
		return err
	}
	m.Insert(k, v)
	return nil
}

// Get returns the value stored for key.
func (m *Info) Get(key Key) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.pairs[i].value, true
}

// Lookup is Get keyed by a plain string.
func (m *Info) Lookup(name string) (Value, bool) {
	return m.Get(Key{s: name})
}

func (m *Info) Has(key Key) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key. The remaining pairs keep their relative order.
func (m *Info) Delete(key Key) bool {
	if m == nil {
		return false
	}
	i, ok := m.index[key]
	if !ok {
		return false
	}
	m.pairs = append(m.pairs[:i], m.pairs[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.pairs); j++ {
		m.index[m.pairs[j].key] = j
	}
	return true
}

func (m *Info) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// All yields every pair in map order. The sequence may be ranged over
// any number of times.
func (m *Info) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		if m == nil {
			return
		}
		for _, p := range m.pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys yields every key in map order.
func (m *Info) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns an independent copy of m.
func (m *Info) Clone() *Info {
	out := New()
	for k, v := range m.All() {
		out.Insert(k, v)
	}
	return out
}

// Equal reports whether m and o hold the same pairs in the same order.
func (m *Info) Equal(o *Info) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i := range m.Len() {
		if m.pairs[i] != o.pairs[i] {
			return false
		}
	}
	return true
}

// Serialize returns the wire form of m.
func (m *Info) Serialize() []byte {
	return m.AppendTo(make([]byte, 0, m.wireLen()))
}

// AppendTo appends the wire form of m to dst.
func (m *Info) AppendTo(dst []byte) []byte {
	for k, v := range m.All() {
		dst = append(dst, Delimiter)
		dst = append(dst, k.s...)
		dst = append(dst, Delimiter)
		dst = append(dst, v.s...)
	}
	return dst
}

// WriteTo writes the wire form of m to w.
func (m *Info) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.Serialize())
	return int64(n), err
}

func (m *Info) String() string {
	return string(m.Serialize())
}

func (m *Info) wireLen() int {
	n := 0
	for k, v := range m.All() {
		n += 2 + len(k.s) + len(v.s)
	}
	return n
}
