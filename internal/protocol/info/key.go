package info

import (
	"fmt"
	"strings"
)

// Delimiter separates keys and values on the wire.
const Delimiter byte = '\\'

// Key is a non-empty, delimiter free info key. The zero Key is not valid.
type Key struct {
	s string
}

// NewKey validates b and returns it as a Key. b is copied.
func NewKey(b []byte) (Key, error) {
	return ParseKey(string(b))
}

// ParseKey validates s and returns it as a Key.
func ParseKey(s string) (Key, error) {
	if err := checkKey(s, false); err != nil {
		return Key{}, err
	}
	return Key{s: s}, nil
}

// MustKey is like ParseKey but panics on invalid input.
func MustKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Key) String() string { return k.s }

// Bytes returns a copy of the key bytes.
func (k Key) Bytes() []byte { return []byte(k.s) }

func (k Key) Len() int { return len(k.s) }

// At returns the i-th byte of the key.
func (k Key) At(i int) byte { return k.s[i] }

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.s == "" }

// Value is an info value. It may be empty but never holds the delimiter.
type Value struct {
	s string
}

// NewValue validates b and returns it as a Value. b is copied.
func NewValue(b []byte) (Value, error) {
	return ParseValue(string(b))
}

// ParseValue validates s and returns it as a Value.
func ParseValue(s string) (Value, error) {
	if err := checkValue(s, false); err != nil {
		return Value{}, err
	}
	return Value{s: s}, nil
}

// MustValue is like ParseValue but panics on invalid input.
func MustValue(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Value) String() string { return v.s }

// Bytes returns a copy of the value bytes.
func (v Value) Bytes() []byte { return []byte(v.s) }

func (v Value) Len() int { return len(v.s) }

// At returns the i-th byte of the value.
func (v Value) At(i int) byte { return v.s[i] }

func checkKey(s string, strict bool) error {
	if s == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if reason := badByte(s, strict); reason != "" {
		return fmt.Errorf("%w: %q %s", ErrInvalidKey, s, reason)
	}
	return nil
}

func checkValue(s string, strict bool) error {
	if reason := badByte(s, strict); reason != "" {
		return fmt.Errorf("%w: %q %s", ErrInvalidValue, s, reason)
	}
	return nil
}

// badByte describes the first forbidden byte in s, or returns "".
// Strict mode also forbids '"' and ';', which the engine refuses in
// user supplied info.
func badByte(s string, strict bool) string {
	if strings.IndexByte(s, Delimiter) >= 0 {
		return `contains the '\' delimiter`
	}
	if strings.IndexByte(s, 0) >= 0 {
		return "contains a NUL byte"
	}
	if strict && strings.ContainsAny(s, `";`) {
		return `contains '"' or ';'`
	}
	return ""
}
