package info

import (
	"fmt"
	"strings"
)

// Size caps used by the engine for info strings.
const (
	MaxInfoString    = 1024
	MaxBigInfoString = 8192
)

// Limits constrains Parse.
type Limits struct {
	// MaxBytes caps the input length. Zero or negative disables the cap.
	MaxBytes int
	// Strict also rejects '"' and ';' in keys and values.
	Strict bool
}

func DefaultLimits() Limits {
	return Limits{MaxBytes: MaxInfoString}
}

// BigLimits is for the large info strings carried by system configstrings.
func BigLimits() Limits {
	return Limits{MaxBytes: MaxBigInfoString}
}

// Parse decodes an info string without a size cap.
func Parse(b []byte) (*Info, error) {
	return ParseLimits(b, Limits{})
}

// ParseLimits decodes an info string. The leading delimiter is optional.
// A dangling key, a trailing delimiter, an empty key or a forbidden byte
// fails the whole parse.
func ParseLimits(b []byte, lim Limits) (*Info, error) {
	if lim.MaxBytes > 0 && len(b) > lim.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d", ErrTooLarge, len(b), lim.MaxBytes)
	}
	m := New()
	if len(b) == 0 {
		return m, nil
	}

	s := string(b)
	off := 0
	if s[0] == Delimiter {
		s = s[1:]
		off = 1
	}
	segs := strings.Split(s, string(Delimiter))
	if len(segs)%2 != 0 {
		return nil, fmt.Errorf("%w: dangling segment %q at end of input", ErrMalformed, segs[len(segs)-1])
	}

	for i := 0; i < len(segs); i += 2 {
		ks, vs := segs[i], segs[i+1]
		if err := checkKey(ks, lim.Strict); err != nil {
			return nil, fmt.Errorf("%w: pair %d at byte %d: %w", ErrMalformed, i/2, off, err)
		}
		if err := checkValue(vs, lim.Strict); err != nil {
			return nil, fmt.Errorf("%w: pair %d at byte %d: %w", ErrMalformed, i/2, off, err)
		}
		m.Insert(Key{s: ks}, Value{s: vs})
		off += len(ks) + len(vs) + 2
	}
	return m, nil
}

// Validate checks every pair of m against lim, including the encoded size.
func Validate(m *Info, lim Limits) error {
	if n := m.wireLen(); lim.MaxBytes > 0 && n > lim.MaxBytes {
		return fmt.Errorf("%w: %d bytes exceeds limit %d", ErrTooLarge, n, lim.MaxBytes)
	}
	if !lim.Strict {
		return nil
	}
	for k, v := range m.All() {
		if err := checkKey(k.s, true); err != nil {
			return err
		}
		if err := checkValue(v.s, true); err != nil {
			return err
		}
	}
	return nil
}
