package info

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBOR form: an array of [key, value] byte string pairs in map order.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("info: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("info: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalText returns the wire form.
func (m *Info) MarshalText() ([]byte, error) {
	return m.Serialize(), nil
}

// UnmarshalText replaces m with the parsed wire form. On error m is
// left untouched.
func (m *Info) UnmarshalText(b []byte) error {
	parsed, err := Parse(b)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

func (m *Info) MarshalCBOR() ([]byte, error) {
	pairs := make([][][]byte, 0, m.Len())
	for k, v := range m.All() {
		pairs = append(pairs, [][]byte{[]byte(k.s), []byte(v.s)})
	}
	return encMode.Marshal(pairs)
}

// UnmarshalCBOR replaces m with the decoded pairs. On error m is left
// untouched.
func (m *Info) UnmarshalCBOR(data []byte) error {
	var pairs [][][]byte
	if err := decMode.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("%w: cbor: %w", ErrMalformed, err)
	}
	out := New()
	for i, p := range pairs {
		if len(p) != 2 {
			return fmt.Errorf("%w: cbor pair %d has %d elements", ErrMalformed, i, len(p))
		}
		k, err := NewKey(p[0])
		if err != nil {
			return fmt.Errorf("%w: cbor pair %d: %w", ErrMalformed, i, err)
		}
		v, err := NewValue(p[1])
		if err != nil {
			return fmt.Errorf("%w: cbor pair %d: %w", ErrMalformed, i, err)
		}
		out.Insert(k, v)
	}
	*m = *out
	return nil
}
