package arena

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField   = errors.New("arena: missing required field")
	ErrInvalidMapName = errors.New("arena: invalid map name")
	ErrInvalidNumber  = errors.New("arena: invalid number")
	ErrInvalidToken   = errors.New("arena: invalid list token")
	ErrReservedKey    = errors.New("arena: residual key shadows a typed field")
	ErrInvalidOptions = errors.New("arena: invalid options")
)

// MissingFieldError reports the first required field absent from the source.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("arena: missing required field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// InvalidFieldError reports a field whose value failed validation. Err is
// one of the package sentinels.
type InvalidFieldError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%v: field %q value %q: %s", e.Err, e.Field, e.Value, e.Reason)
}

func (e *InvalidFieldError) Unwrap() error { return e.Err }
