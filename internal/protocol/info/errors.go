package info

import "errors"

var (
	ErrInvalidKey   = errors.New("info: invalid key")
	ErrInvalidValue = errors.New("info: invalid value")
	ErrMalformed    = errors.New("info: malformed info string")
	ErrTooLarge     = errors.New("info: info string too large")
)
