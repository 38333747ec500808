// Package info owns the info string wire codec.
//
// An info string is a run of backslash separated key/value pairs:
//
//	\key1\value1\key2\value2
//
// Keys and values cannot carry the delimiter or a NUL byte and there is
// no escape mechanism. Info keeps pairs in insertion order; inserting an
// existing key replaces its value in place.
package info
