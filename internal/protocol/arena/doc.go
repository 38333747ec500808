// Package arena projects arena (map/level) info strings onto typed values.
//
// Arena recognizes map, longname, bots, fraglimit, timelimit, type and
// special. Every other pair is kept untouched in a residual info map, and
// Info re-encodes the typed values at the positions they were read from.
//
// List valued fields (bots, type) have no separator defined by the wire
// format. Options carries it explicitly; DefaultOptions uses a single
// space, as arenas.txt does.
package arena
