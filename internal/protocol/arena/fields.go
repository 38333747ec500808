package arena

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/danmuck/infostr/internal/protocol/info"
)

// Well-known arena keys, in check order.
const (
	KeyMap       = "map"
	KeyLongname  = "longname"
	KeyBots      = "bots"
	KeyFragLimit = "fraglimit"
	KeyTimeLimit = "timelimit"
	KeyType      = "type"
	KeySpecial   = "special"
)

var wellKnown = []string{KeyMap, KeyLongname, KeyBots, KeyFragLimit, KeyTimeLimit, KeyType, KeySpecial}

// IsWellKnown reports whether key is projected onto a typed field.
func IsWellKnown(key string) bool {
	return slices.Contains(wellKnown, key)
}

// MapName names a map file. It is safe to join onto a maps directory.
type MapName string

// ColorString is display text that may carry ^N color escapes.
type ColorString string

type BotName string

// SpecialTag is an opaque marker such as "training" or "final".
type SpecialTag string

// GameType is a game type tag. Unknown tags are kept as is.
type GameType string

const (
	GameTypeFFA     GameType = "ffa"
	GameTypeTourney GameType = "tourney"
	GameTypeTeam    GameType = "team"
	GameTypeCTF     GameType = "ctf"
	GameTypeSingle  GameType = "single"
)

// Known reports whether t is one of the stock game types.
func (t GameType) Known() bool {
	switch t {
	case GameTypeFFA, GameTypeTourney, GameTypeTeam, GameTypeCTF, GameTypeSingle:
		return true
	}
	return false
}

// GameTypes is a set of tags that remembers first-seen order for encoding.
type GameTypes struct {
	tags []GameType
}

// NewGameTypes builds a set from tags, dropping repeats.
func NewGameTypes(tags ...GameType) GameTypes {
	var g GameTypes
	for _, t := range tags {
		if !g.Contains(t) {
			g.tags = append(g.tags, t)
		}
	}
	return g
}

func (g GameTypes) Len() int { return len(g.tags) }

func (g GameTypes) Contains(t GameType) bool {
	return slices.Contains(g.tags, t)
}

// All yields the tags in encoding order.
func (g GameTypes) All() iter.Seq[GameType] {
	return slices.Values(g.tags)
}

// Slice returns a copy of the tags in encoding order.
func (g GameTypes) Slice() []GameType {
	return slices.Clone(g.tags)
}

// Equal compares as sets; order is ignored.
func (g GameTypes) Equal(o GameTypes) bool {
	if g.Len() != o.Len() {
		return false
	}
	for _, t := range g.tags {
		if !o.Contains(t) {
			return false
		}
	}
	return true
}

// ParseMapName validates s as a map name.
func ParseMapName(s string) (MapName, error) {
	invalid := func(reason string) error {
		return &InvalidFieldError{Field: KeyMap, Value: s, Reason: reason, Err: ErrInvalidMapName}
	}
	if _, err := info.ParseKey(s); err != nil {
		return "", invalid(err.Error())
	}
	if strings.HasPrefix(s, ".") {
		return "", invalid("leading dot")
	}
	if strings.Contains(s, "..") {
		return "", invalid("path traversal")
	}
	if strings.ContainsAny(s, `/\:`) {
		return "", invalid("path separator")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return "", invalid("control byte")
		}
	}
	return MapName(s), nil
}

func parseCount(field, s string) (int, error) {
	invalid := func(reason string) error {
		return &InvalidFieldError{Field: field, Value: s, Reason: reason, Err: ErrInvalidNumber}
	}
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, invalid("not a non-negative decimal")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid("out of range")
	}
	return n, nil
}

// splitTokens splits s on sep and drops empty tokens.
func splitTokens(s, sep string) []string {
	var out []string
	for _, tok := range strings.Split(s, sep) {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// checkTokens rejects tokens that would not split back out of their
// joined form. A multi-byte separator can form across token boundaries.
func checkTokens[T ~string](field string, toks []T, sep string) error {
	for _, tok := range toks {
		if tok == "" || strings.Contains(string(tok), sep) {
			return &InvalidFieldError{Field: field, Value: string(tok), Reason: "empty or contains separator", Err: ErrInvalidToken}
		}
	}
	joined := joinTokens(toks, sep)
	split := splitTokens(joined, sep)
	if len(split) != len(toks) {
		return &InvalidFieldError{Field: field, Value: joined, Reason: "tokens merge across the separator", Err: ErrInvalidToken}
	}
	for i, tok := range toks {
		if split[i] != string(tok) {
			return &InvalidFieldError{Field: field, Value: joined, Reason: "tokens merge across the separator", Err: ErrInvalidToken}
		}
	}
	return nil
}
