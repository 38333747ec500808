package arena

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/danmuck/infostr/internal/protocol/info"
)

// ArenaInfo marks an info map as describing an arena. It does not
// validate; a partial ArenaInfo is legal until it is projected.
type ArenaInfo struct {
	info *info.Info
}

func NewArenaInfo(m *info.Info) ArenaInfo {
	return ArenaInfo{info: m}
}

// Info returns a copy of the wrapped map.
func (ai ArenaInfo) Info() *info.Info { return ai.info.Clone() }

func (ai ArenaInfo) Get(key info.Key) (info.Value, bool) { return ai.info.Get(key) }

func (ai ArenaInfo) Lookup(name string) (info.Value, bool) { return ai.info.Lookup(name) }

func (ai ArenaInfo) Len() int { return ai.info.Len() }

func (ai ArenaInfo) All() iter.Seq2[info.Key, info.Value] { return ai.info.All() }

func (ai ArenaInfo) Serialize() []byte { return ai.info.Serialize() }

// Arena is the typed view of an arena info string. It is read-only once
// constructed.
type Arena struct {
	mapName    MapName
	name       ColorString
	bots       []BotName
	fraglimit  int
	timelimit  int
	types      GameTypes
	special    SpecialTag
	hasSpecial bool

	residual *info.Info
	// layout is the source key order, typed keys included.
	layout []info.Key
	opts   Options
}

func (a *Arena) Map() MapName { return a.mapName }

func (a *Arena) Name() ColorString { return a.name }

// Bots returns a copy of the bot roster. It is empty when bots is absent.
func (a *Arena) Bots() []BotName { return slices.Clone(a.bots) }

func (a *Arena) FragLimit() int { return a.fraglimit }

// TimeLimit is in minutes.
func (a *Arena) TimeLimit() int { return a.timelimit }

func (a *Arena) Type() GameTypes { return a.types }

func (a *Arena) Special() (SpecialTag, bool) { return a.special, a.hasSpecial }

// Residual returns a copy of the pairs not projected onto typed fields.
func (a *Arena) Residual() *info.Info { return a.residual.Clone() }

// ResidualAll yields the residual pairs in order without copying the map.
func (a *Arena) ResidualAll() iter.Seq2[info.Key, info.Value] { return a.residual.All() }

func (a *Arena) ResidualLen() int { return a.residual.Len() }

// Keys yields every source key in source order.
func (a *Arena) Keys() iter.Seq[info.Key] { return slices.Values(a.layout) }

// Options returns the separators a was decoded with.
func (a *Arena) Options() Options { return a.opts }

// Equal compares typed fields and residual pairs. Game types compare as
// sets and key layout is ignored.
func (a *Arena) Equal(o *Arena) bool {
	return a.mapName == o.mapName &&
		a.name == o.name &&
		slices.Equal(a.bots, o.bots) &&
		a.fraglimit == o.fraglimit &&
		a.timelimit == o.timelimit &&
		a.types.Equal(o.types) &&
		a.special == o.special &&
		a.hasSpecial == o.hasSpecial &&
		a.residual.Equal(o.residual)
}

// Info re-encodes a. Typed fields are written in canonical form at the
// position their key held in the source; residual pairs keep their
// values and relative order.
func (a *Arena) Info() *info.Info {
	out := info.New()
	for _, k := range a.layout {
		if v, ok := a.encodeField(k.String()); ok {
			out.Insert(k, info.MustValue(v))
			continue
		}
		if v, ok := a.residual.Get(k); ok {
			out.Insert(k, v)
		}
	}
	return out
}

func (a *Arena) ArenaInfo() ArenaInfo {
	return NewArenaInfo(a.Info())
}

func (a *Arena) Serialize() []byte {
	return a.Info().Serialize()
}

func (a *Arena) encodeField(key string) (string, bool) {
	switch key {
	case KeyMap:
		return string(a.mapName), true
	case KeyLongname:
		return string(a.name), true
	case KeyBots:
		return joinTokens(a.bots, a.opts.BotSeparator), true
	case KeyFragLimit:
		return strconv.Itoa(a.fraglimit), true
	case KeyTimeLimit:
		return strconv.Itoa(a.timelimit), true
	case KeyType:
		return joinTokens(a.types.tags, a.opts.TypeSeparator), true
	case KeySpecial:
		return string(a.special), true
	}
	return "", false
}

func joinTokens[T ~string](toks []T, sep string) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(t))
	}
	return b.String()
}
