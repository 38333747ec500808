package arena

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/infostr/internal/protocol/info"
	"github.com/rs/zerolog"
)

// Options configures how list valued fields are split and joined.
type Options struct {
	BotSeparator  string
	TypeSeparator string
}

func DefaultOptions() Options {
	return Options{BotSeparator: " ", TypeSeparator: " "}
}

func (o Options) Validate() error {
	if err := checkSeparator("bot", o.BotSeparator); err != nil {
		return err
	}
	return checkSeparator("type", o.TypeSeparator)
}

func checkSeparator(name, sep string) error {
	if sep == "" {
		return fmt.Errorf("%w: empty %s separator", ErrInvalidOptions, name)
	}
	if strings.IndexByte(sep, info.Delimiter) >= 0 || strings.IndexByte(sep, 0) >= 0 {
		return fmt.Errorf("%w: %s separator %q holds a forbidden byte", ErrInvalidOptions, name, sep)
	}
	return nil
}

// Projector turns ArenaInfo into Arena. It holds no mutable state and may
// be shared between goroutines.
type Projector struct {
	opts Options
	log  zerolog.Logger
}

func NewProjector(opts Options, logger zerolog.Logger) (*Projector, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Projector{opts: opts, log: logger}, nil
}

// New projects ai with DefaultOptions. It does not log; use a Projector
// built with a logger for that.
func New(ai ArenaInfo) (*Arena, error) {
	p := &Projector{opts: DefaultOptions(), log: zerolog.Nop()}
	return p.Project(ai)
}

// Project validates ai and extracts the typed fields. Checks run in the
// order map, longname, bots, fraglimit, timelimit, type, special and the
// first failure is returned.
func (p *Projector) Project(ai ArenaInfo) (*Arena, error) {
	a, err := p.project(ai.info)
	if err != nil {
		p.log.Debug().Err(err).Int("pairs", ai.Len()).Msg("arena rejected")
		return nil, err
	}
	p.log.Debug().
		Str("map", string(a.mapName)).
		Int("bots", len(a.bots)).
		Int("residual", a.residual.Len()).
		Msg("arena projected")
	return a, nil
}

func (p *Projector) project(src *info.Info) (*Arena, error) {
	a := &Arena{opts: p.opts, residual: info.New()}

	raw, ok := src.Lookup(KeyMap)
	if !ok {
		return nil, &MissingFieldError{Field: KeyMap}
	}
	name, err := ParseMapName(raw.String())
	if err != nil {
		return nil, err
	}
	a.mapName = name

	raw, ok = src.Lookup(KeyLongname)
	if !ok {
		return nil, &MissingFieldError{Field: KeyLongname}
	}
	a.name = ColorString(raw.String())

	if raw, ok := src.Lookup(KeyBots); ok {
		for _, tok := range splitTokens(raw.String(), p.opts.BotSeparator) {
			a.bots = append(a.bots, BotName(tok))
		}
	}

	if a.fraglimit, err = requiredCount(src, KeyFragLimit); err != nil {
		return nil, err
	}
	if a.timelimit, err = requiredCount(src, KeyTimeLimit); err != nil {
		return nil, err
	}

	if raw, ok := src.Lookup(KeyType); ok {
		var tags []GameType
		for _, tok := range splitTokens(raw.String(), p.opts.TypeSeparator) {
			tags = append(tags, GameType(tok))
		}
		a.types = NewGameTypes(tags...)
	}

	if raw, ok := src.Lookup(KeySpecial); ok {
		a.special = SpecialTag(raw.String())
		a.hasSpecial = true
	}

	for k, v := range src.All() {
		a.layout = append(a.layout, k)
		if !IsWellKnown(k.String()) {
			a.residual.Insert(k, v)
		}
	}
	return a, nil
}

func requiredCount(src *info.Info, key string) (int, error) {
	raw, ok := src.Lookup(key)
	if !ok {
		return 0, &MissingFieldError{Field: key}
	}
	return parseCount(key, raw.String())
}

// Fields are the typed values used by Build.
type Fields struct {
	Map        MapName
	Name       ColorString
	Bots       []BotName
	FragLimit  int
	TimeLimit  int
	Type       []GameType
	Special    SpecialTag
	HasSpecial bool
}

// Build encodes f and residual into an info map and projects it. Keys are
// laid out as map, longname, bots, fraglimit, timelimit, type, special,
// then residual pairs in their order. Empty Bots and Type are omitted.
func (p *Projector) Build(f Fields, residual *info.Info) (*Arena, error) {
	m := info.New()
	set := func(key, value string) error {
		if err := m.Set(key, value); err != nil {
			return &InvalidFieldError{Field: key, Value: value, Reason: err.Error(), Err: err}
		}
		return nil
	}

	if err := set(KeyMap, string(f.Map)); err != nil {
		return nil, &InvalidFieldError{Field: KeyMap, Value: string(f.Map), Reason: err.Error(), Err: ErrInvalidMapName}
	}
	if err := set(KeyLongname, string(f.Name)); err != nil {
		return nil, err
	}
	if len(f.Bots) > 0 {
		if err := checkTokens(KeyBots, f.Bots, p.opts.BotSeparator); err != nil {
			return nil, err
		}
		if err := set(KeyBots, joinTokens(f.Bots, p.opts.BotSeparator)); err != nil {
			return nil, err
		}
	}
	if err := set(KeyFragLimit, strconv.Itoa(f.FragLimit)); err != nil {
		return nil, err
	}
	if err := set(KeyTimeLimit, strconv.Itoa(f.TimeLimit)); err != nil {
		return nil, err
	}
	if len(f.Type) > 0 {
		if err := checkTokens(KeyType, f.Type, p.opts.TypeSeparator); err != nil {
			return nil, err
		}
		if err := set(KeyType, joinTokens(f.Type, p.opts.TypeSeparator)); err != nil {
			return nil, err
		}
	}
	if f.HasSpecial {
		if err := set(KeySpecial, string(f.Special)); err != nil {
			return nil, err
		}
	}

	for k, v := range residual.All() {
		if IsWellKnown(k.String()) {
			return nil, &InvalidFieldError{Field: k.String(), Value: v.String(), Reason: "use the typed field", Err: ErrReservedKey}
		}
		m.Insert(k, v)
	}
	return p.Project(NewArenaInfo(m))
}
