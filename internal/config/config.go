package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/infostr/internal/logging"
	"github.com/danmuck/infostr/internal/protocol/arena"
	"github.com/danmuck/infostr/internal/protocol/info"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds codec settings. Zero fields in a file keep their defaults.
type Config struct {
	Info  InfoConfig
	Arena ArenaConfig
	Log   LogConfig
}

type InfoConfig struct {
	MaxBytes int
	Strict   bool
}

type ArenaConfig struct {
	BotSeparator  string
	TypeSeparator string
}

type LogConfig struct {
	Level     string
	Timestamp bool
	NoColor   bool
}

type fileConfig struct {
	Info struct {
		MaxBytes *int  `toml:"max_bytes" yaml:"max_bytes"`
		Strict   *bool `toml:"strict" yaml:"strict"`
	} `toml:"info" yaml:"info"`
	Arena struct {
		BotSeparator  *string `toml:"bot_separator" yaml:"bot_separator"`
		TypeSeparator *string `toml:"type_separator" yaml:"type_separator"`
	} `toml:"arena" yaml:"arena"`
	Log struct {
		Level     *string `toml:"level" yaml:"level"`
		Timestamp *bool   `toml:"timestamp" yaml:"timestamp"`
		NoColor   *bool   `toml:"no_color" yaml:"no_color"`
	} `toml:"log" yaml:"log"`
}

func Default() Config {
	opts := arena.DefaultOptions()
	return Config{
		Info:  InfoConfig{MaxBytes: info.MaxInfoString},
		Arena: ArenaConfig{BotSeparator: opts.BotSeparator, TypeSeparator: opts.TypeSeparator},
		Log:   LogConfig{Level: "info", Timestamp: true},
	}
}

// Load reads a .toml, .yaml or .yml file over Default and validates it.
func Load(path string) (Config, error) {
	var raw fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("config load failed (%s): unsupported extension %q", path, ext)
	}

	cfg := Default()
	if raw.Info.MaxBytes != nil {
		cfg.Info.MaxBytes = *raw.Info.MaxBytes
	}
	if raw.Info.Strict != nil {
		cfg.Info.Strict = *raw.Info.Strict
	}
	if raw.Arena.BotSeparator != nil {
		cfg.Arena.BotSeparator = *raw.Arena.BotSeparator
	}
	if raw.Arena.TypeSeparator != nil {
		cfg.Arena.TypeSeparator = *raw.Arena.TypeSeparator
	}
	if raw.Log.Level != nil {
		cfg.Log.Level = strings.TrimSpace(*raw.Log.Level)
	}
	if raw.Log.Timestamp != nil {
		cfg.Log.Timestamp = *raw.Log.Timestamp
	}
	if raw.Log.NoColor != nil {
		cfg.Log.NoColor = *raw.Log.NoColor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Info.MaxBytes < 0 {
		return fmt.Errorf("info.max_bytes must not be negative")
	}
	if err := c.ArenaOptions().Validate(); err != nil {
		return err
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("log.level %q is not a known level", c.Log.Level)
	}
	return nil
}

func (c Config) Limits() info.Limits {
	return info.Limits{MaxBytes: c.Info.MaxBytes, Strict: c.Info.Strict}
}

func (c Config) ArenaOptions() arena.Options {
	return arena.Options{BotSeparator: c.Arena.BotSeparator, TypeSeparator: c.Arena.TypeSeparator}
}

// Projector builds an arena projector from the arena section.
func (c Config) Projector(logger zerolog.Logger) (*arena.Projector, error) {
	return arena.NewProjector(c.ArenaOptions(), logger)
}

// ApplyLogging installs the global logger described by the log section.
// Environment overrides still win.
func (c Config) ApplyLogging() zerolog.Logger {
	lc := logging.DefaultConfig(logging.ProfileRuntime)
	if lvl, ok := logging.ParseLevel(c.Log.Level); ok {
		lc.Level = lvl
	}
	lc.Timestamp = c.Log.Timestamp
	lc.NoColor = c.Log.NoColor
	logging.ApplyEnvOverrides(&lc)
	return logging.Apply(lc)
}
