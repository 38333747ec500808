package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/infostr/internal/protocol/arena"
	"github.com/danmuck/infostr/internal/protocol/info"
	"github.com/danmuck/infostr/internal/testutil/testlog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadTOMLOverridesDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "infostr.toml", `
[info]
max_bytes = 8192
strict = true

[arena]
bot_separator = ","
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Limits() != (info.Limits{MaxBytes: 8192, Strict: true}) {
		t.Fatalf("unexpected limits: %+v", cfg.Limits())
	}
	opts := cfg.ArenaOptions()
	if opts.BotSeparator != "," || opts.TypeSeparator != " " {
		t.Fatalf("unexpected arena options: %+v", opts)
	}
	if cfg.Log.Level != "info" || !cfg.Log.Timestamp {
		t.Fatalf("log defaults lost: %+v", cfg.Log)
	}
}

func TestLoadYAML(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "infostr.yaml", `
info:
  max_bytes: 0
arena:
  type_separator: "|"
log:
  level: debug
  no_color: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Info.MaxBytes != 0 || cfg.Arena.TypeSeparator != "|" || cfg.Arena.BotSeparator != " " {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.NoColor {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadEmptyYAMLKeepsDefaults(t *testing.T) {
	testlog.Start(t)
	cfg, err := Load(writeFile(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejects(t *testing.T) {
	testlog.Start(t)
	cases := map[string]struct {
		name, body, want string
	}{
		"unknown toml key": {"a.toml", "[info]\nmax_size = 3\n", "unknown key"},
		"unknown yaml key": {"a.yaml", "info:\n  max_size: 3\n", "max_size"},
		"empty separator":  {"a.toml", "[arena]\nbot_separator = \"\"\n", "empty bot separator"},
		"delimiter sep":    {"a.toml", "[arena]\ntype_separator = '\\'\n", "forbidden byte"},
		"negative max":     {"a.toml", "[info]\nmax_bytes = -1\n", "must not be negative"},
		"bad level":        {"a.toml", "[log]\nlevel = \"loud\"\n", "not a known level"},
		"unsupported ext":  {"a.json", "{}", "unsupported extension"},
		"broken toml":      {"a.toml", "[info\n", "config parse failed"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.name, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	testlog.Start(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTemplatesLoadAsDefaults(t *testing.T) {
	testlog.Start(t)
	for _, format := range []string{"toml", "yaml"} {
		path := filepath.Join(t.TempDir(), "infostr."+format)
		if err := WriteTemplate(path, format, false); err != nil {
			t.Fatalf("write %s template: %v", format, err)
		}
		if err := WriteTemplate(path, format, false); err == nil {
			t.Fatalf("expected refusal to overwrite %s", path)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("load %s template: %v", format, err)
		}
		if cfg != Default() {
			t.Fatalf("%s template differs from defaults: %+v", format, cfg)
		}
	}
	if _, err := Template("ini"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestProjectorFromConfig(t *testing.T) {
	testlog.Start(t)
	cfg := Default()
	cfg.Arena.BotSeparator = ","
	p, err := cfg.Projector(zerolog.Nop())
	if err != nil {
		t.Fatalf("projector: %v", err)
	}
	m, err := info.ParseLimits([]byte(`\map\q3dm1\longname\Arena Gate\bots\a,b\fraglimit\5\timelimit\5`), cfg.Limits())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	a, err := p.Project(arena.NewArenaInfo(m))
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if got := a.Bots(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected bots: %v", got)
	}
	if _, err := info.ParseLimits([]byte(`\k\`+strings.Repeat("x", info.MaxInfoString)), cfg.Limits()); err == nil {
		t.Fatalf("expected size limit from config")
	}
}

func TestApplyLogging(t *testing.T) {
	testlog.Start(t)
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	t.Setenv("INFOSTR_LOG_BYPASS", "true")

	cfg := Default()
	cfg.Log.Level = "warn"
	cfg.ApplyLogging()
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("unexpected level: %v", zerolog.GlobalLevel())
	}
	var buf bytes.Buffer
	log.Logger = log.Logger.Output(&buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("level not applied: %q", buf.String())
	}
}
