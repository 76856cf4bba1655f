package editor

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/garaekz/ved/highlight"
	"github.com/garaekz/ved/internal/share"
	"github.com/garaekz/ved/logx"
	"github.com/garaekz/ved/theme"
)

// Config collects everything New needs beyond the terminal surfaces
// themselves: the theme/highlight tables and the logger panes and the
// region tree share. Built with the teacher's functional-options idiom
// (internal/share.Option[T]) rather than a constructor with a growing
// parameter list, per runfx/config.go.
type Config struct {
	Themes     *theme.Table
	Rules      *highlight.RuleSet
	ThemeIndex int
	Logger     *logx.Logger
}

// Option configures a Config, matching runfx's WithTickInterval/WithOutput
// shape.
type Option = share.Option[Config]

// DefaultConfig returns the built-in defaults: the seeded theme table, the
// embedded C rule set, theme index 0, and a logger discarding everything it
// receives. logx's own defaults write badge-formatted entries to stdout,
// which is exactly the file descriptor the double-buffered terminal writer
// is drawing the editor's screen to — a full-screen program has nowhere
// safe to print a stray log line while running, so the only sound default
// is silence until --debug names a file (cmd/ved's WithLogger override).
func DefaultConfig() Config {
	return Config{
		Themes:     theme.DefaultTable(),
		Rules:      highlight.DefaultRuleSet(),
		ThemeIndex: 0,
		Logger:     logx.LogWith(logx.WithOutput(io.Discard)),
	}
}

// WithThemes overrides the loaded theme table.
func WithThemes(t *theme.Table) Option {
	return func(c *Config) { c.Themes = t }
}

// WithRules overrides the loaded highlight rule set.
func WithRules(r *highlight.RuleSet) Option {
	return func(c *Config) { c.Rules = r }
}

// WithThemeIndex selects the theme the renderer starts on, clamped to the
// table's bounds once Themes is known.
func WithThemeIndex(i int) Option {
	return func(c *Config) { c.ThemeIndex = i }
}

// WithLogger overrides the default discarding logger, e.g. with one built by
// cmd/ved's --debug flag via logx.WithFileOutput.
func WithLogger(l *logx.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// fileConfig is the on-disk shape of $VED_CONFIG: a theme name/index to
// start on and optional paths to an external theme table and rule set,
// keeping the YAML surface small since the tables themselves already have
// their own loaders.
type fileConfig struct {
	Theme     string `yaml:"theme"`
	ThemePath string `yaml:"theme_path"`
	RulesPath string `yaml:"rules_path"`
}

// LoadConfigFile reads path (the $VED_CONFIG file) and returns the options
// it implies, applied on top of DefaultConfig by the caller. A missing
// file is not an error: config resolution falls back to built-in defaults,
// per SPEC_FULL's "built-in defaults -> $VED_CONFIG -> CLI flags" order.
func LoadConfigFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}

	var opts []Option
	themes := theme.DefaultTable()
	if fc.ThemePath != "" {
		t, err := theme.LoadTable(fc.ThemePath)
		if err != nil {
			return nil, err
		}
		themes = t
	}
	opts = append(opts, WithThemes(themes))

	if fc.RulesPath != "" {
		rs, err := highlight.LoadRuleSet(fc.RulesPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithRules(rs))
	}

	if fc.Theme != "" {
		opts = append(opts, WithThemeIndex(themes.Resolve(fc.Theme)))
	}

	return opts, nil
}

// NewConfig applies opts over DefaultConfig, then clamps ThemeIndex to
// whatever theme table won out, mirroring handle_command's limit() call
// on every theme switch.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	share.ApplyOptions(&cfg, opts...)
	cfg.ThemeIndex = cfg.Themes.Clamp(cfg.ThemeIndex)
	return cfg
}
