// Package config implements the three-layer configuration resolver:
// built-in defaults, an optional named profile ("default" or
// "relaxed"), and user overrides from a YAML config file (spec.md
// §4.7).
package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/internal/filepaths"
	"github.com/macropower/yamlint/rules"
)

// ErrUnknownRule is wrapped into a config-load error when a config
// file names a rule ID the catalog does not recognize.
var ErrUnknownRule = errors.New("unknown rule")

// ErrUnknownExtends is wrapped into a config-load error when a
// config's "extends" key names an unrecognized profile.
var ErrUnknownExtends = errors.New("unknown profile")

// RuleSettings is one rule's resolved configuration: either disabled,
// or enabled with a level and option overrides.
type RuleSettings struct {
	Enabled bool
	Level   diag.Level
	Options rules.Options
	// Ignore holds glob patterns exempting matching files from this
	// rule only, independent of the config's top-level Ignore.
	Ignore []string
}

// Config is the fully resolved configuration for one lint run.
type Config struct {
	Rules          map[string]RuleSettings
	YAMLFiles      []string // glob patterns selecting lintable files; empty means "all"
	Ignore         []string // glob patterns excluded from linting
	IgnoreFromFile []string // files whose gitignore-style patterns feed Ignore
}

// file is the on-disk shape of a yamlint config file.
type file struct {
	Extends        string         `yaml:"extends"`
	Rules          map[string]any `yaml:"rules"`
	YAMLFiles      []string       `yaml:"yaml-files"`
	Ignore         []string       `yaml:"ignore"`
	IgnoreFromFile []string       `yaml:"ignore-from-file"`
}

// Default returns the catalog's built-in defaults: every rule at its
// documented default-enabled state, level, and options.
func Default() Config {
	cfg := Config{
		Rules:     make(map[string]RuleSettings, 23), //nolint:mnd // catalog size
		YAMLFiles: []string{"*.yaml", "*.yml"},
	}

	for _, r := range rules.All() {
		cfg.Rules[r.ID()] = RuleSettings{
			Enabled: r.DefaultEnabled(),
			Level:   r.DefaultLevel(),
			Options: r.DefaultOptions(),
		}
	}

	return cfg
}

// Relaxed returns the "relaxed" built-in profile: a looser variant of
// [Default] suited to hand-edited, less uniform YAML (spec.md's
// supplemented "extends" profiles).
func Relaxed() Config {
	cfg := Default()

	cfg.Rules["line-length"] = RuleSettings{
		Enabled: true, Level: diag.Warning,
		Options: rules.Options{"max": 120, "allow-non-breakable-words": true}, //nolint:mnd
	}
	cfg.Rules["indentation"] = RuleSettings{
		Enabled: true, Level: diag.Warning,
		Options: rules.Options{"spaces": "consistent", "indent-sequences": "whatever"},
	}
	cfg.Rules["document-start"] = RuleSettings{Enabled: false, Level: diag.Error, Options: rules.Options{"present": true}}
	cfg.Rules["comments"] = disableSettings(cfg.Rules["comments"])
	cfg.Rules["comments-indentation"] = disableSettings(cfg.Rules["comments-indentation"])

	return cfg
}

func disableSettings(s RuleSettings) RuleSettings {
	s.Enabled = false

	return s
}

func profile(name string) (Config, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "relaxed":
		return Relaxed(), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownExtends, name)
	}
}

// Load reads a config file's bytes, merges it over its extended
// profile (or [Default] if none is named), and validates every rule
// ID and option key against the catalog.
func Load(b []byte) (Config, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg, err := profile(f.Extends)
	if err != nil {
		return Config{}, err
	}

	catalog := rules.ByID()

	for id, raw := range f.Rules {
		rule, ok := catalog[id]
		if !ok {
			return Config{}, fmt.Errorf("%w: %q", ErrUnknownRule, id)
		}

		settings, err := decodeRuleSettings(rule, raw)
		if err != nil {
			return Config{}, fmt.Errorf("rule %q: %w", id, err)
		}

		cfg.Rules[id] = settings
	}

	if f.YAMLFiles != nil {
		cfg.YAMLFiles = f.YAMLFiles
	}

	cfg.Ignore = append(cfg.Ignore, f.Ignore...)
	cfg.IgnoreFromFile = append(cfg.IgnoreFromFile, f.IgnoreFromFile...)

	for _, path := range cfg.IgnoreFromFile {
		patterns, err := readIgnoreFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("ignore-from-file %q: %w", path, err)
		}

		cfg.Ignore = append(cfg.Ignore, patterns...)
	}

	return cfg, nil
}

// decodeRuleSettings interprets one rule's raw config value: the
// bare string "disable"/"enable" toggles it without touching options;
// a mapping may set "level" and any of the rule's own option keys.
func decodeRuleSettings(rule rules.Rule, raw any) (RuleSettings, error) {
	base := RuleSettings{
		Enabled: rule.DefaultEnabled(),
		Level:   rule.DefaultLevel(),
		Options: mergeOptions(rule.DefaultOptions(), nil),
	}

	switch v := raw.(type) {
	case string:
		switch v {
		case "disable":
			base.Enabled = false
		case "enable":
			base.Enabled = true
		default:
			return RuleSettings{}, fmt.Errorf("invalid rule value %q", v)
		}

		return base, nil
	case bool:
		base.Enabled = v

		return base, nil
	case map[string]any:
		base.Enabled = true

		if lvl, ok := v["level"].(string); ok {
			level, ok := diag.ParseLevel(lvl)
			if !ok {
				return RuleSettings{}, fmt.Errorf("invalid level %q", lvl)
			}

			base.Level = level

			delete(v, "level")
		}

		if ig, ok := v["ignore"]; ok {
			patterns, ok := coerceOption(ig).([]string)
			if !ok {
				return RuleSettings{}, errors.New("ignore must be a sequence of strings")
			}

			base.Ignore = patterns

			delete(v, "ignore")
		}

		defaults := rule.DefaultOptions()
		for k := range v {
			if _, ok := defaults[k]; !ok {
				return RuleSettings{}, fmt.Errorf("unknown option %q", k)
			}
		}

		base.Options = mergeOptions(defaults, v)

		return base, nil
	default:
		return RuleSettings{}, errors.New("rule value must be a string or mapping")
	}
}

func mergeOptions(defaults rules.Options, overrides map[string]any) rules.Options {
	out := make(rules.Options, len(defaults)+len(overrides))
	for k, v := range defaults {
		out[k] = v
	}

	for k, v := range overrides {
		out[k] = coerceOption(v)
	}

	return out
}

// coerceOption normalizes YAML-decoded values into the concrete Go
// types [rules.Options]'s typed getters expect, e.g. a YAML sequence
// of strings into []string.
func coerceOption(v any) any {
	seq, ok := v.([]any)
	if !ok {
		return v
	}

	out := make([]string, 0, len(seq))

	for _, item := range seq {
		s, ok := item.(string)
		if !ok {
			return v
		}

		out = append(out, s)
	}

	return out
}

// IgnoresPath reports whether s's own per-rule ignore patterns exempt
// path from this rule, independent of the config's top-level ignore.
func (s RuleSettings) IgnoresPath(path string) bool {
	return len(s.Ignore) > 0 && filepaths.MatchAnyWithBase(path, s.Ignore)
}

// IsLintable reports whether path should be linted under cfg: it must
// match yaml-files and must not match ignore.
func (cfg Config) IsLintable(path string) bool {
	if len(cfg.Ignore) > 0 && filepaths.MatchAnyWithBase(path, cfg.Ignore) {
		return false
	}

	if len(cfg.YAMLFiles) == 0 {
		return true
	}

	return filepaths.MatchAnyWithBase(path, cfg.YAMLFiles)
}

// readIgnoreFile reads gitignore-style patterns from path, skipping
// blank lines and '#' comments, per spec.md's supplemented
// "ignore-from-file" feature.
func readIgnoreFile(path string) ([]string, error) {
	b, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own config file.
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var out []string

	scanner := bufio.NewScanner(bytes.NewReader(b))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		out = append(out, line)
	}

	return out, nil
}
