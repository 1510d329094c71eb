package rules

import (
	"fmt"
	"strings"

	"github.com/macropower/yamlint/diag"
)

type lineLengthRule struct{}

// NewLineLength returns the "line-length" rule: flags physical lines
// longer than the configured maximum (spec.md §4.4).
func NewLineLength() Rule { return lineLengthRule{} }

func (lineLengthRule) ID() string               { return "line-length" }
func (lineLengthRule) DefaultEnabled() bool     { return true }
func (lineLengthRule) DefaultLevel() diag.Level { return diag.Error }
func (lineLengthRule) Scope() Scope             { return PerLine }
func (lineLengthRule) Fixable() bool            { return false }

func (lineLengthRule) DefaultOptions() Options {
	return Options{
		"max":                                 80, //nolint:mnd // yamllint's own default
		"allow-non-breakable-words":           true,
		"allow-non-breakable-inline-mappings": false,
	}
}

func (r lineLengthRule) Check(in Input, opts Options) []diag.Diagnostic {
	maxLen := opts.Int("max", 80) //nolint:mnd
	allowWords := opts.Bool("allow-non-breakable-words", true)
	allowInlineMappings := opts.Bool("allow-non-breakable-inline-mappings", false)

	var out []diag.Diagnostic

	for _, l := range in.Lines {
		n := l.RuneLen()
		if n <= maxLen {
			continue
		}

		if allowWords && isSingleNonBreakableWord(l.Raw) {
			continue
		}

		if allowInlineMappings && isNonBreakableInlineMapping(l.Raw) {
			continue
		}

		out = append(out, diag.Diagnostic{
			Line:    l.Index,
			Column:  maxLen + 1,
			Level:   r.DefaultLevel(),
			RuleID:  r.ID(),
			Message: fmt.Sprintf("line too long (%d > %d characters)", n, maxLen),
		})
	}

	return out
}

// isSingleNonBreakableWord reports whether raw, once its leading
// indentation and an optional leading "- "/"# " marker are stripped,
// contains no whitespace at all — a line that cannot be shortened by
// wrapping, e.g. a long URL in a comment.
func isSingleNonBreakableWord(raw string) bool {
	s := strings.TrimLeft(raw, " \t")
	s = strings.TrimPrefix(s, "# ")
	s = strings.TrimPrefix(s, "- ")

	return s != "" && !strings.ContainsAny(s, " \t")
}

// isNonBreakableInlineMapping reports whether raw is a single "key:
// value" mapping entry whose value is itself a single non-breakable
// word, e.g. "key: https://example.com/a-very-long-url" — a line that
// cannot be shortened by wrapping the value.
func isNonBreakableInlineMapping(raw string) bool {
	s := strings.TrimLeft(raw, " \t")

	idx := strings.Index(s, ": ")
	if idx <= 0 {
		return false
	}

	key := s[:idx]
	if strings.ContainsAny(key, " \t") {
		return false
	}

	value := s[idx+2:]

	return value != "" && !strings.ContainsAny(value, " \t")
}
