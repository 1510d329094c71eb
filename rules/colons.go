package rules

import (
	"fmt"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/token"
)

type colonsRule struct{}

// NewColons returns the "colons" rule: controls the whitespace
// surrounding a mapping ':' (spec.md §4.4).
func NewColons() Rule { return colonsRule{} }

func (colonsRule) ID() string               { return "colons" }
func (colonsRule) DefaultEnabled() bool     { return true }
func (colonsRule) DefaultLevel() diag.Level { return diag.Error }
func (colonsRule) Scope() Scope             { return PerToken }
func (colonsRule) Fixable() bool            { return true }

func (colonsRule) DefaultOptions() Options {
	return Options{
		"max-spaces-before": 0,
		"max-spaces-after":  1,
	}
}

func (r colonsRule) Check(in Input, opts Options) []diag.Diagnostic {
	maxBefore := opts.Int("max-spaces-before", 0)
	maxAfter := opts.Int("max-spaces-after", 1)

	var out []diag.Diagnostic

	for _, tk := range in.Tokens {
		if tk.Kind != token.Value || tk.Start == tk.End {
			continue
		}

		before := spaceRunBefore(in.Source, tk.Start.ByteOffset)
		if before > maxBefore && !precededByNewline(in.Source, tk.Start.ByteOffset) {
			out = append(out, diag.Diagnostic{
				Line:    tk.Start.Line,
				Column:  tk.Start.Column - before,
				Level:   r.DefaultLevel(),
				RuleID:  r.ID(),
				Message: fmt.Sprintf("too many spaces before colon (%d > %d)", before, maxBefore),
				Fix:     spaceRunFix(tk.Start.ByteOffset-before, tk.Start.ByteOffset, maxBefore),
			})
		}

		if followedByNewlineOrEOF(in.Source, tk.End.ByteOffset) {
			continue
		}

		after := spaceRunAfter(in.Source, tk.End.ByteOffset)
		if after > maxAfter {
			out = append(out, diag.Diagnostic{
				Line:    tk.End.Line,
				Column:  tk.End.Column,
				Level:   r.DefaultLevel(),
				RuleID:  r.ID(),
				Message: fmt.Sprintf("too many spaces after colon (%d > %d)", after, maxAfter),
				Fix:     spaceRunFix(tk.End.ByteOffset, tk.End.ByteOffset+after, maxAfter),
			})
		}
	}

	return out
}
