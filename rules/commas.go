package rules

import (
	"fmt"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/token"
)

type commasRule struct{}

// NewCommas returns the "commas" rule: controls the whitespace
// surrounding a flow ',' separator (spec.md §4.4).
func NewCommas() Rule { return commasRule{} }

func (commasRule) ID() string               { return "commas" }
func (commasRule) DefaultEnabled() bool     { return true }
func (commasRule) DefaultLevel() diag.Level { return diag.Error }
func (commasRule) Scope() Scope             { return PerToken }
func (commasRule) Fixable() bool            { return true }

func (commasRule) DefaultOptions() Options {
	return Options{
		"max-spaces-before": 0,
		"min-spaces-after":  1,
		"max-spaces-after":  1,
	}
}

func (r commasRule) Check(in Input, opts Options) []diag.Diagnostic {
	maxBefore := opts.Int("max-spaces-before", 0)
	minAfter := opts.Int("min-spaces-after", 1)
	maxAfter := opts.Int("max-spaces-after", 1)

	var out []diag.Diagnostic

	for _, tk := range in.Tokens {
		if tk.Kind != token.FlowEntry {
			continue
		}

		before := spaceRunBefore(in.Source, tk.Start.ByteOffset)
		if before > maxBefore {
			out = append(out, diag.Diagnostic{
				Line:    tk.Start.Line,
				Column:  tk.Start.Column - before,
				Level:   r.DefaultLevel(),
				RuleID:  r.ID(),
				Message: fmt.Sprintf("too many spaces before comma (%d > %d)", before, maxBefore),
				Fix:     spaceRunFix(tk.Start.ByteOffset-before, tk.Start.ByteOffset, maxBefore),
			})
		}

		if followedByNewlineOrEOF(in.Source, tk.End.ByteOffset) {
			continue
		}

		after := spaceRunAfter(in.Source, tk.End.ByteOffset)

		switch {
		case after < minAfter:
			out = append(out, diag.Diagnostic{
				Line:    tk.End.Line,
				Column:  tk.End.Column,
				Level:   r.DefaultLevel(),
				RuleID:  r.ID(),
				Message: fmt.Sprintf("too few spaces after comma (%d < %d)", after, minAfter),
				Fix:     spaceRunFix(tk.End.ByteOffset, tk.End.ByteOffset+after, minAfter),
			})
		case after > maxAfter:
			out = append(out, diag.Diagnostic{
				Line:    tk.End.Line,
				Column:  tk.End.Column,
				Level:   r.DefaultLevel(),
				RuleID:  r.ID(),
				Message: fmt.Sprintf("too many spaces after comma (%d > %d)", after, maxAfter),
				Fix:     spaceRunFix(tk.End.ByteOffset, tk.End.ByteOffset+after, maxAfter),
			})
		}
	}

	return out
}
