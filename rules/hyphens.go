package rules

import (
	"fmt"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/token"
)

type hyphensRule struct{}

// NewHyphens returns the "hyphens" rule: controls the whitespace after
// a block sequence '-' entry marker (spec.md §4.4).
func NewHyphens() Rule { return hyphensRule{} }

func (hyphensRule) ID() string               { return "hyphens" }
func (hyphensRule) DefaultEnabled() bool     { return true }
func (hyphensRule) DefaultLevel() diag.Level { return diag.Error }
func (hyphensRule) Scope() Scope             { return PerToken }
func (hyphensRule) Fixable() bool            { return true }

func (hyphensRule) DefaultOptions() Options {
	return Options{"max-spaces-after": 1}
}

func (r hyphensRule) Check(in Input, opts Options) []diag.Diagnostic {
	maxAfter := opts.Int("max-spaces-after", 1)

	var out []diag.Diagnostic

	for _, tk := range in.Tokens {
		if tk.Kind != token.BlockEntry {
			continue
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
				Message: fmt.Sprintf("too many spaces after hyphen (%d > %d)", after, maxAfter),
				Fix:     spaceRunFix(tk.End.ByteOffset, tk.End.ByteOffset+after, maxAfter),
			})
		}
	}

	return out
}
