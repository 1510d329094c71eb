package rules

import (
	"fmt"
	"strings"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/token"
)

type commentsRule struct{}

// NewComments returns the "comments" rule: requires a space after '#'
// and a minimum gap between inline content and the comment that follows
// it (spec.md §4.4).
func NewComments() Rule { return commentsRule{} }

func (commentsRule) ID() string               { return "comments" }
func (commentsRule) DefaultEnabled() bool     { return true }
func (commentsRule) DefaultLevel() diag.Level { return diag.Error }
func (commentsRule) Scope() Scope             { return PerToken }
func (commentsRule) Fixable() bool            { return true }

func (commentsRule) DefaultOptions() Options {
	return Options{
		"require-starting-space":  true,
		"ignore-shebangs":         true,
		"min-spaces-from-content": 2,
	}
}

func (r commentsRule) Check(in Input, opts Options) []diag.Diagnostic {
	requireSpace := opts.Bool("require-starting-space", true)
	ignoreShebangs := opts.Bool("ignore-shebangs", true)
	minGap := opts.Int("min-spaces-from-content", 2) //nolint:mnd

	var out []diag.Diagnostic

	for i, tk := range in.Tokens {
		if tk.Kind != token.Comment {
			continue
		}

		if ignoreShebangs && tk.Start.Line == 1 && strings.HasPrefix(tk.Raw, "!") {
			continue
		}

		if requireSpace && tk.Raw != "" && !strings.HasPrefix(tk.Raw, " ") && !strings.HasPrefix(tk.Raw, "#") {
			hashEnd := tk.Start.ByteOffset + 1

			out = append(out, diag.Diagnostic{
				Line:    tk.Start.Line,
				Column:  tk.Start.Column,
				Level:   r.DefaultLevel(),
				RuleID:  r.ID(),
				Message: "missing starting space in comment",
				Fix: []diag.Edit{{
					ByteRange:   diag.Range{Start: hashEnd, End: hashEnd},
					Replacement: []byte(" "),
				}},
			})
		}

		if inline, gap := inlineGap(in, i); inline && gap < minGap {
			out = append(out, diag.Diagnostic{
				Line:    tk.Start.Line,
				Column:  tk.Start.Column - gap,
				Level:   r.DefaultLevel(),
				RuleID:  r.ID(),
				Message: fmt.Sprintf("too few spaces before comment (%d < %d)", gap, minGap),
				Fix:     spaceRunFix(tk.Start.ByteOffset-gap, tk.Start.ByteOffset, minGap),
			})
		}
	}

	return out
}

// inlineGap reports whether the comment token at index i shares a line
// with preceding content, and if so the space gap before the '#'.
func inlineGap(in Input, i int) (bool, int) {
	tk := in.Tokens[i]

	for j := i - 1; j >= 0; j-- {
		prev := in.Tokens[j]
		if prev.Kind == token.Newline {
			return false, 0
		}

		if prev.End.Line != tk.Start.Line {
			return false, 0
		}

		if prev.Start == prev.End {
			continue
		}

		return true, tk.Start.ByteOffset - prev.End.ByteOffset
	}

	return false, 0
}
