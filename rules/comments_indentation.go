package rules

import (
	"fmt"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/line"
	"github.com/macropower/yamlint/token"
)

type commentsIndentationRule struct{}

// NewCommentsIndentation returns the "comments-indentation" rule: a
// standalone comment line must align with the indentation of the code
// around it (spec.md §4.4).
func NewCommentsIndentation() Rule { return commentsIndentationRule{} }

func (commentsIndentationRule) ID() string               { return "comments-indentation" }
func (commentsIndentationRule) DefaultEnabled() bool     { return true }
func (commentsIndentationRule) DefaultLevel() diag.Level { return diag.Error }
func (commentsIndentationRule) Scope() Scope             { return PerLine }
func (commentsIndentationRule) Fixable() bool            { return false }
func (commentsIndentationRule) DefaultOptions() Options  { return Options{} }

func (r commentsIndentationRule) Check(in Input, _ Options) []diag.Diagnostic {
	standalone := make(map[int]bool)

	for i, tk := range in.Tokens {
		if tk.Kind != token.Comment {
			continue
		}

		if inline, _ := inlineGap(in, i); inline {
			continue
		}

		standalone[tk.Start.Line] = true
	}

	var out []diag.Diagnostic

	for n, l := range in.Lines {
		if !standalone[l.Index] {
			continue
		}

		next := nextCodeIndent(in.Lines, n)
		prev := prevCodeIndent(in.Lines, n)

		if next < 0 && prev < 0 {
			continue
		}

		if l.IndentWidth == next || l.IndentWidth == prev {
			continue
		}

		out = append(out, diag.Diagnostic{
			Line:    l.Index,
			Column:  l.IndentWidth + 1,
			Level:   r.DefaultLevel(),
			RuleID:  r.ID(),
			Message: fmt.Sprintf("comment not indented like content (expected %d)", maxNonNeg(prev, next)),
		})
	}

	return out
}

func nextCodeIndent(lines line.Lines, from int) int {
	for i := from + 1; i < len(lines); i++ {
		if lines[i].IsEmpty() {
			continue
		}

		return lines[i].IndentWidth
	}

	return -1
}

func prevCodeIndent(lines line.Lines, from int) int {
	for i := from - 1; i >= 0; i-- {
		if lines[i].IsEmpty() {
			continue
		}

		return lines[i].IndentWidth
	}

	return -1
}

func maxNonNeg(a, b int) int {
	if a < 0 {
		return b
	}

	if b < 0 {
		return a
	}

	if a > b {
		return a
	}

	return b
}
