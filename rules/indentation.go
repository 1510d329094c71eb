package rules

import (
	"fmt"
	"strings"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/line"
	"github.com/macropower/yamlint/node"
	"github.com/macropower/yamlint/token"
)

type indentationRule struct{}

// NewIndentation returns the "indentation" rule: sibling mapping keys and
// sequence items must align to a consistent column, and the indent step
// between a collection and its children must match the configured width
// (spec.md §4.4).
func NewIndentation() Rule { return indentationRule{} }

func (indentationRule) ID() string               { return "indentation" }
func (indentationRule) DefaultEnabled() bool     { return true }
func (indentationRule) DefaultLevel() diag.Level { return diag.Error }
func (indentationRule) Scope() Scope             { return PerNode }
func (indentationRule) Fixable() bool            { return true }

func (indentationRule) DefaultOptions() Options {
	return Options{
		"spaces":           "consistent",
		"indent-sequences": true,
	}
}

func (r indentationRule) Check(in Input, opts Options) []diag.Diagnostic {
	spacesOpt := opts.String("spaces", "consistent")
	indentSeq := opts.Bool("indent-sequences", true)

	w := &indentWalker{
		ruleID:      r.ID(),
		level:       r.DefaultLevel(),
		lines:       in.Lines,
		fixedSpaces: 0,
		consistent:  spacesOpt == "consistent",
		indentSeqs:  indentSeq,
	}

	if n, ok := opts["spaces"].(int); ok {
		w.consistent = false
		w.fixedSpaces = n
	} else if !w.consistent {
		w.fixedSpaces = 2 //nolint:mnd // yamllint's own default
	}

	for i := range in.Docs {
		w.walk(&in.Docs[i], -1)
	}

	return w.diags
}

type indentWalker struct {
	ruleID      string
	level       diag.Level
	lines       line.Lines
	consistent  bool
	fixedSpaces int
	indentSeqs  bool
	observed    int // first observed step, when consistent
	diags       []diag.Diagnostic
}

// reindentFix returns a fix replacing the leading whitespace run of the
// given 1-indexed line with newIndent space bytes, leaving the rest of
// the line's content untouched.
func (w *indentWalker) reindentFix(lineNum, newIndent int) []diag.Edit {
	if newIndent < 0 {
		return nil
	}

	l, ok := w.lines.At(lineNum)
	if !ok {
		return nil
	}

	start := l.ByteRange.Start
	end := start + l.IndentWidth

	return []diag.Edit{{
		ByteRange:   diag.Range{Start: start, End: end},
		Replacement: []byte(strings.Repeat(" ", newIndent)),
	}}
}

func (w *indentWalker) step() int {
	if w.consistent {
		return w.observed
	}

	return w.fixedSpaces
}

func (w *indentWalker) checkStep(childCol, parentCol int, pos token.Position) {
	if parentCol < 0 {
		return
	}

	got := childCol - parentCol
	if got <= 0 {
		return
	}

	if w.consistent && w.observed == 0 {
		w.observed = got

		return
	}

	want := w.step()
	if want != 0 && got != want {
		w.diags = append(w.diags, diag.Diagnostic{
			Line:    pos.Line,
			Column:  pos.Column,
			Level:   w.level,
			RuleID:  w.ruleID,
			Message: fmt.Sprintf("wrong indentation: expected %d, found %d", want, got),
			Fix:     w.reindentFix(pos.Line, parentCol-1+want),
		})
	}
}

func (w *indentWalker) checkSiblingAlignment(cols []token.Position) {
	if len(cols) < 2 { //nolint:mnd // need at least two siblings to compare
		return
	}

	first := cols[0].Column
	for _, p := range cols[1:] {
		if p.Column != first {
			w.diags = append(w.diags, diag.Diagnostic{
				Line:    p.Line,
				Column:  p.Column,
				Level:   w.level,
				RuleID:  w.ruleID,
				Message: fmt.Sprintf("wrong indentation: expected %d, found %d", first, p.Column),
				Fix:     w.reindentFix(p.Line, first-1),
			})
		}
	}
}

func (w *indentWalker) walk(n *node.Node, parentCol int) {
	switch n.Kind {
	case node.MappingKind:
		cols := make([]token.Position, 0, len(n.Entries))
		for i := range n.Entries {
			cols = append(cols, n.Entries[i].Key.Span.Start)
		}

		w.checkSiblingAlignment(cols)

		if len(cols) > 0 {
			w.checkStep(cols[0].Column, parentCol, cols[0])
		}

		for i := range n.Entries {
			w.walk(&n.Entries[i].Value, cols[0].Column)
		}
	case node.SequenceKind:
		cols := make([]token.Position, 0, len(n.Items))
		for i := range n.Items {
			cols = append(cols, n.Items[i].Span.Start)
		}

		w.checkSiblingAlignment(cols)

		if len(cols) > 0 && w.indentSeqs {
			w.checkStep(cols[0].Column, parentCol, cols[0])
		}

		for i := range n.Items {
			w.walk(&n.Items[i], cols[0].Column)
		}
	default:
	}
}
