package rules

import (
	"fmt"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/line"
)

type emptyLinesRule struct{}

// NewEmptyLines returns the "empty-lines" rule: bounds the number of
// consecutive blank lines, with separate limits at the start and end of
// the document (spec.md §4.4).
func NewEmptyLines() Rule { return emptyLinesRule{} }

func (emptyLinesRule) ID() string               { return "empty-lines" }
func (emptyLinesRule) DefaultEnabled() bool     { return true }
func (emptyLinesRule) DefaultLevel() diag.Level { return diag.Error }
func (emptyLinesRule) Scope() Scope             { return PerLine }
func (emptyLinesRule) Fixable() bool            { return true }

func (emptyLinesRule) DefaultOptions() Options {
	return Options{
		"max":             2, //nolint:mnd // yamllint's own default
		"max-start":       0,
		"max-end":         0,
	}
}

func (r emptyLinesRule) Check(in Input, opts Options) []diag.Diagnostic {
	maxMid := opts.Int("max", 2)       //nolint:mnd
	maxStart := opts.Int("max-start", 0)
	maxEnd := opts.Int("max-end", 0)

	var out []diag.Diagnostic

	lastNonEmpty := 0
	for i, l := range in.Lines {
		if !l.IsEmpty() {
			lastNonEmpty = i + 1
		}
	}

	run := 0
	for i, l := range in.Lines {
		if !l.IsEmpty() {
			run = 0

			continue
		}

		run++

		limit := maxMid
		atStart := lastEmptyRunIsLeading(in.Lines, i)
		atEnd := i+1 >= lastNonEmpty

		switch {
		case atStart:
			limit = maxStart
		case atEnd:
			limit = maxEnd
		}

		if run > limit {
			out = append(out, diag.Diagnostic{
				Line:    l.Index,
				Column:  1,
				Level:   r.DefaultLevel(),
				RuleID:  r.ID(),
				Message: fmt.Sprintf("too many blank lines (%d > %d)", run, limit),
				Fix: []diag.Edit{{
					ByteRange:   diag.Range{Start: l.ByteRange.Start, End: l.ByteRange.End + len(l.LineEnd.Bytes())},
					Replacement: nil,
				}},
			})
		}
	}

	return out
}

// lastEmptyRunIsLeading reports whether every line up to and including
// index i is empty, i.e. this run starts at the top of the document.
func lastEmptyRunIsLeading(lines line.Lines, i int) bool {
	for j := 0; j <= i; j++ {
		if !lines[j].IsEmpty() {
			return false
		}
	}

	return true
}
