package rules

import (
	"github.com/macropower/yamlint/diag"
)

type newLineAtEndOfFileRule struct{}

// NewNewLineAtEndOfFile returns the "new-line-at-end-of-file" rule:
// requires the source buffer to end with a line-end marker (spec.md
// §4.4).
func NewNewLineAtEndOfFile() Rule { return newLineAtEndOfFileRule{} }

func (newLineAtEndOfFileRule) ID() string               { return "new-line-at-end-of-file" }
func (newLineAtEndOfFileRule) DefaultEnabled() bool     { return true }
func (newLineAtEndOfFileRule) DefaultLevel() diag.Level { return diag.Error }
func (newLineAtEndOfFileRule) Scope() Scope             { return WholeDocument }
func (newLineAtEndOfFileRule) Fixable() bool            { return true }
func (newLineAtEndOfFileRule) DefaultOptions() Options  { return Options{} }

func (r newLineAtEndOfFileRule) Check(in Input, _ Options) []diag.Diagnostic {
	if len(in.Lines) == 0 {
		return []diag.Diagnostic{{
			Line:    1,
			Column:  1,
			Level:   r.DefaultLevel(),
			RuleID:  r.ID(),
			Message: "no new line character at the end of file",
			Fix: []diag.Edit{{
				ByteRange:   diag.Range{Start: 0, End: 0},
				Replacement: []byte("\n"),
			}},
		}}
	}

	last := in.Lines[len(in.Lines)-1]
	if last.LineEnd != 0 {
		return nil
	}

	return []diag.Diagnostic{{
		Line:    last.Index,
		Column:  last.ByteRange.Len() + 1,
		Level:   r.DefaultLevel(),
		RuleID:  r.ID(),
		Message: "no new line character at the end of file",
		Fix: []diag.Edit{{
			ByteRange:   diag.Range{Start: last.ByteRange.End, End: last.ByteRange.End},
			Replacement: []byte("\n"),
		}},
	}}
}
