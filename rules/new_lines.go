package rules

import (
	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/line"
)

type newLinesRule struct{}

// NewNewLines returns the "new-lines" rule: enforces a single,
// consistent line-ending style throughout the file (spec.md §4.4).
func NewNewLines() Rule { return newLinesRule{} }

func (newLinesRule) ID() string               { return "new-lines" }
func (newLinesRule) DefaultEnabled() bool     { return true }
func (newLinesRule) DefaultLevel() diag.Level { return diag.Error }
func (newLinesRule) Scope() Scope             { return PerLine }
func (newLinesRule) Fixable() bool            { return true }
func (newLinesRule) DefaultOptions() Options  { return Options{"type": "unix"} }

func (r newLinesRule) Check(in Input, opts Options) []diag.Diagnostic {
	want := opts.String("type", "unix")

	var wantKind line.EndKind

	switch want {
	case "dos":
		wantKind = line.CRLF
	default:
		wantKind = line.LF
	}

	var out []diag.Diagnostic

	for _, l := range in.Lines {
		if l.LineEnd == line.None || l.LineEnd == wantKind {
			continue
		}

		out = append(out, diag.Diagnostic{
			Line:    l.Index,
			Column:  l.ByteRange.Len() + 1,
			Level:   r.DefaultLevel(),
			RuleID:  r.ID(),
			Message: "wrong new line character: expected " + wantKind.String(),
			Fix: []diag.Edit{{
				ByteRange:   diag.Range{Start: l.ByteRange.End, End: l.ByteRange.End + len(l.LineEnd.Bytes())},
				Replacement: wantKind.Bytes(),
			}},
		})
	}

	return out
}
