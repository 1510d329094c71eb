package rules

import (
	"github.com/macropower/yamlint/diag"
)

type trailingSpacesRule struct{}

// NewTrailingSpaces returns the "trailing-spaces" rule: flags any
// whitespace immediately preceding a line ending (spec.md §4.4).
func NewTrailingSpaces() Rule { return trailingSpacesRule{} }

func (trailingSpacesRule) ID() string               { return "trailing-spaces" }
func (trailingSpacesRule) DefaultEnabled() bool     { return true }
func (trailingSpacesRule) DefaultLevel() diag.Level { return diag.Error }
func (trailingSpacesRule) Scope() Scope             { return PerLine }
func (trailingSpacesRule) Fixable() bool            { return true }
func (trailingSpacesRule) DefaultOptions() Options  { return Options{} }

func (r trailingSpacesRule) Check(in Input, _ Options) []diag.Diagnostic {
	var out []diag.Diagnostic

	for _, l := range in.Lines {
		if !l.HasTrailingWS() {
			continue
		}

		out = append(out, diag.Diagnostic{
			Line:    l.Index,
			Column:  l.TrailingWS.Start - l.ByteRange.Start + 1,
			Level:   r.DefaultLevel(),
			RuleID:  r.ID(),
			Message: "trailing spaces",
			Fix: []diag.Edit{{
				ByteRange:   diag.Range{Start: l.TrailingWS.Start, End: l.TrailingWS.End},
				Replacement: nil,
			}},
		})
	}

	return out
}
