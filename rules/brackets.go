package rules

import (
	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/token"
)

type bracketsRule struct{}

// NewBrackets returns the "brackets" rule: controls the whitespace just
// inside a flow sequence's '[' and ']' (spec.md §4.4).
func NewBrackets() Rule { return bracketsRule{} }

func (bracketsRule) ID() string               { return "brackets" }
func (bracketsRule) DefaultEnabled() bool     { return true }
func (bracketsRule) DefaultLevel() diag.Level { return diag.Error }
func (bracketsRule) Scope() Scope             { return PerToken }
func (bracketsRule) Fixable() bool            { return true }

func (bracketsRule) DefaultOptions() Options {
	return Options{
		"min-spaces-inside":       0,
		"max-spaces-inside":       0,
		"min-spaces-inside-empty": 0,
		"max-spaces-inside-empty": 0,
		"forbid":                  false,
	}
}

func (r bracketsRule) Check(in Input, opts Options) []diag.Diagnostic {
	return checkFlowSpacing(
		in, opts, r.ID(), r.DefaultLevel(),
		token.FlowSequenceStart, token.FlowSequenceEnd, "bracket", "flow sequence",
	)
}
