package rules

import (
	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/token"
)

type bracesRule struct{}

// NewBraces returns the "braces" rule: controls the whitespace just
// inside a flow mapping's '{' and '}' (spec.md §4.4).
func NewBraces() Rule { return bracesRule{} }

func (bracesRule) ID() string               { return "braces" }
func (bracesRule) DefaultEnabled() bool     { return true }
func (bracesRule) DefaultLevel() diag.Level { return diag.Error }
func (bracesRule) Scope() Scope             { return PerToken }
func (bracesRule) Fixable() bool            { return true }

func (bracesRule) DefaultOptions() Options {
	return Options{
		"min-spaces-inside":       0,
		"max-spaces-inside":       0,
		"min-spaces-inside-empty": 0,
		"max-spaces-inside-empty": 0,
		"forbid":                  false,
	}
}

func (r bracesRule) Check(in Input, opts Options) []diag.Diagnostic {
	return checkFlowSpacing(
		in, opts, r.ID(), r.DefaultLevel(),
		token.FlowMappingStart, token.FlowMappingEnd, "brace", "flow mapping",
	)
}
