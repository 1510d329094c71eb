package rules

import (
	"regexp"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/node"
	"github.com/macropower/yamlint/token"
)

type floatValuesRule struct{}

// NewFloatValues returns the "float-values" rule: flags floating-point
// scalar forms that are easy to misread or that differ in meaning
// across YAML versions (spec.md §4.4).
func NewFloatValues() Rule { return floatValuesRule{} }

func (floatValuesRule) ID() string               { return "float-values" }
func (floatValuesRule) DefaultEnabled() bool     { return false }
func (floatValuesRule) DefaultLevel() diag.Level { return diag.Error }
func (floatValuesRule) Scope() Scope             { return PerNode }
func (floatValuesRule) Fixable() bool            { return false }

func (floatValuesRule) DefaultOptions() Options {
	return Options{
		"require-numeral-before-decimal": false,
		"forbid-scientific-notation":     false,
		"forbid-nan":                     false,
		"forbid-inf":                     false,
	}
}

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	reScientific           = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)[eE][-+]?[0-9]+$`)
	reMissingLeadingDigit  = regexp.MustCompile(`^[-+]?\.[0-9]+$`)
	reNaN                  = regexp.MustCompile(`^\.nan$`)
	reInf                  = regexp.MustCompile(`^[-+]?\.inf$`)
)

func (r floatValuesRule) Check(in Input, opts Options) []diag.Diagnostic {
	requireLeading := opts.Bool("require-numeral-before-decimal", false)
	forbidSci := opts.Bool("forbid-scientific-notation", false)
	forbidNaN := opts.Bool("forbid-nan", false)
	forbidInf := opts.Bool("forbid-inf", false)

	var out []diag.Diagnostic

	var walk func(n *node.Node)

	walk = func(n *node.Node) {
		switch n.Kind {
		case node.MappingKind:
			for i := range n.Entries {
				walk(&n.Entries[i].Value)
			}
		case node.SequenceKind:
			for i := range n.Items {
				walk(&n.Items[i])
			}
		case node.ScalarKind:
			if n.Style != token.Plain {
				return
			}

			v := n.Value

			switch {
			case forbidNaN && reNaN.MatchString(v):
				out = append(out, mk(n, r.ID(), r.DefaultLevel(), "forbidden not a number value \"" + v + "\""))
			case forbidInf && reInf.MatchString(v):
				out = append(out, mk(n, r.ID(), r.DefaultLevel(), "forbidden infinite value \""+v+"\""))
			case forbidSci && reScientific.MatchString(v):
				out = append(out, mk(n, r.ID(), r.DefaultLevel(), "forbidden scientific notation \""+v+"\""))
			case requireLeading && reMissingLeadingDigit.MatchString(v):
				out = append(out, mk(n, r.ID(), r.DefaultLevel(), "forbidden decimal missing 0 prefix \""+v+"\""))
			}
		default:
		}
	}

	for i := range in.Docs {
		walk(&in.Docs[i])
	}

	return out
}

func mk(n *node.Node, ruleID string, level diag.Level, msg string) diag.Diagnostic {
	return diag.Diagnostic{
		Line:    n.Span.Start.Line,
		Column:  n.Span.Start.Column,
		Level:   level,
		RuleID:  ruleID,
		Message: msg,
	}
}
