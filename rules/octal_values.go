package rules

import (
	"strings"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/node"
	"github.com/macropower/yamlint/token"
)

type octalValuesRule struct{}

// NewOctalValues returns the "octal-values" rule: flags scalars that
// look like octal numbers, which YAML 1.1 and YAML 1.2 disagree about
// (spec.md §4.4).
func NewOctalValues() Rule { return octalValuesRule{} }

func (octalValuesRule) ID() string               { return "octal-values" }
func (octalValuesRule) DefaultEnabled() bool     { return false }
func (octalValuesRule) DefaultLevel() diag.Level { return diag.Error }
func (octalValuesRule) Scope() Scope             { return PerNode }
func (octalValuesRule) Fixable() bool            { return false }

func (octalValuesRule) DefaultOptions() Options {
	return Options{
		"forbid-implicit-octal": true,
		"forbid-explicit-octal": false,
	}
}

func (r octalValuesRule) Check(in Input, opts Options) []diag.Diagnostic {
	forbidImplicit := opts.Bool("forbid-implicit-octal", true)
	forbidExplicit := opts.Bool("forbid-explicit-octal", false)

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
			case forbidExplicit && (strings.HasPrefix(v, "0o") || strings.HasPrefix(v, "0O")):
				out = append(out, diag.Diagnostic{
					Line: n.Span.Start.Line, Column: n.Span.Start.Column,
					Level: r.DefaultLevel(), RuleID: r.ID(),
					Message: "forbidden explicit octal value " + v,
				})
			case forbidImplicit && isImplicitOctal(v):
				out = append(out, diag.Diagnostic{
					Line: n.Span.Start.Line, Column: n.Span.Start.Column,
					Level: r.DefaultLevel(), RuleID: r.ID(),
					Message: "forbidden implicit octal value " + v,
				})
			}
		default:
		}
	}

	for i := range in.Docs {
		walk(&in.Docs[i])
	}

	return out
}

// isImplicitOctal reports whether v is a bare "0NNN"-style literal: a
// leading zero followed only by digits 0-7, at least two digits long.
func isImplicitOctal(v string) bool {
	s := v

	neg := strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+")
	if neg {
		s = s[1:]
	}

	if len(s) < 2 || s[0] != '0' { //nolint:mnd // minimum "0N" width
		return false
	}

	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}

	return true
}
