package rules

import (
	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/node"
)

type emptyValuesRule struct{}

// NewEmptyValues returns the "empty-values" rule: flags a mapping value
// or sequence item left blank (spec.md §4.4). Block and flow collections
// are not told apart: either forbid-in-block-mappings or
// forbid-in-flow-mappings being true flags empty values in every mapping,
// and forbid-in-block-sequences covers flow sequences as well.
func NewEmptyValues() Rule { return emptyValuesRule{} }

func (emptyValuesRule) ID() string               { return "empty-values" }
func (emptyValuesRule) DefaultEnabled() bool     { return false }
func (emptyValuesRule) DefaultLevel() diag.Level { return diag.Error }
func (emptyValuesRule) Scope() Scope             { return PerNode }
func (emptyValuesRule) Fixable() bool            { return false }

func (emptyValuesRule) DefaultOptions() Options {
	return Options{
		"forbid-in-block-mappings":  true,
		"forbid-in-flow-mappings":   true,
		"forbid-in-block-sequences": true,
	}
}

func (r emptyValuesRule) Check(in Input, opts Options) []diag.Diagnostic {
	forbidBlock := opts.Bool("forbid-in-block-mappings", true)
	forbidFlow := opts.Bool("forbid-in-flow-mappings", true)
	forbidSeq := opts.Bool("forbid-in-block-sequences", true)

	var out []diag.Diagnostic

	var walk func(n *node.Node)

	walk = func(n *node.Node) {
		switch n.Kind {
		case node.MappingKind:
			for i := range n.Entries {
				v := n.Entries[i].Value
				if (forbidBlock || forbidFlow) && v.IsEmptyScalar() {
					out = append(out, mk(&v, r.ID(), r.DefaultLevel(), "empty value in mapping"))
				}

				walk(&n.Entries[i].Value)
			}
		case node.SequenceKind:
			for i := range n.Items {
				item := n.Items[i]
				if forbidSeq && item.IsEmptyScalar() {
					out = append(out, mk(&item, r.ID(), r.DefaultLevel(), "empty value in sequence"))
				}

				walk(&n.Items[i])
			}
		default:
		}
	}

	for i := range in.Docs {
		walk(&in.Docs[i])
	}

	return out
}
