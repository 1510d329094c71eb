package rules

import (
	"fmt"
	"strings"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/node"
)

type keyOrderingRule struct{}

// NewKeyOrdering returns the "key-ordering" rule: requires sibling
// mapping keys to appear in case-sensitive ASCII order (spec.md §4.4).
func NewKeyOrdering() Rule { return keyOrderingRule{} }

func (keyOrderingRule) ID() string               { return "key-ordering" }
func (keyOrderingRule) DefaultEnabled() bool     { return false }
func (keyOrderingRule) DefaultLevel() diag.Level { return diag.Error }
func (keyOrderingRule) Scope() Scope             { return PerNode }
func (keyOrderingRule) Fixable() bool            { return false }
func (keyOrderingRule) DefaultOptions() Options  { return Options{} }

func (r keyOrderingRule) Check(in Input, _ Options) []diag.Diagnostic {
	var out []diag.Diagnostic

	var walk func(n *node.Node)

	walk = func(n *node.Node) {
		switch n.Kind {
		case node.MappingKind:
			prev := ""

			for i := range n.Entries {
				e := &n.Entries[i]
				key := e.Key.CanonicalKey()

				if i > 0 && strings.Compare(key, prev) < 0 {
					out = append(out, diag.Diagnostic{
						Line:    e.Key.Span.Start.Line,
						Column:  e.Key.Span.Start.Column,
						Level:   r.DefaultLevel(),
						RuleID:  r.ID(),
						Message: fmt.Sprintf("wrong ordering of key %q in mapping", key),
					})
				}

				prev = key

				walk(&e.Value)
			}
		case node.SequenceKind:
			for i := range n.Items {
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
