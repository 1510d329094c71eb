package rules

import (
	"fmt"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/node"
)

type keyDuplicatesRule struct{}

// NewKeyDuplicates returns the "key-duplicates" rule: flags a mapping
// key whose canonical form repeats an earlier sibling key (spec.md
// §4.4).
func NewKeyDuplicates() Rule { return keyDuplicatesRule{} }

func (keyDuplicatesRule) ID() string               { return "key-duplicates" }
func (keyDuplicatesRule) DefaultEnabled() bool     { return true }
func (keyDuplicatesRule) DefaultLevel() diag.Level { return diag.Error }
func (keyDuplicatesRule) Scope() Scope             { return PerNode }
func (keyDuplicatesRule) Fixable() bool            { return false }
func (keyDuplicatesRule) DefaultOptions() Options  { return Options{} }

func (r keyDuplicatesRule) Check(in Input, _ Options) []diag.Diagnostic {
	var out []diag.Diagnostic

	var walk func(n *node.Node)

	walk = func(n *node.Node) {
		switch n.Kind {
		case node.MappingKind:
			seen := make(map[string]bool, len(n.Entries))

			for i := range n.Entries {
				e := &n.Entries[i]
				key := e.Key.CanonicalKey()

				if seen[key] {
					out = append(out, diag.Diagnostic{
						Line:    e.Key.Span.Start.Line,
						Column:  e.Key.Span.Start.Column,
						Level:   r.DefaultLevel(),
						RuleID:  r.ID(),
						Message: fmt.Sprintf("duplication of key %q in mapping", key),
					})
				}

				seen[key] = true

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
