package rules

import (
	"fmt"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/node"
	"github.com/macropower/yamlint/token"
)

type truthyRule struct{}

// NewTruthy returns the "truthy" rule: flags YAML 1.1-style boolean
// words (Yes, No, On, Off, ...) that are not in the allowed set,
// grounded on their ambiguity across YAML versions (spec.md §4.4).
func NewTruthy() Rule { return truthyRule{} }

func (truthyRule) ID() string               { return "truthy" }
func (truthyRule) DefaultEnabled() bool     { return true }
func (truthyRule) DefaultLevel() diag.Level { return diag.Error }
func (truthyRule) Scope() Scope             { return PerNode }
func (truthyRule) Fixable() bool            { return false }

func (truthyRule) DefaultOptions() Options {
	return Options{
		"allowed-values": []string{"true", "false"},
		"check-keys":     true,
	}
}

//nolint:gochecknoglobals // Read-only lookup table.
var truthyWords = map[string]bool{
	"true": true, "True": true, "TRUE": true,
	"false": true, "False": true, "FALSE": true,
	"yes": true, "Yes": true, "YES": true,
	"no": true, "No": true, "NO": true,
	"on": true, "On": true, "ON": true,
	"off": true, "Off": true, "OFF": true,
	"y": true, "Y": true, "n": true, "N": true,
}

func (r truthyRule) Check(in Input, opts Options) []diag.Diagnostic {
	allowed := opts.StringSlice("allowed-values", []string{"true", "false"})
	checkKeys := opts.Bool("check-keys", true)

	allowedSet := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = true
	}

	var out []diag.Diagnostic

	flag := func(n node.Node) {
		if n.Kind != node.ScalarKind || n.Style != token.Plain {
			return
		}

		if !truthyWords[n.Value] || allowedSet[n.Value] {
			return
		}

		out = append(out, diag.Diagnostic{
			Line:    n.Span.Start.Line,
			Column:  n.Span.Start.Column,
			Level:   r.DefaultLevel(),
			RuleID:  r.ID(),
			Message: fmt.Sprintf("truthy value should be one of [%s]", joinComma(allowed)),
		})
	}

	var walk func(n *node.Node)

	walk = func(n *node.Node) {
		switch n.Kind {
		case node.MappingKind:
			for i := range n.Entries {
				if checkKeys {
					flag(n.Entries[i].Key)
				}

				flag(n.Entries[i].Value)
				walk(&n.Entries[i].Value)
			}
		case node.SequenceKind:
			for i := range n.Items {
				flag(n.Items[i])
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

func joinComma(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}

		out += s
	}

	return out
}
