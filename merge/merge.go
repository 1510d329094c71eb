// Package merge combines the raw diagnostics produced by the rule
// catalog into the final reported list: directive-excluded
// diagnostics are dropped, duplicates collapse, and the remainder is
// sorted into the total order from spec.md §3 (spec.md §4.6).
package merge

import (
	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/directive"
)

// Merge filters raw against the parsed directive set and returns the
// deduplicated, sorted result.
func Merge(raw []diag.Diagnostic, dirs directive.Set) []diag.Diagnostic {
	seen := make(map[key]bool, len(raw))

	out := make([]diag.Diagnostic, 0, len(raw))

	for _, d := range raw {
		if dirs.Excludes(d.RuleID, d.Line) {
			continue
		}

		k := key{line: d.Line, column: d.Column, ruleID: d.RuleID, message: d.Message}
		if seen[k] {
			continue
		}

		seen[k] = true

		out = append(out, d)
	}

	diag.Sort(out)

	return out
}

type key struct {
	line, column int
	ruleID       string
	message      string
}
