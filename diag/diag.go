// Package diag defines the diagnostic model emitted by the rule catalog
// and consumed by the merger, fix applier, and renderers.
package diag

import "sort"

// Level is the severity of a [Diagnostic].
type Level int

// Severity levels.
const (
	Info Level = iota
	Warning
	Error
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// ParseLevel parses a config-file level string. Defaults to [Error] for
// an empty string, matching spec.md §6 ("level ... default error").
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "", "error":
		return Error, true
	case "warning":
		return Warning, true
	case "info":
		return Info, true
	default:
		return Error, false
	}
}

// Range is a half-open byte range [Start, End) into the source buffer.
type Range struct {
	Start, End int
}

// Edit is one textual substitution within a single file.
type Edit struct {
	ByteRange   Range
	Replacement []byte
}

// Diagnostic is one reported rule violation.
type Diagnostic struct {
	Line    int
	Column  int
	Level   Level
	RuleID  string
	Message string
	// Fix, when non-nil, is an ordered, non-overlapping list of edits
	// that removes this diagnostic when applied.
	Fix []Edit
}

// Fixable reports whether d carries a fix.
func (d Diagnostic) Fixable() bool {
	return len(d.Fix) > 0
}

// Less implements the total order from spec.md §3: (line, column,
// rule_id).
func Less(a, b Diagnostic) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}

	if a.Column != b.Column {
		return a.Column < b.Column
	}

	return a.RuleID < b.RuleID
}

// Sort orders diagnostics in place by (line, column, rule_id).
func Sort(ds []Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		return Less(ds[i], ds[j])
	})
}
