// Package render formats a lint run's diagnostics for terminal output,
// in both a plain, greppable form and a colored form styled with the
// lint core's CharmTone-based palette (spec.md §6).
package render

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	"github.com/macropower/yamlint/diag"
)

// Styles holds the per-severity styles used by [Colored].
type Styles struct {
	Path    lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	RuleID  lipgloss.Style
}

// DefaultStyles returns the lint core's default CharmTone palette.
func DefaultStyles() Styles {
	base := lipgloss.NewStyle()

	return Styles{
		Path:    base.Foreground(charmtone.Smoke).Bold(true),
		Info:    base.Foreground(charmtone.Malibu),
		Warning: base.Foreground(charmtone.Zest),
		Error:   base.Foreground(charmtone.Sriracha),
		RuleID:  base.Foreground(charmtone.Oyster),
	}
}

func (s Styles) forLevel(l diag.Level) lipgloss.Style {
	switch l {
	case diag.Error:
		return s.Error
	case diag.Warning:
		return s.Warning
	default:
		return s.Info
	}
}

// Parsable writes one "file:line:column: [level] message (rule-id)"
// line per diagnostic, the machine-friendly form from spec.md §6.
func Parsable(w io.Writer, path string, ds []diag.Diagnostic) {
	for _, d := range ds {
		fmt.Fprintf(w, "%s:%d:%d: [%s] %s (%s)\n", path, d.Line, d.Column, d.Level, d.Message, d.RuleID)
	}
}

// Colored writes a human-oriented, CharmTone-styled rendering of ds to
// w, grouped under a single path heading.
func Colored(w io.Writer, path string, ds []diag.Diagnostic, styles Styles) {
	if len(ds) == 0 {
		return
	}

	fmt.Fprintln(w, styles.Path.Render(path))

	for _, d := range ds {
		loc := fmt.Sprintf("  %d:%d", d.Line, d.Column)
		level := styles.forLevel(d.Level).Render(strings.ToUpper(d.Level.String()))
		rule := styles.RuleID.Render("(" + d.RuleID + ")")

		fmt.Fprintf(w, "%-12s %s  %s %s\n", loc, level, d.Message, rule)
	}
}

// Summary writes a one-line count of errors/warnings across a run.
func Summary(w io.Writer, errs, warns int) {
	fmt.Fprintf(w, "%d error(s), %d warning(s)\n", errs, warns)
}
