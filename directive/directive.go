// Package directive parses the in-source comment directives that let
// a YAML file silence specific rules for itself (spec.md §4.5):
//
//	# yamllint disable
//	# yamllint enable
//	# yamllint disable-line
//	# yamllint disable-line rule:colons rule:indentation
//	# yamllint disable rule:colons
//
// Directives are themselves comments, so they are parsed directly from
// the token stream rather than from the Node tree.
package directive

import (
	"regexp"
	"strings"

	"github.com/macropower/yamlint/token"
)

// directiveRE matches a yamllint directive comment body (the text
// following '#', not including the '#' itself).
var directiveRE = regexp.MustCompile(`^\s*yamllint\s+(disable|enable|disable-file|disable-line)\b(.*)$`)

// ruleRE extracts one "rule:<id>" reference from a directive's tail.
var ruleRE = regexp.MustCompile(`rule:(\S+)`)

// Action identifies which directive verb was parsed.
type Action int

// Directive actions.
const (
	Disable Action = iota
	Enable
	DisableFile
	DisableLine
)

// Directive is one parsed `# yamllint ...` comment.
type Directive struct {
	Action Action
	Line   int
	// Rules is the set of rule IDs named by `rule:<id>` references, or
	// nil/empty for "all rules".
	Rules []string
}

// AppliesTo reports whether d names ruleID, or applies to every rule
// when it names none.
func (d Directive) AppliesTo(ruleID string) bool {
	if len(d.Rules) == 0 {
		return true
	}

	for _, r := range d.Rules {
		if r == ruleID {
			return true
		}
	}

	return false
}

// Set is the parsed directive table for one file: a disable-file flag,
// a list of line-scoped disables, and an ordered list of
// disable/enable toggles with the line each takes effect from.
type Set struct {
	FileDisabled []string // rule IDs disabled file-wide, nil/empty for "all"
	FileWide     bool     // true if at least one disable-file directive matched "all"
	LineOnly     map[int][]Directive
	Toggles      []Directive // in source order, Disable/Enable only
}

// Parse scans tokens for comment tokens carrying yamllint directives.
func Parse(tokens token.Tokens) Set {
	var s Set

	s.LineOnly = make(map[int][]Directive)

	for _, tk := range tokens {
		if tk.Kind != token.Comment {
			continue
		}

		d, ok := parseOne(tk)
		if !ok {
			continue
		}

		switch d.Action {
		case DisableFile:
			if len(d.Rules) == 0 {
				s.FileWide = true
			} else {
				s.FileDisabled = append(s.FileDisabled, d.Rules...)
			}
		case DisableLine:
			s.LineOnly[d.Line] = append(s.LineOnly[d.Line], d)
		case Disable, Enable:
			s.Toggles = append(s.Toggles, d)
		}
	}

	return s
}

func parseOne(tk token.Token) (Directive, bool) {
	m := directiveRE.FindStringSubmatch(tk.Raw)
	if m == nil {
		return Directive{}, false
	}

	d := Directive{Line: tk.Start.Line}

	switch m[1] {
	case "disable":
		d.Action = Disable
	case "enable":
		d.Action = Enable
	case "disable-file":
		d.Action = DisableFile
	case "disable-line":
		d.Action = DisableLine
	}

	for _, rm := range ruleRE.FindAllStringSubmatch(m[2], -1) {
		d.Rules = append(d.Rules, strings.TrimSuffix(rm[1], ","))
	}

	return d, true
}

// Excludes reports whether the directive set silences ruleID at the
// given line, per spec.md §4.5's precedence: disable-file wins
// unconditionally, then disable-line for that exact line, then the
// nearest preceding disable/enable toggle.
func (s Set) Excludes(ruleID string, line int) bool {
	if s.FileWide {
		return true
	}

	for _, r := range s.FileDisabled {
		if r == ruleID {
			return true
		}
	}

	for _, d := range s.LineOnly[line] {
		if d.AppliesTo(ruleID) {
			return true
		}
	}

	disabled := false

	for _, d := range s.Toggles {
		if d.Line > line {
			break
		}

		if !d.AppliesTo(ruleID) {
			continue
		}

		disabled = d.Action == Disable
	}

	return disabled
}
