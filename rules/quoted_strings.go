package rules

import (
	"regexp"
	"strings"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/node"
	"github.com/macropower/yamlint/token"
)

type quotedStringsRule struct{}

// NewQuotedStrings returns the "quoted-strings" rule: controls whether
// scalar strings must, may, or must not be quoted (spec.md §4.4).
func NewQuotedStrings() Rule { return quotedStringsRule{} }

func (quotedStringsRule) ID() string               { return "quoted-strings" }
func (quotedStringsRule) DefaultEnabled() bool     { return false }
func (quotedStringsRule) DefaultLevel() diag.Level { return diag.Error }
func (quotedStringsRule) Scope() Scope             { return PerNode }
func (quotedStringsRule) Fixable() bool            { return false }

func (quotedStringsRule) DefaultOptions() Options {
	return Options{
		"quote-type":          "any",
		"required":            "true",
		"extra-required":      []string{},
		"extra-allowed":       []string{},
		"check-keys":          false,
		"allow-quoted-quotes": false,
	}
}

func (r quotedStringsRule) Check(in Input, opts Options) []diag.Diagnostic {
	quoteType := opts.String("quote-type", "any")
	required := opts.String("required", "true")
	checkKeys := opts.Bool("check-keys", false)
	allowQuotedQuotes := opts.Bool("allow-quoted-quotes", false)

	extraRequired := compileAll(opts.StringSlice("extra-required", nil))
	extraAllowed := compileAll(opts.StringSlice("extra-allowed", nil))

	var out []diag.Diagnostic

	check := func(n node.Node) {
		if n.Kind != node.ScalarKind {
			return
		}

		quoted := n.Style == token.SingleQuoted || n.Style == token.DoubleQuoted

		wrongType := quoted && ((quoteType == "single" && n.Style != token.SingleQuoted) ||
			(quoteType == "double" && n.Style != token.DoubleQuoted))
		if wrongType && !(allowQuotedQuotes && containsConfiguredQuote(quoteType, n.Value)) {
			out = append(out, mk(&n, r.ID(), r.DefaultLevel(), "string value is not quoted with "+quoteType+" quotes"))

			return
		}

		mustQuote := matchesAny(n.Value, extraRequired)
		mayQuote := matchesAny(n.Value, extraAllowed)

		switch {
		case !quoted && mustQuote:
			out = append(out, mk(&n, r.ID(), r.DefaultLevel(), "string value is not quoted"))
		case !quoted && required == "true":
			out = append(out, mk(&n, r.ID(), r.DefaultLevel(), "string value is not quoted"))
		case quoted && required == "false" && !mustQuote:
			out = append(out, mk(&n, r.ID(), r.DefaultLevel(), "string value is redundantly quoted"))
		case quoted && required == "only-when-needed" && !mustQuote && !mayQuote && !needsQuoting(n.Value):
			out = append(out, mk(&n, r.ID(), r.DefaultLevel(), "string value is redundantly quoted"))
		}
	}

	var walk func(n *node.Node)

	walk = func(n *node.Node) {
		switch n.Kind {
		case node.MappingKind:
			for i := range n.Entries {
				if checkKeys {
					check(n.Entries[i].Key)
				}

				check(n.Entries[i].Value)
				walk(&n.Entries[i].Value)
			}
		case node.SequenceKind:
			for i := range n.Items {
				check(n.Items[i])
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

// containsConfiguredQuote reports whether value contains the quote
// character that quoteType would otherwise forbid — the condition
// under which allow-quoted-quotes permits the "wrong" quote kind,
// since re-quoting would require escaping.
func containsConfiguredQuote(quoteType, value string) bool {
	switch quoteType {
	case "single":
		return strings.Contains(value, "'")
	case "double":
		return strings.Contains(value, `"`)
	default:
		return false
	}
}

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}

		out = append(out, re)
	}

	return out
}

func matchesAny(s string, res []*regexp.Regexp) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}

	return false
}

// needsQuoting reports whether v would be interpreted as something
// other than a plain string scalar if left unquoted, e.g. a boolean,
// null, or numeric literal.
func needsQuoting(v string) bool {
	if v == "" {
		return true
	}

	if truthyWords[v] || v == "null" || v == "Null" || v == "NULL" || v == "~" {
		return true
	}

	for _, c := range v {
		if c >= '0' && c <= '9' {
			continue
		}

		switch c {
		case '.', '-', '+', 'e', 'E':
			continue
		}

		return false
	}

	return true
}
