// Package rules implements the catalog of independent rule checkers
// described in spec.md §4.4.
//
// Every rule shares one contract ([Rule]) but reads a different subset
// of {token stream, node tree, line model, context tracker} — modeled
// as a flat set of small, stateless policy objects rather than a deep
// type hierarchy, per spec.md §9 "Rule polymorphism".
package rules

import (
	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/line"
	"github.com/macropower/yamlint/node"
	"github.com/macropower/yamlint/rulectx"
	"github.com/macropower/yamlint/token"
)

// Scope classifies what a rule primarily reads, per spec.md §4.4.
type Scope int

// Rule scopes.
const (
	PerLine Scope = iota
	PerToken
	PerNode
	WholeDocument
)

// Input bundles everything a rule may read. Rules never mutate it and
// never read each other's diagnostics — each rule's check is a pure
// function of Input and its own resolved Options.
type Input struct {
	Tokens token.Tokens
	Lines  line.Lines
	Docs   []node.Node
	Ctx    *rulectx.Tracker
	Source []byte
}

// Options is a resolved, rule-specific option map. Values come from
// config.Config after defaults have been merged with user overrides
// (spec.md §4.7).
type Options map[string]any

// Bool returns the bool at key, or def if absent or of the wrong type.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}

	return def
}

// Int returns the int at key, or def if absent or of the wrong type.
func (o Options) Int(key string, def int) int {
	if v, ok := o[key].(int); ok {
		return v
	}

	return def
}

// String returns the option at key as a tri-state string (e.g.
// "true"/"false"/"consistent"/"whatever"), or def if absent or of
// another type. A bool value is returned as "true" or "false".
func (o Options) String(key, def string) string {
	switch v := o[key].(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}

		return "false"
	}

	return def
}

// StringSlice returns the string slice at key, or def if absent.
func (o Options) StringSlice(key string, def []string) []string {
	if v, ok := o[key].([]string); ok {
		return v
	}

	return def
}

// Rule is the contract every rule checker implements (spec.md §4.4).
type Rule interface {
	// ID is the stable kebab-case rule identifier.
	ID() string
	// DefaultEnabled reports whether this rule is on out of the box.
	DefaultEnabled() bool
	// DefaultLevel is the severity used when a config enables this rule
	// without specifying one.
	DefaultLevel() diag.Level
	// DefaultOptions returns this rule's documented option defaults.
	DefaultOptions() Options
	// Scope classifies what this rule primarily reads.
	Scope() Scope
	// Fixable reports whether Check's diagnostics carry edits.
	Fixable() bool
	// Check runs the rule and returns zero or more diagnostics. A rule
	// that encounters an internal inconsistency must degrade silently —
	// return fewer diagnostics, never spurious ones, never panic.
	Check(in Input, opts Options) []diag.Diagnostic
}

// All returns one instance of every rule in the catalog, in the stable
// order they are documented in spec.md §4.4. Catalog order has no
// bearing on output order — the merger re-sorts globally — but a stable
// Catalog order keeps config validation errors reproducible.
func All() []Rule {
	return []Rule{
		NewIndentation(),
		NewLineLength(),
		NewTrailingSpaces(),
		NewEmptyLines(),
		NewNewLines(),
		NewNewLineAtEndOfFile(),
		NewColons(),
		NewCommas(),
		NewHyphens(),
		NewBraces(),
		NewBrackets(),
		NewComments(),
		NewCommentsIndentation(),
		NewKeyDuplicates(),
		NewKeyOrdering(),
		NewTruthy(),
		NewOctalValues(),
		NewFloatValues(),
		NewQuotedStrings(),
		NewEmptyValues(),
		NewAnchors(),
		NewDocumentStart(),
		NewDocumentEnd(),
	}
}

// ByID indexes [All] by rule ID.
func ByID() map[string]Rule {
	m := make(map[string]Rule, 23) //nolint:mnd // catalog size
	for _, r := range All() {
		m[r.ID()] = r
	}

	return m
}
