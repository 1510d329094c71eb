// Package node builds the structural Node tree from a [token.Tokens]
// stream: mappings, sequences, scalars, and alias references, each
// annotated with the token span it covers.
//
// The parser deliberately does not resolve aliases into their anchored
// nodes — see spec.md §4.2 — so the anchors rule can reason over the
// reference graph using [token.Token.Name] alone.
package node

import "github.com/macropower/yamlint/token"

// Kind discriminates the variants of [Node].
type Kind int

// Node kinds.
const (
	ScalarKind Kind = iota
	MappingKind
	SequenceKind
	AliasKind
)

// Span is the byte/position extent of a [Node], the smallest range
// enclosing all of its tokens (invariant 2 of spec.md §3).
type Span struct {
	Start, End token.Position
}

// Entry is one key/value pair of a [Node] of [MappingKind].
type Entry struct {
	Key   Node
	Value Node
}

// Node is the discriminated YAML value tree.
//
// Exactly one of the kind-specific fields is meaningful, selected by
// Kind:
//   - ScalarKind: Style, Value
//   - MappingKind: Entries
//   - SequenceKind: Items
//   - AliasKind: Name
type Node struct {
	Kind    Kind
	Span    Span
	Style   token.Style
	Value   string
	Entries []Entry
	Items   []Node
	Name    string
}

// CanonicalKey returns the canonical string form of a scalar used as a
// mapping key, per spec.md §3: "key equality uses the scalar's canonical
// string value (unquoted form after escape resolution), case-sensitive".
//
// Escape resolution for single/double-quoted strings is already
// performed by the scanner's underlying lexer into [Node.Value]; plain
// scalars are used as-is.
func (n Node) CanonicalKey() string {
	return n.Value
}

// IsEmptyScalar reports whether n is the scalar many rules treat as "no
// value": a null literal, a tilde, or an empty plain scalar.
func (n Node) IsEmptyScalar() bool {
	if n.Kind != ScalarKind {
		return false
	}

	switch n.Value {
	case "", "~", "null", "Null", "NULL":
		return n.Style == token.Plain
	default:
		return false
	}
}
