// Package rulectx implements the context tracker: a single forward pass
// over the token stream that exposes per-token state needed by
// context-sensitive rules (spec.md §4.3).
//
// It is a cursor the rule runner advances alongside the token iterator,
// not global mutable state — rules read it by reference and never
// mutate it.
package rulectx

import "github.com/macropower/yamlint/token"

// Anchor records one anchor name's declarations and usage, for the
// anchors rule (spec.md §4.4).
type Anchor struct {
	Name         string
	Declarations []token.Position // every `&name`, in source order
	Uses         int              // count of `*name` references
}

// FirstDeclaration returns the position of the first declaration of
// this anchor name.
func (a Anchor) FirstDeclaration() token.Position {
	if len(a.Declarations) == 0 {
		return token.Position{}
	}

	return a.Declarations[0]
}

// Tracker exposes, for any token index, the context-sensitive state a
// rule needs: flow nesting depth, the enclosing mapping-key path, and
// the anchor/alias reference table.
//
// Built once per file with [Build]; immutable thereafter.
type Tracker struct {
	// FlowDepth[i] is the in_flow_depth active during tokens[i] (0
	// outside any flow collection).
	FlowDepth []int
	// Path[i] is the sequence of enclosing mapping key names containing
	// tokens[i], used by check-keys-style rules.
	Path [][]string
	// Anchors maps anchor name to its declaration/usage record. Alias
	// tokens referencing an undeclared name are not present here; see
	// [Tracker.UndeclaredAliases].
	Anchors map[string]*Anchor
	// UndeclaredAliases lists every Alias token whose name has no prior
	// Anchor declaration at the point of reference.
	UndeclaredAliases []token.Token
}

// Build runs the single forward pass over tokens and returns the
// resulting [Tracker].
func Build(tokens token.Tokens) *Tracker {
	t := &Tracker{
		FlowDepth: make([]int, len(tokens)),
		Path:      make([][]string, len(tokens)),
		Anchors:   make(map[string]*Anchor),
	}

	var (
		flowDepth  int
		pathStack  []string
		keyPending bool // true after a Key marker, until its scalar is read
		pendingKey string
	)

	// mapStack tracks, per open mapping, whether we are currently
	// between a Key token and its matching Value token, so we know when
	// to push/pop a path segment.
	type mapFrame struct {
		havePendingKey bool
	}

	var mapStack []*mapFrame

	for i, tk := range tokens {
		t.FlowDepth[i] = flowDepth
		t.Path[i] = append([]string(nil), pathStack...)

		switch tk.Kind {
		case token.FlowMappingStart, token.FlowSequenceStart:
			flowDepth++
			if tk.Kind == token.FlowMappingStart {
				mapStack = append(mapStack, &mapFrame{})
			}
		case token.FlowMappingEnd:
			flowDepth--
			if len(mapStack) > 0 {
				mapStack = mapStack[:len(mapStack)-1]
			}
		case token.FlowSequenceEnd:
			flowDepth--
		case token.BlockMappingStart:
			mapStack = append(mapStack, &mapFrame{})
		case token.BlockEnd:
			if len(mapStack) > 0 {
				top := mapStack[len(mapStack)-1]
				mapStack = mapStack[:len(mapStack)-1]

				if top.havePendingKey && len(pathStack) > 0 {
					pathStack = pathStack[:len(pathStack)-1]
				}
			}
		case token.Key:
			keyPending = true

			if len(mapStack) > 0 {
				top := mapStack[len(mapStack)-1]
				if top.havePendingKey && len(pathStack) > 0 {
					pathStack = pathStack[:len(pathStack)-1]
					top.havePendingKey = false
				}
			}
		case token.Scalar:
			if keyPending {
				pendingKey = tk.Value
				keyPending = false
			}
		case token.Value:
			if len(mapStack) > 0 {
				top := mapStack[len(mapStack)-1]
				pathStack = append(pathStack, pendingKey)
				top.havePendingKey = true
			}
		case token.Anchor:
			a := t.Anchors[tk.Name]
			if a == nil {
				a = &Anchor{Name: tk.Name}
				t.Anchors[tk.Name] = a
			}

			a.Declarations = append(a.Declarations, tk.Start)
		case token.Alias:
			a, ok := t.Anchors[tk.Name]
			if !ok {
				t.UndeclaredAliases = append(t.UndeclaredAliases, tk)

				continue
			}

			a.Uses++
		}
	}

	return t
}
