package node

import "github.com/macropower/yamlint/token"

// Parse builds one [Node] per YAML document found in tokens.
//
// Anchor and tag tokens are not attached to the tree; the anchor
// declaration/reference graph is the context tracker's job (spec.md
// §4.3), built directly from the token stream.
func Parse(tokens token.Tokens) []Node {
	p := &parser{tokens: tokens}

	var docs []Node

	for p.i < len(tokens) {
		switch tokens[p.i].Kind {
		case token.StreamStart, token.StreamEnd, token.DocumentStart, token.DocumentEnd,
			token.Comment, token.Newline:
			p.i++

			continue
		}

		start := p.i
		n := p.value()

		if n == nil {
			if p.i == start {
				p.i++ // guarantee forward progress on malformed input
			}

			continue
		}

		docs = append(docs, *n)
	}

	return docs
}

type parser struct {
	tokens token.Tokens
	i      int
}

// skipTrivia advances past comments and newlines, which carry no
// structural meaning for the node tree.
func (p *parser) skipTrivia() {
	for p.i < len(p.tokens) {
		switch p.tokens[p.i].Kind {
		case token.Comment, token.Newline:
			p.i++
		default:
			return
		}
	}
}

// peekSignificant returns the kind of the next token after skipping
// trivia, without consuming anything.
func (p *parser) peekSignificant() (token.Kind, bool) {
	j := p.i
	for j < len(p.tokens) {
		switch p.tokens[j].Kind {
		case token.Comment, token.Newline:
			j++
		default:
			return p.tokens[j].Kind, true
		}
	}

	return token.Invalid, false
}

// value parses whatever node starts at the current position, or nil if
// none does (used for graceful degradation on malformed input).
func (p *parser) value() *Node {
	p.skipTrivia()

	for p.i < len(p.tokens) {
		switch p.tokens[p.i].Kind {
		case token.Anchor, token.Tag:
			p.i++
			p.skipTrivia()

			continue
		}

		break
	}

	if p.i >= len(p.tokens) {
		return nil
	}

	tk := p.tokens[p.i]

	switch tk.Kind {
	case token.BlockMappingStart, token.FlowMappingStart:
		return p.mapping()
	case token.BlockSequenceStart, token.FlowSequenceStart:
		return p.sequence()
	case token.Alias:
		p.i++

		return &Node{Kind: AliasKind, Name: tk.Name, Span: Span{Start: tk.Start, End: tk.End}}
	case token.Scalar:
		p.i++

		return &Node{Kind: ScalarKind, Style: tk.Style, Value: tk.Value, Span: Span{Start: tk.Start, End: tk.End}}
	default:
		return nil
	}
}

func (p *parser) mapping() *Node {
	start := p.tokens[p.i]

	var closing token.Kind

	switch start.Kind {
	case token.BlockMappingStart:
		closing = token.BlockEnd
	default:
		closing = token.FlowMappingEnd
	}

	p.i++

	n := &Node{Kind: MappingKind, Span: Span{Start: start.Start}}

	for {
		p.skipTrivia()

		for p.i < len(p.tokens) && p.tokens[p.i].Kind == token.FlowEntry {
			p.i++
			p.skipTrivia()
		}

		if p.i >= len(p.tokens) {
			break
		}

		if p.tokens[p.i].Kind == closing {
			n.Span.End = p.tokens[p.i].End
			p.i++

			break
		}

		if p.tokens[p.i].Kind != token.Key {
			// Degrade silently: skip the unexpected token rather than
			// emit spurious structure, per spec.md §7.
			p.i++

			continue
		}

		p.i++ // consume Key marker

		key := p.value()
		if key == nil {
			key = &Node{Kind: ScalarKind, Style: token.Plain}
		}

		p.skipTrivia()

		if p.i < len(p.tokens) && p.tokens[p.i].Kind == token.Value {
			valuePos := p.tokens[p.i].End
			p.i++

			val := p.emptyAwareValue(valuePos, closing)
			n.Entries = append(n.Entries, Entry{Key: *key, Value: *val})
		} else {
			// Key with no ':' at all (rare, malformed): record as an
			// entry with an implicit empty value.
			n.Entries = append(n.Entries, Entry{Key: *key, Value: Node{Kind: ScalarKind, Style: token.Plain}})
		}
	}

	if n.Span.End == (token.Position{}) && len(n.Entries) > 0 {
		last := n.Entries[len(n.Entries)-1]
		n.Span.End = last.Value.Span.End
	}

	return n
}

// emptyAwareValue parses a mapping value, or synthesizes an implicit
// empty scalar when nothing follows the ':' before the next entry or
// the collection closes — spec.md §4.4 "empty-values": "no value token
// after the key, or the value is the plain scalar null/~/empty".
func (p *parser) emptyAwareValue(at token.Position, enclosingClose token.Kind) *Node {
	kind, ok := p.peekSignificant()
	if !ok || kind == token.Key || kind == enclosingClose || kind == token.BlockEnd || kind == token.FlowMappingEnd {
		return &Node{Kind: ScalarKind, Style: token.Plain, Span: Span{Start: at, End: at}}
	}

	v := p.value()
	if v == nil {
		return &Node{Kind: ScalarKind, Style: token.Plain, Span: Span{Start: at, End: at}}
	}

	return v
}

func (p *parser) sequence() *Node {
	start := p.tokens[p.i]

	var closing token.Kind

	switch start.Kind {
	case token.BlockSequenceStart:
		closing = token.BlockEnd
	default:
		closing = token.FlowSequenceEnd
	}

	p.i++

	n := &Node{Kind: SequenceKind, Span: Span{Start: start.Start}}

	for {
		p.skipTrivia()

		for p.i < len(p.tokens) && (p.tokens[p.i].Kind == token.FlowEntry || p.tokens[p.i].Kind == token.BlockEntry) {
			p.i++
			p.skipTrivia()
		}

		if p.i >= len(p.tokens) {
			break
		}

		if p.tokens[p.i].Kind == closing {
			n.Span.End = p.tokens[p.i].End
			p.i++

			break
		}

		kind, ok := p.peekSignificant()
		if !ok || kind == closing {
			break
		}

		item := p.value()
		if item == nil {
			p.i++

			continue
		}

		n.Items = append(n.Items, *item)
	}

	if n.Span.End == (token.Position{}) && len(n.Items) > 0 {
		n.Span.End = n.Items[len(n.Items)-1].Span.End
	}

	return n
}
