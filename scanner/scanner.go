// Package scanner produces the lexical [token.Tokens] stream for a YAML
// source buffer.
//
// It wraps [github.com/goccy/go-yaml/lexer], which returns a flat token
// stream without the structural BlockMappingStart/BlockSequenceStart/
// BlockEnd markers the rule catalog needs (block collections in YAML are
// implicit in indentation, not bracketed like flow collections). Scan
// re-derives that structure with an indentation-stack pass grounded on
// the classic libyaml scanner algorithm (see DESIGN.md), and synthesizes
// the Key/Value/Newline tokens the lint core's token model requires.
package scanner

import (
	"github.com/goccy/go-yaml/lexer"
	gotoken "github.com/goccy/go-yaml/token"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/line"
	"github.com/macropower/yamlint/token"
)

// Result is the outcome of a scan.
type Result struct {
	Tokens token.Tokens
	Lines  line.Lines
	// Fatal is set when the source could not be fully scanned. Tokens
	// emitted before the failure point remain valid; linting continues
	// best-effort on that prefix, per spec.md §4.1/§7.
	Fatal *diag.Diagnostic
}

// frame is one level of the block-collection indentation stack.
type frame struct {
	column int
	kind   token.Kind // BlockMappingStart or BlockSequenceStart
}

// Scan tokenizes src into the lint core's own token model.
func Scan(src []byte) Result {
	lines := line.Split(src)

	raw := lexer.Tokenize(string(src))

	s := &state{
		lines: lines,
		out:   make(token.Tokens, 0, len(raw)*2),
	}

	s.out = append(s.out, token.Token{Kind: token.StreamStart})

	for i := 0; i < len(raw); i++ {
		tk := raw[i]
		if tk == nil || tk.Type == gotoken.UnknownType || tk.Type == gotoken.InvalidType {
			s.fatal = &diag.Diagnostic{
				Line:    posLine(tk),
				Column:  posCol(tk),
				Level:   diag.Error,
				RuleID:  "parse-error",
				Message: "syntax error: invalid token",
			}

			break
		}

		s.visit(raw, i)
	}

	s.closeFrames(s.endPosition(src))
	s.emitNewlines()
	token.SortByStart(s.out)

	s.out = append(s.out, token.Token{Kind: token.StreamEnd, Start: s.endPosition(src), End: s.endPosition(src)})

	return Result{Tokens: s.out, Lines: lines, Fatal: s.fatal}
}

type state struct {
	lines     line.Lines
	out       token.Tokens
	stack     []frame
	flowDepth int
	lastLine  int
	fatal     *diag.Diagnostic
}

func (s *state) visit(raw gotoken.Tokens, i int) {
	tk := raw[i]
	if tk.Type == gotoken.SpaceType {
		return
	}

	start := toPosition(tk.Position)
	end := advance(start, tk.Origin)

	if tk.Type == gotoken.CommentType {
		s.out = append(s.out, token.Token{
			Kind:  token.Comment,
			Raw:   tk.Value,
			Start: start,
			End:   end,
		})

		return
	}

	isLineLeading := start.Line != s.lastLine
	s.lastLine = end.Line

	if s.flowDepth == 0 && isLineLeading {
		s.rollIndent(start, tk, raw, i)
	}

	switch tk.Type {
	case gotoken.MappingStartType:
		s.flowDepth++
		s.out = append(s.out, token.Token{Kind: token.FlowMappingStart, Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.MappingEndType:
		s.flowDepth--
		s.out = append(s.out, token.Token{Kind: token.FlowMappingEnd, Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.SequenceStartType:
		s.flowDepth++
		s.out = append(s.out, token.Token{Kind: token.FlowSequenceStart, Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.SequenceEndType:
		s.flowDepth--
		s.out = append(s.out, token.Token{Kind: token.FlowSequenceEnd, Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.CollectEntryType:
		s.out = append(s.out, token.Token{Kind: token.FlowEntry, Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.SequenceEntryType:
		s.out = append(s.out, token.Token{Kind: token.BlockEntry, Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.MappingValueType:
		s.out = append(s.out, token.Token{Kind: token.Value, Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.MappingKeyType:
		s.out = append(s.out, token.Token{Kind: token.Key, Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.DocumentHeaderType:
		s.closeFrames(start)
		s.out = append(s.out, token.Token{Kind: token.DocumentStart, Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.DocumentEndType:
		s.closeFrames(start)
		s.out = append(s.out, token.Token{Kind: token.DocumentEnd, Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.AnchorType:
		s.out = append(s.out, token.Token{Kind: token.Anchor, Name: trimIndicator(tk.Value), Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.AliasType:
		s.out = append(s.out, token.Token{Kind: token.Alias, Name: trimIndicator(tk.Value), Raw: tk.Origin, Start: start, End: end})

		return
	case gotoken.TagType:
		s.out = append(s.out, token.Token{Kind: token.Tag, Raw: tk.Origin, Start: start, End: end})

		return
	}

	if s.peekIsValue(raw, i) {
		// Zero-width Key marker, appended before its scalar so the
		// stable position sort keeps them in source order despite
		// sharing a Start.
		s.out = append(s.out, token.Token{Kind: token.Key, Start: start, End: start})
	}

	s.emitScalar(tk, start, end)
}

// peekIsValue reports whether the next non-space, non-comment token is a
// mapping value indicator, which marks the current token as a mapping
// key (a colon-lookahead heuristic).
func (s *state) peekIsValue(raw gotoken.Tokens, i int) bool {
	for j := i + 1; j < len(raw); j++ {
		switch raw[j].Type {
		case gotoken.SpaceType, gotoken.CommentType:
			continue
		case gotoken.MappingValueType:
			return true
		default:
			return false
		}
	}

	return false
}

func (s *state) emitScalar(tk *gotoken.Token, start, end token.Position) {
	style := scalarStyle(tk.Type)
	s.out = append(s.out, token.Token{
		Kind:  token.Scalar,
		Style: style,
		Value: tk.Value,
		Raw:   tk.Origin,
		Start: start,
		End:   end,
	})
}

func scalarStyle(t gotoken.Type) token.Style {
	switch t {
	case gotoken.SingleQuoteType:
		return token.SingleQuoted
	case gotoken.DoubleQuoteType:
		return token.DoubleQuoted
	case gotoken.LiteralType:
		return token.Literal
	case gotoken.FoldedType:
		return token.Folded
	default:
		return token.Plain
	}
}

// rollIndent pops block frames whose column exceeds the incoming
// token's column, then pushes a new frame if the token starts a
// deeper (or, for flush-style sequences, same-column) block
// collection. Grounded on the libyaml scanner's roll/unroll indent
// algorithm (see WillAbides-yaml internal/parserc/scannerc.go
// yaml_parser_roll_indent), adapted to operate over a completed token
// stream rather than a live buffer cursor.
func (s *state) rollIndent(pos token.Position, tk *gotoken.Token, raw gotoken.Tokens, i int) {
	col := pos.Column

	for len(s.stack) > 0 && col < s.stack[len(s.stack)-1].column {
		s.popFrame(pos)
	}

	topIsMapping := len(s.stack) > 0 && s.stack[len(s.stack)-1].kind == token.BlockMappingStart
	atTop := len(s.stack) > 0 && col == s.stack[len(s.stack)-1].column

	switch {
	case tk.Type == gotoken.SequenceEntryType && (!atTop || topIsMapping):
		// New sequence level: either deeper than the enclosing
		// collection, or flush with an enclosing mapping key (YAML
		// permits un-indented block sequences under their key). This
		// is the tie-break spec.md §9 calls out as ambiguous.
		s.pushFrame(frame{column: col, kind: token.BlockSequenceStart}, pos)

	case atTop:
		// Continuing entry at the current level; no new frame.

	case tk.Type == gotoken.MappingKeyType || s.peekIsValue(raw, i):
		s.pushFrame(frame{column: col, kind: token.BlockMappingStart}, pos)

	default:
		// A bare scalar with no following ':' at a deeper column than
		// any open collection: a document-root scalar, or a malformed
		// indent. Neither opens a new frame.
	}
}

func (s *state) pushFrame(f frame, pos token.Position) {
	s.stack = append(s.stack, f)
	s.out = append(s.out, token.Token{Kind: f.kind, Start: pos, End: pos})
}

func (s *state) popFrame(pos token.Position) {
	s.stack = s.stack[:len(s.stack)-1]
	s.out = append(s.out, token.Token{Kind: token.BlockEnd, Start: pos, End: pos})
}

func (s *state) closeFrames(pos token.Position) {
	for len(s.stack) > 0 {
		s.popFrame(pos)
	}
}

func (s *state) endPosition(src []byte) token.Position {
	if len(s.lines) == 0 {
		return token.Position{Line: 1, Column: 1, ByteOffset: 0}
	}

	last := s.lines[len(s.lines)-1]

	return token.Position{
		Line:       last.Index,
		Column:     last.IndentWidth + 1 + (len(last.Raw) - last.IndentWidth),
		ByteOffset: len(src),
	}
}

func (s *state) emitNewlines() {
	for _, l := range s.lines {
		if l.LineEnd == line.None {
			continue
		}

		start := token.Position{Line: l.Index, Column: len(l.Raw) + 1, ByteOffset: l.ByteRange.End}
		end := token.Position{Line: l.Index + 1, Column: 1, ByteOffset: l.ByteRange.End + len(l.LineEnd.Bytes())}

		s.out = append(s.out, token.Token{Kind: token.Newline, Raw: string(l.LineEnd.Bytes()), Start: start, End: end})
	}
}

func toPosition(p *gotoken.Position) token.Position {
	if p == nil {
		return token.Position{Line: 1, Column: 1}
	}

	return token.Position{Line: p.Line, Column: p.Column, ByteOffset: p.Offset}
}

func advance(start token.Position, s string) token.Position {
	pos := start
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}

		pos.ByteOffset++
	}

	return pos
}

func trimIndicator(v string) string {
	if len(v) > 0 && (v[0] == '&' || v[0] == '*') {
		return v[1:]
	}

	return v
}

func posLine(tk *gotoken.Token) int {
	if tk == nil || tk.Position == nil {
		return 1
	}

	return tk.Position.Line
}

func posCol(tk *gotoken.Token) int {
	if tk == nil || tk.Position == nil {
		return 1
	}

	return tk.Position.Column
}
