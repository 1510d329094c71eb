// Package line exposes the physical-line view of a YAML source buffer.
//
// Unlike the token stream, which reflects lexical structure, [Lines] is a
// byte-for-byte partition: every input byte belongs to exactly one
// [Line]'s raw content or its line-end marker. This is what rules like
// trailing-spaces, empty-lines, and new-lines reason over, grounded on
// the physical source rather than on tokens.
package line

import (
	"unicode/utf8"

	"golang.org/x/text/width"
)

// EndKind identifies how a physical line terminates.
type EndKind int

// Line-end kinds.
const (
	None EndKind = iota
	LF
	CRLF
)

// String implements [fmt.Stringer].
func (k EndKind) String() string {
	switch k {
	case LF:
		return "LF"
	case CRLF:
		return "CRLF"
	default:
		return "none"
	}
}

// Bytes returns the literal bytes for this line ending.
func (k EndKind) Bytes() []byte {
	switch k {
	case LF:
		return []byte("\n")
	case CRLF:
		return []byte("\r\n")
	default:
		return nil
	}
}

// Range is a half-open byte range [Start, End) into the source buffer.
type Range struct {
	Start, End int
}

// Len returns the width of r in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// Line describes one physical line of a source buffer.
//
// Concatenating Raw and the bytes of LineEnd, for every Line in order,
// reproduces the source buffer exactly (invariant 1 of the lint core's
// line model).
type Line struct {
	// Index is the 1-indexed line number.
	Index int
	// ByteRange covers Raw only, not the line-end bytes.
	ByteRange Range
	// Raw is the line's content, excluding the line-end bytes.
	Raw string
	// IndentWidth is the count of leading space/tab bytes in Raw.
	IndentWidth int
	// TrailingWS is the byte range, relative to the source buffer, of any
	// run of spaces/tabs immediately preceding the line end (or the end
	// of Raw, for the final line when it has no line end).
	TrailingWS Range
	// LineEnd identifies how this line terminates.
	LineEnd EndKind
}

// IsEmpty reports whether the line has no non-whitespace content.
func (l Line) IsEmpty() bool {
	return len(trimHorizontalWS(l.Raw)) == 0
}

// RuneLen returns the Unicode scalar count of Raw, used by rules (e.g.
// line-length) that must count characters rather than bytes.
func (l Line) RuneLen() int {
	return utf8.RuneCountInString(l.Raw)
}

// DisplayWidth returns the East-Asian-aware display column count of
// Raw: fullwidth and wide runes count for two columns, everything
// else for one. An additional metric alongside [Line.RuneLen], which
// is what line-length measures per spec.md §4.4 (Unicode scalar
// count, not display columns or bytes).
func (l Line) DisplayWidth() int {
	n := 0

	for _, r := range l.Raw {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}

	return n
}

// HasTrailingWS reports whether this line has a nonempty trailing
// whitespace run.
func (l Line) HasTrailingWS() bool {
	return l.TrailingWS.Len() > 0
}

// Lines is the ordered, 1-indexed (Lines[0] is line 1) partition of a
// source buffer.
type Lines []Line

// At returns the line with the given 1-indexed number, or the zero Line
// and false if out of range.
func (ls Lines) At(n int) (Line, bool) {
	if n < 1 || n > len(ls) {
		return Line{}, false
	}

	return ls[n-1], true
}

// Split partitions src into [Lines]. It never fails: any byte sequence
// can be split into physical lines.
func Split(src []byte) Lines {
	if len(src) == 0 {
		return nil
	}

	var (
		lines []Line
		start int
		index int
	)

	for i := 0; i < len(src); i++ {
		if src[i] != '\n' {
			continue
		}

		index++
		end := i
		kind := LF

		if end > start && src[end-1] == '\r' {
			end--
			kind = CRLF
		}

		lines = append(lines, newLine(index, src, start, end, kind))
		start = i + 1
	}

	if start < len(src) {
		index++
		lines = append(lines, newLine(index, src, start, len(src), None))
	}

	return lines
}

func newLine(index int, src []byte, start, end int, kind EndKind) Line {
	raw := src[start:end]

	indent := 0
	for indent < len(raw) && (raw[indent] == ' ' || raw[indent] == '\t') {
		indent++
	}

	trimEnd := len(raw)
	for trimEnd > indent && (raw[trimEnd-1] == ' ' || raw[trimEnd-1] == '\t') {
		trimEnd--
	}

	return Line{
		Index:       index,
		ByteRange:   Range{Start: start, End: end},
		Raw:         string(raw),
		IndentWidth: indent,
		TrailingWS:  Range{Start: start + trimEnd, End: start + len(raw)},
		LineEnd:     kind,
	}
}

func trimHorizontalWS(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}

	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}

	return s[start:end]
}
