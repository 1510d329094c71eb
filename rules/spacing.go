package rules

import (
	"fmt"
	"strings"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/token"
)

// checkFlowSpacing implements the shared "inside brackets/braces"
// spacing check used by the braces and brackets rules: it pairs each
// open token with the next unmatched close token of the same kind by
// simple nesting depth, since the two collection kinds never interleave
// with each other's matching pair at the same depth.
func checkFlowSpacing(
	in Input, opts Options, ruleID string, level diag.Level,
	openKind, closeKind token.Kind, name, collection string,
) []diag.Diagnostic {
	minInside := opts.Int("min-spaces-inside", 0)
	maxInside := opts.Int("max-spaces-inside", 0)
	minEmpty := opts.Int("min-spaces-inside-empty", 0)
	maxEmpty := opts.Int("max-spaces-inside-empty", 0)
	forbid := opts["forbid"]

	var (
		out   []diag.Diagnostic
		stack []token.Token
	)

	for _, tk := range in.Tokens {
		switch tk.Kind {
		case openKind:
			stack = append(stack, tk)
		case closeKind:
			if len(stack) == 0 {
				continue
			}

			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			empty := spaceRunEndSkippingSpaces(in.Source, open.End.ByteOffset, tk.Start.ByteOffset) == tk.Start.ByteOffset

			if forbid == true || (forbid == "non-empty" && !empty) { //nolint:staticcheck // comparing typed config value
				out = append(out, diag.Diagnostic{
					Line: open.Start.Line, Column: open.Start.Column, Level: level, RuleID: ruleID,
					Message: fmt.Sprintf("forbidden %s", collection),
				})

				continue
			}

			afterOpen := spaceRunAfter(in.Source, open.End.ByteOffset)
			beforeClose := spaceRunBefore(in.Source, tk.Start.ByteOffset)

			lo, hi := minInside, maxInside
			if empty {
				lo, hi = minEmpty, maxEmpty
			}

			if afterOpen < lo {
				out = append(out, diag.Diagnostic{
					Line: open.End.Line, Column: open.End.Column, Level: level, RuleID: ruleID,
					Message: fmt.Sprintf("too few spaces inside %s (%d < %d)", name, afterOpen, lo),
					Fix:     spaceRunFix(open.End.ByteOffset, open.End.ByteOffset+afterOpen, lo),
				})
			} else if afterOpen > hi {
				out = append(out, diag.Diagnostic{
					Line: open.End.Line, Column: open.End.Column, Level: level, RuleID: ruleID,
					Message: fmt.Sprintf("too many spaces inside %s (%d > %d)", name, afterOpen, hi),
					Fix:     spaceRunFix(open.End.ByteOffset, open.End.ByteOffset+afterOpen, hi),
				})
			}

			if !empty {
				if beforeClose < lo {
					out = append(out, diag.Diagnostic{
						Line: tk.Start.Line, Column: tk.Start.Column - beforeClose, Level: level, RuleID: ruleID,
						Message: fmt.Sprintf("too few spaces inside %s (%d < %d)", name, beforeClose, lo),
						Fix:     spaceRunFix(tk.Start.ByteOffset-beforeClose, tk.Start.ByteOffset, lo),
					})
				} else if beforeClose > hi {
					out = append(out, diag.Diagnostic{
						Line: tk.Start.Line, Column: tk.Start.Column - beforeClose, Level: level, RuleID: ruleID,
						Message: fmt.Sprintf("too many spaces inside %s (%d > %d)", name, beforeClose, hi),
						Fix:     spaceRunFix(tk.Start.ByteOffset-beforeClose, tk.Start.ByteOffset, hi),
					})
				}
			}
		}
	}

	return out
}

// spaceRunEndSkippingSpaces returns end if the byte range [start, end)
// of src contains only spaces, or -1 otherwise — used to detect an
// empty '{}'/'[]' collection regardless of interior whitespace.
func spaceRunEndSkippingSpaces(src []byte, start, end int) int {
	for i := start; i < end; i++ {
		if src[i] != ' ' {
			return -1
		}
	}

	return end
}

// spaceRunBefore counts the run of plain space bytes in src immediately
// before offset, stopping at a newline or the start of the buffer.
func spaceRunBefore(src []byte, offset int) int {
	n := 0
	for i := offset - 1; i >= 0 && src[i] == ' '; i-- {
		n++
	}

	return n
}

// spaceRunAfter counts the run of plain space bytes in src immediately
// at and after offset, stopping at a newline or the end of the buffer.
func spaceRunAfter(src []byte, offset int) int {
	n := 0
	for i := offset; i < len(src) && src[i] == ' '; i++ {
		n++
	}

	return n
}

// precededByNewline reports whether the byte immediately before offset,
// ignoring any run of spaces, is a newline or the start of the buffer.
func precededByNewline(src []byte, offset int) bool {
	i := offset - 1
	for i >= 0 && src[i] == ' ' {
		i--
	}

	return i < 0 || src[i] == '\n'
}

// followedByNewlineOrEOF reports whether the byte at offset, ignoring
// any run of spaces, is a newline, a comment start, or end of buffer.
func followedByNewlineOrEOF(src []byte, offset int) bool {
	i := offset
	for i < len(src) && src[i] == ' ' {
		i++
	}

	return i >= len(src) || src[i] == '\n' || src[i] == '#'
}

// spaceRunFix returns a single-edit fix that replaces the byte range
// [start, end), a run of plain space bytes, with exactly want spaces —
// the shared shape of every "too many/too few spaces" fix in this
// package.
func spaceRunFix(start, end, want int) []diag.Edit {
	return []diag.Edit{{
		ByteRange:   diag.Range{Start: start, End: end},
		Replacement: []byte(strings.Repeat(" ", want)),
	}}
}
