// Package fix implements the fix applier: it takes the edits carried
// by fixable diagnostics and splices them into the source buffer,
// rejecting overlaps and bounding the re-lint loop (spec.md §4.8).
package fix

import (
	"errors"
	"sort"

	"github.com/macropower/yamlint/diag"
)

// ErrDidNotConverge is returned when repeated fix-and-relint passes
// still produce fixable diagnostics after [MaxIterations] rounds.
var ErrDidNotConverge = errors.New("fix did not converge")

// MaxIterations bounds the re-lint loop the caller drives around
// [Apply], per spec.md §4.8.
const MaxIterations = 10

// Apply flattens the fix edits carried by ds, sorted by start offset,
// greedily accepts non-overlapping edits (an edit whose range
// intersects an already-accepted one is skipped, not rejected outright
// — the remaining edits may still apply and a later pass picks up what
// was skipped), and splices them into src in reverse order so earlier
// offsets stay valid.
//
// It returns the new buffer and the number of edits actually applied.
func Apply(src []byte, ds []diag.Diagnostic) ([]byte, int) {
	var edits []diag.Edit

	for _, d := range ds {
		edits = append(edits, d.Fix...)
	}

	if len(edits) == 0 {
		return src, 0
	}

	sort.Slice(edits, func(i, j int) bool {
		return edits[i].ByteRange.Start < edits[j].ByteRange.Start
	})

	accepted := make([]diag.Edit, 0, len(edits))

	lastEnd := -1

	for _, e := range edits {
		if e.ByteRange.Start < lastEnd {
			continue // overlaps a previously accepted edit, skip this round
		}

		accepted = append(accepted, e)
		lastEnd = e.ByteRange.End
	}

	out := append([]byte(nil), src...)

	for i := len(accepted) - 1; i >= 0; i-- {
		e := accepted[i]
		out = append(out[:e.ByteRange.Start], append(append([]byte(nil), e.Replacement...), out[e.ByteRange.End:]...)...)
	}

	return out, len(accepted)
}
