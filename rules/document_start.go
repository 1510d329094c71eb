package rules

import (
	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/token"
)

type documentStartRule struct{}

// NewDocumentStart returns the "document-start" rule: requires (or
// forbids) an explicit '---' marker at the start of every document
// (spec.md §4.4).
func NewDocumentStart() Rule { return documentStartRule{} }

func (documentStartRule) ID() string               { return "document-start" }
func (documentStartRule) DefaultEnabled() bool     { return true }
func (documentStartRule) DefaultLevel() diag.Level { return diag.Error }
func (documentStartRule) Scope() Scope             { return PerToken }
func (documentStartRule) Fixable() bool            { return true }
func (documentStartRule) DefaultOptions() Options  { return Options{"present": true} }

func (r documentStartRule) Check(in Input, opts Options) []diag.Diagnostic {
	present := opts.Bool("present", true)

	var out []diag.Diagnostic

	sawMarker := false

	for i, tk := range in.Tokens {
		switch tk.Kind {
		case token.StreamStart:
			sawMarker = false
		case token.DocumentStart:
			sawMarker = true
		case token.DocumentEnd:
			sawMarker = false
		case token.Comment, token.Newline:
			continue
		default:
			if i == 0 {
				continue
			}

			if present && !sawMarker {
				lineStart := tk.Start.ByteOffset - (tk.Start.Column - 1)

				out = append(out, diag.Diagnostic{
					Line:    tk.Start.Line,
					Column:  tk.Start.Column,
					Level:   r.DefaultLevel(),
					RuleID:  r.ID(),
					Message: "missing document start \"---\"",
					Fix: []diag.Edit{{
						ByteRange:   diag.Range{Start: lineStart, End: lineStart},
						Replacement: []byte("---\n"),
					}},
				})
			}

			sawMarker = true // only report once per document
		}
	}

	return out
}
