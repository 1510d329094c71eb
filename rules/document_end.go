package rules

import (
	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/token"
)

type documentEndRule struct{}

// NewDocumentEnd returns the "document-end" rule: requires (or
// forbids) an explicit '...' marker at the end of every document
// (spec.md §4.4).
func NewDocumentEnd() Rule { return documentEndRule{} }

func (documentEndRule) ID() string               { return "document-end" }
func (documentEndRule) DefaultEnabled() bool     { return false }
func (documentEndRule) DefaultLevel() diag.Level { return diag.Error }
func (documentEndRule) Scope() Scope             { return PerToken }
func (documentEndRule) Fixable() bool            { return true }
func (documentEndRule) DefaultOptions() Options  { return Options{"present": true} }

func (r documentEndRule) Check(in Input, opts Options) []diag.Diagnostic {
	present := opts.Bool("present", true)

	var out []diag.Diagnostic

	var lastContent *token.Token

	flush := func() {
		if !present || lastContent == nil {
			return
		}

		out = append(out, diag.Diagnostic{
			Line:    lastContent.End.Line,
			Column:  lastContent.End.Column,
			Level:   r.DefaultLevel(),
			RuleID:  r.ID(),
			Message: "missing document end \"...\"",
			Fix:     documentEndFix(in, lastContent.End.Line),
		})
	}

	for i := range in.Tokens {
		tk := in.Tokens[i]

		switch tk.Kind {
		case token.DocumentStart:
			flush()

			lastContent = nil
		case token.DocumentEnd:
			lastContent = nil
		case token.StreamEnd:
			flush()

			lastContent = nil
		case token.StreamStart, token.Comment, token.Newline:
			continue
		default:
			t := tk
			lastContent = &t
		}
	}

	return out
}

// documentEndFix returns a fix inserting "...\n" right after the full
// physical line identified by lastLine, including its line-end bytes
// so the marker lands on its own line rather than splicing into
// existing content.
func documentEndFix(in Input, lastLine int) []diag.Edit {
	l, ok := in.Lines.At(lastLine)
	if !ok {
		return nil
	}

	insertAt := l.ByteRange.End + len(l.LineEnd.Bytes())

	replacement := "...\n"
	if l.LineEnd.Bytes() == nil {
		replacement = "\n...\n"
	}

	return []diag.Edit{{
		ByteRange:   diag.Range{Start: insertAt, End: insertAt},
		Replacement: []byte(replacement),
	}}
}
