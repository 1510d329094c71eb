package rules

import (
	"github.com/macropower/yamlint/diag"
)

type anchorsRule struct{}

// NewAnchors returns the "anchors" rule: flags undeclared aliases,
// duplicated anchor declarations, and unused anchors, reading the
// context tracker's anchor table (spec.md §4.4).
func NewAnchors() Rule { return anchorsRule{} }

func (anchorsRule) ID() string               { return "anchors" }
func (anchorsRule) DefaultEnabled() bool     { return true }
func (anchorsRule) DefaultLevel() diag.Level { return diag.Error }
func (anchorsRule) Scope() Scope             { return WholeDocument }
func (anchorsRule) Fixable() bool            { return false }

func (anchorsRule) DefaultOptions() Options {
	return Options{
		"forbid-undeclared-aliases": true,
		"forbid-duplicated-anchors": false,
		"forbid-unused-anchors":     false,
	}
}

func (r anchorsRule) Check(in Input, opts Options) []diag.Diagnostic {
	if in.Ctx == nil {
		return nil
	}

	forbidUndeclared := opts.Bool("forbid-undeclared-aliases", true)
	forbidDup := opts.Bool("forbid-duplicated-anchors", false)
	forbidUnused := opts.Bool("forbid-unused-anchors", false)

	var out []diag.Diagnostic

	if forbidUndeclared {
		for _, tk := range in.Ctx.UndeclaredAliases {
			out = append(out, diag.Diagnostic{
				Line:    tk.Start.Line,
				Column:  tk.Start.Column,
				Level:   r.DefaultLevel(),
				RuleID:  r.ID(),
				Message: "found undeclared alias \"" + tk.Name + "\"",
			})
		}
	}

	for name, a := range in.Ctx.Anchors {
		if forbidDup && len(a.Declarations) > 1 {
			for _, pos := range a.Declarations[1:] {
				out = append(out, diag.Diagnostic{
					Line:    pos.Line,
					Column:  pos.Column,
					Level:   r.DefaultLevel(),
					RuleID:  r.ID(),
					Message: "found duplicated anchor \"" + name + "\"",
				})
			}
		}

		if forbidUnused && a.Uses == 0 {
			pos := a.FirstDeclaration()
			out = append(out, diag.Diagnostic{
				Line:    pos.Line,
				Column:  pos.Column,
				Level:   r.DefaultLevel(),
				RuleID:  r.ID(),
				Message: "found unused anchor \"" + name + "\"",
			})
		}
	}

	diag.Sort(out)

	return out
}
