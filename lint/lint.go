// Package lint wires the scanner, node parser, context tracker, rule
// catalog, directive parser, merger, and fix applier into the single
// (source, config) -> (diagnostics, fixed?) contract described in
// spec.md §1/§5.
package lint

import (
	"bytes"
	"fmt"

	"github.com/macropower/yamlint/config"
	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/directive"
	"github.com/macropower/yamlint/fix"
	"github.com/macropower/yamlint/merge"
	"github.com/macropower/yamlint/node"
	"github.com/macropower/yamlint/rulectx"
	"github.com/macropower/yamlint/rules"
	"github.com/macropower/yamlint/scanner"
)

// bom is the UTF-8 byte order mark. The scanner does not understand
// it, so [Run] strips it before scanning and reports its presence as
// an informational diagnostic, per spec.md §7.
var bom = []byte{0xEF, 0xBB, 0xBF}

// Outcome is the result of one [Run].
type Outcome struct {
	Diagnostics []diag.Diagnostic
	HadBOM      bool
}

// Run scans, parses, and checks src against cfg, returning the final
// merged and sorted diagnostic list. It never fails: a scan that
// cannot complete degrades to a best-effort prefix plus a
// "parse-error" diagnostic (spec.md §7).
//
// path is used only to evaluate each rule's own per-rule "ignore"
// patterns (spec.md's supplemented per-rule ignore); pass "" when no
// file path is available, which exempts nothing.
func Run(path string, src []byte, cfg config.Config) Outcome {
	hadBOM := bytes.HasPrefix(src, bom)
	if hadBOM {
		src = src[len(bom):]
	}

	res := scanner.Scan(src)

	in := rules.Input{
		Tokens: res.Tokens,
		Lines:  res.Lines,
		Docs:   node.Parse(res.Tokens),
		Ctx:    rulectx.Build(res.Tokens),
		Source: src,
	}

	var raw []diag.Diagnostic

	if res.Fatal != nil {
		raw = append(raw, *res.Fatal)
	}

	for _, r := range rules.All() {
		settings, ok := cfg.Rules[r.ID()]
		if !ok || !settings.Enabled {
			continue
		}

		if path != "" && settings.IgnoresPath(path) {
			continue
		}

		for _, d := range r.Check(in, settings.Options) {
			d.Level = settings.Level

			raw = append(raw, d)
		}
	}

	dirs := directive.Parse(res.Tokens)
	out := merge.Merge(raw, dirs)

	if hadBOM {
		out = append([]diag.Diagnostic{{
			Line: 1, Column: 1, Level: diag.Info,
			RuleID: "byte-order-mark", Message: "found byte order mark at start of file",
		}}, out...)
	}

	return Outcome{Diagnostics: out, HadBOM: hadBOM}
}

// Fix repeatedly applies fixable diagnostics and re-lints until no
// fixable diagnostics remain or [fix.MaxIterations] rounds pass without
// converging, per spec.md §4.8. path is forwarded to [Run] for
// per-rule ignore evaluation.
func Fix(path string, src []byte, cfg config.Config) ([]byte, Outcome, error) {
	hadBOM := bytes.HasPrefix(src, bom)

	buf := src
	if hadBOM {
		buf = src[len(bom):]
	}

	var out Outcome

	for i := 0; i < fix.MaxIterations; i++ {
		out = Run(path, buf, cfg)

		fixable := make([]diag.Diagnostic, 0, len(out.Diagnostics))

		for _, d := range out.Diagnostics {
			if d.Fixable() {
				fixable = append(fixable, d)
			}
		}

		if len(fixable) == 0 {
			return restoreBOM(buf, hadBOM), out, nil
		}

		next, n := fix.Apply(buf, fixable)
		if n == 0 {
			return restoreBOM(buf, hadBOM), out, nil
		}

		buf = next
	}

	return restoreBOM(buf, hadBOM), out, fmt.Errorf("after %d passes: %w", fix.MaxIterations, fix.ErrDidNotConverge)
}

func restoreBOM(buf []byte, hadBOM bool) []byte {
	if !hadBOM {
		return buf
	}

	return append(append([]byte(nil), bom...), buf...)
}
