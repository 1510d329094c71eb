// Command yamlint lints YAML files against the rule catalog, printing
// diagnostics in a parsable or colored form and optionally applying
// fixes in place (spec.md §6).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/macropower/yamlint/config"
	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/fangs"
	"github.com/macropower/yamlint/internal/clilog"
	"github.com/macropower/yamlint/internal/filepaths"
	"github.com/macropower/yamlint/lint"
	"github.com/macropower/yamlint/render"
)

// errProblemsFound signals a clean run that still found lint problems,
// distinct from a read/write/config failure, so main can choose exit
// code 1 instead of 2 (spec.md §6).
var errProblemsFound = errors.New("lint problems found")

func main() {
	cmd := newRootCmd()

	err := fang.Execute(context.Background(), cmd, fang.WithErrorHandler(fangs.ErrorHandler))
	if err != nil {
		if errors.Is(err, errProblemsFound) {
			os.Exit(1)
		}

		os.Exit(2) //nolint:mnd // spec.md §6 exit code for a usage/runtime error
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		fix         bool
		format      string
		noWarnings  bool
		listFiles   bool
		logLevel    string
		logFormat   string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "yamlint file.yaml [file2.yaml ...]",
		Short: "Lint YAML files against a configurable rule catalog",
		Long:  "Lint YAML files for style and correctness.\nSupports glob patterns like *.yaml and automatic fixing with --fix.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := clilog.NewHandler(cmd.ErrOrStderr(), logLevel, logFormat)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			paths, err := filepaths.Expand(args...)
			if err != nil {
				return err
			}

			paths = filterLintable(cfg, paths)

			if listFiles {
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}

				return nil
			}

			return runLint(cmd, cfg, paths, fix, format, noWarnings, concurrency)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a yamlint config file")
	cmd.Flags().BoolVar(&fix, "fix", false, "apply fixes in place")
	cmd.Flags().StringVarP(&format, "format", "f", "auto", "output format: auto, parsable, or colored")
	cmd.Flags().BoolVar(&noWarnings, "no-warnings", false, "only output error-level problems")
	cmd.Flags().BoolVar(&listFiles, "list-files", false, "list the files that would be linted, without linting them")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: error, warn, info, debug")
	cmd.Flags().StringVar(&logFormat, "log-format", "logfmt", "log format: logfmt or json")
	cmd.Flags().IntVar(&concurrency, "concurrency", runtime.GOMAXPROCS(0), "number of files linted in parallel")

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	b, err := os.ReadFile(path) //nolint:gosec // path is a user-supplied CLI flag, same trust boundary as the YAML files it lints.
	if err != nil {
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := config.Load(b)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func filterLintable(cfg config.Config, paths []string) []string {
	out := make([]string, 0, len(paths))

	for _, p := range paths {
		if cfg.IsLintable(p) {
			out = append(out, p)
		}
	}

	return out
}

type fileResult struct {
	path        string
	outcome     lint.Outcome
	err         error
	fixedBuf    []byte
	fixApplied  bool
}

// runLint lints every path concurrently (bounded by concurrency, via
// an [errgroup.Group]), then renders results in stable path order so
// output is deterministic regardless of completion order.
func runLint(cmd *cobra.Command, cfg config.Config, paths []string, fix bool, format string, noWarnings bool, concurrency int) error {
	results := make([]fileResult, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	var mu sync.Mutex

	for i, p := range paths {
		i, p := i, p

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			r := lintOne(p, cfg, fix)

			mu.Lock()
			results[i] = r
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("lint: %w", err)
	}

	return report(cmd, results, format, noWarnings)
}

func lintOne(path string, cfg config.Config, fix bool) fileResult {
	src, err := os.ReadFile(path) //nolint:gosec // path comes from glob expansion of user-supplied arguments.
	if err != nil {
		return fileResult{path: path, err: fmt.Errorf("read %s: %w", path, err)}
	}

	if !utf8.Valid(src) {
		return fileResult{path: path, err: fmt.Errorf("read %s: not valid UTF-8", path)}
	}

	if !fix {
		return fileResult{path: path, outcome: lint.Run(path, src, cfg)}
	}

	fixed, outcome, err := lint.Fix(path, src, cfg)
	if err != nil {
		return fileResult{path: path, outcome: outcome, err: fmt.Errorf("fix %s: %w", path, err)}
	}

	return fileResult{path: path, outcome: outcome, fixedBuf: fixed, fixApplied: true}
}

func report(cmd *cobra.Command, results []fileResult, format string, noWarnings bool) error {
	colored := format == "colored" || (format == "auto" && term.IsTerminal(os.Stdout.Fd()))
	styles := render.DefaultStyles()

	out := cmd.OutOrStdout()

	var (
		errs        []error
		errCount    int
		warnCount   int
		sawProblems bool
	)

	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)

			continue
		}

		if r.fixApplied {
			if err := os.WriteFile(r.path, r.fixedBuf, 0o644); err != nil { //nolint:gosec,mnd // standard file mode for text sources.
				errs = append(errs, fmt.Errorf("write %s: %w", r.path, err))

				continue
			}
		}

		ds := filterDiagnostics(r.outcome.Diagnostics, noWarnings)
		if len(ds) > 0 {
			sawProblems = true
		}

		for _, d := range ds {
			if d.Level == diag.Error {
				errCount++
			} else {
				warnCount++
			}
		}

		if colored {
			render.Colored(out, r.path, ds, styles)
		} else {
			render.Parsable(out, r.path, ds)
		}
	}

	render.Summary(out, errCount, warnCount)

	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if sawProblems {
		return errProblemsFound
	}

	return nil
}

// filterDiagnostics drops everything below error level when
// noWarnings is set, per spec.md's supplemented "--no-warnings" flag.
func filterDiagnostics(ds []diag.Diagnostic, noWarnings bool) []diag.Diagnostic {
	if !noWarnings {
		return ds
	}

	out := make([]diag.Diagnostic, 0, len(ds))

	for _, d := range ds {
		if d.Level == diag.Error {
			out = append(out, d)
		}
	}

	return out
}
