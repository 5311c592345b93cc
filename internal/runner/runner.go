// Package runner orchestrates the load -> resolve -> report pipeline.
package runner

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/donaldgifford/prettierstep/internal/config"
	"github.com/donaldgifford/prettierstep/internal/logging"
	"github.com/donaldgifford/prettierstep/internal/step"
	"github.com/donaldgifford/prettierstep/internal/steps"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitStepError = 1
	ExitError     = 2
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures the runner behavior.
type Options struct {
	// Steps restricts the run to the named steps. Empty means all.
	Steps      []string
	ConfigPath string
	// Check resolves steps without writing anything to the build dir.
	Check    bool
	Format   string
	LogLevel string
	// LogFormat overrides the config's log_format ("text" or "json").
	LogFormat string
	Quiet     bool
	Stdout    io.Writer
	Stderr    io.Writer
	FS        afero.Fs
	Logger    logging.Logger
}

// Run resolves every selected step and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.Format != FormatText && opts.Format != FormatJSON {
		writeErr(opts.Stderr, "prettierstep: unknown format %q (want %s or %s)\n", opts.Format, FormatText, FormatJSON)
		return ExitError
	}

	if opts.LogLevel != "" && !slices.Contains(config.ValidLogLevels(), opts.LogLevel) {
		writeErr(opts.Stderr, "prettierstep: unknown log level %q (want one of: %s)\n", opts.LogLevel, strings.Join(config.ValidLogLevels(), ", "))
		return ExitError
	}
	if opts.LogFormat != "" && !slices.Contains(config.ValidLogFormats(), opts.LogFormat) {
		writeErr(opts.Stderr, "prettierstep: unknown log format %q (want one of: %s)\n", opts.LogFormat, strings.Join(config.ValidLogFormats(), ", "))
		return ExitError
	}

	cfg, err := config.LoadFS(opts.FS, opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "prettierstep: %v\n", err)
		return ExitError
	}
	if err := cfg.Validate(); err != nil {
		writeErr(opts.Stderr, "prettierstep: invalid config: %v\n", err)
		return ExitError
	}

	log := opts.Logger
	if log == nil {
		level := cfg.LogLevel
		if opts.LogLevel != "" {
			level = opts.LogLevel
		}
		if opts.Quiet {
			level = logging.LevelError
		}
		format := cfg.LogFormat
		if opts.LogFormat != "" {
			format = opts.LogFormat
		}
		log = logging.New(logging.Config{Level: level, Output: opts.Stderr, JSON: format == FormatJSON})
	}

	selected, err := selectSteps(cfg, opts.Steps)
	if err != nil {
		writeErr(opts.Stderr, "prettierstep: %v\n", err)
		return ExitError
	}
	if len(selected) == 0 {
		log.Warn("no steps declared", "base_dir", cfg.BaseDir)
		return ExitOK
	}

	env := steps.NewEnv(opts.FS, cfg.BaseDir, cfg.BuildDir)
	loc := env.Locator()
	log.Debug("resolving steps", "count", len(selected), "base_dir", loc.BaseDir(), "build_dir", loc.BuildDir())

	exitCode := ExitOK
	reports := make([]*Report, 0, len(selected))
	for _, decl := range selected {
		r := runStep(opts, env, decl, log.With("step", decl.Name))
		if r.Err != nil {
			exitCode = ExitStepError
		}
		reports = append(reports, r)
	}

	if err := writeReports(opts.Stdout, opts.Format, cfg.BaseDir, reports); err != nil {
		writeErr(opts.Stderr, "prettierstep: %v\n", err)
		return ExitError
	}
	return exitCode
}

func selectSteps(cfg *config.Config, names []string) ([]*config.Step, error) {
	if len(names) == 0 {
		out := make([]*config.Step, 0, len(cfg.Steps))
		for i := range cfg.Steps {
			out = append(out, &cfg.Steps[i])
		}
		return out, nil
	}

	out := make([]*config.Step, 0, len(names))
	for _, name := range names {
		s, ok := cfg.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("no step named %q", name)
		}
		out = append(out, s)
	}
	return out, nil
}

func runStep(opts *Options, env *steps.Env, decl *config.Step, log logging.Logger) *Report {
	factory, err := steps.For(decl)
	if err != nil {
		log.Error("unsupported step", "err", err)
		return &Report{Step: decl.Name, Err: err}
	}

	formatterStep, err := factory.NewFormatterStep(decl, env)
	if err != nil {
		log.Error("step resolution failed", "kind", factory.Kind(), "err", err)
		return &Report{Step: decl.Name, Kind: factory.Kind(), Err: err}
	}

	r := newReport(decl.Name, factory.Kind(), formatterStep)

	ps, ok := formatterStep.(*step.PrettierStep)
	if !ok {
		return r
	}

	fingerprint, err := ps.Fingerprint()
	if err != nil {
		log.Error("fingerprint failed", "err", err)
		r.Err = err
		return r
	}
	r.Fingerprint = fingerprint

	if opts.Check {
		log.Debug("resolved", "fingerprint", fingerprint)
		return r
	}

	if err := ps.Prepare(); err != nil {
		log.Error("preparing node modules dir failed", "dir", ps.NodeModulesDir(), "err", err)
		r.Err = err
		return r
	}
	log.Info("prepared", "dir", ps.NodeModulesDir())
	return r
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
