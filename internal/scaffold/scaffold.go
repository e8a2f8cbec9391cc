// Package scaffold drives generation of a new Solana project directory.
package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/solanainit/cli/internal/config"
	oerrors "github.com/solanainit/cli/internal/errors"
	"github.com/solanainit/cli/internal/fsutil"
	"github.com/solanainit/cli/internal/output"
	"github.com/solanainit/cli/internal/runner"
	"github.com/solanainit/cli/internal/templates"
	"github.com/solanainit/cli/internal/toolchain/cargo"
	"github.com/solanainit/cli/internal/toolchain/npm"
)

// Step names used in logs and progress lines.
const (
	stepDirectory = "directory"
	stepCargo     = "cargo"
	stepNpm       = "npm"
	stepFiles     = "files"
)

// Options configures an Orchestrator.
type Options struct {
	// TargetDir is the project directory. It must be absent or empty.
	TargetDir string

	Config config.ProjectConfig

	// Runner executes cargo and npm.
	Runner runner.CommandRunner

	// ShowProgress prints a status line per step and shows a spinner on terminals.
	ShowProgress bool
}

// FileEntry is a file the run produced, relative to the target directory.
type FileEntry struct {
	Path        string
	Description string
}

// Result describes a completed run.
type Result struct {
	TargetDir string

	// CrateName is package.name from the generated Cargo.toml, if it could be read.
	CrateName string

	// ProgramTemplate is the template actually rendered into src/lib.rs.
	ProgramTemplate string

	RuntimeVersion string

	// Files lists the manifests and rendered artifacts.
	Files []FileEntry
}

// FileMap returns Files keyed by path, for tree rendering.
func (r *Result) FileMap() map[string]string {
	m := make(map[string]string, len(r.Files))
	for _, f := range r.Files {
		m[f.Path] = f.Description
	}
	return m
}

// Orchestrator generates one project. It is not reusable.
type Orchestrator struct {
	opts  Options
	cargo *cargo.Initializer
	npm   *npm.Initializer
	state State
}

// New creates an Orchestrator for opts.
func New(opts Options) *Orchestrator {
	return &Orchestrator{
		opts:  opts,
		cargo: &cargo.Initializer{Runner: opts.Runner},
		npm:   &npm.Initializer{Runner: opts.Runner},
	}
}

// State returns the last state reached.
func (o *Orchestrator) State() State {
	return o.state
}

// Run generates the project. The first failing step aborts the run and its
// error is returned unchanged; nothing already written is removed.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	if o.state != StateUninitialized {
		return nil, errors.New("orchestrator has already run")
	}

	dir := o.opts.TargetDir
	cfg := o.opts.Config

	ok, err := fsutil.IsAbsentOrEmptyDir(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &oerrors.DirectoryExistsError{Path: dir}
	}

	result := &Result{
		TargetDir:       dir,
		ProgramTemplate: templates.Resolve(cfg.ProgramTemplate).Name,
		RuntimeVersion:  cfg.CompiledRuntimeVersion,
	}

	steps := []struct {
		name  string
		title string
		next  State
		run   func(context.Context) error
	}{
		{stepDirectory, "Creating project directory...", StateDirectoryCreated, o.createDirectory},
		{stepCargo, "Initializing cargo library...", StateCompiledToolchainReady, func(ctx context.Context) error {
			return o.cargo.Initialize(ctx, dir, cfg)
		}},
		{stepNpm, "Installing npm packages...", StateScriptToolchainReady, func(ctx context.Context) error {
			return o.npm.Setup(ctx, dir, cfg)
		}},
		{stepFiles, "Writing project files...", StateFilesMaterialized, func(context.Context) error {
			files, err := o.materialize()
			result.Files = append(result.Files, files...)
			return err
		}},
	}

	for _, s := range steps {
		if err := o.runStep(ctx, s.name, s.title, s.run); err != nil {
			return nil, err
		}
		o.state = s.next
	}

	result.Files = append([]FileEntry{
		{Path: cargo.ManifestFile, Description: "Crate manifest"},
		{Path: npm.ManifestFile, Description: "Package manifest"},
	}, result.Files...)

	name, err := cargo.CrateName(dir)
	if err != nil {
		output.Debug("could not read crate name", "err", err)
	}
	result.CrateName = name

	o.state = StateDone
	return result, nil
}

func (o *Orchestrator) runStep(ctx context.Context, name, title string, run func(context.Context) error) error {
	log := output.StepLogger(name)
	log.Debug("starting", "state", o.state)

	action := func() error { return run(ctx) }

	var err error
	if o.opts.ShowProgress {
		err = output.RunWithSpinner(ctx, action, output.WithTitle(title))
	} else {
		err = action()
	}

	if err != nil {
		log.Debug("failed", "err", err)
		if o.opts.ShowProgress {
			output.Println(output.FormatStepLine(name, output.StatusFailed))
			var exitErr *runner.ExitError
			if errors.As(err, &exitErr) && exitErr.Output != "" {
				output.Println(output.StyleDim.Render(exitErr.Output))
			}
		}
		return err
	}

	log.Debug("finished")
	if o.opts.ShowProgress {
		output.Println(output.FormatStepLine(name, output.StatusDone))
	}
	return nil
}

func (o *Orchestrator) createDirectory(context.Context) error {
	if err := os.MkdirAll(o.opts.TargetDir, fsutil.DirPerm); err != nil {
		return oerrors.NewIOError("mkdir", o.opts.TargetDir, err)
	}
	return nil
}

// materialize writes every rendered artifact and returns those written.
func (o *Orchestrator) materialize() ([]FileEntry, error) {
	artifacts, err := templates.Artifacts(o.opts.Config)
	if err != nil {
		return nil, err
	}

	written := make([]FileEntry, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(o.opts.TargetDir, filepath.FromSlash(a.Path))
		if err := fsutil.WriteFile(path, a.Content, fsutil.FilePerm); err != nil {
			return written, err
		}
		written = append(written, FileEntry{Path: a.Path, Description: a.Description})
	}
	return written, nil
}
