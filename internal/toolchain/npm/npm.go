// Package npm initializes the script half of a project: package.json,
// jest and TypeScript tooling.
package npm

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/solanainit/cli/internal/config"
	oerrors "github.com/solanainit/cli/internal/errors"
	"github.com/solanainit/cli/internal/fsutil"
	"github.com/solanainit/cli/internal/output"
	"github.com/solanainit/cli/internal/runner"
	"github.com/solanainit/cli/internal/toolchain"
)

// ManifestFile is the package manifest written by npm init.
const ManifestFile = "package.json"

// Fixed package.json sections.
const (
	directoriesJSON = `{"test":"tests"}`
	scriptsJSON     = `{"test":"jest","test:watch":"jest --watch","test:coverage":"jest --coverage"}`
)

var prettyOptions = &pretty.Options{
	Width:  80,
	Prefix: "",
	Indent: "  ",
}

// Initializer runs npm inside a project directory.
type Initializer struct {
	Runner runner.CommandRunner

	// Command overrides the npm executable. Empty uses cfg.Commands.Npm.
	Command string
}

// Setup runs init, dev dependency install, dependency install and the
// manifest patch in that order. The first failure stops the sequence.
func (i *Initializer) Setup(ctx context.Context, dir string, cfg config.ProjectConfig) error {
	steps := []func(context.Context, string, config.ProjectConfig) error{
		i.Initialize,
		i.InstallDevDependencies,
		i.InstallDependencies,
		func(context.Context, string, config.ProjectConfig) error { return PatchManifestFile(dir) },
	}
	for _, step := range steps {
		if err := step(ctx, dir, cfg); err != nil {
			return err
		}
	}
	return nil
}

// Initialize runs npm init -y in dir.
func (i *Initializer) Initialize(ctx context.Context, dir string, cfg config.ProjectConfig) error {
	return toolchain.Run(ctx, i.Runner, "npm init", i.command(cfg), []string{"init", "-y"}, dir)
}

// InstallDevDependencies installs cfg.ScriptDevDependencies with --save-dev
// in one invocation. An empty group runs nothing.
func (i *Initializer) InstallDevDependencies(ctx context.Context, dir string, cfg config.ProjectConfig) error {
	names := sortedNames(cfg.ScriptDevDependencies)
	if len(names) == 0 {
		output.Debug("no dev dependencies to install")
		return nil
	}

	args := append([]string{"install", "--save-dev"}, names...)
	return toolchain.Run(ctx, i.Runner, "npm install dev dependencies", i.command(cfg), args, dir)
}

// InstallDependencies installs cfg.ScriptDependencies in one invocation.
// An empty group runs nothing.
func (i *Initializer) InstallDependencies(ctx context.Context, dir string, cfg config.ProjectConfig) error {
	names := sortedNames(cfg.ScriptDependencies)
	if len(names) == 0 {
		output.Debug("no dependencies to install")
		return nil
	}

	args := append([]string{"install"}, names...)
	return toolchain.Run(ctx, i.Runner, "npm install dependencies", i.command(cfg), args, dir)
}

func (i *Initializer) command(cfg config.ProjectConfig) string {
	if i.Command != "" {
		return i.Command
	}
	if cfg.Commands.Npm != "" {
		return cfg.Commands.Npm
	}
	return "npm"
}

// PatchManifest replaces the directories and scripts sections of a
// package.json document and pretty-prints it with two-space indentation.
// Other fields keep their order.
func PatchManifest(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, oerrors.NewConfigError(ManifestFile+" is not a JSON object", nil)
	}

	patched, err := sjson.SetRawBytes(data, "directories", []byte(directoriesJSON))
	if err != nil {
		return nil, oerrors.NewConfigError("setting directories in "+ManifestFile, err)
	}

	patched, err = sjson.SetRawBytes(patched, "scripts", []byte(scriptsJSON))
	if err != nil {
		return nil, oerrors.NewConfigError("setting scripts in "+ManifestFile, err)
	}

	return pretty.PrettyOptions(patched, prettyOptions), nil
}

// PatchManifestFile patches dir/package.json in place.
func PatchManifestFile(dir string) error {
	path := filepath.Join(dir, ManifestFile)

	data, err := fsutil.ReadFile(path)
	if err != nil {
		return err
	}

	patched, err := PatchManifest(data)
	if err != nil {
		return err
	}

	output.Debug("patched manifest", "path", path)
	return fsutil.WriteFile(path, patched, fsutil.FilePerm)
}

// sortedNames returns the package names of deps in lexical order.
func sortedNames(deps map[string]string) []string {
	names := lo.Keys(deps)
	slices.Sort(names)
	return names
}
