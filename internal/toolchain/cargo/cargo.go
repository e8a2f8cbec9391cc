// Package cargo initializes the compiled-library half of a project.
package cargo

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"

	"github.com/solanainit/cli/internal/config"
	oerrors "github.com/solanainit/cli/internal/errors"
	"github.com/solanainit/cli/internal/fsutil"
	"github.com/solanainit/cli/internal/output"
	"github.com/solanainit/cli/internal/runner"
	"github.com/solanainit/cli/internal/toolchain"
)

// ManifestFile is the crate manifest written by cargo init.
const ManifestFile = "Cargo.toml"

// Initializer runs cargo init and patches the resulting manifest.
type Initializer struct {
	Runner runner.CommandRunner

	// Command overrides the cargo executable. Empty uses cfg.Commands.Cargo.
	Command string
}

// Initialize creates a library crate in targetDir and patches its Cargo.toml.
func (i *Initializer) Initialize(ctx context.Context, targetDir string, cfg config.ProjectConfig) error {
	name := i.command(cfg)
	args := []string{"init", "--lib", "--vcs", "none", targetDir}

	if err := toolchain.Run(ctx, i.Runner, "cargo init", name, args, ""); err != nil {
		return err
	}

	return PatchManifestFile(targetDir, cfg)
}

func (i *Initializer) command(cfg config.ProjectConfig) string {
	if i.Command != "" {
		return i.Command
	}
	if cfg.Commands.Cargo != "" {
		return cfg.Commands.Cargo
	}
	return "cargo"
}

// PatchManifest applies the Solana settings to a Cargo.toml text.
//
// Each edit is guarded by a substring check, so applying the patch to its own
// output changes nothing. The checks are textual: a dependency whose name
// followed by " =" already appears anywhere in the text is not added, even if
// that text belongs to a different key. Inserted lines are encoded with go-toml.
func PatchManifest(text string, cfg config.ProjectConfig) (string, error) {
	if !strings.Contains(text, "cargo-features") {
		line, err := tomlLine("cargo-features", nonNil(cfg.Manifest.Features))
		if err != nil {
			return "", err
		}
		text = line + "\n" + text
	}

	if !strings.Contains(text, "[lib]") {
		line, err := tomlLine("crate-type", nonNil(cfg.Manifest.CrateTypes))
		if err != nil {
			return "", err
		}
		lib := "\n[lib]\n" + line
		if idx := strings.Index(text, "\n[dependencies]"); idx >= 0 {
			text = text[:idx] + lib + text[idx:]
		} else {
			text += lib
		}
	}

	if !strings.Contains(text, "[dependencies]") {
		text += "\n[dependencies]\n"
	}

	names := lo.Keys(cfg.CompiledDependencies)
	slices.Sort(names)
	for _, name := range names {
		if strings.Contains(text, name+" =") {
			continue
		}
		line, err := tomlLine(name, cfg.CompiledDependencies[name])
		if err != nil {
			return "", err
		}
		text += line
	}

	return text, nil
}

// PatchManifestFile patches dir/Cargo.toml in place. The patched text must
// still parse as TOML.
func PatchManifestFile(dir string, cfg config.ProjectConfig) error {
	path := filepath.Join(dir, ManifestFile)

	data, err := fsutil.ReadFile(path)
	if err != nil {
		return err
	}

	patched, err := PatchManifest(string(data), cfg)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := toml.Unmarshal([]byte(patched), &doc); err != nil {
		return oerrors.NewConfigError("patched "+ManifestFile+" is not valid TOML", err)
	}

	output.Debug("patched manifest", "path", path, "dependencies", len(cfg.CompiledDependencies))
	return fsutil.WriteFile(path, []byte(patched), fsutil.FilePerm)
}

// CrateName returns package.name from dir/Cargo.toml.
func CrateName(dir string) (string, error) {
	path := filepath.Join(dir, ManifestFile)

	data, err := fsutil.ReadFile(path)
	if err != nil {
		return "", err
	}

	var manifest struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return "", oerrors.NewConfigError("parsing "+ManifestFile, err)
	}
	return manifest.Package.Name, nil
}

// tomlLine encodes a single key = value line, newline included.
func tomlLine(key string, value any) (string, error) {
	data, err := toml.Marshal(map[string]any{key: value})
	if err != nil {
		return "", oerrors.NewConfigError("encoding "+key+" for "+ManifestFile, err)
	}
	return string(data), nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
