package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/solanainit/cli/internal/config"
	oerrors "github.com/solanainit/cli/internal/errors"
	"github.com/solanainit/cli/internal/fsutil"
	"github.com/solanainit/cli/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the built-in project defaults to ~/.solanainit/config.yaml.

Edit the file to change dependency versions, the program template, or the
TypeScript and jest settings. Fields left out fall back to the defaults; an
empty map clears a dependency group.

Examples:
  # Initialize configuration
  solanainit config init

  # Overwrite existing configuration
  solanainit config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return oerrors.NewIOError("resolve", "home directory", err)
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return oerrors.NewUsageError("configuration already exists at " + paths.ConfigFile +
			" (use --force to overwrite)")
	}

	data, err := config.EncodeYAML(config.Default())
	if err != nil {
		return oerrors.NewConfigError("encoding default configuration", err)
	}

	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return oerrors.NewIOError("mkdir", paths.HomeDir, err)
	}

	if err := fsutil.WriteFile(paths.ConfigFile, data, 0o600); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + output.StyleNoun.Render(paths.ConfigFile)))
	output.Println("Validate with: solanainit config vet")

	return nil
}
