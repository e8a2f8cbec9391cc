package cmd

import (
	"github.com/spf13/cobra"

	"github.com/solanainit/cli/internal/config"
	oerrors "github.com/solanainit/cli/internal/errors"
	"github.com/solanainit/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet [file]",
		Short: "Validate configuration",
		Long: `Validate a configuration file against the built-in schema.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Field types match the schema
  4. solanaVersion is a semantic version and dependency names are not empty

The config path is resolved using precedence:
  [file] argument > --config flag > SOLANAINIT_CONFIG env > ~/.solanainit/config.yaml

Examples:
  # Validate default configuration
  solanainit config vet

  # Validate a specific file
  solanainit config vet ./team-defaults.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(_ *cobra.Command, args []string) error {
	flagValue := GetConfigFlag()
	if len(args) == 1 {
		flagValue = args[0]
	}

	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: flagValue,
	})
	if err != nil {
		return oerrors.NewConfigError("could not resolve config path", err)
	}

	configPath := pathResult.Value
	output.Debug("validating config",
		"path", configPath,
		"source", pathResult.Source,
	)

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return oerrors.NewConfigError("checking "+configPath, err)
	}
	if !exists {
		return oerrors.NewConfigError("configuration file not found: "+configPath+
			" (run 'solanainit config init' to create it)", nil)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return oerrors.NewConfigError("loading schema", err)
	}

	if err := validator.ValidateFile(configPath); err != nil {
		return oerrors.NewConfigError(configPath, err)
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + configPath))
	return nil
}
