// Package cmd provides CLI command implementations.
package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/solanainit/cli/internal/errors"
	"github.com/solanainit/cli/internal/output"
	"github.com/solanainit/cli/internal/templates"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Generation flags
	templateFlag string
)

// NewRootCmd creates the root command for the solanainit CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "solanainit <path>",
		Short: "Scaffold a Solana program with a TypeScript test harness",
		Long: `solanainit creates a Solana program crate and a jest/TypeScript test module
in a new directory.

The directory must not exist or must be empty. cargo and npm must be on PATH.

Generated files:
  Cargo.toml              Crate manifest with solana-program and [lib] crate-type
  src/lib.rs              Program entry point (see 'solanainit templates')
  package.json            npm manifest with jest scripts
  tsconfig.json           TypeScript configuration
  jest.config.js          Jest configuration
  tests/example.test.ts   Sample test
  .gitignore              Ignore patterns for cargo and npm

Configuration is read from ~/.solanainit/config.yaml when present
(override with --config or SOLANAINIT_CONFIG).

Examples:
  # Create a hello world program
  solanainit ./pdademo

  # Use the counter template
  solanainit ./counter --template counter`,
		Args:          exactlyOnePath,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeGlobals(cmd)
			return nil
		},
		RunE: runGenerate,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: SOLANAINIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.Flags().StringVarP(&templateFlag, "template", "t", "",
		"Program template: "+strings.Join(templates.ProgramTemplateNames(), ", ")+" (env: SOLANAINIT_TEMPLATE)")
	_ = rootCmd.RegisterFlagCompletionFunc("template", completeTemplateNames)

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func completeTemplateNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return templates.ProgramTemplateNames(), cobra.ShellCompDirectiveNoFileComp
}

// exactlyOnePath reports a usage error unless exactly one project path is given.
func exactlyOnePath(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		if args[0] == "" {
			return oerrors.NewUsageError("project path must not be empty")
		}
		return nil
	case 0:
		return oerrors.NewUsageError("no path provided (usage: solanainit <path>)")
	default:
		return oerrors.NewUsageError("expected exactly one path, got " + strconv.Itoa(len(args)))
	}
}

// initializeGlobals sets up logging from the global flags.
func initializeGlobals(cmd *cobra.Command) {
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	// Resolve timestamps: flag (if explicitly set) > default (nil = true)
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	}

	output.SetupLogging(logCfg)
}

// GetConfigFlag returns the raw --config flag value.
func GetConfigFlag() string {
	return configFlag
}
