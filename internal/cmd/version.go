package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/solanainit/cli/internal/output"
	"github.com/solanainit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show solanainit version information.

Displays:
  - solanainit version, commit, and build date
  - CUE SDK version used for config validation
  - versions of the configured cargo and npm commands`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	cfg, err := loadProjectConfig(GetConfigFlag())
	if err != nil {
		return err
	}

	commands := cfg.Commands
	tools := lo.Map(version.RequiredTools(commands.Cargo, commands.Npm), func(t version.Tool, _ int) version.ToolInfo {
		return version.DetectTool(cmd.Context(), t)
	})

	output.Println(version.FullVersionString(version.Get(), tools))
	return nil
}
