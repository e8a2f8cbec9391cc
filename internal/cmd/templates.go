package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solanainit/cli/internal/output"
	"github.com/solanainit/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List program templates",
		Long: `List the program templates available for src/lib.rs.

Select one with --template, SOLANAINIT_TEMPLATE, or programTemplate in the
config file. Unknown names fall back to the default template.`,
		Args: cobra.NoArgs,
		RunE: runTemplates,
	}
}

func runTemplates(_ *cobra.Command, _ []string) error {
	for _, t := range templates.ProgramTemplates() {
		marker := ""
		if t.Default {
			marker = " (default)"
		}
		name := fmt.Sprintf("%-14s", t.Name)
		output.Println("  " + output.StyleNoun.Render(name) + t.Description + output.StyleDim.Render(marker))
	}
	return nil
}
