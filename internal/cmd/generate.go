package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/solanainit/cli/internal/config"
	oerrors "github.com/solanainit/cli/internal/errors"
	"github.com/solanainit/cli/internal/output"
	"github.com/solanainit/cli/internal/runner"
	"github.com/solanainit/cli/internal/scaffold"
	"github.com/solanainit/cli/internal/templates"
)

// newRunner builds the command runner for a generation run. Tests replace it.
var newRunner = func(quiet bool) runner.CommandRunner {
	return &runner.ExecRunner{Quiet: quiet}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	targetDir := args[0]

	cfg, err := loadProjectConfig(GetConfigFlag())
	if err != nil {
		return err
	}

	tmpl := config.ResolveTemplate(config.ResolveTemplateOptions{
		FlagValue:   templateFlag,
		ConfigValue: cfg.ProgramTemplate,
	})
	config.LogResolvedValues([]config.ResolvedValue{tmpl})

	if !templates.IsKnownProgramTemplate(tmpl.Value) {
		output.Warn("unknown program template, using default",
			"template", tmpl.Value,
			"default", config.DefaultProgramTemplate,
		)
	}
	cfg.ProgramTemplate = tmpl.Value

	// A spinner owns the terminal while it runs, so child output is captured instead.
	spinnerActive := output.IsTTY() && !output.IsVerbose()

	orchestrator := scaffold.New(scaffold.Options{
		TargetDir:    targetDir,
		Config:       cfg,
		Runner:       newRunner(spinnerActive),
		ShowProgress: true,
	})

	result, err := orchestrator.Run(cmd.Context())
	if err != nil {
		output.Debug("generation stopped", "state", orchestrator.State(), "err", err)
		return err
	}

	printSummary(result)
	return nil
}

// loadProjectConfig resolves the config path, then loads and validates the file.
// An explicitly requested file must exist; the default file is optional.
func loadProjectConfig(flagValue string) (config.ProjectConfig, error) {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: flagValue,
	})
	if err != nil {
		return config.ProjectConfig{}, oerrors.NewConfigError("could not resolve config path", err)
	}
	config.LogResolvedValues([]config.ResolvedValue{pathResult})

	if pathResult.Source != config.SourceDefault {
		exists, err := config.ConfigFileExists(pathResult.Value)
		if err != nil {
			return config.ProjectConfig{}, oerrors.NewConfigError("checking "+pathResult.Value, err)
		}
		if !exists {
			return config.ProjectConfig{}, oerrors.NewConfigError("config file not found: "+pathResult.Value, nil)
		}
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadAndValidate(pathResult.Value)
	if err != nil {
		return config.ProjectConfig{}, oerrors.NewConfigError(pathResult.Value, err)
	}
	if used := loader.ConfigFileUsed(); used != "" {
		output.Debug("loaded config", "path", used)
	}

	return cfg, nil
}

func printSummary(result *scaffold.Result) {
	absDir, err := filepath.Abs(result.TargetDir)
	if err != nil {
		absDir = result.TargetDir
	}

	name := result.CrateName
	if name == "" {
		name = filepath.Base(absDir)
	}

	output.Println("")
	output.Println(output.FormatCheckmark(fmt.Sprintf("Created Solana project %s in %s",
		output.StyleNoun.Render(name), absDir)))
	output.Println(output.StyleDim.Render(fmt.Sprintf("  program template: %s, solana: %s",
		result.ProgramTemplate, result.RuntimeVersion)))
	output.Println("")
	output.Print(output.RenderFileTree(filepath.Base(absDir), result.FileMap()))
	output.Println("")
	output.Println(output.StyleSummary.Render("Next steps:"))
	output.Println("  cd " + result.TargetDir)
	output.Println("  cargo build-sbf")
	output.Println("  npm test")
}
