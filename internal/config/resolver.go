package config

import (
	"os"

	"github.com/solanainit/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// templateEnvVar selects the program template from the environment.
const templateEnvVar = "SOLANAINIT_TEMPLATE"

// ResolvedValue records a resolved setting, its source, and what it shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveTemplateOptions contains options for program template resolution.
type ResolveTemplateOptions struct {
	// FlagValue is the --template flag value (empty if not set).
	FlagValue string
	// ConfigValue is the programTemplate value from the config file.
	ConfigValue string
}

// ResolveTemplate resolves the program template using precedence:
// (1) --template flag, (2) SOLANAINIT_TEMPLATE env, (3) config file, (4) default.
// A config value equal to the default counts as the default.
func ResolveTemplate(opts ResolveTemplateOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      "programTemplate",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(templateEnvVar)
	configValue := opts.ConfigValue
	if configValue == DefaultProgramTemplate {
		configValue = ""
	}

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = DefaultProgramTemplate
		result.Source = SourceDefault
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SOLANAINIT_CONFIG env, (3) ~/.solanainit/config.yaml.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("SOLANAINIT_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
