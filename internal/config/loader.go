package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Environment variable prefix for solanainit configuration.
const envPrefix = "SOLANAINIT"

// keyDelimiter replaces viper's default "." so dependency names such as
// "@solana/web3.js" survive as single map keys.
const keyDelimiter = "::"

// Loader reads a YAML override file on top of Default().
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	v.SetEnvPrefix(envPrefix)
	_ = v.BindEnv("solanaVersion", "SOLANAINIT_SOLANA_VERSION")
	_ = v.BindEnv("commands"+keyDelimiter+"cargo", "SOLANAINIT_CARGO")
	_ = v.BindEnv("commands"+keyDelimiter+"npm", "SOLANAINIT_NPM")

	return &Loader{v: v}
}

// Load returns Default() overlaid with the given config file and environment.
// If configFile is empty, the default config file path is used.
// A missing file is not an error. Maps present in the file replace the
// default wholesale, so an empty map clears a dependency group.
func (l *Loader) Load(configFile string) (ProjectConfig, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return ProjectConfig{}, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return ProjectConfig{}, fmt.Errorf("reading config file: %w", err)
		}
	} else if err := l.checkFileValues(); err != nil {
		return ProjectConfig{}, err
	}

	cfg := Default()
	if err := l.v.Unmarshal(&cfg, decoderOptions); err != nil {
		return ProjectConfig{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	l.clearEmptyGroups(&cfg)

	return cfg, nil
}

// stringFields are decoded weakly, so their raw file values are checked first.
var stringFields = []string{
	"solanaVersion",
	"programTemplate",
	"cargoDependencies",
	"npmDevDependencies",
	"npmDependencies",
}

// checkFileValues rejects file values that decoding would silently convert.
func (l *Loader) checkFileValues() error {
	values := make(map[string]any)
	for _, key := range stringFields {
		if l.v.IsSet(key) {
			values[key] = l.v.Get(key)
		}
	}

	validator, err := NewValidator()
	if err != nil {
		return err
	}
	return validator.ValidateFileValues(values)
}

// clearEmptyGroups empties dependency groups the file sets to {}.
// Viper drops empty maps when flattening settings, so Unmarshal never sees them.
func (l *Loader) clearEmptyGroups(cfg *ProjectConfig) {
	groups := map[string]*map[string]string{
		"cargoDependencies":  &cfg.CompiledDependencies,
		"npmDevDependencies": &cfg.ScriptDevDependencies,
		"npmDependencies":    &cfg.ScriptDependencies,
	}
	for key, group := range groups {
		if l.v.IsSet(key) && len(l.v.GetStringMapString(key)) == 0 {
			*group = map[string]string{}
		}
	}
}

// LoadAndValidate loads configuration and validates it.
func (l *Loader) LoadAndValidate(configFile string) (ProjectConfig, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return ProjectConfig{}, err
	}

	validator, err := NewValidator()
	if err != nil {
		return ProjectConfig{}, err
	}
	if err := validator.Validate(cfg); err != nil {
		return ProjectConfig{}, err
	}

	return cfg, nil
}

// ConfigFileUsed returns the file the last Load read from.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// decoderOptions decodes by json tag and replaces maps instead of merging into them.
func decoderOptions(dc *mapstructure.DecoderConfig) {
	dc.TagName = "json"
	dc.ZeroFields = true
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
