package config

import (
	"embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/Masterminds/semver/v3"
)

//go:embed schema.cue
var schemaFS embed.FS

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
// The message stays on one line so it can be shown after "Error: ".
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, err.Error())
	}
	return "config validation failed: " + strings.Join(parts, "; ")
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
	file   cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaData)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema is missing #Config")
	}

	file := schema.LookupPath(cue.ParsePath("#File"))
	if !file.Exists() {
		return nil, fmt.Errorf("schema is missing #File")
	}

	return &Validator{
		ctx:    ctx,
		schema: def,
		file:   file,
	}, nil
}

// Validate checks cfg against the schema and the rules the schema cannot express.
func (v *Validator) Validate(cfg ProjectConfig) error {
	var errs ValidationErrors

	value := v.ctx.Encode(cfg)
	if value.Err() != nil {
		return fmt.Errorf("encoding config: %w", value.Err())
	}

	if err := v.schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		for _, e := range cueerrors.Errors(err) {
			format, args := e.Msg()
			errs = append(errs, ValidationError{
				Field:   fieldPath(e),
				Message: fmt.Sprintf(format, args...),
			})
		}
	}

	if _, err := semver.StrictNewVersion(cfg.CompiledRuntimeVersion); err != nil {
		errs = append(errs, ValidationError{
			Field:   "solanaVersion",
			Message: fmt.Sprintf("must be a semantic version (MAJOR.MINOR.PATCH): %v", err),
		})
	}

	errs = append(errs, validateDependencyKeys("cargoDependencies", cfg.CompiledDependencies)...)
	errs = append(errs, validateDependencyKeys("npmDevDependencies", cfg.ScriptDevDependencies)...)
	errs = append(errs, validateDependencyKeys("npmDependencies", cfg.ScriptDependencies)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateFileValues checks raw config file values keyed by top-level field.
// Versions must be written as strings: unquoted, 2.10 would decode as "2.1".
func (v *Validator) ValidateFileValues(values map[string]any) error {
	value := v.ctx.Encode(values)
	if value.Err() != nil {
		return fmt.Errorf("encoding config file values: %w", value.Err())
	}

	err := v.file.Unify(value).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		errs = append(errs, ValidationError{
			Field:   fieldPath(e),
			Message: "must be a quoted string",
		})
	}
	return errs
}

// fieldPath returns the config field an error refers to, without the schema definition.
func fieldPath(e cueerrors.Error) string {
	path := e.Path()
	if len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	return strings.Join(path, ".")
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	loader := NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return v.Validate(cfg)
}

// validateDependencyKeys rejects blank dependency names.
func validateDependencyKeys(field string, deps map[string]string) ValidationErrors {
	for name := range deps {
		if strings.TrimSpace(name) == "" {
			return ValidationErrors{{
				Field:   field,
				Message: "dependency name must not be empty",
			}}
		}
	}

	return nil
}
