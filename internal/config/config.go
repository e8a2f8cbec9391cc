// Package config provides the project generation configuration and its loading.
package config

// DefaultProgramTemplate is the program template used when none is configured.
const DefaultProgramTemplate = "hello_world"

// TypeCheckConfig drives generation of tsconfig.json.
type TypeCheckConfig struct {
	// Target is the emitted language level (e.g. "ES2020").
	Target string `json:"target"`

	// Module is the module format (e.g. "commonjs").
	Module string `json:"module"`

	// Lib is the library surface list, embedded verbatim as a JSON array.
	Lib []string `json:"lib"`

	Strict bool   `json:"strict"`
	OutDir string `json:"outDir"`

	RootDir string `json:"rootDir"`
}

// TestRunnerConfig drives generation of jest.config.js.
type TestRunnerConfig struct {
	// Preset is the jest preset name; it is also the transform for .ts files.
	Preset string `json:"preset"`

	// TestEnvironment is the jest test environment name.
	TestEnvironment string `json:"testEnvironment"`

	// TestMatch lists test-file glob patterns in order.
	TestMatch []string `json:"testMatch"`

	// ModuleFileExtensions lists recognized file extensions in order.
	ModuleFileExtensions []string `json:"moduleFileExtensions"`
}

// CompiledManifestConfig holds the values patched into Cargo.toml besides dependencies.
type CompiledManifestConfig struct {
	// Features is the cargo-features list prepended when absent.
	Features []string `json:"features"`

	// CrateTypes is the [lib] crate-type list inserted when absent.
	CrateTypes []string `json:"crateTypes"`
}

// CommandsConfig names the external executables.
type CommandsConfig struct {
	// Cargo is the compiled-library toolchain executable.
	Cargo string `json:"cargo"`

	// Npm is the script toolchain executable.
	Npm string `json:"npm"`
}

// ProjectConfig is the full set of generation parameters for one run.
// It is built once, passed explicitly through the pipeline, and never mutated.
type ProjectConfig struct {
	// CompiledRuntimeVersion identifies the target Solana runtime. Opaque to the generator.
	CompiledRuntimeVersion string `json:"solanaVersion"`

	// CompiledDependencies are injected into Cargo.toml [dependencies].
	CompiledDependencies map[string]string `json:"cargoDependencies"`

	// ScriptDevDependencies are installed with `npm install --save-dev`.
	ScriptDevDependencies map[string]string `json:"npmDevDependencies"`

	// ScriptDependencies are installed with `npm install`.
	ScriptDependencies map[string]string `json:"npmDependencies"`

	TypeCheck  TypeCheckConfig  `json:"typescript"`
	TestRunner TestRunnerConfig `json:"jest"`

	// ProgramTemplate selects the library entry point template.
	// Unknown names fall back to hello_world.
	ProgramTemplate string `json:"programTemplate"`

	Manifest CompiledManifestConfig `json:"cargo"`
	Commands CommandsConfig         `json:"commands"`
}

// Default returns the documented default configuration.
// Every call returns freshly allocated maps and slices.
func Default() ProjectConfig {
	return ProjectConfig{
		CompiledRuntimeVersion: "2.3.0",
		CompiledDependencies: map[string]string{
			"solana-program": "2.3.0",
		},
		ScriptDevDependencies: map[string]string{
			"jest":        "^30.0.5",
			"typescript":  "^5.8.3",
			"@types/jest": "^30.0.0",
			"ts-jest":     "^29.4.0",
		},
		ScriptDependencies: map[string]string{
			"@solana/web3.js": "^1.98.2",
			"borsh":           "^2.0.0",
		},
		TypeCheck:       DefaultTypeCheckConfig(),
		TestRunner:      DefaultTestRunnerConfig(),
		ProgramTemplate: DefaultProgramTemplate,
		Manifest: CompiledManifestConfig{
			Features:   []string{"edition2024"},
			CrateTypes: []string{"cdylib", "lib"},
		},
		Commands: CommandsConfig{
			Cargo: "cargo",
			Npm:   "npm",
		},
	}
}

// DefaultTypeCheckConfig returns the default tsconfig settings.
func DefaultTypeCheckConfig() TypeCheckConfig {
	return TypeCheckConfig{
		Target:  "ES2020",
		Module:  "commonjs",
		Lib:     []string{"ES2020", "DOM"},
		Strict:  true,
		OutDir:  "./dist",
		RootDir: "./",
	}
}

// DefaultTestRunnerConfig returns the default jest settings.
func DefaultTestRunnerConfig() TestRunnerConfig {
	return TestRunnerConfig{
		Preset:               "ts-jest",
		TestEnvironment:      "node",
		TestMatch:            []string{"**/tests/**/*.test.ts"},
		ModuleFileExtensions: []string{"ts", "js"},
	}
}
