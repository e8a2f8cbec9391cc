package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "2.3.0", cfg.CompiledRuntimeVersion)
	assert.Equal(t, map[string]string{"solana-program": "2.3.0"}, cfg.CompiledDependencies)
	assert.Equal(t, map[string]string{
		"jest":        "^30.0.5",
		"typescript":  "^5.8.3",
		"@types/jest": "^30.0.0",
		"ts-jest":     "^29.4.0",
	}, cfg.ScriptDevDependencies)
	assert.Equal(t, map[string]string{
		"@solana/web3.js": "^1.98.2",
		"borsh":           "^2.0.0",
	}, cfg.ScriptDependencies)
	assert.Equal(t, "hello_world", cfg.ProgramTemplate)
	assert.Equal(t, []string{"edition2024"}, cfg.Manifest.Features)
	assert.Equal(t, []string{"cdylib", "lib"}, cfg.Manifest.CrateTypes)
	assert.Equal(t, "cargo", cfg.Commands.Cargo)
	assert.Equal(t, "npm", cfg.Commands.Npm)
}

func TestDefaultTypeCheckConfig(t *testing.T) {
	tc := DefaultTypeCheckConfig()

	assert.Equal(t, "ES2020", tc.Target)
	assert.Equal(t, "commonjs", tc.Module)
	assert.Equal(t, []string{"ES2020", "DOM"}, tc.Lib)
	assert.True(t, tc.Strict)
	assert.Equal(t, "./dist", tc.OutDir)
	assert.Equal(t, "./", tc.RootDir)
}

func TestDefaultTestRunnerConfig(t *testing.T) {
	tr := DefaultTestRunnerConfig()

	assert.Equal(t, "ts-jest", tr.Preset)
	assert.Equal(t, "node", tr.TestEnvironment)
	assert.Equal(t, []string{"**/tests/**/*.test.ts"}, tr.TestMatch)
	assert.Equal(t, []string{"ts", "js"}, tr.ModuleFileExtensions)
}

func TestDefault_ReturnsIndependentValues(t *testing.T) {
	a := Default()
	b := Default()

	a.CompiledDependencies["anchor-lang"] = "0.31.0"
	a.TypeCheck.Lib[0] = "ES2022"

	require.NotContains(t, b.CompiledDependencies, "anchor-lang")
	assert.Equal(t, "ES2020", b.TypeCheck.Lib[0])
}
