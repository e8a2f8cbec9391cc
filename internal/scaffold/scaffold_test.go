package scaffold

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/goleak"

	"github.com/solanainit/cli/internal/config"
	oerrors "github.com/solanainit/cli/internal/errors"
	"github.com/solanainit/cli/internal/output"
	"github.com/solanainit/cli/internal/runner"
	"github.com/solanainit/cli/internal/runner/runnertest"
	"github.com/solanainit/cli/internal/templates"
	"github.com/solanainit/cli/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

func TestRun_DefaultConfiguration(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")

	m := testutil.FakeToolchain(t)
	m.OnAny(nil)

	o := New(Options{TargetDir: target, Config: config.Default(), Runner: m})
	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateDone, o.State())
	assert.Contains(t, strings.Split(testutil.ReadFile(t, filepath.Join(target, ".gitignore")), "\n"), "node_modules/")
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(target, "src", "lib.rs")), "Hello, Solana World!")

	for _, name := range []string{"tsconfig.json", "jest.config.js", "tests/example.test.ts"} {
		assert.FileExists(t, filepath.Join(target, filepath.FromSlash(name)))
	}

	cargoToml := testutil.ReadFile(t, filepath.Join(target, "Cargo.toml"))
	assert.Contains(t, cargoToml, `cargo-features = ['edition2024']`)
	assert.Contains(t, cargoToml, `solana-program = '2.3.0'`)

	pkg := testutil.ReadFile(t, filepath.Join(target, "package.json"))
	assert.Equal(t, "tests", gjson.Get(pkg, "directories.test").String())

	assert.Equal(t, []string{
		"cargo init --lib --vcs none " + target,
		"npm init -y",
		"npm install --save-dev @types/jest jest ts-jest typescript",
		"npm install @solana/web3.js borsh",
	}, m.CommandLines())

	assert.Equal(t, target, result.TargetDir)
	assert.Equal(t, "demo", result.CrateName)
	assert.Equal(t, "hello_world", result.ProgramTemplate)
	assert.Equal(t, "2.3.0", result.RuntimeVersion)

	paths := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		paths = append(paths, f.Path)
	}
	want := []string{"Cargo.toml", "package.json", ".gitignore", "src/lib.rs", "tsconfig.json", "jest.config.js", "tests/example.test.ts"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("result files mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, result.FileMap(), len(want))
}

func TestRun_EmptyExistingDirectory(t *testing.T) {
	target := t.TempDir()

	m := testutil.FakeToolchain(t)
	m.OnAny(nil)

	o := New(Options{TargetDir: target, Config: config.Default(), Runner: m})
	_, err := o.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateDone, o.State())
}

func TestRun_NonEmptyDirectory(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "README.md"), []byte("keep"), 0o644))

	m := &runnertest.MockRunner{}

	o := New(Options{TargetDir: target, Config: config.Default(), Runner: m})
	result, err := o.Run(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, oerrors.ErrDirectoryExists))
	assert.Equal(t, "Directory already exists and is not empty: "+target, err.Error())
	assert.Equal(t, StateUninitialized, o.State())
	assert.Empty(t, m.Invocations())

	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "README.md", entries[0].Name())
}

func TestRun_TargetIsFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.WriteFile(target, nil, 0o644))

	o := New(Options{TargetDir: target, Config: config.Default(), Runner: &runnertest.MockRunner{}})
	_, err := o.Run(context.Background())

	var dirErr *oerrors.DirectoryExistsError
	require.True(t, errors.As(err, &dirErr))
	assert.Equal(t, target, dirErr.Path)
}

func TestRun_ProgramTemplates(t *testing.T) {
	render := func(t *testing.T, template string) (string, *Result) {
		t.Helper()
		target := filepath.Join(t.TempDir(), "demo")

		cfg := config.Default()
		cfg.ProgramTemplate = template

		m := testutil.FakeToolchain(t)
		m.OnAny(nil)

		result, err := New(Options{TargetDir: target, Config: cfg, Runner: m}).Run(context.Background())
		require.NoError(t, err)
		return testutil.ReadFile(t, filepath.Join(target, "src", "lib.rs")), result
	}

	counter, result := render(t, "counter")
	assert.Contains(t, counter, "process_instruction")
	assert.Contains(t, counter, "next_account_info")
	assert.Equal(t, "counter", result.ProgramTemplate)

	helloWorld, _ := render(t, "hello_world")
	nonexistent, result := render(t, "nonexistent")
	assert.Equal(t, helloWorld, nonexistent)
	assert.Equal(t, "hello_world", result.ProgramTemplate)
}

func TestRun_EmptyDevDependencies(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")

	cfg := config.Default()
	cfg.ScriptDevDependencies = map[string]string{}

	m := testutil.FakeToolchain(t)
	m.OnAny(nil)

	_, err := New(Options{TargetDir: target, Config: cfg, Runner: m}).Run(context.Background())
	require.NoError(t, err)

	for _, line := range m.CommandLines() {
		assert.NotContains(t, line, "--save-dev")
	}
	assert.Len(t, m.Invocations(), 3)
}

func TestRun_StopsAtFailingStep(t *testing.T) {
	tests := []struct {
		name      string
		failName  string
		failArgs  any
		wantState State
		wantCmd   string
	}{
		{"cargo init fails", "cargo", mock.Anything, StateDirectoryCreated, "cargo init"},
		{"npm install fails", "npm", []string{"install", "@solana/web3.js", "borsh"}, StateCompiledToolchainReady, "npm install dependencies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := filepath.Join(t.TempDir(), "demo")

			m := testutil.FakeToolchain(t)
			m.On("Run", tt.failName, tt.failArgs, mock.Anything).Return(&runner.ExitError{Code: 1})
			m.OnAny(nil)

			o := New(Options{TargetDir: target, Config: config.Default(), Runner: m})
			_, err := o.Run(context.Background())

			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrCommandFailed))
			assert.Contains(t, err.Error(), "Command failed: "+tt.wantCmd)
			assert.Equal(t, tt.wantState, o.State())
			assert.NoFileExists(t, filepath.Join(target, "tsconfig.json"))
		})
	}
}

func TestRun_FailedStepShowsCapturedOutput(t *testing.T) {
	var buf bytes.Buffer
	restore := output.SetOutput(&buf)
	defer restore()

	target := filepath.Join(t.TempDir(), "demo")

	m := testutil.FakeToolchain(t)
	m.On("Run", "npm", []string{"install", "@solana/web3.js", "borsh"}, mock.Anything).
		Return(&runner.ExitError{Code: 1, Output: "npm ERR! code E404\nnpm ERR! 404 Not Found"})
	m.OnAny(nil)

	o := New(Options{TargetDir: target, Config: config.Default(), Runner: m, ShowProgress: true})
	_, err := o.Run(context.Background())
	require.Error(t, err)

	assert.NotContains(t, err.Error(), "\n")
	assert.True(t, strings.HasSuffix(err.Error(), "exit status 1: npm ERR! 404 Not Found"))

	shown := buf.String()
	assert.Contains(t, shown, output.StatusFailed)
	assert.Contains(t, shown, "npm ERR! code E404")
	assert.Contains(t, shown, "npm ERR! 404 Not Found")
}

func TestRun_SecondRunRejected(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")

	m := testutil.FakeToolchain(t)
	m.OnAny(nil)

	o := New(Options{TargetDir: target, Config: config.Default(), Runner: m})
	_, err := o.Run(context.Background())
	require.NoError(t, err)

	_, err = o.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateDone, o.State())
}

func TestArtifactsMatchWrittenFiles(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	cfg := config.Default()

	m := testutil.FakeToolchain(t)
	m.OnAny(nil)

	_, err := New(Options{TargetDir: target, Config: cfg, Runner: m}).Run(context.Background())
	require.NoError(t, err)

	artifacts, err := templates.Artifacts(cfg)
	require.NoError(t, err)
	for _, a := range artifacts {
		assert.Equal(t, string(a.Content), testutil.ReadFile(t, filepath.Join(target, filepath.FromSlash(a.Path))), a.Path)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Uninitialized", StateUninitialized.String())
	assert.Equal(t, "CompiledToolchainReady", StateCompiledToolchainReady.String())
	assert.Equal(t, "Done", StateDone.String())
	assert.Equal(t, "Unknown", State(42).String())
}
