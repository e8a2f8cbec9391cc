package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solanainitBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "solanainit-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	solanainitBinary = filepath.Join(tmpDir, "solanainit")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", solanainitBinary, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build solanainit binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runSolanainit runs the binary with an isolated HOME and returns its output and exit code.
func runSolanainit(t *testing.T, workDir string, timeout time.Duration, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, solanainitBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "SOLANAINIT_CONFIG=", "SOLANAINIT_TEMPLATE=")

	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	case err != nil:
		t.Fatalf("running solanainit: %v", err)
	}

	return outBuf.String(), errBuf.String(), code
}

func TestE2E_NoPath(t *testing.T) {
	_, stderr, code := runSolanainit(t, t.TempDir(), 30*time.Second)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Usage error: no path provided (usage: solanainit <path>)\n", stderr)
}

func TestE2E_NonEmptyDirectory(t *testing.T) {
	workDir := t.TempDir()
	target := filepath.Join(workDir, "existing")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "README.md"), []byte("keep"), 0o644))

	_, stderr, code := runSolanainit(t, workDir, 30*time.Second, "existing")

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Directory already exists and is not empty: existing\n", stderr)

	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestE2E_Templates(t *testing.T) {
	stdout, stderr, code := runSolanainit(t, t.TempDir(), 30*time.Second, "templates")

	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "hello_world")
	assert.Contains(t, stdout, "counter")
}

func TestE2E_GenerateProject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full generation in short mode")
	}
	for _, tool := range []string{"cargo", "npm"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not found in PATH", tool)
		}
	}

	workDir := t.TempDir()
	_, stderr, code := runSolanainit(t, workDir, 10*time.Minute, "pdademo", "--template", "counter")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	project := filepath.Join(workDir, "pdademo")
	for _, name := range []string{"Cargo.toml", "package.json", ".gitignore", "src/lib.rs", "tsconfig.json", "jest.config.js", "tests/example.test.ts"} {
		assert.FileExists(t, filepath.Join(project, filepath.FromSlash(name)))
	}

	cargoToml, err := os.ReadFile(filepath.Join(project, "Cargo.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(cargoToml), "solana-program = ")
	assert.Contains(t, string(cargoToml), "[lib]")
}
