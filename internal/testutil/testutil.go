// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solanainit/cli/internal/runner/runnertest"
)

// Minimal manifests written by FakeToolchain.
const (
	FakeCargoManifest = "[package]\nname = \"demo\"\nversion = \"0.1.0\"\nedition = \"2021\"\n\n[dependencies]\n"
	FakeNpmManifest   = "{\n  \"name\": \"demo\",\n  \"version\": \"1.0.0\",\n  \"scripts\": {}\n}\n"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// FakeToolchain returns a mock runner that imitates cargo init and npm init
// by writing minimal manifests. Callers still set the mocked return values.
func FakeToolchain(t *testing.T) *runnertest.MockRunner {
	t.Helper()

	m := &runnertest.MockRunner{}
	m.WithEffect(func(inv runnertest.Invocation) error {
		if len(inv.Args) == 0 || inv.Args[0] != "init" {
			return nil
		}
		switch inv.Name {
		case "cargo":
			dir := inv.Args[len(inv.Args)-1]
			WriteFile(t, dir, "Cargo.toml", FakeCargoManifest)
			WriteFile(t, dir, filepath.Join("src", "lib.rs"), "// cargo default\n")
		case "npm":
			WriteFile(t, inv.Dir, "package.json", FakeNpmManifest)
		}
		return nil
	})
	return m
}
