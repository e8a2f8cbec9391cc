package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// toolVersionRegex matches version output like "cargo 1.86.0 (adcaa1f9e 2025-03-31)" or "10.9.2".
var toolVersionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// Tool is an external executable the generator depends on.
type Tool struct {
	// Name is the executable looked up in PATH.
	Name string

	// Minimum is the lowest supported version constraint (e.g. ">= 1.85.0").
	Minimum string
}

// RequiredTools lists the executables used during generation with their minimum versions.
// cargo 1.85 is the first stable release with edition 2024.
func RequiredTools(cargo, npm string) []Tool {
	return []Tool{
		{Name: cargo, Minimum: ">= 1.85.0"},
		{Name: npm, Minimum: ">= 7.0.0"},
	}
}

// ToolInfo contains the detected version of a toolchain executable.
type ToolInfo struct {
	Name string `json:"name"`

	// Version is the detected version.
	Version string `json:"version"`

	// Path is the path to the executable.
	Path string `json:"path"`

	// Compatible indicates the version satisfies the minimum.
	Compatible bool `json:"compatible"`

	// Found indicates the executable was found.
	Found bool `json:"found"`

	// Message provides additional information about compatibility.
	Message string `json:"message,omitempty"`
}

// DetectTool finds tool in PATH and checks its version.
func DetectTool(ctx context.Context, tool Tool) ToolInfo {
	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return ToolInfo{
			Name:    tool.Name,
			Message: tool.Name + " not found in PATH",
		}
	}

	version, err := getToolVersion(ctx, path)
	if err != nil {
		return ToolInfo{
			Name:    tool.Name,
			Path:    path,
			Found:   true,
			Message: "failed to get version: " + err.Error(),
		}
	}

	compatible, message := CheckCompatible(tool.Minimum, version)
	return ToolInfo{
		Name:       tool.Name,
		Version:    version,
		Path:       path,
		Found:      true,
		Compatible: compatible,
		Message:    message,
	}
}

// CheckCompatible reports whether version satisfies the constraint.
func CheckCompatible(constraint, version string) (bool, string) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, "invalid constraint " + constraint
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, "incompatible - invalid version format"
	}
	// Nightly and beta builds are judged by their release number.
	core, err := v.SetPrerelease("")
	if err != nil {
		return false, "incompatible - invalid version format"
	}
	if !c.Check(&core) {
		return false, "incompatible - requires " + constraint
	}
	return true, "compatible"
}

// String returns a human-readable tool info string.
func (t ToolInfo) String() string {
	if !t.Found {
		return fmt.Sprintf("  %s: not found", t.Name)
	}
	status := t.Message
	if status == "" {
		status = "compatible"
	}
	return fmt.Sprintf("  %s: %s (%s)\n    Path: %s", t.Name, t.Version, status, t.Path)
}

// getToolVersion executes '<tool> --version' and extracts the version string.
func getToolVersion(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractVersion(out.String())
}

// extractVersion extracts the first version number from tool output.
func extractVersion(output string) (string, error) {
	match := toolVersionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: strings.TrimSpace(output)}
	}
	return strings.TrimPrefix(match, "v"), nil
}

// versionParseError indicates failure to parse version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse version from output: " + e.output
}
