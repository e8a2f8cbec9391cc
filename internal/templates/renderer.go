package templates

import (
	"bytes"
	"text/template"

	"github.com/solanainit/cli/internal/config"
	oerrors "github.com/solanainit/cli/internal/errors"
)

// Artifact paths relative to the project directory.
const (
	IgnoreFile     = ".gitignore"
	EntrypointFile = "src/lib.rs"
	TypeCheckFile  = "tsconfig.json"
	TestRunnerFile = "jest.config.js"
	SampleTestFile = "tests/example.test.ts"
)

// Artifact is a rendered file destined for the project directory.
type Artifact struct {
	// Path is relative to the project directory, slash-separated.
	Path string

	Content []byte

	// Description is shown next to the file in the summary tree.
	Description string
}

// RenderIgnoreList returns the .gitignore content.
func RenderIgnoreList() string {
	return mustRead(filesFS, "files/gitignore")
}

// RenderLibraryEntrypoint returns the src/lib.rs body selected by cfg.ProgramTemplate.
// Unknown template names render the hello_world body.
func RenderLibraryEntrypoint(cfg config.ProjectConfig) string {
	return programBodies[Resolve(cfg.ProgramTemplate).Name]
}

// RenderTypeCheckConfig returns the tsconfig.json content.
func RenderTypeCheckConfig(cfg config.ProjectConfig) (string, error) {
	return execute(tsconfigTemplate, cfg.TypeCheck, TypeCheckFile)
}

// RenderTestRunnerConfig returns the jest.config.js content.
func RenderTestRunnerConfig(cfg config.ProjectConfig) (string, error) {
	return execute(jestConfigTemplate, cfg.TestRunner, TestRunnerFile)
}

// RenderSampleTest returns the sample jest test. The content does not depend on cfg.
func RenderSampleTest(_ config.ProjectConfig) string {
	return mustRead(filesFS, "files/example.test.ts")
}

// Artifacts renders every file in the order the orchestrator writes them.
func Artifacts(cfg config.ProjectConfig) ([]Artifact, error) {
	tsconfig, err := RenderTypeCheckConfig(cfg)
	if err != nil {
		return nil, err
	}

	jestConfig, err := RenderTestRunnerConfig(cfg)
	if err != nil {
		return nil, err
	}

	program := Resolve(cfg.ProgramTemplate)

	return []Artifact{
		{Path: IgnoreFile, Content: []byte(RenderIgnoreList()), Description: "Ignore patterns"},
		{Path: EntrypointFile, Content: []byte(RenderLibraryEntrypoint(cfg)), Description: "Program (" + program.Name + ")"},
		{Path: TypeCheckFile, Content: []byte(tsconfig), Description: "TypeScript config"},
		{Path: TestRunnerFile, Content: []byte(jestConfig), Description: "Jest config"},
		{Path: SampleTestFile, Content: []byte(RenderSampleTest(cfg)), Description: "Sample test"},
	}, nil
}

// execute runs tmpl with data. Serialization failures are configuration errors.
func execute(tmpl *template.Template, data any, name string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", oerrors.NewConfigError("rendering "+name, err)
	}
	return buf.String(), nil
}
