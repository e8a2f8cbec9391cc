// Package templates renders the files that seed a new Solana project.
package templates

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"text/template"
)

//go:embed program/*.rs
var programFS embed.FS

//go:embed files/*
var filesFS embed.FS

// Parsed configuration templates.
var (
	tsconfigTemplate   = mustParse("files/tsconfig.json.tmpl")
	jestConfigTemplate = mustParse("files/jest.config.js.tmpl")
)

// funcMap holds the helpers available to configuration templates.
var funcMap = template.FuncMap{
	"json":     toJSON,
	"jsonList": toJSONList,
}

// toJSON encodes v as a JSON literal.
func toJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// toJSONList encodes items as a JSON array literal. A nil list renders as [].
func toJSONList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	return toJSON(items)
}

// mustParse parses an embedded configuration template and panics on failure.
func mustParse(path string) *template.Template {
	content, err := fs.ReadFile(filesFS, path)
	if err != nil {
		panic(fmt.Sprintf("reading embedded template %s: %v", path, err))
	}
	return template.Must(template.New(path).Funcs(funcMap).Parse(string(content)))
}

// mustRead returns an embedded file and panics if it is missing.
func mustRead(fsys fs.FS, path string) string {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		panic(fmt.Sprintf("reading embedded file %s: %v", path, err))
	}
	return string(content)
}
