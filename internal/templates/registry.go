package templates

import (
	"github.com/samber/lo"

	"github.com/solanainit/cli/internal/config"
)

// ProgramTemplate is a named, fixed source body for src/lib.rs.
type ProgramTemplate struct {
	// Name is the template identifier (hello_world, counter).
	Name string

	// Description explains what the program does.
	Description string

	// File is the path within the embedded program filesystem.
	File string

	// Default marks the fallback for unknown names.
	Default bool
}

// programTemplates is the closed registry of program templates.
var programTemplates = map[string]ProgramTemplate{
	"hello_world": {
		Name:        "hello_world",
		Description: "Logs a greeting from the program entrypoint",
		File:        "program/hello_world.rs",
		Default:     true,
	},
	"counter": {
		Name:        "counter",
		Description: "Validates signer and owner of a counter account",
		File:        "program/counter.rs",
	},
}

// programOrder fixes listing order.
var programOrder = []string{"hello_world", "counter"}

// programBodies caches the embedded source for every registered template.
var programBodies = lo.MapValues(programTemplates, func(t ProgramTemplate, _ string) string {
	return mustRead(programFS, t.File)
})

// Resolve returns the program template named id.
// Unknown ids resolve to the default template; resolution never fails.
func Resolve(id string) ProgramTemplate {
	if t, ok := programTemplates[id]; ok {
		return t
	}
	return programTemplates[config.DefaultProgramTemplate]
}

// IsKnownProgramTemplate reports whether id names a registered template.
func IsKnownProgramTemplate(id string) bool {
	_, ok := programTemplates[id]
	return ok
}

// ProgramTemplates returns all program templates in listing order.
func ProgramTemplates() []ProgramTemplate {
	return lo.Map(programOrder, func(name string, _ int) ProgramTemplate {
		return programTemplates[name]
	})
}

// ProgramTemplateNames returns all program template names in listing order.
func ProgramTemplateNames() []string {
	return append([]string(nil), programOrder...)
}
