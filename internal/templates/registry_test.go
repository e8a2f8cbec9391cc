package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"hello_world", "hello_world"},
		{"counter", "counter"},
		{"", "hello_world"},
		{"nonexistent", "hello_world"},
		{"Counter", "hello_world"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.id).Name)
		})
	}
}

func TestProgramTemplates(t *testing.T) {
	list := ProgramTemplates()
	require.Len(t, list, 2)

	assert.Equal(t, []string{"hello_world", "counter"}, ProgramTemplateNames())

	defaults := 0
	for _, tmpl := range list {
		assert.True(t, IsKnownProgramTemplate(tmpl.Name))
		assert.NotEmpty(t, tmpl.Description)
		assert.NotEmpty(t, programBodies[tmpl.Name], tmpl.Name)
		if tmpl.Default {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults, "exactly one default template")
	assert.False(t, IsKnownProgramTemplate("nonexistent"))
}

func TestProgramTemplateNames_ReturnsCopy(t *testing.T) {
	names := ProgramTemplateNames()
	names[0] = "mutated"

	assert.Equal(t, "hello_world", ProgramTemplateNames()[0])
}
