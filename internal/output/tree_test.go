package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("demo", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("demo", map[string]string{
		".gitignore":            "Ignore patterns",
		"src/lib.rs":            "Program entrypoint",
		"tests/example.test.ts": "Sample test",
		"Cargo.toml":            "",
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[0], "demo/")
	assert.Contains(t, lines[1], "src/")
	assert.Contains(t, out, "└── example.test.ts")
	assert.Contains(t, out, "Program entrypoint")

	srcIdx := strings.Index(out, "src/")
	gitignoreIdx := strings.Index(out, ".gitignore")
	assert.Less(t, srcIdx, gitignoreIdx, "directories should sort before files")
}

func TestRenderFileTree_Layout(t *testing.T) {
	out := RenderFileTree("demo", map[string]string{
		"Cargo.toml":            "Crate manifest",
		"src/lib.rs":            "Program",
		"tests/example.test.ts": "Sample test",
	})

	want := []string{
		"demo/",
		"├── src/",
		"│   └── lib.rs",
		"├── tests/",
		"│   └── example.test.ts",
		"└── Cargo.toml",
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(want))
	for i, prefix := range want {
		assert.True(t, strings.HasPrefix(lines[i], prefix), "line %d: %q", i, lines[i])
	}
}

func TestRenderFileTree_DescriptionColumn(t *testing.T) {
	descriptions := map[string]string{
		"Cargo.toml":            "Crate manifest",
		"src/lib.rs":            "Program",
		"tests/example.test.ts": "Sample test",
	}
	out := RenderFileTree("demo", descriptions)

	found := 0
	for _, line := range strings.Split(out, "\n") {
		for _, desc := range descriptions {
			idx := strings.Index(line, desc)
			if idx < 0 {
				continue
			}
			found++
			assert.Equal(t, descriptionColumn, lipgloss.Width(line[:idx]), "line %q", line)
		}
	}
	assert.Equal(t, len(descriptions), found)
}

func TestRenderFileTree_LongNameKeepsGap(t *testing.T) {
	name := strings.Repeat("n", descriptionColumn) + ".ts"
	out := RenderFileTree("demo", map[string]string{name: "desc"})

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, name) {
			assert.Contains(t, line, name+"  desc")
		}
	}
}
