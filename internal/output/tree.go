package output

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

const (
	branchGlyph = "├── "
	lastGlyph   = "└── "
	pipeGlyph   = "│   "
	blankGlyph  = "    "

	// descriptionColumn is the display column where file descriptions start.
	descriptionColumn = 30
	minDescriptionGap = 2
)

// projectDir is one directory of a generated project, built from relative file paths.
type projectDir struct {
	dirs  map[string]*projectDir
	files map[string]string
}

func newProjectDir() *projectDir {
	return &projectDir{dirs: map[string]*projectDir{}, files: map[string]string{}}
}

func (d *projectDir) add(path, description string) {
	parts := strings.Split(filepath.ToSlash(path), "/")
	dir := d
	for _, part := range parts[:len(parts)-1] {
		sub, ok := dir.dirs[part]
		if !ok {
			sub = newProjectDir()
			dir.dirs[part] = sub
		}
		dir = sub
	}
	dir.files[parts[len(parts)-1]] = description
}

type treeLine struct {
	label       string
	description string
	dir         *projectDir
}

// lines lists subdirectories first, then files, each sorted by name.
func (d *projectDir) lines() []treeLine {
	dirNames := lo.Keys(d.dirs)
	slices.Sort(dirNames)
	fileNames := lo.Keys(d.files)
	slices.Sort(fileNames)

	out := make([]treeLine, 0, len(dirNames)+len(fileNames))
	for _, name := range dirNames {
		out = append(out, treeLine{label: name + "/", dir: d.dirs[name]})
	}
	for _, name := range fileNames {
		out = append(out, treeLine{label: name, description: d.files[name]})
	}
	return out
}

// RenderFileTree renders the files of a generated project under rootName.
// Files maps slash-separated relative paths to descriptions; descriptions
// start at display column 30, or two cells after a longer name.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := newProjectDir()
	for path, description := range files {
		root.add(path, description)
	}

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(rootName + "/"))
	sb.WriteString("\n")
	writeDir(&sb, root, "")
	return sb.String()
}

func writeDir(sb *strings.Builder, d *projectDir, indent string) {
	lines := d.lines()
	for i, l := range lines {
		glyph, childIndent := branchGlyph, indent+pipeGlyph
		if i == len(lines)-1 {
			glyph, childIndent = lastGlyph, indent+blankGlyph
		}

		line := indent + glyph + l.label
		if l.description != "" {
			gap := max(descriptionColumn-lipgloss.Width(line), minDescriptionGap)
			line += strings.Repeat(" ", gap) + StyleDim.Render(l.description)
		}
		sb.WriteString(line)
		sb.WriteString("\n")

		if l.dir != nil {
			writeDir(sb, l.dir, childIndent)
		}
	}
}
