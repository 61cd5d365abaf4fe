package notes

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// noteFrontmatter is the subset of the YAML frontmatter the store cares
// about when re-reading metadata after an external edit.
type noteFrontmatter struct {
	Title string `yaml:"title"`
}

// ExtractTitle pulls a title out of a note body: YAML frontmatter `title`
// first, the first level-1 markdown heading as a fallback. Returns "" when
// neither is present.
func ExtractTitle(content []byte) string {
	if title := frontmatterTitle(content); title != "" {
		return title
	}
	return firstHeading(content)
}

func frontmatterTitle(content []byte) string {
	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return ""
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return ""
	}

	var fm noteFrontmatter
	if err := yaml.Unmarshal(bytes.Join(lines[1:fmEnd], []byte("\n")), &fm); err != nil {
		return ""
	}
	return fm.Title
}

func firstHeading(content []byte) string {
	reader := text.NewReader(content)
	doc := goldmark.DefaultParser().Parse(reader)

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			heading := n.(*ast.Heading)
			if heading.Level == 1 {
				title = string(n.Text(content))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return title
}
