package notes

import (
	"os"
	"strings"
)

// TemplateFile is the blueprint for new note bodies, kept alongside the
// notes so users can edit it.
const TemplateFile = "TEMPLATE.md"

// defaultTemplate is written on first run and used as a fallback whenever
// TEMPLATE.md is missing or unreadable. The frontmatter keys double as the
// metadata that RefreshMetadata reads back after an external edit.
const defaultTemplate = `---
title: {title}
description: {description}
created_at: {created_at}
updated_at: {updated_at}
---

# {title}

{description}

## Notes

Write your notes here.
`

// Template is a text blueprint with named placeholders substituted at
// note-creation time.
type Template struct {
	text string
}

// LoadTemplate reads the template from path, falling back to the built-in
// default if the file is absent or unreadable.
func LoadTemplate(path string) Template {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return Template{text: defaultTemplate}
	}
	return Template{text: string(data)}
}

// DefaultTemplate returns the built-in template.
func DefaultTemplate() Template {
	return Template{text: defaultTemplate}
}

// Render substitutes the named placeholders. Both timestamps start out
// equal; the editor owns updated_at from then on.
func (t Template) Render(title, description, createdAt, updatedAt string) string {
	r := strings.NewReplacer(
		"{title}", title,
		"{description}", description,
		"{created_at}", createdAt,
		"{updated_at}", updatedAt,
	)
	return r.Replace(t.text)
}
