package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ErrInvalidCustomEntry indicates a caller-supplied custom document tuple is
// malformed: missing name, or a category/priority outside the enumerated sets.
var ErrInvalidCustomEntry = eris.New("invalid custom document")

// CustomDocument is the loosely-typed boundary shape for caller-supplied
// documents, as read from CLI prompts or a YAML file. It is converted into a
// strongly-typed DocumentEntry before entering the resolver.
type CustomDocument struct {
	Category string `yaml:"category"`
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
	Priority string `yaml:"priority"`
}

// Entry validates the tuple and converts it into a DocumentEntry tagged
// Source=custom. Custom names are displayed verbatim, never translated.
func (c CustomDocument) Entry() (DocumentEntry, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return DocumentEntry{}, eris.Wrap(ErrInvalidCustomEntry, "model: document name is empty")
	}

	category := Category(strings.TrimSpace(c.Category))
	if !category.Valid() {
		return DocumentEntry{}, eris.Wrapf(ErrInvalidCustomEntry, "model: unknown category %q", c.Category)
	}

	priority := Priority(strings.TrimSpace(c.Priority))
	if !priority.Valid() {
		return DocumentEntry{}, eris.Wrapf(ErrInvalidCustomEntry, "model: unknown priority %q", c.Priority)
	}

	return DocumentEntry{
		Category: category,
		Name:     name,
		Required: c.Required,
		Priority: priority,
		Source:   SourceCustom,
	}, nil
}
