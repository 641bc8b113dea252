package phase

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Iron-Ham/irframe/internal/errors"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ValidFormats returns the supported export formats.
func ValidFormats() []string {
	return []string{FormatYAML, FormatJSON}
}

// Document is the serializable form of the registry.
type Document struct {
	Title   string         `yaml:"title" json:"title"`
	Phases  []PhaseEntry   `yaml:"phases" json:"phases"`
	Tooling []ToolingEntry `yaml:"tooling" json:"tooling"`
}

// PhaseEntry is one phase in a Document.
type PhaseEntry struct {
	ID          ID       `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Icon        Icon     `yaml:"icon" json:"icon"`
	Actions     []string `yaml:"actions" json:"actions"`
}

// ToolingEntry is one tooling block in a Document.
type ToolingEntry struct {
	Heading string   `yaml:"heading" json:"heading"`
	Tools   []string `yaml:"tools" json:"tools"`
}

// Export builds a Document from the registry, phases in display order.
func Export() Document {
	doc := Document{Title: FrameworkTitle}
	for _, rec := range All() {
		doc.Phases = append(doc.Phases, PhaseEntry{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Icon:        rec.Icon,
			Actions:     rec.Actions,
		})
	}
	for _, b := range Tooling() {
		doc.Tooling = append(doc.Tooling, ToolingEntry{Heading: b.Heading, Tools: b.Tools})
	}
	return doc
}

// Encode writes the document to w in the given format ("yaml" or "json").
func (d Document) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return errors.NewValidationError(fmt.Sprintf("must be one of: %s", strings.Join(ValidFormats(), ", "))).
			WithField("format").
			WithValue(format).
			WithCause(errors.ErrUnsupportedFormat)
	}
}

// IDs returns the phase IDs in the document, in document order.
func (d Document) IDs() []ID {
	ids := make([]ID, 0, len(d.Phases))
	for _, p := range d.Phases {
		ids = append(ids, p.ID)
	}
	return ids
}
