package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads scene snapshot files
type Loader struct{}

// NewLoader creates a new scene loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a YAML scene snapshot
func (l *Loader) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	if err := l.Validate(&doc); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	return &doc, nil
}

// Validate checks structural properties of a loaded document. Face/color
// count alignment is deliberately not checked here: it is a per-body
// export precondition and a mismatch must not prevent other bodies in the
// same document from being processed.
func (l *Loader) Validate(doc *Document) error {
	if len(doc.Bodies) == 0 {
		return fmt.Errorf("document contains no bodies")
	}

	for i, body := range doc.Bodies {
		if body.Label == "" {
			return fmt.Errorf("body %d: label is required", i)
		}
		for j, c := range body.DiffuseColors {
			if err := validateChannel(c.R, "R"); err != nil {
				return fmt.Errorf("body %s, color %d: %w", body.Label, j, err)
			}
			if err := validateChannel(c.G, "G"); err != nil {
				return fmt.Errorf("body %s, color %d: %w", body.Label, j, err)
			}
			if err := validateChannel(c.B, "B"); err != nil {
				return fmt.Errorf("body %s, color %d: %w", body.Label, j, err)
			}
		}
	}

	return nil
}

func validateChannel(v float64, name string) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("channel %s out of range [0,1]: %g", name, v)
	}
	return nil
}
