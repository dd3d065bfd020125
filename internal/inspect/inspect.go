package inspect

import (
	"fmt"

	"github.com/philipparndt/facestl/internal/classify"
	"github.com/philipparndt/facestl/internal/config"
	"github.com/philipparndt/facestl/internal/scene"
	"github.com/philipparndt/facestl/internal/ui"
)

// Inspector displays the contents of a scene snapshot
type Inspector struct{}

// NewInspector creates a new Inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect reads a scene file and prints its bodies. When a job config is
// given, a classification preview is printed for each body without
// writing any file.
func (i *Inspector) Inspect(scenePath string, cfg *config.Config) error {
	doc, err := scene.NewLoader().Load(scenePath)
	if err != nil {
		return fmt.Errorf("error reading scene: %w", err)
	}

	ui.PrintHeader(fmt.Sprintf("Inspecting: %s", scenePath))
	if doc.Name != "" {
		ui.PrintStep(fmt.Sprintf("Document: %s", doc.Name))
	}
	if doc.Unit != "" {
		ui.PrintStep(fmt.Sprintf("Unit: %s", doc.Unit))
	}
	ui.PrintStep(fmt.Sprintf("Bodies: %d", len(doc.Bodies)))

	var matcher *classify.Matcher
	if cfg != nil {
		matcher = classify.NewMatcher(cfg.InletColor, cfg.OutletColor, cfg.ColorTolerance)
	}

	printer := NewBodyPrinter()
	for idx := range doc.Bodies {
		printer.PrintBody(&doc.Bodies[idx], matcher)
	}

	return nil
}
