package inspect

import (
	"fmt"
	"strings"

	"github.com/philipparndt/facestl/internal/classify"
	"github.com/philipparndt/facestl/internal/scene"
	"github.com/philipparndt/facestl/internal/ui"
)

// BodyPrinter handles printing body details and classification previews
type BodyPrinter struct{}

// NewBodyPrinter creates a new BodyPrinter
func NewBodyPrinter() *BodyPrinter {
	return &BodyPrinter{}
}

// PrintBody prints one body's geometry summary. With a matcher, the
// face-group preview is included.
func (p *BodyPrinter) PrintBody(body *scene.Body, matcher *classify.Matcher) {
	ui.PrintHeader(body.Label)

	triangles := 0
	for _, f := range body.Faces {
		triangles += len(f.Triangles)
	}
	ui.PrintStep(fmt.Sprintf("Faces: %d (%d triangles)", body.FaceCount(), triangles))
	ui.PrintStep(fmt.Sprintf("Colors: %d", len(body.DiffuseColors)))

	if g := body.Placement.Geometry(); !g.IsIdentity() {
		ui.PrintStep(fmt.Sprintf("Placement: rotation [%g, %g, %g], translation [%g, %g, %g]",
			g.RotationX, g.RotationY, g.RotationZ,
			g.TranslationX, g.TranslationY, g.TranslationZ))
	}

	if len(body.DiffuseColors) != body.FaceCount() {
		ui.PrintWarning(fmt.Sprintf("Color count (%d) does not match face count (%d), body would be skipped",
			len(body.DiffuseColors), body.FaceCount()))
		return
	}

	if matcher == nil {
		return
	}

	groups := matcher.Classify(body.DiffuseColors)
	for _, group := range classify.AllGroups {
		ids := groups.IDs(group)
		ui.PrintItem(fmt.Sprintf("%-6s %2d face(s)  %s", group.String(), len(ids), FormatIDs(ids)))
	}
}

// FormatIDs renders a face ID list compactly, eliding long lists
func FormatIDs(ids []int) string {
	const maxShown = 12

	if len(ids) == 0 {
		return "-"
	}

	shown := ids
	elided := 0
	if len(shown) > maxShown {
		shown = shown[:maxShown]
		elided = len(ids) - maxShown
	}

	parts := make([]string, len(shown))
	for i, id := range shown {
		parts[i] = fmt.Sprintf("%d", id)
	}

	s := strings.Join(parts, ", ")
	if elided > 0 {
		s += fmt.Sprintf(", … (+%d)", elided)
	}
	return s
}
