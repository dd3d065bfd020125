// Package scene models a snapshot of a CAD document: the bodies selected for
// export together with their tessellated faces, per-face view colors and
// global placements. The snapshot is produced on the CAD side and read here,
// so the exporter never needs a live CAD session.
package scene

import (
	"fmt"

	"github.com/philipparndt/facestl/internal/geometry"
	"gopkg.in/yaml.v3"
)

// Color is an RGBA color with channel values in [0.0, 1.0].
// It decodes from a YAML sequence of three or four floats.
type Color struct {
	R, G, B, A float64
}

// UnmarshalYAML decodes [r, g, b] or [r, g, b, a]
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var raw []float64
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("color must be a sequence of floats: %w", err)
	}
	if len(raw) != 3 && len(raw) != 4 {
		return fmt.Errorf("color must have 3 or 4 channels, got %d", len(raw))
	}
	c.R, c.G, c.B = raw[0], raw[1], raw[2]
	c.A = 1.0
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return nil
}

// Triangle decodes from a YAML sequence of three [x, y, z] vertices
type Triangle struct {
	geometry.Triangle
}

// UnmarshalYAML decodes [[x,y,z], [x,y,z], [x,y,z]]
func (t *Triangle) UnmarshalYAML(node *yaml.Node) error {
	var raw [][]float64
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("triangle must be a sequence of vertices: %w", err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("triangle must have 3 vertices, got %d", len(raw))
	}
	verts := make([]geometry.Vector3, 3)
	for i, v := range raw {
		if len(v) != 3 {
			return fmt.Errorf("vertex %d must have 3 coordinates, got %d", i, len(v))
		}
		verts[i] = geometry.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}
	t.V1, t.V2, t.V3 = verts[0], verts[1], verts[2]
	return nil
}

// Face is one geometric face of a body's shape. Faces have no identity
// beyond their ordinal position in the body's face list.
type Face struct {
	Triangles []Triangle `yaml:"triangles"`
}

// Geometry returns the face tessellation as plain geometry triangles
func (f Face) Geometry() []geometry.Triangle {
	tris := make([]geometry.Triangle, len(f.Triangles))
	for i, t := range f.Triangles {
		tris[i] = t.Triangle
	}
	return tris
}

// Placement decodes a body's global placement from the snapshot
type Placement struct {
	Rotation    []float64 `yaml:"rotation"`    // degrees, [rx, ry, rz]
	Translation []float64 `yaml:"translation"` // [x, y, z]
}

// Geometry converts the snapshot placement into a geometry placement
func (p Placement) Geometry() geometry.Placement {
	var g geometry.Placement
	if len(p.Rotation) == 3 {
		g.RotationX, g.RotationY, g.RotationZ = p.Rotation[0], p.Rotation[1], p.Rotation[2]
	}
	if len(p.Translation) == 3 {
		g.TranslationX, g.TranslationY, g.TranslationZ = p.Translation[0], p.Translation[1], p.Translation[2]
	}
	return g
}

// Body is a named solid-model entity captured in the snapshot. Faces holds
// the tip shape's face list in the document's face order; DiffuseColors is
// the view layer's parallel color array. The two are not reconciled at load
// time: count validation is an export-time precondition.
type Body struct {
	Label         string    `yaml:"label"`
	Placement     Placement `yaml:"placement"`
	Faces         []Face    `yaml:"faces"`
	DiffuseColors []Color   `yaml:"diffuse_colors"`
}

// FaceCount returns the number of faces in the body's shape
func (b *Body) FaceCount() int {
	return len(b.Faces)
}

// Document is a snapshot of an open CAD document
type Document struct {
	Name   string `yaml:"document"`
	Unit   string `yaml:"unit"`
	Bodies []Body `yaml:"bodies"`
}

// Body looks up a body by label. When several bodies share a label the
// first one in document order wins.
func (d *Document) Body(label string) (*Body, error) {
	for i := range d.Bodies {
		if d.Bodies[i].Label == label {
			return &d.Bodies[i], nil
		}
	}
	return nil, fmt.Errorf("no body with label %q found in document", label)
}

// Labels returns all body labels in document order
func (d *Document) Labels() []string {
	labels := make([]string, len(d.Bodies))
	for i := range d.Bodies {
		labels[i] = d.Bodies[i].Label
	}
	return labels
}
