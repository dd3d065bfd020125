// Package mesh turns a subset of a body's faces into a standalone mesh,
// mirroring the CAD host's "create shape element copy" followed by
// "mesh shape" operations.
package mesh

import (
	"fmt"

	"github.com/philipparndt/facestl/internal/geometry"
	"github.com/philipparndt/facestl/internal/scene"
	"github.com/philipparndt/facestl/internal/stl"
)

// Options carries the mesh quality settings. Tessellation fidelity is
// fixed by the snapshot producer; the deflections travel with the mesh so
// a host-backed Mesher can honor them and so they are recorded in the
// exported file's header.
type Options struct {
	LinearDeflection  float64
	AngularDeflection float64
	Relative          bool
}

// String formats the options for STL header comments
func (o Options) String() string {
	return fmt.Sprintf("linear=%g angular=%g relative=%t",
		o.LinearDeflection, o.AngularDeflection, o.Relative)
}

// Mesher builds a mesh from selected faces of a body
type Mesher interface {
	// Mesh assembles the faces identified by the 1-indexed IDs into a
	// single shell, transformed by the body's global placement.
	Mesh(name string, body *scene.Body, faceIDs []int, opts Options) (*stl.Mesh, error)
}

// ShellMesher is the snapshot-backed Mesher. The snapshot already carries
// each face's tessellation, so meshing reduces to copying the selected
// faces, applying the global placement and dropping degenerate triangles.
type ShellMesher struct{}

// NewShellMesher creates a new shell mesher
func NewShellMesher() *ShellMesher {
	return &ShellMesher{}
}

// Mesh implements Mesher
func (m *ShellMesher) Mesh(name string, body *scene.Body, faceIDs []int, opts Options) (*stl.Mesh, error) {
	if len(faceIDs) == 0 {
		return nil, fmt.Errorf("no faces selected")
	}

	transform := body.Placement.Geometry().Matrix()

	var tris []geometry.Triangle
	for _, id := range faceIDs {
		if id < 1 || id > len(body.Faces) {
			return nil, fmt.Errorf("face %d out of range (body %s has %d faces)", id, body.Label, len(body.Faces))
		}
		for _, t := range body.Faces[id-1].Geometry() {
			placed := transform.ApplyTriangle(t)
			if placed.IsDegenerate() {
				continue
			}
			tris = append(tris, placed)
		}
	}

	if len(tris) == 0 {
		return nil, fmt.Errorf("selected faces of body %s contain no triangles", body.Label)
	}

	return stl.FromGeometry(name, tris), nil
}
