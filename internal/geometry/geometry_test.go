package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecAlmostEqual(a, b Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestTriangleNormal(t *testing.T) {
	tests := []struct {
		name     string
		tri      Triangle
		expected Vector3
	}{
		{
			name: "ccw in XY plane points up",
			tri: Triangle{
				V1: Vector3{0, 0, 0},
				V2: Vector3{1, 0, 0},
				V3: Vector3{0, 1, 0},
			},
			expected: Vector3{0, 0, 1},
		},
		{
			name: "cw in XY plane points down",
			tri: Triangle{
				V1: Vector3{0, 0, 0},
				V2: Vector3{0, 1, 0},
				V3: Vector3{1, 0, 0},
			},
			expected: Vector3{0, 0, -1},
		},
		{
			name: "degenerate yields zero vector",
			tri: Triangle{
				V1: Vector3{1, 1, 1},
				V2: Vector3{1, 1, 1},
				V3: Vector3{1, 1, 1},
			},
			expected: Vector3{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tri.Normal()
			if !vecAlmostEqual(got, tt.expected) {
				t.Errorf("Normal() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestIsDegenerate(t *testing.T) {
	collinear := Triangle{
		V1: Vector3{0, 0, 0},
		V2: Vector3{1, 1, 1},
		V3: Vector3{2, 2, 2},
	}
	if !collinear.IsDegenerate() {
		t.Error("collinear triangle should be degenerate")
	}

	proper := Triangle{
		V1: Vector3{0, 0, 0},
		V2: Vector3{1, 0, 0},
		V3: Vector3{0, 1, 0},
	}
	if proper.IsDegenerate() {
		t.Error("proper triangle should not be degenerate")
	}
}

func TestPlacementIdentity(t *testing.T) {
	var p Placement
	if !p.IsIdentity() {
		t.Error("zero placement should be identity")
	}

	m := p.Matrix()
	v := Vector3{1, 2, 3}
	if got := m.Apply(v); !vecAlmostEqual(got, v) {
		t.Errorf("identity transform moved point: %+v", got)
	}
}

func TestPlacementTranslation(t *testing.T) {
	p := Placement{TranslationX: 10, TranslationY: -5, TranslationZ: 2.5}
	got := p.Matrix().Apply(Vector3{1, 1, 1})
	expected := Vector3{11, -4, 3.5}
	if !vecAlmostEqual(got, expected) {
		t.Errorf("Apply() = %+v, expected %+v", got, expected)
	}
}

func TestPlacementRotationZ(t *testing.T) {
	// 90 degrees around Z maps +X to -Y with the ZYX row convention used here
	p := Placement{RotationZ: 90}
	got := p.Matrix().Apply(Vector3{1, 0, 0})
	if !almostEqual(got.X, 0) || !almostEqual(math.Abs(got.Y), 1) || !almostEqual(got.Z, 0) {
		t.Errorf("rotation Z 90 applied to +X = %+v", got)
	}
}

func TestPlacementRotationPreservesLength(t *testing.T) {
	p := Placement{RotationX: 30, RotationY: 45, RotationZ: 60}
	v := Vector3{1, 2, 3}
	got := p.Matrix().Apply(v)
	if !almostEqual(got.Length(), v.Length()) {
		t.Errorf("rotation changed vector length: %f != %f", got.Length(), v.Length())
	}
}

func TestApplyTriangleTransformsAllVertices(t *testing.T) {
	p := Placement{TranslationZ: 1}
	tri := Triangle{
		V1: Vector3{0, 0, 0},
		V2: Vector3{1, 0, 0},
		V3: Vector3{0, 1, 0},
	}
	got := p.Matrix().ApplyTriangle(tri)
	if !almostEqual(got.V1.Z, 1) || !almostEqual(got.V2.Z, 1) || !almostEqual(got.V3.Z, 1) {
		t.Errorf("translation not applied to all vertices: %+v", got)
	}
}
