package geometry

import "math"

// Placement represents a body's global placement: a rotation given as
// XYZ Euler angles in degrees plus a translation. Rotations are applied
// in the order Z, Y, X (intrinsic rotations), matching the typical 3D
// transformation pipeline.
type Placement struct {
	RotationX, RotationY, RotationZ float64
	TranslationX                    float64
	TranslationY                    float64
	TranslationZ                    float64
}

// Matrix is a row-major 3x3 rotation matrix with a translation column
type Matrix struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	M31, M32, M33 float64
	Tx, Ty, Tz    float64
}

// Identity returns the identity transform
func Identity() Matrix {
	return Matrix{M11: 1, M22: 1, M33: 1}
}

// IsIdentity reports whether p is the zero placement
func (p Placement) IsIdentity() bool {
	return p == Placement{}
}

// Matrix builds the combined rotation matrix (Z * Y * X) plus translation
func (p Placement) Matrix() Matrix {
	// Convert degrees to radians
	rx := p.RotationX * math.Pi / 180.0
	ry := p.RotationY * math.Pi / 180.0
	rz := p.RotationZ * math.Pi / 180.0

	cosX, sinX := math.Cos(rx), math.Sin(rx)
	cosY, sinY := math.Cos(ry), math.Sin(ry)
	cosZ, sinZ := math.Cos(rz), math.Sin(rz)

	return Matrix{
		M11: cosY * cosZ,
		M12: cosY * sinZ,
		M13: -sinY,

		M21: sinX*sinY*cosZ - cosX*sinZ,
		M22: sinX*sinY*sinZ + cosX*cosZ,
		M23: sinX * cosY,

		M31: cosX*sinY*cosZ + sinX*sinZ,
		M32: cosX*sinY*sinZ - sinX*cosZ,
		M33: cosX * cosY,

		Tx: p.TranslationX,
		Ty: p.TranslationY,
		Tz: p.TranslationZ,
	}
}

// Apply transforms a point by the matrix
func (m Matrix) Apply(v Vector3) Vector3 {
	return Vector3{
		X: m.M11*v.X + m.M12*v.Y + m.M13*v.Z + m.Tx,
		Y: m.M21*v.X + m.M22*v.Y + m.M23*v.Z + m.Ty,
		Z: m.M31*v.X + m.M32*v.Y + m.M33*v.Z + m.Tz,
	}
}

// ApplyTriangle transforms all three vertices of a triangle
func (m Matrix) ApplyTriangle(t Triangle) Triangle {
	return Triangle{
		V1: m.Apply(t.V1),
		V2: m.Apply(t.V2),
		V3: m.Apply(t.V3),
	}
}
