package entity

import "math"

// Quaternion is a unit quaternion describing a 3D rotation
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion is the rotation that does nothing
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// AxisAngle builds the rotation of degrees about (x, y, z).
// A zero axis yields the identity.
func AxisAngle(x, y, z, degrees float64) Quaternion {
	n := math.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return IdentityQuaternion()
	}
	half := degrees * math.Pi / 360
	s := math.Sin(half) / n
	return Quaternion{W: math.Cos(half), X: x * s, Y: y * s, Z: z * s}
}

// Mul composes rotations: q.Mul(r) applies r first, then q
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Norm returns the quaternion's length; 1 for a pure rotation
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Rotate applies the rotation to the vector (x, y, z)
func (q Quaternion) Rotate(x, y, z float64) (float64, float64, float64) {
	p := q.Mul(Quaternion{X: x, Y: y, Z: z}).Mul(q.conjugate())
	return p.X, p.Y, p.Z
}

func (q Quaternion) conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}
