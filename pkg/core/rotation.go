package core

import "github.com/go-gl/mathgl/mgl32"

// Rotation3 is a 3x3 linear map whose columns are the images of the x, y and z axes
type Rotation3 struct {
	m mgl32.Mat3
}

// NewRotation3 creates a matrix mapping x to iHat, y to jHat and z to kHat
func NewRotation3(iHat, jHat, kHat V3) Rotation3 {
	return Rotation3{m: mgl32.Mat3FromCols(toMgl(iHat), toMgl(jHat), toMgl(kHat))}
}

// RotationX rotates about the x axis by theta radians
func RotationX(theta float32) Rotation3 {
	return Rotation3{m: mgl32.Rotate3DX(theta)}
}

// RotationY rotates about the y axis by theta radians
func RotationY(theta float32) Rotation3 {
	return Rotation3{m: mgl32.Rotate3DY(theta)}
}

// RotationZ rotates about the z axis by theta radians
func RotationZ(theta float32) Rotation3 {
	return Rotation3{m: mgl32.Rotate3DZ(theta)}
}

// Transform returns v.X*iHat + v.Y*jHat + v.Z*kHat
func (r Rotation3) Transform(v V3) V3 {
	return fromMgl(r.m.Mul3x1(toMgl(v)))
}

// Basis returns the images of the x, y and z axes
func (r Rotation3) Basis() (iHat, jHat, kHat V3) {
	return fromMgl(r.m.Col(0)), fromMgl(r.m.Col(1)), fromMgl(r.m.Col(2))
}

func toMgl(v V3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl32.Vec3) V3 {
	return V3{X: v[0], Y: v[1], Z: v[2]}
}
