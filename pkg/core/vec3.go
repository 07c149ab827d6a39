package core

import "github.com/chewxy/math32"

// projectEpsilon is the squared length below which a vector is too short to project onto
const projectEpsilon = 1e-4

// V3 represents a 3D vector
type V3 struct {
	X, Y, Z float32
}

// NewV3 creates a new V3
func NewV3(x, y, z float32) V3 {
	return V3{X: x, Y: y, Z: z}
}

// Zero returns the zero vector
func Zero() V3 {
	return V3{}
}

// Add returns the sum of two vectors
func (v V3) Add(other V3) V3 {
	return V3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v V3) Subtract(other V3) V3 {
	return V3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v V3) Multiply(scalar float32) V3 {
	return V3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Scale is Multiply with the scalar first
func Scale(scalar float32, v V3) V3 {
	return v.Multiply(scalar)
}

// Negate returns the negative of the vector
func (v V3) Negate() V3 {
	return V3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v V3) Dot(other V3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v V3) Cross(other V3) V3 {
	return V3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v V3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector
func (v V3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Dist returns the distance between two points
func (v V3) Dist(other V3) float32 {
	return v.Subtract(other).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v V3) Normalize() V3 {
	length := v.Length()
	if length == 0 {
		return V3{}
	}
	return V3{v.X / length, v.Y / length, v.Z / length}
}

// Project returns the component of source along v.
// Returns zero when v is too short to define a direction.
func (v V3) Project(source V3) V3 {
	denominator := v.LengthSquared()
	if denominator < projectEpsilon {
		return V3{}
	}
	return v.Multiply(v.Dot(source) / denominator)
}

// Equals reports whether two vectors are within tolerance of each other
func (v V3) Equals(other V3, tolerance float32) bool {
	return math32.Abs(v.X-other.X) <= tolerance &&
		math32.Abs(v.Y-other.Y) <= tolerance &&
		math32.Abs(v.Z-other.Z) <= tolerance
}

// Vec2 holds a pair of sample values
type Vec2 struct {
	X, Y float32
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}
