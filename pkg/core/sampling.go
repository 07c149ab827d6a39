package core

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing
type Sampler interface {
	Get1D() float32
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float32(), r.random.Float32())
}

// OrthonormalBasis returns two unit vectors perpendicular to n and to each other.
// n must be unit length.
func OrthonormalBasis(n V3) (tangent, bitangent V3) {
	// Pick the axis least aligned with n as the helper
	var helper V3
	if math32.Abs(n.X) > 0.1 {
		helper = NewV3(0, 1, 0)
	} else {
		helper = NewV3(1, 0, 0)
	}
	tangent = helper.Cross(n).Normalize()
	bitangent = n.Cross(tangent)
	return tangent, bitangent
}

// SampleDiskHemisphere maps two uniform samples to a unit vector in the hemisphere around n.
// The first sample picks the angle around n, the second the angle away from it; the point
// (t*cos(theta) + b*sin(theta)) * sin(phi) on the unit disk is lifted by n*cos(phi).
func SampleDiskHemisphere(n V3, sample Vec2) V3 {
	theta := 2 * math32.Pi * sample.X
	phi := 0.5 * math32.Pi * sample.Y

	t, b := OrthonormalBasis(n)
	disk := t.Multiply(math32.Cos(theta)).Add(b.Multiply(math32.Sin(theta))).Multiply(math32.Sin(phi))
	return disk.Add(n.Multiply(math32.Cos(phi)))
}
