package material

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
)

// EmissiveThreshold is the brightness above which a surface ends any path that reaches it
const EmissiveThreshold = 1.9

// Material describes how a surface shades the rays it reflects
type Material struct {
	Albedo     float32   // Nominal reflectivity, carried but not applied
	Smoothness float32   // 0.0 = fully diffuse, 1.0 = perfect mirror
	Color      core.Col3 // Tint multiplied into every reflected ray
	Brightness float32   // Gain applied to the ray's final color
}

// New creates a material, clamping albedo and smoothness to [0, 1]
func New(albedo, smoothness float32, color core.Col3, brightness float32) Material {
	return Material{
		Albedo:     clamp01(albedo),
		Smoothness: clamp01(smoothness),
		Color:      color,
		Brightness: brightness,
	}
}

// IsEmissive reports whether the material acts as a light source
func (m Material) IsEmissive() bool {
	return m.Brightness > EmissiveThreshold
}

// Shade updates a ray that has just been mirrored at a surface with the given normal.
// The ray direction is expected to already hold the mirror direction.
func (m Material) Shade(ray *core.Ray, normal core.V3, sampler core.Sampler) {
	m.displace(ray, normal, sampler)
	m.tint(ray)
	m.applyBrightness(ray)
}

// displace blends the mirror direction with a random direction off the surface
func (m Material) displace(ray *core.Ray, normal core.V3, sampler core.Sampler) {
	mirror := ray.Dir.Normalize()
	n := normal.Normalize()
	if n.Dot(mirror) < 0 {
		n = n.Negate()
	}

	scatter := core.SampleDiskHemisphere(n, sampler.Get2D())
	dir := mirror.Multiply(m.Smoothness).Add(scatter.Multiply(1 - m.Smoothness)).Normalize()
	if dir == core.Zero() {
		// mirror and scatter cancelled out
		dir = n
	}
	ray.Dir = dir
}

func (m Material) tint(ray *core.Ray) {
	ray.Color = ray.Color.Multiply(m.Color)
}

func (m Material) applyBrightness(ray *core.Ray) {
	ray.Gamma = m.Brightness
	if m.IsEmissive() {
		ray.BouncesRemaining = 1
	}
}

func clamp01(v float32) float32 {
	return max(0, min(1, v))
}
