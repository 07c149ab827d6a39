package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Origin   core.V3 // Center
	Radius   float32
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(origin core.V3, radius float32, mat material.Material) *Sphere {
	return &Sphere{
		Origin:   origin,
		Radius:   radius,
		Material: mat,
	}
}

// Normal returns the outward unit normal at a point on the sphere
func (s *Sphere) Normal(point core.V3) core.V3 {
	return point.Subtract(s.Origin).Normalize()
}

// Intersect returns the nearest root of |O + tD - C|² = r² beyond MinHitDistance.
// A ray starting inside the sphere hits the far side.
func (s *Sphere) Intersect(ray core.Ray) (float32, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Origin)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Dir.LengthSquared()
	if a == 0 {
		return 0, false
	}
	halfB := oc.Dot(ray.Dir)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math32.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= MinHitDistance {
		root = (-halfB + sqrtD) / a
		if root <= MinHitDistance {
			return 0, false
		}
	}
	return root, true
}

// Reflect mirrors the ray about the surface normal at hit and shades it
func (s *Sphere) Reflect(ray *core.Ray, hit core.V3, sampler core.Sampler) {
	bounce(ray, hit, s.Normal(hit), s.Material, sampler)
}
