package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// parallelEpsilon is the |normal·dir| below which a ray is treated as parallel to a plane
const parallelEpsilon = 1e-4

// Plane represents an infinite plane spanned by two basis vectors through an origin
type Plane struct {
	Origin   core.V3 // A point on the plane
	BaseOne  core.V3
	BaseTwo  core.V3
	Material material.Material
}

// NewPlane creates a new plane
func NewPlane(origin, baseOne, baseTwo core.V3, mat material.Material) *Plane {
	return &Plane{
		Origin:   origin,
		BaseOne:  baseOne,
		BaseTwo:  baseTwo,
		Material: mat,
	}
}

// Normal returns BaseOne × BaseTwo (not normalized)
func (p *Plane) Normal() core.V3 {
	return p.BaseOne.Cross(p.BaseTwo)
}

// Project returns the component of source lying in the plane
func (p *Plane) Project(source core.V3) core.V3 {
	return source.Subtract(p.Normal().Project(source))
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float32, bool) {
	normal := p.Normal()
	denominator := normal.Dot(ray.Dir)

	// Ray is parallel to the plane (or the plane is degenerate)
	if math32.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	t := -normal.Dot(ray.Origin.Subtract(p.Origin)) / denominator
	if t <= MinHitDistance {
		return 0, false
	}
	return t, true
}

// Reflect mirrors the ray about the plane normal and shades it
func (p *Plane) Reflect(ray *core.Ray, hit core.V3, sampler core.Sampler) {
	bounce(ray, hit, p.Normal(), p.Material, sampler)
}
