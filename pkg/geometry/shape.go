package geometry

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// MinHitDistance rejects hits at or behind the ray origin, including self-intersection after a bounce
const MinHitDistance = 1e-3

// Shape is a surface that can be hit by rays and reflect them
type Shape interface {
	// Intersect returns the distance along the ray to the nearest hit
	Intersect(ray core.Ray) (float32, bool)
	// Reflect bounces the ray at hit, shading it and consuming one bounce
	Reflect(ray *core.Ray, hit core.V3, sampler core.Sampler)
}

// mirror reflects dir about the unit normal n
func mirror(dir, n core.V3) core.V3 {
	return dir.Subtract(n.Project(dir).Multiply(2))
}

// bounce moves the ray to the hit point, mirrors it and hands it to the material
func bounce(ray *core.Ray, hit, normal core.V3, mat material.Material, sampler core.Sampler) {
	n := normal.Normalize()
	ray.Dir = mirror(ray.Dir, n)
	ray.Origin = hit
	mat.Shade(ray, n, sampler)
	if ray.BouncesRemaining > 0 {
		ray.BouncesRemaining--
	}
}
