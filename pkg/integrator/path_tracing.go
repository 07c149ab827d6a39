package integrator

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
)

// PathTracingIntegrator follows a ray from bounce to bounce until its budget runs out
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor returns the ray's tinted color once its last bounce is spent.
// A ray that escapes the scene, or whose final gain is not positive, is black.
func (pt *PathTracingIntegrator) RayColor(ray *core.Ray, scene *scene.Scene, sampler core.Sampler) core.Col3 {
	if ray.BouncesRemaining == 0 {
		return core.Black()
	}

	maxSteps := ray.StepsRemaining
	for ray.BouncesRemaining > 0 {
		shape, dist, isHit := scene.Hit(*ray)
		if !isHit {
			return core.Black()
		}

		ray.StepsRemaining = maxSteps
		shape.Reflect(ray, ray.At(dist), sampler)
	}

	if ray.Gamma > 0 {
		return ray.Color
	}
	return core.Black()
}
