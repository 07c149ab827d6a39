package integrator

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor follows the ray through the scene and returns its final color.
	// The ray is consumed: its state on return is undefined.
	RayColor(ray *core.Ray, scene *scene.Scene, sampler core.Sampler) core.Col3
}
