package scene

import (
	"fmt"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes []geometry.Shape // Objects in the scene, in tie-breaking order
	Camera *geometry.Camera
}

// New creates an empty scene viewed through camera
func New(camera *geometry.Camera) *Scene {
	return &Scene{
		Shapes: make([]geometry.Shape, 0),
		Camera: camera,
	}
}

// AddPlane adds a plane spanned by baseOne and baseTwo through origin
func (s *Scene) AddPlane(origin, baseOne, baseTwo core.V3, mat material.Material) {
	s.Shapes = append(s.Shapes, geometry.NewPlane(origin, baseOne, baseTwo, mat))
}

// AddSphere adds a sphere
func (s *Scene) AddSphere(origin core.V3, radius float32, mat material.Material) {
	s.Shapes = append(s.Shapes, geometry.NewSphere(origin, radius, mat))
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene has no camera")
	}
	return s.Camera.Validate()
}

// Hit returns the shape nearest to the ray origin and its distance.
// On equal distances the shape listed first wins.
func (s *Scene) Hit(ray core.Ray) (geometry.Shape, float32, bool) {
	var closest geometry.Shape
	var closestSoFar float32

	for _, shape := range s.Shapes {
		dist, isHit := shape.Intersect(ray)
		if !isHit {
			continue
		}
		if closest == nil || dist < closestSoFar {
			closest = shape
			closestSoFar = dist
		}
	}

	return closest, closestSoFar, closest != nil
}
