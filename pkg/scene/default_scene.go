package scene

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// NewDefaultScene creates a closed room of six coloured walls holding three spheres
func NewDefaultScene() *Scene {
	s := New(geometry.DefaultCamera())

	xAxis := core.NewV3(1, 0, 0)
	yAxis := core.NewV3(0, 1, 0)
	zAxis := core.NewV3(0, 0, 1)

	// Create materials
	greenWall := material.New(0.9, 0.95, core.NewCol3(100, 255, 120), 0.95)
	blueWall := material.New(0.9, 0.95, core.NewCol3(100, 120, 255), 0.8)
	redWall := material.New(0.9, 0.4, core.NewCol3(255, 120, 100), 0.9)
	floor := material.New(0.9, 0.7, core.NewCol3(255, 255, 255), 0.87)
	ceiling := material.New(0.9, 0.7, core.NewCol3(0, 255, 255), 0.87)

	// Front and back walls
	s.AddPlane(core.NewV3(0, 0, 6.5), xAxis, yAxis, greenWall)
	s.AddPlane(core.NewV3(0, 0, -6.5), xAxis, yAxis, greenWall)

	// Side walls
	s.AddPlane(core.NewV3(3.5, 0, 0), zAxis, yAxis, blueWall)
	s.AddPlane(core.NewV3(-3.5, 0, 0), zAxis, yAxis, redWall)

	// Floor and ceiling
	s.AddPlane(core.NewV3(0, -2, 0), xAxis, zAxis, floor)
	s.AddPlane(core.NewV3(0, 3, 0), xAxis, zAxis, ceiling)

	s.AddSphere(core.NewV3(0, 1, 2), 1.0, material.New(0.5, 0.9, core.NewCol3(255, 0, 0), 0.9))
	s.AddSphere(core.NewV3(1.2, 0.5, 1), 0.5, material.New(0.5, 0.9, core.NewCol3(255, 255, 240), 1.0))
	s.AddSphere(core.NewV3(2, 1, 3), 1.0, material.New(0.5, 0.7, core.NewCol3(120, 200, 150), 0.7))

	return s
}
