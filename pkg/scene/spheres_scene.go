package scene

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// NewSpheresScene creates a row of spheres of increasing smoothness under an emissive ceiling
func NewSpheresScene() *Scene {
	camera := geometry.DefaultCamera()
	camera.Location = core.NewV3(1, 1.2, -4)
	camera.RotationX = 0.35
	camera.RaysPerPixel = 8
	camera.BounceDepth = 4
	s := New(camera)

	// Ground and a glowing ceiling that ends every path reaching it
	s.AddPlane(core.NewV3(0, -1, 0), core.NewV3(1, 0, 0), core.NewV3(0, 0, 1),
		material.New(0.8, 0.2, core.NewCol3(220, 220, 220), 0.9))
	s.AddPlane(core.NewV3(0, 6, 0), core.NewV3(1, 0, 0), core.NewV3(0, 0, 1),
		material.New(1.0, 0.0, core.White(), 2.0))

	colors := []core.Col3{
		core.NewCol3(255, 80, 80),
		core.NewCol3(255, 220, 90),
		core.NewCol3(90, 220, 120),
		core.NewCol3(90, 140, 255),
	}
	for i, color := range colors {
		smoothness := float32(i) / float32(len(colors)-1)
		x := float32(i)*1.3 - 1.95
		s.AddSphere(core.NewV3(x, -0.4, 2), 0.6, material.New(0.5, smoothness, color, 1.0))
	}

	return s
}
