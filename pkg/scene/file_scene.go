package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
	"github.com/df07/go-bounce-pathtracer/pkg/loaders"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

const degToRad = math32.Pi / 180

// NewFileScene creates a scene from a JSON scene file
func NewFileScene(path string) (*Scene, error) {
	sceneFile, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}
	return FromSceneFile(sceneFile), nil
}

// FromSceneFile converts a decoded scene file into a scene
func FromSceneFile(sceneFile *loaders.SceneFile) *Scene {
	s := New(convertCamera(sceneFile.Camera))

	for _, spec := range sceneFile.Shapes {
		mat := convertMaterial(spec.Material)
		switch spec.Type {
		case loaders.ShapePlane:
			s.AddPlane(toV3(spec.Origin), toV3(spec.BaseOne), toV3(spec.BaseTwo), mat)
		case loaders.ShapeSphere:
			s.AddSphere(toV3(spec.Origin), spec.Radius, mat)
		}
	}

	return s
}

func convertCamera(spec loaders.CameraSpec) *geometry.Camera {
	camera := &geometry.Camera{
		Location:       toV3(spec.Location),
		RotationX:      spec.RotationXDeg * degToRad,
		RotationY:      spec.RotationYDeg * degToRad,
		ViewportAnchor: toV3(spec.ViewportAnchor),
		SizeX:          spec.Width,
		SizeY:          spec.Height,
		RaysPerPixel:   spec.RaysPerPixel,
		BounceDepth:    spec.BounceDepth,
		MaxSteps:       spec.MaxSteps,
		StepLen:        spec.StepLen,
	}

	// Fill unset marching parameters from the defaults
	defaults := geometry.DefaultCamera()
	if camera.MaxSteps == 0 {
		camera.MaxSteps = defaults.MaxSteps
	}
	if camera.StepLen == 0 {
		camera.StepLen = defaults.StepLen
	}
	return camera
}

func convertMaterial(spec loaders.MaterialSpec) material.Material {
	color := core.NewCol3(spec.Color[0], spec.Color[1], spec.Color[2])
	return material.New(spec.Albedo, spec.Smoothness, color, spec.Brightness)
}

func toV3(v [3]float32) core.V3 {
	return core.NewV3(v[0], v[1], v[2])
}
