package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SceneFile is the JSON description of a scene
type SceneFile struct {
	Camera CameraSpec  `json:"camera"`
	Shapes []ShapeSpec `json:"shapes"`
}

// CameraSpec describes the camera. Rotations are in degrees.
type CameraSpec struct {
	Location       [3]float32 `json:"location"`
	RotationXDeg   float32    `json:"rotationX"`
	RotationYDeg   float32    `json:"rotationY"`
	ViewportAnchor [3]float32 `json:"viewportAnchor"`
	Width          uint16     `json:"width"`
	Height         uint16     `json:"height"`
	RaysPerPixel   uint16     `json:"raysPerPixel"`
	BounceDepth    uint16     `json:"bounceDepth"`
	MaxSteps       uint16     `json:"maxSteps,omitempty"`
	StepLen        float32    `json:"stepLen,omitempty"`
}

// Shape types understood by the loader
const (
	ShapePlane  = "plane"
	ShapeSphere = "sphere"
)

// ShapeSpec describes one plane or sphere
type ShapeSpec struct {
	Type     string       `json:"type"`
	Origin   [3]float32   `json:"origin"`
	BaseOne  [3]float32   `json:"baseOne,omitempty"` // plane only
	BaseTwo  [3]float32   `json:"baseTwo,omitempty"` // plane only
	Radius   float32      `json:"radius,omitempty"`  // sphere only
	Material MaterialSpec `json:"material"`
}

// MaterialSpec describes a surface material
type MaterialSpec struct {
	Albedo     float32  `json:"albedo"`
	Smoothness float32  `json:"smoothness"`
	Color      [3]uint8 `json:"color"`
	Brightness float32  `json:"brightness"`
}

// LoadSceneFile reads and validates a JSON scene file
func LoadSceneFile(path string) (*SceneFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sceneFile, err := ParseSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sceneFile, nil
}

// ParseSceneFile decodes and validates a JSON scene from a reader
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var sceneFile SceneFile
	if err := decoder.Decode(&sceneFile); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if err := sceneFile.Validate(); err != nil {
		return nil, err
	}
	return &sceneFile, nil
}

// Validate checks the scene for values that cannot be rendered
func (sf *SceneFile) Validate() error {
	if sf.Camera.Width == 0 || sf.Camera.Height == 0 {
		return fmt.Errorf("camera size must be non-zero, got %dx%d", sf.Camera.Width, sf.Camera.Height)
	}
	for i, shape := range sf.Shapes {
		if err := shape.validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

func (s ShapeSpec) validate() error {
	switch s.Type {
	case ShapePlane:
		one, two := s.BaseOne, s.BaseTwo
		cross := [3]float32{
			one[1]*two[2] - one[2]*two[1],
			one[2]*two[0] - one[0]*two[2],
			one[0]*two[1] - one[1]*two[0],
		}
		if cross == [3]float32{} {
			return fmt.Errorf("plane basis vectors must not be parallel")
		}
	case ShapeSphere:
		if s.Radius <= 0 {
			return fmt.Errorf("sphere radius must be positive, got %g", s.Radius)
		}
	default:
		return fmt.Errorf("unknown shape type %q", s.Type)
	}
	return nil
}
