package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-bounce-pathtracer/pkg/core"
)

// initialRayGamma is the gain a camera ray carries before it hits anything
const initialRayGamma = 0.2

// Camera generates the sampling rays for each pixel of the viewport
type Camera struct {
	Location       core.V3
	RotationX      float32 // Radians
	RotationY      float32 // Radians
	ViewportAnchor core.V3 // Reference corner of the viewport, relative to the camera
	SizeX, SizeY   uint16  // Resolution in pixels
	RaysPerPixel   uint16
	BounceDepth    uint16
	MaxSteps       uint16
	StepLen        float32
}

// DefaultCamera returns a 512x512 camera tilted down a quarter turn over the default room
func DefaultCamera() *Camera {
	return &Camera{
		Location:       core.NewV3(1.8, 1.5, 0),
		RotationX:      math32.Pi * 0.25,
		RotationY:      0,
		ViewportAnchor: core.NewV3(-1, 0, 0.25),
		SizeX:          512,
		SizeY:          512,
		RaysPerPixel:   2,
		BounceDepth:    2,
		MaxSteps:       1,
		StepLen:        1000,
	}
}

// Validate checks that the camera can produce an image
func (c *Camera) Validate() error {
	if c.SizeX == 0 || c.SizeY == 0 {
		return fmt.Errorf("camera viewport must be non-empty, got %dx%d", c.SizeX, c.SizeY)
	}
	return nil
}

// PixelStride returns the world-space width of one pixel
func (c *Camera) PixelStride() float32 {
	return c.ViewportAnchor.X * 2 / float32(c.SizeX)
}

// RayOrigin returns the shared origin of every camera ray
func (c *Camera) RayOrigin() core.V3 {
	return c.ViewportAnchor.Add(c.Location)
}

// GenerateRays returns RaysPerPixel jittered rays through pixel (x, y)
func (c *Camera) GenerateRays(x, y uint16, sampler core.Sampler) []core.Ray {
	return c.AppendRays(make([]core.Ray, 0, c.RaysPerPixel), x, y, sampler)
}

// AppendRays appends the rays for pixel (x, y) to dst and returns the extended slice
func (c *Camera) AppendRays(dst []core.Ray, x, y uint16, sampler core.Sampler) []core.Ray {
	stride := c.PixelStride()
	origin := c.RayOrigin()
	rotX := core.RotationX(c.RotationX)
	rotY := core.RotationY(c.RotationY)

	for i := uint16(0); i < c.RaysPerPixel; i++ {
		jitter := sampler.Get2D()
		offset := core.NewV3(float32(x)+jitter.X-0.5, float32(y)+jitter.Y-0.5, 0).Multiply(stride)
		dir := rotX.Transform(rotY.Transform(origin.Add(offset).Normalize()))

		ray := core.NewRay(origin, dir, core.White(), c.BounceDepth, c.MaxSteps)
		ray.Gamma = initialRayGamma
		dst = append(dst, ray)
	}
	return dst
}

// Move translates the camera by a velocity given in its own yaw frame
func (c *Camera) Move(velocity core.V3) {
	c.Location = c.Location.Add(core.RotationY(c.RotationY).Transform(velocity))
}
