// Package control turns per-frame key state into camera motion and render settings.
package control

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
)

const (
	Acceleration      = 0.1
	RotationStep      = math32.Pi / 8
	VelocityDamping   = 0.3
	RotationalDamping = 0.5
	RaysPerPress      = 20
	ResetRaysPerPixel = 2
	ResetBounceDepth  = 1
)

// ErrQuit is returned by Apply when the user asks to leave
var ErrQuit = errors.New("quit requested")

// Input is the key state sampled for one frame.
// Movement keys are held; the rest fire once per press.
type Input struct {
	Forward, Back bool // W, S
	Left, Right   bool // A, D
	Up, Down      bool // Space, C

	RotateLeft, RotateRight bool // Q, E
	MoreBounces             bool // R
	MoreRays                bool // O
	Reset                   bool // P
	Quit                    bool // Escape
}

// Controller carries camera momentum between frames
type Controller struct {
	Velocity           core.V3
	RotationalVelocity float32
}

// Apply advances the controller by one frame and updates the camera.
// It returns ErrQuit without touching the camera when Quit is set.
func (c *Controller) Apply(in Input, camera *geometry.Camera) error {
	if in.Quit {
		return ErrQuit
	}

	c.Velocity = c.Velocity.Add(acceleration(in))
	if in.RotateLeft {
		c.RotationalVelocity -= RotationStep
	}
	if in.RotateRight {
		c.RotationalVelocity += RotationStep
	}

	if in.MoreBounces {
		camera.BounceDepth = addSaturating(camera.BounceDepth, 1)
	}
	if in.MoreRays {
		camera.RaysPerPixel = addSaturating(camera.RaysPerPixel, RaysPerPress)
	}
	if in.Reset {
		camera.RaysPerPixel = ResetRaysPerPixel
		camera.BounceDepth = ResetBounceDepth
	}

	camera.RotationY += c.RotationalVelocity
	camera.Move(c.Velocity)

	c.Velocity = c.Velocity.Multiply(VelocityDamping)
	c.RotationalVelocity *= RotationalDamping
	return nil
}

// Moving reports whether the camera still has momentum
func (c *Controller) Moving() bool {
	return c.Velocity.LengthSquared() > 1e-8 || math32.Abs(c.RotationalVelocity) > 1e-6
}

// Status formats the HUD line for a camera
func Status(camera *geometry.Camera) string {
	return fmt.Sprintf("pos %.2f %.2f %.2f  rays %d  bounces %d",
		camera.Location.X, camera.Location.Y, camera.Location.Z,
		camera.RaysPerPixel, camera.BounceDepth)
}

func acceleration(in Input) core.V3 {
	var a core.V3
	if in.Forward {
		a.Z += Acceleration
	}
	if in.Back {
		a.Z -= Acceleration
	}
	if in.Right {
		a.X += Acceleration
	}
	if in.Left {
		a.X -= Acceleration
	}
	if in.Up {
		a.Y += Acceleration
	}
	if in.Down {
		a.Y -= Acceleration
	}
	return a
}

func addSaturating(v, n uint16) uint16 {
	if int(v)+int(n) > math.MaxUint16 {
		return math.MaxUint16
	}
	return v + n
}
