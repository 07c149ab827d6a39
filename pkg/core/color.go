package core

import "image/color"

// Col3 is an 8-bit-per-channel RGB color
type Col3 struct {
	R, G, B uint8
}

// Col4 is an 8-bit-per-channel RGBA color
type Col4 struct {
	R, G, B, A uint8
}

// NewCol3 creates a new Col3
func NewCol3(r, g, b uint8) Col3 {
	return Col3{R: r, G: g, B: b}
}

// White returns full intensity on every channel
func White() Col3 {
	return Col3{0xff, 0xff, 0xff}
}

// Black returns zero intensity on every channel
func Black() Col3 {
	return Col3{}
}

// Add blends two colors additively, saturating at 255
func (c Col3) Add(other Col3) Col3 {
	return Col3{
		R: saturate(int(c.R) + int(other.R)),
		G: saturate(int(c.G) + int(other.G)),
		B: saturate(int(c.B) + int(other.B)),
	}
}

// Subtract blends two colors subtractively, saturating at 0
func (c Col3) Subtract(other Col3) Col3 {
	return Col3{
		R: saturate(int(c.R) - int(other.R)),
		G: saturate(int(c.G) - int(other.G)),
		B: saturate(int(c.B) - int(other.B)),
	}
}

// Multiply returns the light left after other is absorbed by a surface of color c.
// Each channel is (a*b)/255.
func (c Col3) Multiply(other Col3) Col3 {
	return Col3{
		R: uint8(uint16(c.R) * uint16(other.R) / 0xff),
		G: uint8(uint16(c.G) * uint16(other.G) / 0xff),
		B: uint8(uint16(c.B) * uint16(other.B) / 0xff),
	}
}

// Scale multiplies every channel by a scalar, saturating to [0, 255]
func (c Col3) Scale(scalar float32) Col3 {
	return Col3{
		R: saturateFloat(float32(c.R) * scalar),
		G: saturateFloat(float32(c.G) * scalar),
		B: saturateFloat(float32(c.B) * scalar),
	}
}

// Inverse returns white minus c, the complement of its absorption spectrum
func (c Col3) Inverse() Col3 {
	return White().Subtract(c)
}

// Reflect returns the color seen when incoming light strikes a surface of color c
func (c Col3) Reflect(incoming Col3) Col3 {
	return c.Inverse().Multiply(incoming)
}

// RGBA expands the color to RGBA with full opacity
func (c Col3) RGBA() Col4 {
	return Col4{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ToColor converts to the standard library color type
func (c Col4) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func saturate(v int) uint8 {
	return uint8(max(0, min(0xff, v)))
}

func saturateFloat(v float32) uint8 {
	// NaN fails both comparisons and lands on 0
	if !(v > 0) {
		return 0
	}
	if v >= 0xff {
		return 0xff
	}
	return uint8(v)
}
