// Package hud draws status text over rendered frames.
package hud

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorFG     = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorShadow = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

var font = &proggy.TinySZ8pt7b

// rgbaDisplay lets tinyfont draw into an in-memory frame
type rgbaDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*rgbaDisplay)(nil)

func (d *rgbaDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *rgbaDisplay) SetPixel(x, y int16, c color.RGBA) {
	p := image.Pt(int(x), int(y)).Add(d.img.Bounds().Min)
	if !p.In(d.img.Bounds()) {
		return
	}
	d.img.SetRGBA(p.X, p.Y, c)
}

func (d *rgbaDisplay) Display() error { return nil }

// DrawLine writes text with a drop shadow at the top-left corner of img
func DrawLine(img *image.RGBA, text string) {
	if img == nil || text == "" {
		return
	}
	d := &rgbaDisplay{img: img}
	y := int16(font.YAdvance)
	tinyfont.WriteLine(d, font, 3, y+1, text, colorShadow)
	tinyfont.WriteLine(d, font, 2, y, text, colorFG)
}
