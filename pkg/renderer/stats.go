package renderer

import (
	"time"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	NumWorkers   int           // Workers used for the render
	Elapsed      time.Duration // Wall time of the whole render
}

// AverageSamples returns the mean number of rays traced per pixel
func (rs RenderStats) AverageSamples() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalSamples) / float64(rs.TotalPixels)
}

func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
}

// PixelStats accumulates the gain-weighted samples of a single pixel
type PixelStats struct {
	R, G, B     uint64
	SampleCount int
}

// AddSample adds a traced color weighted by the ray's final gain
func (ps *PixelStats) AddSample(color core.Col3, gamma float32) {
	ps.SampleCount++
	if gamma <= 0 {
		return
	}
	ps.R += uint64(float32(color.R) * gamma)
	ps.G += uint64(float32(color.G) * gamma)
	ps.B += uint64(float32(color.B) * gamma)
}

// GetColor returns the average of the accumulated samples, clamped to 255
func (ps *PixelStats) GetColor() core.Col3 {
	if ps.SampleCount == 0 {
		return core.Black()
	}
	n := uint64(ps.SampleCount)
	return core.NewCol3(
		uint8(min(ps.R/n, 255)),
		uint8(min(ps.G/n, 255)),
		uint8(min(ps.B/n, 255)),
	)
}

// CalculateAverageLuminance calculates the average Rec. 709 luminance of a buffer in [0, 1]
func CalculateAverageLuminance(pixels []core.Col3) float64 {
	if len(pixels) == 0 {
		return 0
	}

	var totalLum float64
	for _, c := range pixels {
		r := float64(c.R) / 255.0
		g := float64(c.G) / 255.0
		b := float64(c.B) / 255.0
		totalLum += 0.2126*r + 0.7152*g + 0.0722*b
	}

	return totalLum / float64(len(pixels))
}
