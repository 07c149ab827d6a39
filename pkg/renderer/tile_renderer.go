package renderer

import (
	"context"
	"image"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/integrator"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(scene *scene.Scene, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		integrator: integratorInst,
	}
}

// RenderTileBounds renders the pixels within bounds into the row-major buffer pixels.
// Cancellation is checked before each row; a cancelled tile leaves its remaining rows untouched.
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, pixels []core.Col3, sampler core.Sampler) (RenderStats, error) {
	camera := tr.scene.Camera
	width := int(camera.SizeX)
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	rays := make([]core.Ray, 0, camera.RaysPerPixel)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var ps PixelStats
			rays = camera.AppendRays(rays[:0], uint16(x), uint16(y), sampler)
			for i := range rays {
				color := tr.integrator.RayColor(&rays[i], tr.scene, sampler)
				ps.AddSample(color, rays[i].Gamma)
			}

			pixels[y*width+x] = ps.GetColor()
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats, nil
}
