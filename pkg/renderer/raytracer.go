package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/integrator"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for the per-tile random generators
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0,
		Seed:       0,
	}
}

// MergeRenderConfig returns base with every non-zero field of override applied
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	if override.TileSize > 0 {
		base.TileSize = override.TileSize
	}
	if override.NumWorkers > 0 {
		base.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		base.Seed = override.Seed
	}
	return base
}

// Raytracer renders a full frame of a scene
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene *scene.Scene, integratorInst integrator.Integrator, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      scene,
		integrator: integratorInst,
		config:     MergeRenderConfig(DefaultRenderConfig(), config),
		logger:     logger,
	}
}

// Render traces every pixel of the camera viewport and returns the row-major color buffer.
// A cancelled render returns the context error and no buffer.
func (rt *Raytracer) Render(ctx context.Context) ([]core.Col3, RenderStats, error) {
	if err := rt.scene.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid scene: %w", err)
	}

	camera := rt.scene.Camera
	width, height := int(camera.SizeX), int(camera.SizeY)
	pixels := make([]core.Col3, width*height)

	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)
	pool := NewWorkerPool(rt.config.NumWorkers)
	tileRenderer := NewTileRenderer(rt.scene, rt.integrator)

	rt.logger.Printf("Rendering %dx%d at %d rays/pixel, %d bounces (%d tiles, %d workers)...\n",
		width, height, camera.RaysPerPixel, camera.BounceDepth, len(tiles), pool.GetNumWorkers())

	startTime := time.Now()
	stats, err := pool.Run(ctx, tiles, func(ctx context.Context, tile *Tile) (RenderStats, error) {
		// Each tile writes a disjoint set of slots in pixels
		return tileRenderer.RenderTileBounds(ctx, tile.Bounds, pixels, core.NewRandomSampler(tile.Random))
	})
	if err != nil {
		rt.logger.Printf("Render aborted: %v\n", err)
		return nil, RenderStats{}, err
	}
	stats.Elapsed = time.Since(startTime)

	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Elapsed, stats.TotalSamples)
	return pixels, stats, nil
}

// ToRGBA packs a row-major color buffer into an opaque image
func ToRGBA(pixels []core.Col3, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, c := range pixels[:min(len(pixels), width*height)] {
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = 255
	}
	return img
}
