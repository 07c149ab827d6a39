// Package app runs the interactive viewer window.
package app

import (
	"context"
	"errors"
	"image"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/integrator"
	"github.com/df07/go-bounce-pathtracer/pkg/renderer"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
	"github.com/df07/go-bounce-pathtracer/viewer/control"
	"github.com/df07/go-bounce-pathtracer/viewer/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game re-renders the scene every frame while the user flies the camera around
type Game struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	controller control.Controller
	workers    int
	logger     core.Logger

	frameCount int64
	img        *image.RGBA
	frameImg   *ebiten.Image
}

// New creates a viewer for sc rendering with the given number of workers
func New(sc *scene.Scene, workers int, logger core.Logger) *Game {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Game{
		scene:      sc,
		integrator: integrator.NewPathTracingIntegrator(),
		workers:    workers,
		logger:     logger,
	}
}

// Run opens a window scaled by scale and blocks until it closes
func Run(g *Game, title string, scale int) error {
	camera := g.scene.Camera
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(camera.SizeX)*scale, int(camera.SizeY)*scale)
	ebiten.SetTPS(30)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) Update() error {
	if err := g.controller.Apply(readInput(), g.scene.Camera); err != nil {
		if errors.Is(err, control.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}

	g.frameCount++
	rt := renderer.NewRaytracer(g.scene, g.integrator, renderer.RenderConfig{
		NumWorkers: g.workers,
		Seed:       g.frameCount,
	}, nil)
	pixels, stats, err := rt.Render(context.Background())
	if err != nil {
		return err
	}
	if g.frameCount%30 == 0 {
		g.logger.Printf("Frame %d rendered in %v\n", g.frameCount, stats.Elapsed)
	}

	camera := g.scene.Camera
	g.img = renderer.ToRGBA(pixels, int(camera.SizeX), int(camera.SizeY))
	hud.DrawLine(g.img, control.Status(camera))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		return
	}
	b := g.img.Bounds()
	if g.frameImg == nil || g.frameImg.Bounds().Dx() != b.Dx() || g.frameImg.Bounds().Dy() != b.Dy() {
		if g.frameImg != nil {
			g.frameImg.Deallocate()
		}
		g.frameImg = ebiten.NewImage(b.Dx(), b.Dy())
	}

	g.frameImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.frameImg, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.scene.Camera.SizeX), int(g.scene.Camera.SizeY)
}

func readInput() control.Input {
	return control.Input{
		Forward: ebiten.IsKeyPressed(ebiten.KeyW),
		Back:    ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD),
		Up:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Down:    ebiten.IsKeyPressed(ebiten.KeyC),

		RotateLeft:  inpututil.IsKeyJustPressed(ebiten.KeyQ),
		RotateRight: inpututil.IsKeyJustPressed(ebiten.KeyE),
		MoreBounces: inpututil.IsKeyJustPressed(ebiten.KeyR),
		MoreRays:    inpututil.IsKeyJustPressed(ebiten.KeyO),
		Reset:       inpututil.IsKeyJustPressed(ebiten.KeyP),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
