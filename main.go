package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/integrator"
	"github.com/df07/go-bounce-pathtracer/pkg/renderer"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
)

// Config holds the command line options of a render
type Config struct {
	SceneType string
	Width     int
	Height    int
	Samples   int
	Bounces   int
	Workers   int
	Seed      int64
	OutputDir string
	List      bool
	Help      bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp()
		return
	}
	if config.List {
		if err := listScenes(); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene: 'default', 'spheres', a file name in scenes/, or a path to a .json scene")
	flag.IntVar(&config.Width, "width", 0, "Override the camera width in pixels")
	flag.IntVar(&config.Height, "height", 0, "Override the camera height in pixels")
	flag.IntVar(&config.Samples, "samples", 0, "Override the rays traced per pixel")
	flag.IntVar(&config.Bounces, "bounces", 0, "Override the bounce depth of each ray")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&config.Seed, "seed", 0, "Base random seed (0 = derive from the clock)")
	flag.StringVar(&config.OutputDir, "output", "output", "Directory that receives the rendered image")
	flag.BoolVar(&config.List, "list", false, "List available scenes")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("Bounce Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	fmt.Println("  default - Coloured room with three spheres")
	fmt.Println("  spheres - Spheres from diffuse to mirror under a glowing ceiling")
	fmt.Println("  <name>  - scenes/<name>.json")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

func listScenes() error {
	scenes, err := scene.ListAllScenes()
	if err != nil {
		return err
	}
	for _, info := range scenes {
		fmt.Printf("  %-16s %-24s %s\n", info.ID, info.DisplayName, info.Description)
	}
	return nil
}

func run(ctx context.Context, config Config) error {
	fmt.Println("Starting Bounce Path Tracer...")

	sc, err := createScene(config.SceneType)
	if err != nil {
		return err
	}
	if err := applyOverrides(sc, config); err != nil {
		return err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := renderer.NewDefaultLogger()
	rt := renderer.NewRaytracer(sc, integrator.NewPathTracingIntegrator(), renderer.RenderConfig{
		NumWorkers: config.Workers,
		Seed:       seed,
	}, logger)

	pixels, stats, err := rt.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Printf("Samples per pixel: %.1f, average luminance %.3f\n",
		stats.AverageSamples(), renderer.CalculateAverageLuminance(pixels))

	width, height := int(sc.Camera.SizeX), int(sc.Camera.SizeY)
	filename, err := saveImage(pixels, width, height, config.OutputDir, sceneDirName(config.SceneType))
	if err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a scene name and checks that it can be rendered
func createScene(sceneType string) (*scene.Scene, error) {
	sc, err := scene.Resolve(sceneType)
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", sceneType, err)
	}
	return sc, nil
}

// applyOverrides replaces camera parameters given on the command line
func applyOverrides(sc *scene.Scene, config Config) error {
	overrides := []struct {
		name  string
		value int
		field *uint16
	}{
		{"width", config.Width, &sc.Camera.SizeX},
		{"height", config.Height, &sc.Camera.SizeY},
		{"samples", config.Samples, &sc.Camera.RaysPerPixel},
		{"bounces", config.Bounces, &sc.Camera.BounceDepth},
	}

	for _, o := range overrides {
		if o.value == 0 {
			continue
		}
		if o.value < 0 || o.value > 0xffff {
			return fmt.Errorf("%s must be between 1 and 65535, got %d", o.name, o.value)
		}
		*o.field = uint16(o.value)
	}
	return nil
}

// sceneDirName returns the output subdirectory for a scene name or path
func sceneDirName(sceneType string) string {
	return strings.TrimSuffix(filepath.Base(sceneType), ".json")
}

func saveImage(pixels []core.Col3, width, height int, outputDir, sceneName string) (string, error) {
	dir := filepath.Join(outputDir, sceneName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, renderer.ToRGBA(pixels, width, height)); err != nil {
		return "", fmt.Errorf("error saving PNG: %w", err)
	}
	return filename, nil
}
