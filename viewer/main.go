package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/df07/go-bounce-pathtracer/pkg/renderer"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
	"github.com/df07/go-bounce-pathtracer/viewer/app"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene: 'default', 'spheres', a file name in scenes/, or a path to a .json scene")
	scale := flag.Int("scale", 2, "Window scale factor")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Parse()

	sc, err := scene.Resolve(*sceneType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := sc.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := app.New(sc, *workers, renderer.NewDefaultLogger())
	if err := app.Run(game, "Bounce Path Tracer - "+*sceneType, max(1, *scale)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
