package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"spheres scene", "spheres", false},

		// JSON scenes
		{"room by name", "room", false},
		{"room by path", "scenes/room.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if sc.Camera.SizeX == 0 || sc.Camera.SizeY == 0 {
				t.Errorf("Scene camera should have a viewport, got %dx%d", sc.Camera.SizeX, sc.Camera.SizeY)
			}
			if len(sc.Shapes) == 0 {
				t.Errorf("Scene '%s' has no shapes", tt.sceneType)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	sc := scene.NewDefaultScene()
	if err := applyOverrides(sc, Config{Width: 32, Samples: 7}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sc.Camera.SizeX != 32 || sc.Camera.RaysPerPixel != 7 {
		t.Errorf("Overrides not applied: %+v", sc.Camera)
	}
	if sc.Camera.SizeY != 512 || sc.Camera.BounceDepth != 2 {
		t.Errorf("Unset overrides should keep scene values: %+v", sc.Camera)
	}

	for _, bad := range []Config{{Width: -1}, {Bounces: 70000}} {
		if err := applyOverrides(scene.NewDefaultScene(), bad); err == nil {
			t.Errorf("Expected error for %+v", bad)
		}
	}
}

func TestSceneDirName(t *testing.T) {
	tests := map[string]string{
		"default":              "default",
		"scenes/room.json":     "room",
		"/tmp/other/glow.json": "glow",
	}
	for input, expected := range tests {
		if got := sceneDirName(input); got != expected {
			t.Errorf("sceneDirName(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	pixels := []core.Col3{core.NewCol3(255, 0, 0), core.NewCol3(0, 255, 0)}

	filename, err := saveImage(pixels, 2, 1, dir, "test")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if filepath.Dir(filename) != filepath.Join(dir, "test") {
		t.Errorf("Unexpected output location %s", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	r, g, _, _ := img.At(1, 0).RGBA()
	if r != 0 || g != 0xffff {
		t.Errorf("Unexpected pixel (1,0): r=%d g=%d", r, g)
	}
}

func TestRun(t *testing.T) {
	config := Config{
		SceneType: "spheres",
		Width:     8,
		Height:    8,
		Samples:   2,
		Seed:      1,
		OutputDir: t.TempDir(),
	}
	if err := run(context.Background(), config); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(config.OutputDir, "spheres", "render_*.png"))
	if len(matches) != 1 {
		t.Errorf("Expected one rendered image, found %d", len(matches))
	}
}
