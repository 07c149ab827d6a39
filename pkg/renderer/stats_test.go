package renderer

import (
	"testing"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
)

func TestPixelStats_GetColor(t *testing.T) {
	tests := []struct {
		name     string
		samples  []core.Col3
		gammas   []float32
		expected core.Col3
	}{
		{"no samples", nil, nil, core.Black()},
		{"single sample scaled by gain", []core.Col3{core.NewCol3(100, 50, 20)}, []float32{0.5}, core.NewCol3(50, 25, 10)},
		{"average of two", []core.Col3{core.NewCol3(200, 0, 0), core.NewCol3(100, 0, 0)}, []float32{1, 1}, core.NewCol3(150, 0, 0)},
		{"emissive gain clamps", []core.Col3{core.White()}, []float32{2.5}, core.White()},
		{"zero gain counts as black", []core.Col3{core.NewCol3(200, 200, 200), core.NewCol3(200, 200, 200)}, []float32{1, 0}, core.NewCol3(100, 100, 100)},
		{"negative gain counts as black", []core.Col3{core.NewCol3(90, 90, 90)}, []float32{-1}, core.Black()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ps PixelStats
			for i, c := range tt.samples {
				ps.AddSample(c, tt.gammas[i])
			}
			if got := ps.GetColor(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if ps.SampleCount != len(tt.samples) {
				t.Errorf("Expected %d samples, got %d", len(tt.samples), ps.SampleCount)
			}
		})
	}
}

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126, green 0.7152, blue 0.0722, black 0; average 0.25
	pixels := []core.Col3{
		core.NewCol3(255, 0, 0),
		core.NewCol3(0, 255, 0),
		core.NewCol3(0, 0, 255),
		core.Black(),
	}

	avgLum := CalculateAverageLuminance(pixels)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_Edges(t *testing.T) {
	if got := CalculateAverageLuminance(nil); got != 0 {
		t.Errorf("Expected 0 for an empty buffer, got %f", got)
	}
	if got := CalculateAverageLuminance([]core.Col3{core.White()}); got < 0.9999 || got > 1.0001 {
		t.Errorf("Expected 1 for white, got %f", got)
	}
}

func TestRenderStats_AverageSamples(t *testing.T) {
	if got := (RenderStats{}).AverageSamples(); got != 0 {
		t.Errorf("Expected 0 for empty stats, got %f", got)
	}
	if got := (RenderStats{TotalPixels: 4, TotalSamples: 10}).AverageSamples(); got != 2.5 {
		t.Errorf("Expected 2.5, got %f", got)
	}
}
