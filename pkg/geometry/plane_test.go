package geometry

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

var mirrorMaterial = material.New(0.9, 1.0, core.White(), 0.9)

func TestPlane_Intersect_BasicIntersection(t *testing.T) {
	plane := NewPlane(core.NewV3(0, 0, 5), core.NewV3(1, 0, 0), core.NewV3(0, 1, 0), mirrorMaterial)
	ray := core.NewRay(core.Zero(), core.NewV3(0, 0, 1), core.White(), 1, 1)

	dist, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math32.Abs(dist-5.0) > 1e-6 {
		t.Errorf("Expected t=5, got t=%f", dist)
	}
}

func TestPlane_Intersect_Misses(t *testing.T) {
	plane := NewPlane(core.NewV3(0, 0, 5), core.NewV3(1, 0, 0), core.NewV3(0, 1, 0), mirrorMaterial)

	tests := []struct {
		name   string
		origin core.V3
		dir    core.V3
	}{
		{"parallel ray", core.Zero(), core.NewV3(1, 0, 0)},
		{"nearly parallel ray", core.Zero(), core.NewV3(1, 0, 0.00005)},
		{"plane behind ray", core.Zero(), core.NewV3(0, 0, -1)},
		{"origin on plane", core.NewV3(3, 2, 5), core.NewV3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.dir, core.White(), 1, 1)
			if dist, isHit := plane.Intersect(ray); isHit {
				t.Errorf("Expected miss, but got hit at t=%f", dist)
			}
		})
	}
}

func TestPlane_Intersect_BackSide(t *testing.T) {
	// Planes are two-sided
	plane := NewPlane(core.NewV3(0, 0, 5), core.NewV3(1, 0, 0), core.NewV3(0, 1, 0), mirrorMaterial)
	ray := core.NewRay(core.NewV3(0, 0, 8), core.NewV3(0, 0, -1), core.White(), 1, 1)

	dist, isHit := plane.Intersect(ray)
	if !isHit || math32.Abs(dist-3) > 1e-6 {
		t.Errorf("Expected hit at t=3, got %f (hit=%t)", dist, isHit)
	}
}

func TestPlane_Project(t *testing.T) {
	plane := NewPlane(core.Zero(), core.NewV3(1, 0, 0), core.NewV3(0, 0, 1), mirrorMaterial)
	projected := plane.Project(core.NewV3(2, 3, 4))
	if !projected.Equals(core.NewV3(2, 0, 4), 1e-6) {
		t.Errorf("Expected (2, 0, 4), got %v", projected)
	}
}

func TestPlane_Reflect(t *testing.T) {
	tint := core.NewCol3(100, 255, 120)
	plane := NewPlane(core.NewV3(0, 0, 5), core.NewV3(1, 0, 0), core.NewV3(0, 1, 0),
		material.New(0.9, 1.0, tint, 0.95))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	dir := core.NewV3(0, 0.6, 0.8)
	ray := core.NewRay(core.Zero(), dir, core.White(), 3, 1)
	dist, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	hit := ray.At(dist)
	plane.Reflect(&ray, hit, sampler)

	if !ray.Origin.Equals(hit, 1e-6) {
		t.Errorf("Expected origin moved to %v, got %v", hit, ray.Origin)
	}
	if expected := core.NewV3(0, 0.6, -0.8); !ray.Dir.Equals(expected, 1e-5) {
		t.Errorf("Expected mirrored direction %v, got %v", expected, ray.Dir)
	}
	if ray.BouncesRemaining != 2 {
		t.Errorf("Expected one bounce consumed, got %d remaining", ray.BouncesRemaining)
	}
	if ray.Color != tint {
		t.Errorf("Expected ray tinted to %v, got %v", tint, ray.Color)
	}
	if ray.Gamma != 0.95 {
		t.Errorf("Expected gamma 0.95, got %f", ray.Gamma)
	}
}
