package core

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func TestOrthonormalBasis(t *testing.T) {
	normals := []V3{
		NewV3(0, 0, 1),
		NewV3(1, 0, 0),
		NewV3(0, -1, 0),
		NewV3(1, 1, 1).Normalize(),
		NewV3(-0.2, 0.9, 0.1).Normalize(),
	}

	for _, n := range normals {
		tangent, bitangent := OrthonormalBasis(n)
		if math32.Abs(tangent.Length()-1) > 1e-5 || math32.Abs(bitangent.Length()-1) > 1e-5 {
			t.Errorf("Basis for %v is not unit length: %v %v", n, tangent, bitangent)
		}
		if math32.Abs(tangent.Dot(n)) > 1e-5 || math32.Abs(bitangent.Dot(n)) > 1e-5 || math32.Abs(tangent.Dot(bitangent)) > 1e-5 {
			t.Errorf("Basis for %v is not orthogonal: %v %v", n, tangent, bitangent)
		}
	}
}

func TestSampleDiskHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	normal := NewV3(0, 1, 0)

	for i := 0; i < 500; i++ {
		dir := SampleDiskHemisphere(normal, sampler.Get2D())
		if math32.Abs(dir.Length()-1) > 1e-4 {
			t.Fatalf("Sample %d not unit length: %v", i, dir)
		}
		if dir.Dot(normal) < -1e-5 {
			t.Fatalf("Sample %d below the hemisphere: %v", i, dir)
		}
	}
}

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D out of range: %f", v)
		}
		p := sampler.Get2D()
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Fatalf("Get2D out of range: %v", p)
		}
	}
}
