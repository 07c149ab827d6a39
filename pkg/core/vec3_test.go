package core

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func TestV3_NormalizeUnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		v := NewV3(random.Float32()*20-10, random.Float32()*20-10, random.Float32()*20-10)
		if v.LengthSquared() < 1e-6 {
			continue
		}
		if length := v.Normalize().Length(); math32.Abs(length-1) > 1e-5 {
			t.Errorf("Normalize(%v) has length %f, expected 1", v, length)
		}
	}
}

func TestV3_NormalizeZero(t *testing.T) {
	n := Zero().Normalize()
	if n != Zero() {
		t.Errorf("Expected zero vector, got %v", n)
	}
	if math32.IsNaN(n.X) || math32.IsNaN(n.Y) || math32.IsNaN(n.Z) {
		t.Errorf("Normalize of zero vector produced NaN: %v", n)
	}
}

func TestV3_Project(t *testing.T) {
	tests := []struct {
		name     string
		onto     V3
		source   V3
		expected V3
	}{
		{"onto itself", NewV3(1, 2, 3), NewV3(1, 2, 3), NewV3(1, 2, 3)},
		{"orthogonal", NewV3(1, 0, 0), NewV3(0, 5, -2), Zero()},
		{"axis component", NewV3(0, 2, 0), NewV3(3, 4, 5), NewV3(0, 4, 0)},
		{"opposite direction", NewV3(0, 0, 1), NewV3(0, 0, -3), NewV3(0, 0, -3)},
		{"degenerate target", NewV3(0.001, 0, 0), NewV3(1, 1, 1), Zero()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.onto.Project(tt.source)
			if !result.Equals(tt.expected, 1e-5) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestV3_Cross(t *testing.T) {
	x := NewV3(1, 0, 0)
	y := NewV3(0, 1, 0)
	z := NewV3(0, 0, 1)

	if c := x.Cross(y); !c.Equals(z, 0) {
		t.Errorf("x cross y: expected %v, got %v", z, c)
	}
	if c := y.Cross(z); !c.Equals(x, 0) {
		t.Errorf("y cross z: expected %v, got %v", x, c)
	}
	if c := z.Cross(x); !c.Equals(y, 0) {
		t.Errorf("z cross x: expected %v, got %v", y, c)
	}

	a := NewV3(2, -1, 3)
	b := NewV3(0.5, 4, -2)
	c := a.Cross(b)
	if math32.Abs(c.Dot(a)) > 1e-5 || math32.Abs(c.Dot(b)) > 1e-5 {
		t.Errorf("Cross product %v is not perpendicular to its operands", c)
	}
}

func TestV3_Arithmetic(t *testing.T) {
	a := NewV3(1, 2, 3)
	b := NewV3(4, -5, 6)

	if r := a.Add(b); r != NewV3(5, -3, 9) {
		t.Errorf("Add: got %v", r)
	}
	if r := a.Subtract(b); r != NewV3(-3, 7, -3) {
		t.Errorf("Subtract: got %v", r)
	}
	if r := a.Multiply(2); r != Scale(2, a) {
		t.Errorf("Multiply and Scale disagree: %v vs %v", r, Scale(2, a))
	}
	if d := a.Dot(b); d != 12 {
		t.Errorf("Dot: expected 12, got %f", d)
	}
	if d := NewV3(0, 0, 0).Dist(NewV3(3, 4, 0)); math32.Abs(d-5) > 1e-6 {
		t.Errorf("Dist: expected 5, got %f", d)
	}
}
