package layout

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-9

func TestRingCountAndRadius(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		radius float64
		offset float64
	}{
		{"single point", 1, 10, 0},
		{"pair", 2, 5, 90},
		{"hex ring", 6, 45, 0},
		{"dozen offset", 12, 3.5, 15},
		{"zero radius", 4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := Ring(tt.count, tt.radius, tt.offset)
			if err != nil {
				t.Fatalf("Ring() error = %v", err)
			}
			if len(ps) != tt.count {
				t.Fatalf("len = %d, want %d", len(ps), tt.count)
			}
			for i, p := range ps {
				r := math.Hypot(p.X, p.Y)
				if math.Abs(r-tt.radius) > tol {
					t.Errorf("point %d at distance %g, want %g", i, r, tt.radius)
				}
			}
		})
	}
}

func TestRingAnglesAscend(t *testing.T) {
	ps, err := Ring(8, 20, 30)
	if err != nil {
		t.Fatal(err)
	}
	prev := math.Inf(-1)
	for i, p := range ps {
		a := math.Atan2(p.Y, p.X)
		// unwrap so the sequence is monotonic
		for a < prev {
			a += 2 * math.Pi
		}
		if i == 0 && math.Abs(a-30*math.Pi/180) > tol {
			t.Errorf("first point at angle %g rad, want %g", a, 30*math.Pi/180)
		}
		if a < prev {
			t.Errorf("point %d angle %g not ascending from %g", i, a, prev)
		}
		prev = a
	}
}

func TestRingInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		radius float64
	}{
		{"zero count", 0, 10},
		{"negative count", -3, 10},
		{"negative radius", 6, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Ring(tt.count, tt.radius, 0)
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("Ring() error = %v, want InvalidParameterError", err)
			}
		})
	}
}

func TestRingDeterministic(t *testing.T) {
	a, _ := Ring(7, 12.5, 10)
	b, _ := Ring(7, 12.5, 10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between identical calls: %v vs %v", i, a[i], b[i])
		}
	}
}

// Mirrors the cap stand arrangement: hex pitch 45 with a center point.
func TestHexWithCenter(t *testing.T) {
	ps, err := HexWithCenter(45)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 7 {
		t.Fatalf("len = %d, want 7", len(ps))
	}
	if ps[0].X != 0 || ps[0].Y != 0 {
		t.Errorf("first point = %v, want origin", ps[0])
	}
	if math.Abs(ps[1].X-45) > tol || math.Abs(ps[1].Y) > tol {
		t.Errorf("second point = %v, want (45, 0)", ps[1])
	}
	wantY := 45 * math.Sin(60*math.Pi/180)
	if math.Abs(ps[2].X-22.5) > tol || math.Abs(ps[2].Y-wantY) > tol {
		t.Errorf("third point = %v, want (22.5, %.4f)", ps[2], wantY)
	}
}

func TestPolarMatchesRing(t *testing.T) {
	a, err := Polar(3, 25, 30)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Ring(3, 25, 30)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d = %v, want %v", i, a[i], b[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	ps, _ := Ring(3, 25, 30)
	moved := ps.Translate(1, -2)
	if len(moved) != len(ps) {
		t.Fatalf("len = %d, want %d", len(moved), len(ps))
	}
	for i := range ps {
		if math.Abs(moved[i].X-ps[i].X-1) > tol || math.Abs(moved[i].Y-ps[i].Y+2) > tol {
			t.Errorf("point %d = %v, want %v shifted by (1,-2)", i, moved[i], ps[i])
		}
	}
	// original untouched
	if math.Abs(math.Hypot(ps[0].X, ps[0].Y)-25) > tol {
		t.Error("Translate mutated its receiver")
	}
}
