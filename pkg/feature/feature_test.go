package feature

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/filament/pkg/kernel/sdfkern"
	"github.com/chazu/filament/pkg/layout"
	"github.com/chazu/filament/pkg/profile"
	"github.com/chazu/filament/pkg/solid"
)

func mustCylinder(t *testing.T, radius, height float64) *solid.Body {
	t.Helper()
	b, err := solid.Cylinder(sdfkern.New(), radius, height)
	if err != nil {
		t.Fatalf("Cylinder(%v, %v) failed: %v", radius, height, err)
	}
	return b
}

func mustTube(t *testing.T, outer, inner, height float64) *solid.Body {
	t.Helper()
	return mustCylinder(t, outer, height).Subtract(mustCylinder(t, inner, height))
}

func TestSelect(t *testing.T) {
	tube := mustTube(t, 1, 0.8, 10)

	tests := []struct {
		name  string
		sel   Selector
		count int
		z     float64
	}{
		{"all", All(), 4, math.NaN()},
		{"topmost", Topmost(), 2, 10},
		{"bottommost", Bottommost(), 2, 0},
		{"planar at top", PlanarAt(10), 2, 10},
		{"planar at mid height", PlanarAt(5), 0, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tube, tt.sel)
			if len(got) != tt.count {
				t.Fatalf("Select returned %d edges, want %d", len(got), tt.count)
			}
			if !math.IsNaN(tt.z) {
				for _, e := range got {
					if math.Abs(e.Z-tt.z) > 1e-9 {
						t.Errorf("selected edge at z=%v, want %v", e.Z, tt.z)
					}
				}
			}
		})
	}
}

func TestFilletInfeasibleRadius(t *testing.T) {
	// Shortest adjoining run on the rim is the 5mm face radius, so
	// anything above 2.5 must fail rather than clamp.
	b := mustCylinder(t, 5, 10)

	_, err := Fillet(b, Topmost(), 3)
	var gie *GeometricInfeasibleError
	if !errors.As(err, &gie) {
		t.Fatalf("Fillet error = %v, want GeometricInfeasibleError", err)
	}
	if gie.Op != "fillet" {
		t.Errorf("Op = %q, want \"fillet\"", gie.Op)
	}
	if math.Abs(gie.Limit-2.5) > 1e-9 {
		t.Errorf("Limit = %v, want 2.5", gie.Limit)
	}
}

func TestFilletThinWallInfeasible(t *testing.T) {
	// The tube wall is 0.2 thick; a 0.15 fillet does not fit.
	tube := mustTube(t, 1, 0.8, 10)
	_, err := Fillet(tube, Topmost(), 0.15)
	var gie *GeometricInfeasibleError
	if !errors.As(err, &gie) {
		t.Fatalf("Fillet error = %v, want GeometricInfeasibleError", err)
	}
}

func TestChamferRemovedVolume(t *testing.T) {
	b := mustCylinder(t, 10, 10)
	before := b.Volume()

	const d = 2.0
	got, err := Chamfer(b, Topmost(), d)
	if err != nil {
		t.Fatalf("Chamfer failed: %v", err)
	}

	// Pappus: the cut ring is a triangle of area d^2/2 with radial
	// centroid at R - d/3.
	want := 2 * math.Pi * (10 - d/3) * d * d / 2
	delta := before - got.Volume()
	if relErr := math.Abs(delta-want) / want; relErr > 0.15 {
		t.Errorf("chamfer removed %f, want %f (rel err %f)", delta, want, relErr)
	}

	// The chamfered rim is no longer a sharp edge.
	if n := len(Select(got, Topmost())); n != 1 {
		t.Errorf("edges at former top level = %d, want only the bottom rim remaining at its own level", n)
	}
	for _, e := range got.Edges() {
		if e.Z != 0 {
			t.Errorf("unexpected surviving edge at z=%v", e.Z)
		}
	}
}

func TestFilletRemovedVolume(t *testing.T) {
	b := mustCylinder(t, 10, 10)
	before := b.Volume()

	const r = 2.0
	got, err := Fillet(b, Topmost(), r)
	if err != nil {
		t.Fatalf("Fillet failed: %v", err)
	}

	// Pappus: corner square minus quarter disc, revolved at its
	// composite radial centroid.
	sqA := r * r
	qdA := math.Pi * r * r / 4
	sqX := 10 - r/2
	qdX := 10 - r + 4*r/(3*math.Pi)
	area := sqA - qdA
	centroid := (sqA*sqX - qdA*qdX) / area
	want := 2 * math.Pi * centroid * area

	delta := before - got.Volume()
	if relErr := math.Abs(delta-want) / want; relErr > 0.15 {
		t.Errorf("fillet removed %f, want %f (rel err %f)", delta, want, relErr)
	}
}

func TestChamferHoleRim(t *testing.T) {
	// Chamfering the top of a tube bevels the outer rim and
	// countersinks the bore rim.
	tube := mustTube(t, 10, 4, 10)
	before := tube.Volume()

	const d = 1.0
	got, err := Chamfer(tube, Topmost(), d)
	if err != nil {
		t.Fatalf("Chamfer failed: %v", err)
	}

	outer := 2 * math.Pi * (10 - d/3) * d * d / 2
	inner := 2 * math.Pi * (4 + d/3) * d * d / 2
	want := outer + inner
	delta := before - got.Volume()
	if relErr := math.Abs(delta-want) / want; relErr > 0.15 {
		t.Errorf("chamfer removed %f, want %f (rel err %f)", delta, want, relErr)
	}
}

func TestFilletEmptySelection(t *testing.T) {
	k := sdfkern.New()
	p, err := profile.NewBuilder().
		MoveTo(0, 0).
		LineTo(10, 0).
		LineTo(0, 10).
		Close()
	if err != nil {
		t.Fatalf("profile build failed: %v", err)
	}
	b, err := solid.Extrude(k, p, 5)
	if err != nil {
		t.Fatalf("Extrude failed: %v", err)
	}

	_, err = Fillet(b, All(), 1)
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("Fillet error = %v, want ErrEmptySelection", err)
	}
}

func TestFilletInvalidSize(t *testing.T) {
	b := mustCylinder(t, 5, 10)
	_, err := Fillet(b, Topmost(), 0)
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("Fillet error = %v, want InvalidParameterError", err)
	}
}

func TestBlindHole(t *testing.T) {
	b := mustCylinder(t, 10, 10)
	before := b.Volume()

	got, err := Hole(b, layout.PlacementSet{{X: 0, Y: 0}}, 4, 5)
	if err != nil {
		t.Fatalf("Hole failed: %v", err)
	}

	want := math.Pi * 4 * 5
	delta := before - got.Volume()
	if relErr := math.Abs(delta-want) / want; relErr > 0.15 {
		t.Errorf("hole removed %f, want %f (rel err %f)", delta, want, relErr)
	}

	// The cut records a rim on the top face with the drilled depth.
	var rim *solid.Edge
	for _, e := range got.Edges() {
		if !e.Convex && math.Abs(e.Z-10) < 1e-6 {
			rim = &e
			break
		}
	}
	if rim == nil {
		t.Fatal("no rim edge recorded at the hole mouth")
	}
	if math.Abs(rim.Radius-2) > 1e-6 {
		t.Errorf("rim radius = %v, want 2", rim.Radius)
	}
	if math.Abs(rim.WallExtent-5) > 1e-6 {
		t.Errorf("rim wall extent = %v, want the 5mm drilled depth", rim.WallExtent)
	}
}

func TestHoleFromBottom(t *testing.T) {
	b := mustCylinder(t, 10, 10)
	before := b.Volume()

	got, err := HoleFromBottom(b, layout.PlacementSet{{X: 3, Y: 0}}, 4, 3)
	if err != nil {
		t.Fatalf("HoleFromBottom failed: %v", err)
	}

	want := math.Pi * 4 * 3
	delta := before - got.Volume()
	if relErr := math.Abs(delta-want) / want; relErr > 0.15 {
		t.Errorf("pocket removed %f, want %f (rel err %f)", delta, want, relErr)
	}

	// The pocket opens the bottom face only.
	for _, e := range got.Edges() {
		if e.Convex {
			continue
		}
		if math.Abs(e.Z) > 1e-6 {
			t.Errorf("rim recorded at z=%v, want the bottom face only", e.Z)
		}
		if math.Abs(e.WallExtent-3) > 1e-6 {
			t.Errorf("rim wall extent = %v, want the 3mm pocket depth", e.WallExtent)
		}
	}
}

func TestThroughHoleRing(t *testing.T) {
	plate := mustCylinder(t, 10, 4)
	before := plate.Volume()

	ps, err := layout.Ring(3, 5, 0)
	if err != nil {
		t.Fatalf("Ring failed: %v", err)
	}
	got, err := ThroughHole(plate, ps, 3)
	if err != nil {
		t.Fatalf("ThroughHole failed: %v", err)
	}

	want := 3 * math.Pi * 1.5 * 1.5 * 4
	delta := before - got.Volume()
	if relErr := math.Abs(delta-want) / want; relErr > 0.15 {
		t.Errorf("through holes removed %f, want %f (rel err %f)", delta, want, relErr)
	}

	// Each hole opens both faces.
	var rims int
	for _, e := range got.Edges() {
		if !e.Convex {
			rims++
			if math.Abs(e.WallExtent-4) > 1e-6 {
				t.Errorf("through rim wall extent = %v, want the full 4mm thickness", e.WallExtent)
			}
		}
	}
	if rims != 6 {
		t.Errorf("rim count = %d, want 6", rims)
	}
}

func TestHoleInvalidParameters(t *testing.T) {
	b := mustCylinder(t, 10, 4)
	ps := layout.PlacementSet{{X: 0, Y: 0}}

	if _, err := Hole(b, ps, 0, 2); err == nil {
		t.Error("expected error for zero diameter")
	}
	if _, err := Hole(b, ps, 3, -1); err == nil {
		t.Error("expected error for negative depth")
	}
	if _, err := ThroughHole(b, ps, -2); err == nil {
		t.Error("expected error for negative diameter")
	}

	var ere *solid.EmptyResultError
	if _, err := ThroughHole(b, nil, 3); !errors.As(err, &ere) {
		t.Error("expected EmptyResultError for empty placements")
	}
}

func TestSelectorsSeeFreshTopology(t *testing.T) {
	b := mustCylinder(t, 10, 4)
	if n := len(Select(b, Topmost())); n != 1 {
		t.Fatalf("edges before drilling = %d, want 1", n)
	}

	got, err := ThroughHole(b, layout.PlacementSet{{X: 0, Y: 0}}, 4)
	if err != nil {
		t.Fatalf("ThroughHole failed: %v", err)
	}
	// The same selector now also matches the new hole rim.
	if n := len(Select(got, Topmost())); n != 2 {
		t.Errorf("edges after drilling = %d, want 2", n)
	}
}
