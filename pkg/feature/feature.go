// Package feature applies selector-driven finishing operations to
// assembled bodies: fillet and chamfer on circular rim edges, and
// blind or through holes at placement points. Each operation returns a
// new body with updated topology records; selectors are re-evaluated
// against the current records at every call because feature operations
// change the topology that later selections see.
package feature

import (
	"fmt"
	"math"

	"github.com/chazu/filament/pkg/solid"
	"gonum.org/v1/gonum/spatial/r2"
)

// edgeArcFacets is the facet count for a quarter-circle fillet section.
const edgeArcFacets = 24

// Fillet rounds the selected edges with the given radius. A radius
// larger than half an edge's shortest adjoining surface run cannot be
// realized and fails with GeometricInfeasibleError.
func Fillet(b *solid.Body, sel Selector, radius float64) (*solid.Body, error) {
	return finish(b, sel, radius, true, "fillet")
}

// Chamfer bevels the selected edges at 45 degrees by the given
// distance, under the same feasibility rule as Fillet.
func Chamfer(b *solid.Body, sel Selector, dist float64) (*solid.Body, error) {
	return finish(b, sel, dist, false, "chamfer")
}

func finish(b *solid.Body, sel Selector, size float64, round bool, op string) (*solid.Body, error) {
	if size <= 0 {
		return nil, &InvalidParameterError{Param: "size", Value: size, Reason: "must be positive"}
	}
	edges := Select(b, sel)
	if len(edges) == 0 {
		return nil, fmt.Errorf("feature: %s: %w", op, ErrEmptySelection)
	}
	for _, e := range edges {
		if limit := e.MinAdjoining() / 2; size > limit+selTol {
			return nil, &GeometricInfeasibleError{Op: op, Size: size, Limit: limit}
		}
	}

	k := b.Kernel()
	s := b.Solid()
	for _, e := range edges {
		outline := cornerTool(e, size, edgeFacesUp(b, e), round)
		tool, err := k.Revolve(outline)
		if err != nil {
			return nil, fmt.Errorf("feature: %s tool: %w", op, err)
		}
		s = k.Difference(s, k.Translate(tool, e.Center.X, e.Center.Y, 0))
	}

	// The sharp edges are gone; everything else is untouched.
	var remaining []solid.Edge
	for _, e := range b.Edges() {
		if !containsEdge(edges, e) {
			remaining = append(remaining, e)
		}
	}
	return b.Derive(s, b.Faces(), remaining), nil
}

// edgeFacesUp reports which side of the edge's plane the adjoining
// planar face material is on: true when the face looks up (material
// below, corner opens upward).
func edgeFacesUp(b *solid.Body, e solid.Edge) bool {
	for _, f := range b.Faces() {
		if math.Abs(f.Z-e.Z) < selTol {
			return f.Up
		}
	}
	min, max := b.BoundingBox()
	return e.Z >= (min[2]+max[2])/2
}

// cornerTool builds the (radial, z) cross-section of the material ring
// a fillet or chamfer removes at a rim edge. The section hugs the edge
// corner and pads outward into void and air so the revolved cut opens
// the surfaces cleanly. Convex rims cut from the outside of the wall;
// hole rims cut into the bore.
func cornerTool(e solid.Edge, size float64, up, round bool) []r2.Vec {
	T := e.Z
	pad := size
	var pts []r2.Vec

	if e.Convex {
		R := e.Radius
		pts = append(pts, r2.Vec{X: R - size, Y: T})
		if round {
			for i := 1; i <= edgeArcFacets; i++ {
				a := float64(i) / edgeArcFacets * math.Pi / 2
				pts = append(pts, r2.Vec{
					X: R - size + size*math.Sin(a),
					Y: T - size + size*math.Cos(a),
				})
			}
		} else {
			pts = append(pts, r2.Vec{X: R, Y: T - size})
		}
		pts = append(pts,
			r2.Vec{X: R + pad, Y: T - size},
			r2.Vec{X: R + pad, Y: T + pad},
			r2.Vec{X: R - size, Y: T + pad},
		)
	} else {
		h := e.Radius
		inner := math.Max(h-pad, 0)
		pts = append(pts, r2.Vec{X: h + size, Y: T})
		if round {
			for i := 1; i <= edgeArcFacets; i++ {
				a := float64(i) / edgeArcFacets * math.Pi / 2
				pts = append(pts, r2.Vec{
					X: h + size - size*math.Sin(a),
					Y: T - size + size*math.Cos(a),
				})
			}
		} else {
			pts = append(pts, r2.Vec{X: h, Y: T - size})
		}
		pts = append(pts,
			r2.Vec{X: inner, Y: T - size},
			r2.Vec{X: inner, Y: T + pad},
			r2.Vec{X: h + size, Y: T + pad},
		)
	}

	if !up {
		for i := range pts {
			pts[i].Y = 2*T - pts[i].Y
		}
	}
	return ccw(pts)
}

// ccw returns the loop in counter-clockwise order.
func ccw(pts []r2.Vec) []r2.Vec {
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if area >= 0 {
		return pts
	}
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	return pts
}

func containsEdge(edges []solid.Edge, e solid.Edge) bool {
	for _, o := range edges {
		if o.Convex == e.Convex &&
			math.Abs(o.Z-e.Z) < selTol &&
			math.Abs(o.Radius-e.Radius) < selTol &&
			math.Abs(o.Center.X-e.Center.X) < selTol &&
			math.Abs(o.Center.Y-e.Center.Y) < selTol {
			return true
		}
	}
	return false
}
