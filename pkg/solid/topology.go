package solid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// topoTol is the coincidence tolerance for topology records.
const topoTol = 1e-6

// Face is a planar face record at a constant z level. Up reports the
// outward normal direction: true for +z (material below the plane),
// false for -z (material above).
type Face struct {
	Z  float64
	Up bool
}

// Edge is a circular boundary edge where a planar face meets a wall of
// revolution. Convex edges bound material inside the circle (the outer
// rim of a cylinder); non-convex edges bound material outside it (the
// rim of a hole). FaceExtent and WallExtent are the runs of the two
// adjoining surfaces, used to judge whether a fillet or chamfer of a
// given size fits.
type Edge struct {
	Center     r2.Vec
	Z          float64
	Radius     float64
	Convex     bool
	FaceExtent float64
	WallExtent float64
}

// MinAdjoining returns the shorter of the two adjoining surface runs.
func (e Edge) MinAdjoining() float64 {
	return math.Min(e.FaceExtent, e.WallExtent)
}

// translated returns the edge shifted by (dx, dy, dz).
func (e Edge) translated(dx, dy, dz float64) Edge {
	e.Center = r2.Vec{X: e.Center.X + dx, Y: e.Center.Y + dy}
	e.Z += dz
	return e
}

// mergeFaces combines two face lists, dropping coincident duplicates.
func mergeFaces(a, b []Face) []Face {
	out := append([]Face(nil), a...)
	for _, f := range b {
		dup := false
		for _, g := range out {
			if f.Up == g.Up && math.Abs(f.Z-g.Z) < topoTol {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}

// absorbedBy reports whether the edge is swallowed by the other body's
// extent: its z level lies within the other body's z range and its full
// circle fits inside the other body's footprint. An absorbed edge is no
// longer a boundary of the combined material.
func (e Edge) absorbedBy(min, max [3]float64) bool {
	if e.Z < min[2]-topoTol || e.Z > max[2]+topoTol {
		return false
	}
	return e.Center.X-e.Radius >= min[0]-topoTol &&
		e.Center.X+e.Radius <= max[0]+topoTol &&
		e.Center.Y-e.Radius >= min[1]-topoTol &&
		e.Center.Y+e.Radius <= max[1]+topoTol
}

// wall is a cylindrical wall of revolution reconstructed from the rim
// edges that bound it.
type wall struct {
	center   r2.Vec
	radius   float64
	zlo, zhi float64
}

// walls groups a body's convex rim edges into the cylindrical walls
// they bound. A lone rim yields a wall of zero axial run.
func walls(edges []Edge) []wall {
	var out []wall
	for _, e := range edges {
		if !e.Convex {
			continue
		}
		found := false
		for i := range out {
			w := &out[i]
			if math.Abs(w.radius-e.Radius) < topoTol &&
				math.Abs(w.center.X-e.Center.X) < topoTol &&
				math.Abs(w.center.Y-e.Center.Y) < topoTol {
				w.zlo = math.Min(w.zlo, e.Z)
				w.zhi = math.Max(w.zhi, e.Z)
				found = true
				break
			}
		}
		if !found {
			out = append(out, wall{center: e.Center, radius: e.Radius, zlo: e.Z, zhi: e.Z})
		}
	}
	return out
}
