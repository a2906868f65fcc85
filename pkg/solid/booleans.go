package solid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Union merges the two bodies into one. Edges buried inside the other
// operand's extent stop being boundaries and are dropped from the
// record; coincident faces merge.
func (b *Body) Union(other *Body) *Body {
	bMin, bMax := b.solid.BoundingBox()
	oMin, oMax := other.solid.BoundingBox()

	var edges []Edge
	for _, e := range b.edges {
		if !e.absorbedBy(oMin, oMax) {
			edges = append(edges, e)
		}
	}
	for _, e := range other.edges {
		if !e.absorbedBy(bMin, bMax) {
			edges = append(edges, e)
		}
	}

	return &Body{
		k:     b.k,
		solid: b.k.Union(b.solid, other.solid),
		faces: mergeFaces(b.faces, other.faces),
		edges: edges,
	}
}

// Subtract removes the tool body's volume from the receiver. Where a
// cylindrical wall of the tool crosses one of the receiver's planar
// faces, a rim edge is recorded at the crossing so later feature
// operations can find the hole boundary. Receiver edges swallowed by
// the tool are dropped.
func (b *Body) Subtract(tool *Body) *Body {
	tMin, tMax := tool.solid.BoundingBox()
	bMin, bMax := b.solid.BoundingBox()

	var edges []Edge
	for _, e := range b.edges {
		if !e.absorbedBy(tMin, tMax) {
			edges = append(edges, e)
		}
	}

	for _, f := range b.faces {
		for _, w := range walls(tool.edges) {
			if !wallCrossesFace(w, f) {
				continue
			}
			if w.center.X-w.radius < bMin[0]-topoTol || w.center.X+w.radius > bMax[0]+topoTol ||
				w.center.Y-w.radius < bMin[1]-topoTol || w.center.Y+w.radius > bMax[1]+topoTol {
				continue
			}
			var depth float64
			if f.Up {
				depth = f.Z - math.Max(w.zlo, bMin[2])
			} else {
				depth = math.Min(w.zhi, bMax[2]) - f.Z
			}
			edges = append(edges, Edge{
				Center:     w.center,
				Z:          f.Z,
				Radius:     w.radius,
				Convex:     false,
				FaceExtent: b.radialClearance(w.center, w.radius, f.Z),
				WallExtent: depth,
			})
		}
	}

	return &Body{
		k:     b.k,
		solid: b.k.Difference(b.solid, tool.solid),
		faces: append([]Face(nil), b.faces...),
		edges: edges,
	}
}

// Intersect keeps only the volume shared by both bodies. Disjoint
// operands are signaled as EmptyResult, first by bounding-box
// separation and then by a vanishing measured volume.
func (b *Body) Intersect(other *Body) (*Body, error) {
	bMin, bMax := b.solid.BoundingBox()
	oMin, oMax := other.solid.BoundingBox()
	for i := 0; i < 3; i++ {
		if bMax[i] < oMin[i]-topoTol || oMax[i] < bMin[i]-topoTol {
			return nil, &EmptyResultError{Op: "intersect", Reason: "operands do not overlap"}
		}
	}

	s := b.k.Intersection(b.solid, other.solid)
	if b.k.Volume(s) <= 0 {
		return nil, &EmptyResultError{Op: "intersect", Reason: "shared volume is zero"}
	}
	rMin, rMax := s.BoundingBox()

	var faces []Face
	for _, f := range mergeFaces(b.faces, other.faces) {
		if f.Z >= rMin[2]-topoTol && f.Z <= rMax[2]+topoTol {
			faces = append(faces, f)
		}
	}
	var edges []Edge
	for _, e := range append(b.Edges(), other.edges...) {
		if e.absorbedBy(rMin, rMax) {
			edges = append(edges, e)
		}
	}

	return &Body{k: b.k, solid: s, faces: faces, edges: edges}, nil
}

// wallCrossesFace reports whether the wall reaches the face plane from
// the face's material side.
func wallCrossesFace(w wall, f Face) bool {
	if f.Up {
		return w.zlo < f.Z-topoTol && w.zhi >= f.Z-topoTol
	}
	return w.zhi > f.Z+topoTol && w.zlo <= f.Z+topoTol
}

// radialClearance returns the run of planar material outward from a
// hole rim: the distance to the nearest enclosing rim at the same
// level, or failing that to the bounding-box sides.
func (b *Body) radialClearance(c r2.Vec, r, z float64) float64 {
	clearance := math.Inf(1)
	for _, e := range b.edges {
		if !e.Convex || math.Abs(e.Z-z) > topoTol {
			continue
		}
		d := math.Hypot(e.Center.X-c.X, e.Center.Y-c.Y)
		if d+r < e.Radius+topoTol {
			clearance = math.Min(clearance, e.Radius-d-r)
		}
	}
	if !math.IsInf(clearance, 1) {
		return clearance
	}
	min, max := b.solid.BoundingBox()
	side := math.Min(
		math.Min(max[0]-c.X, c.X-min[0]),
		math.Min(max[1]-c.Y, c.Y-min[1]),
	)
	return side - r
}
