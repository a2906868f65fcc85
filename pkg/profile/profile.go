// Package profile builds closed planar outlines used as extrusion
// cross-sections. A profile is assembled from waypoints joined by
// straight lines or arcs that pass exactly through a designated point,
// with optional corner rounding or chamfering at waypoints. The builder
// validates closure and rejects self-intersecting outlines before any
// solid is derived from them.
package profile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// closeTol is the distance under which two outline points are
	// considered coincident.
	closeTol = 1e-9

	// arcFacets is the number of line facets an arc sweep of a full
	// circle would discretize to. Shorter sweeps use proportionally
	// fewer facets, with a floor so small arcs stay smooth.
	arcFacets = 96
)

// DegenerateProfileError reports an outline that cannot form a valid
// extrusion cross-section: it fails to close, intersects itself, or a
// derived construction (arc, tangent, corner round) has no real
// solution for the given dimensions.
type DegenerateProfileError struct {
	Reason string
	// SegA and SegB are the indices of the intersecting outline
	// segments when self-intersection is the cause, -1 otherwise.
	SegA, SegB int
}

func (e *DegenerateProfileError) Error() string {
	if e.SegA >= 0 {
		return fmt.Sprintf("profile: degenerate outline: %s (segments %d and %d)", e.Reason, e.SegA, e.SegB)
	}
	return "profile: degenerate outline: " + e.Reason
}

func degenerate(format string, args ...any) *DegenerateProfileError {
	return &DegenerateProfileError{Reason: fmt.Sprintf(format, args...), SegA: -1, SegB: -1}
}

// Profile is a validated closed outline. The contour is held as an
// ordered vertex loop with arcs already discretized; exact circles keep
// their radius so kernels with a native circular primitive can use it.
type Profile struct {
	verts  []r2.Vec
	circle float64 // exact circle radius, 0 when not a circle
}

// Vertices returns the outline vertex loop in order. The loop is
// implicitly closed: the last vertex connects back to the first.
func (p *Profile) Vertices() []r2.Vec {
	return p.verts
}

// IsCircle reports whether the profile is an exact origin-centered
// circle, returning its radius when so.
func (p *Profile) IsCircle() (radius float64, ok bool) {
	return p.circle, p.circle > 0
}

// Bounds returns the axis-aligned extent of the outline.
func (p *Profile) Bounds() (min, max r2.Vec) {
	min = p.verts[0]
	max = p.verts[0]
	for _, v := range p.verts[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}

// Area returns the unsigned enclosed area of the outline (shoelace sum
// over the discretized loop).
func (p *Profile) Area() float64 {
	var sum float64
	n := len(p.verts)
	for i := 0; i < n; i++ {
		a := p.verts[i]
		b := p.verts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

type joinKind int

const (
	joinLine joinKind = iota
	joinArc
)

type waypoint struct {
	p       r2.Vec
	join    joinKind // how the segment arriving at p is drawn
	through r2.Vec   // arc join: point the arc must pass through
	round   float64  // corner rounding radius at p, 0 for none
	chamfer bool     // corner is chamfered rather than rounded
}

// Builder assembles a closed profile from waypoints and joins. Methods
// chain; the first error sticks and is reported by Build.
type Builder struct {
	pts []waypoint
	err error
}

// NewBuilder returns an empty profile builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo sets the outline start point. It must be the first call.
func (b *Builder) MoveTo(x, y float64) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.pts) != 0 {
		b.err = degenerate("MoveTo after outline started")
		return b
	}
	b.pts = append(b.pts, waypoint{p: r2.Vec{X: x, Y: y}})
	return b
}

// LineTo appends a straight segment to (x, y).
func (b *Builder) LineTo(x, y float64) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.pts) == 0 {
		b.err = degenerate("LineTo before MoveTo")
		return b
	}
	b.pts = append(b.pts, waypoint{p: r2.Vec{X: x, Y: y}, join: joinLine})
	return b
}

// ArcTo appends a circular arc ending at (x, y) that passes exactly
// through (throughX, throughY). The arc is the unique circle through
// the previous point, the through point and the end point.
func (b *Builder) ArcTo(throughX, throughY, x, y float64) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.pts) == 0 {
		b.err = degenerate("ArcTo before MoveTo")
		return b
	}
	b.pts = append(b.pts, waypoint{
		p:       r2.Vec{X: x, Y: y},
		join:    joinArc,
		through: r2.Vec{X: throughX, Y: throughY},
	})
	return b
}

// Round rounds the corner at the most recent waypoint with the given
// radius. Both segments meeting at the corner must be straight.
func (b *Builder) Round(radius float64) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.pts) == 0 {
		b.err = degenerate("Round before any waypoint")
		return b
	}
	if radius <= 0 {
		b.err = degenerate("corner radius %v must be positive", radius)
		return b
	}
	b.pts[len(b.pts)-1].round = radius
	return b
}

// Chamfer cuts the corner at the most recent waypoint with a straight
// bevel of the given setback distance.
func (b *Builder) Chamfer(dist float64) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.pts) == 0 {
		b.err = degenerate("Chamfer before any waypoint")
		return b
	}
	if dist <= 0 {
		b.err = degenerate("chamfer distance %v must be positive", dist)
		return b
	}
	b.pts[len(b.pts)-1].round = dist
	b.pts[len(b.pts)-1].chamfer = true
	return b
}

// Close validates the outline and returns the finished profile. The
// final closure segment back to the start point is added implicitly
// when the last waypoint does not already coincide with the first.
func (b *Builder) Close() (*Profile, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.pts) < 3 {
		return nil, degenerate("outline needs at least 3 waypoints, have %d", len(b.pts))
	}

	// Drop a duplicated closing waypoint so corner treatment sees one
	// vertex per corner. An arc join ending on the start point is kept;
	// discretization emits it and the duplicate vertex merges away.
	pts := b.pts
	if dist(pts[len(pts)-1].p, pts[0].p) < closeTol && pts[len(pts)-1].join == joinLine {
		last := pts[len(pts)-1]
		pts = pts[:len(pts)-1]
		// A rounded closing waypoint transfers its treatment to the
		// start vertex.
		if last.round > 0 {
			pts[0].round = last.round
			pts[0].chamfer = last.chamfer
		}
	}

	verts, err := discretize(pts)
	if err != nil {
		return nil, err
	}
	if len(verts) < 3 {
		return nil, degenerate("outline collapses to fewer than 3 vertices")
	}
	if i, j, hit := selfIntersects(verts); hit {
		return nil, &DegenerateProfileError{Reason: "outline intersects itself", SegA: i, SegB: j}
	}
	return &Profile{verts: verts}, nil
}

// discretize expands waypoints into the final vertex loop: arcs become
// facet chains and rounded corners become tangent arc chains.
func discretize(pts []waypoint) ([]r2.Vec, error) {
	// First pass: expand arc joins. Corner treatment below only applies
	// between straight segments, matching how a machinist would break
	// an outline.
	var loop []waypoint
	n := len(pts)
	for i := 0; i < n; i++ {
		wp := pts[i]
		if wp.join == joinArc {
			prev := loop[len(loop)-1].p
			arc, err := arcThrough(prev, wp.through, wp.p)
			if err != nil {
				return nil, err
			}
			for _, v := range arc {
				loop = append(loop, waypoint{p: v})
			}
		}
		loop = append(loop, wp)
	}

	// Second pass: corner rounding/chamfering.
	var out []r2.Vec
	m := len(loop)
	for i := 0; i < m; i++ {
		wp := loop[i]
		if wp.round <= 0 {
			out = append(out, wp.p)
			continue
		}
		prev := loop[(i-1+m)%m].p
		next := loop[(i+1)%m].p
		corner, err := roundCorner(prev, wp.p, next, wp.round, wp.chamfer)
		if err != nil {
			return nil, err
		}
		out = append(out, corner...)
	}

	// Collapse immediately repeated vertices left by arc endpoints.
	return dedupe(out), nil
}

func dedupe(verts []r2.Vec) []r2.Vec {
	out := verts[:0:0]
	for _, v := range verts {
		if len(out) > 0 && dist(out[len(out)-1], v) < closeTol {
			continue
		}
		out = append(out, v)
	}
	if len(out) > 1 && dist(out[0], out[len(out)-1]) < closeTol {
		out = out[:len(out)-1]
	}
	return out
}

// selfIntersects tests every non-adjacent segment pair of the closed
// loop, including the implicit closing segment, and reports the first
// crossing found.
func selfIntersects(verts []r2.Vec) (segA, segB int, hit bool) {
	n := len(verts)
	for i := 0; i < n; i++ {
		a1 := verts[i]
		a2 := verts[(i+1)%n]
		for j := i + 2; j < n; j++ {
			// Skip the pair closing the loop: segment n-1 is adjacent
			// to segment 0.
			if i == 0 && j == n-1 {
				continue
			}
			b1 := verts[j]
			b2 := verts[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// segmentsCross reports a proper crossing between segments ab and cd.
// Shared endpoints do not count.
func segmentsCross(a, b, c, d r2.Vec) bool {
	d1 := cross(sub(d, c), sub(a, c))
	d2 := cross(sub(d, c), sub(b, c))
	d3 := cross(sub(b, a), sub(c, a))
	d4 := cross(sub(b, a), sub(d, a))
	return ((d1 > closeTol && d2 < -closeTol) || (d1 < -closeTol && d2 > closeTol)) &&
		((d3 > closeTol && d4 < -closeTol) || (d3 < -closeTol && d4 > closeTol))
}

func sub(a, b r2.Vec) r2.Vec     { return r2.Vec{X: a.X - b.X, Y: a.Y - b.Y} }
func cross(a, b r2.Vec) float64  { return a.X*b.Y - a.Y*b.X }
func dist(a, b r2.Vec) float64   { return math.Hypot(a.X-b.X, a.Y-b.Y) }
