package profile

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Circle returns an origin-centered circular profile. The exact radius
// is preserved for kernels with a native circular primitive; the facet
// loop is kept for those without.
func Circle(radius float64) (*Profile, error) {
	if radius <= 0 {
		return nil, degenerate("circle radius %v must be positive", radius)
	}
	verts := make([]r2.Vec, arcFacets)
	for i := range verts {
		th := 2 * math.Pi * float64(i) / arcFacets
		verts[i] = r2.Vec{X: radius * math.Cos(th), Y: radius * math.Sin(th)}
	}
	return &Profile{verts: verts, circle: radius}, nil
}

// Ngon returns a regular n-sided polygon of the given circumradius,
// first vertex on the +X axis. A positive cornerRound rounds every
// corner with that radius.
func Ngon(n int, circumradius, cornerRound float64) (*Profile, error) {
	if n < 3 {
		return nil, degenerate("polygon needs at least 3 sides, have %d", n)
	}
	if circumradius <= 0 {
		return nil, degenerate("polygon circumradius %v must be positive", circumradius)
	}
	b := NewBuilder()
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		x := circumradius * math.Cos(th)
		y := circumradius * math.Sin(th)
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
		if cornerRound > 0 {
			b.Round(cornerRound)
		}
	}
	return b.Close()
}

// RoundedBox returns an origin-centered rectangle with every corner
// rounded by cornerRadius. Zero cornerRadius leaves the corners sharp.
func RoundedBox(width, height, cornerRadius float64) (*Profile, error) {
	if width <= 0 || height <= 0 {
		return nil, degenerate("box dimensions %vx%v must be positive", width, height)
	}
	if 2*cornerRadius >= width || 2*cornerRadius >= height {
		return nil, degenerate("corner radius %v too large for %vx%v box", cornerRadius, width, height)
	}
	w := width / 2
	h := height / 2
	b := NewBuilder()
	b.MoveTo(w, h)
	if cornerRadius > 0 {
		b.Round(cornerRadius)
	}
	for _, p := range []r2.Vec{{X: -w, Y: h}, {X: -w, Y: -h}, {X: w, Y: -h}} {
		b.LineTo(p.X, p.Y)
		if cornerRadius > 0 {
			b.Round(cornerRadius)
		}
	}
	return b.Close()
}

// Teardrop returns a drop-shaped profile: a single sharp apex at the
// bottom joined by two straight legs tangent to an upper arc. The arc
// has radius width/2 with its top at height/2 and the apex sits at
// -height/2, so the construction requires height > width for the legs
// to exist.
func Teardrop(width, height float64) (*Profile, error) {
	if width <= 0 || height <= 0 {
		return nil, degenerate("teardrop dimensions %vx%v must be positive", width, height)
	}
	radius := width / 2
	center := r2.Vec{X: 0, Y: height/2 - radius}
	apex := r2.Vec{X: 0, Y: -height / 2}
	t, err := TangentPoint(center, radius, apex)
	if err != nil {
		return nil, err
	}
	if t.Y >= center.Y+radius-closeTol {
		return nil, degenerate("teardrop %vx%v has no straight legs", width, height)
	}
	return NewBuilder().
		MoveTo(apex.X, apex.Y).
		LineTo(t.X, t.Y).
		ArcTo(center.X, center.Y+radius, -t.X, t.Y).
		Close()
}
