package profile

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// arcThrough returns the interior vertices of the unique circular arc
// from a to b passing exactly through m. Endpoints are excluded; the
// caller already holds them.
func arcThrough(a, m, b r2.Vec) ([]r2.Vec, error) {
	c, _, err := circumcircle(a, m, b)
	if err != nil {
		return nil, err
	}
	thA := math.Atan2(a.Y-c.Y, a.X-c.X)
	thM := math.Atan2(m.Y-c.Y, m.X-c.X)
	thB := math.Atan2(b.Y-c.Y, b.X-c.X)

	// Pick the sweep direction that passes through m.
	ccw := angNorm(thB - thA)
	mid := angNorm(thM - thA)
	sweep := ccw
	if mid > ccw {
		sweep = ccw - 2*math.Pi
	}

	facets := facetCount(sweep)
	radius := dist(a, c)
	verts := make([]r2.Vec, 0, facets-1)
	for i := 1; i < facets; i++ {
		th := thA + sweep*float64(i)/float64(facets)
		verts = append(verts, r2.Vec{X: c.X + radius*math.Cos(th), Y: c.Y + radius*math.Sin(th)})
	}
	return verts, nil
}

// circumcircle returns the center and radius of the circle through
// three points. Collinear points have no circumcircle.
func circumcircle(a, m, b r2.Vec) (center r2.Vec, radius float64, err error) {
	d := 2 * (a.X*(m.Y-b.Y) + m.X*(b.Y-a.Y) + b.X*(a.Y-m.Y))
	if math.Abs(d) < closeTol {
		return r2.Vec{}, 0, degenerate("arc points (%.4g,%.4g) (%.4g,%.4g) (%.4g,%.4g) are collinear",
			a.X, a.Y, m.X, m.Y, b.X, b.Y)
	}
	aa := a.X*a.X + a.Y*a.Y
	mm := m.X*m.X + m.Y*m.Y
	bb := b.X*b.X + b.Y*b.Y
	center = r2.Vec{
		X: (aa*(m.Y-b.Y) + mm*(b.Y-a.Y) + bb*(a.Y-m.Y)) / d,
		Y: (aa*(b.X-m.X) + mm*(a.X-b.X) + bb*(m.X-a.X)) / d,
	}
	return center, dist(a, center), nil
}

// TangentPoint returns the point where a straight leg from apex touches
// the circle of the given center and radius. With the apex at distance
// d from the center, the tangent angle α off the center-apex axis
// satisfies sin(α) = radius/d; there is no real tangent when the apex
// lies inside the circle (d < radius).
func TangentPoint(center r2.Vec, radius float64, apex r2.Vec) (r2.Vec, error) {
	if radius <= 0 {
		return r2.Vec{}, degenerate("tangent radius %v must be positive", radius)
	}
	d := dist(apex, center)
	if d < radius {
		return r2.Vec{}, degenerate("apex distance %.4g inside tangent circle radius %.4g", d, radius)
	}
	sinA := radius / d
	cosA := math.Sqrt(1 - sinA*sinA)
	// u points from center toward apex, perp is u rotated +90°.
	u := r2.Vec{X: (apex.X - center.X) / d, Y: (apex.Y - center.Y) / d}
	perp := r2.Vec{X: -u.Y, Y: u.X}
	return r2.Vec{
		X: center.X + radius*(perp.X*cosA+u.X*sinA),
		Y: center.Y + radius*(perp.Y*cosA+u.Y*sinA),
	}, nil
}

// roundCorner replaces the corner at v with a tangent arc (or a single
// bevel segment when chamfer is set) of the given size, returning the
// replacement vertices in outline order.
func roundCorner(prev, v, next r2.Vec, size float64, chamfer bool) ([]r2.Vec, error) {
	v0 := unit(sub(prev, v))
	v1 := unit(sub(next, v))
	theta := math.Acos(clampUnit(v0.X*v1.X + v0.Y*v1.Y))
	if theta < closeTol || math.Pi-theta < closeTol {
		return nil, degenerate("corner at (%.4g,%.4g) is straight or reversed", v.X, v.Y)
	}

	// Distance from the corner to the tangent points.
	setback := size
	if !chamfer {
		setback = size / math.Tan(theta/2)
	}
	if setback > dist(prev, v) || setback > dist(next, v) {
		return nil, degenerate("corner treatment %.4g at (%.4g,%.4g) exceeds adjoining segment length", size, v.X, v.Y)
	}

	p0 := r2.Vec{X: v.X + v0.X*setback, Y: v.Y + v0.Y*setback}
	p1 := r2.Vec{X: v.X + v1.X*setback, Y: v.Y + v1.Y*setback}
	if chamfer {
		return []r2.Vec{p0, p1}, nil
	}

	// Arc center sits along the corner bisector.
	dc := size / math.Sin(theta/2)
	bis := unit(r2.Vec{X: v0.X + v1.X, Y: v0.Y + v1.Y})
	c := r2.Vec{X: v.X + bis.X*dc, Y: v.Y + bis.Y*dc}

	sweep := math.Pi - theta
	if cross(v1, v0) < 0 {
		sweep = -sweep
	}
	th0 := math.Atan2(p0.Y-c.Y, p0.X-c.X)
	facets := facetCount(sweep)
	verts := make([]r2.Vec, 0, facets+1)
	for i := 0; i <= facets; i++ {
		th := th0 + sweep*float64(i)/float64(facets)
		verts = append(verts, r2.Vec{X: c.X + size*math.Cos(th), Y: c.Y + size*math.Sin(th)})
	}
	return verts, nil
}

// facetCount scales facet resolution with sweep angle.
func facetCount(sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * arcFacets))
	if n < 4 {
		n = 4
	}
	return n
}

// angNorm maps an angle difference into [0, 2π).
func angNorm(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func unit(v r2.Vec) r2.Vec {
	n := math.Hypot(v.X, v.Y)
	return r2.Vec{X: v.X / n, Y: v.Y / n}
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
