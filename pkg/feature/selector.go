package feature

import (
	"math"

	"github.com/chazu/filament/pkg/solid"
)

// selTol is the coincidence tolerance for selector evaluation.
const selTol = 1e-6

type selKind int

const (
	selAll selKind = iota
	selTopmost
	selBottommost
	selPlanarAt
)

// Selector is a pure predicate over a body's circular edges. It holds
// no topology itself: Select re-evaluates it against the body's current
// records every call, so a selector taken before a feature operation
// never references stale topology.
type Selector struct {
	kind  selKind
	coord float64
}

// All selects every edge.
func All() Selector { return Selector{kind: selAll} }

// Topmost selects the edges at the body's highest z level.
func Topmost() Selector { return Selector{kind: selTopmost} }

// Bottommost selects the edges at the body's lowest z level.
func Bottommost() Selector { return Selector{kind: selBottommost} }

// PlanarAt selects the edges lying in the horizontal plane at z.
func PlanarAt(z float64) Selector { return Selector{kind: selPlanarAt, coord: z} }

// Select evaluates the selector against the body's current topology and
// returns the matching edges.
func Select(b *solid.Body, sel Selector) []solid.Edge {
	edges := b.Edges()
	switch sel.kind {
	case selAll:
		return edges
	case selTopmost, selBottommost:
		if len(edges) == 0 {
			return nil
		}
		extreme := edges[0].Z
		for _, e := range edges[1:] {
			if sel.kind == selTopmost && e.Z > extreme {
				extreme = e.Z
			}
			if sel.kind == selBottommost && e.Z < extreme {
				extreme = e.Z
			}
		}
		return atLevel(edges, extreme)
	case selPlanarAt:
		return atLevel(edges, sel.coord)
	}
	return nil
}

func atLevel(edges []solid.Edge, z float64) []solid.Edge {
	var out []solid.Edge
	for _, e := range edges {
		if math.Abs(e.Z-z) < selTol {
			out = append(out, e)
		}
	}
	return out
}
