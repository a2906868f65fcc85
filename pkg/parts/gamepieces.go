package parts

import (
	"github.com/chazu/filament/pkg/assembly"
	"github.com/chazu/filament/pkg/feature"
	"github.com/chazu/filament/pkg/kernel"
	"github.com/chazu/filament/pkg/layout"
	"github.com/chazu/filament/pkg/profile"
	"github.com/chazu/filament/pkg/solid"
)

// GamePiecesParams scales the food-token game pieces. Every dimension
// derives from Size so the whole set rescales together. BaseHeight is
// the single-color lower slab and DecoHeight the two-color upper slab
// where the second filament draws the decoration.
type GamePiecesParams struct {
	Size       float64 `yaml:"size"`
	BaseHeight float64 `yaml:"base_height"`
	DecoHeight float64 `yaml:"deco_height"`
}

func DefaultGamePiecesParams() GamePiecesParams {
	return GamePiecesParams{Size: 16, BaseHeight: 2, DecoHeight: 2}
}

func (p GamePiecesParams) totalHeight() float64 { return p.BaseHeight + p.DecoHeight }

// Strawberry is a two-body token: a berry silhouette split into a red
// body and a green stem cap occupying the top slab.
type Strawberry struct {
	params GamePiecesParams

	stemAt   layout.PlacementSet
	outline  *profile.Profile
	stemDisc *profile.Profile
	red      *solid.Body
	stem     *solid.Body
}

func NewStrawberry(override *GamePiecesParams) *Strawberry {
	params := DefaultGamePiecesParams()
	if override != nil {
		params = *override
	}
	return &Strawberry{params: params}
}

func (s *Strawberry) Name() string { return "strawberry" }

func (s *Strawberry) Stages(k kernel.Kernel) Stages {
	p := s.params
	w := p.Size
	h := 1.1 * p.Size
	return Stages{
		Patterns: func() error {
			s.stemAt = layout.PlacementSet{{X: 0, Y: h / 3}}
			return nil
		},
		Profiles: func() error {
			var err error
			s.outline, err = profile.NewBuilder().
				MoveTo(0, -h/2).
				LineTo(w/2, h/8).
				ArcTo(0, h/2, -w/2, h/8).
				Close()
			if err != nil {
				return err
			}
			s.stemDisc, err = profile.Circle(0.6 * w)
			return err
		},
		Solids: func() error {
			berry, err := solid.Extrude(k, s.outline, p.totalHeight())
			if err != nil {
				return err
			}
			disc, err := solid.Extrude(k, s.stemDisc, p.DecoHeight)
			if err != nil {
				return err
			}
			bound, err := solid.Place(disc.Translate(0, 0, p.BaseHeight), s.stemAt)
			if err != nil {
				return err
			}
			if s.stem, err = bound.Intersect(berry); err != nil {
				return err
			}
			s.red, err = solid.Compose(solid.SubtractOf(solid.Leaf(berry), solid.Leaf(bound)))
			return err
		},
		Features: func() error { return nil },
		Bodies: func() []assembly.NamedBody {
			return []assembly.NamedBody{
				{Label: "strawberry_red_body", Body: s.red},
				{Label: "strawberry_green_stem", Body: s.stem},
			}
		},
	}
}

// Cheese is a wedge token: a right-triangle slab with a bite taken out
// of the point and three round holes of different sizes.
type Cheese struct {
	params GamePiecesParams

	outline *profile.Profile
	body    *solid.Body
}

func NewCheese(override *GamePiecesParams) *Cheese {
	params := DefaultGamePiecesParams()
	if override != nil {
		params = *override
	}
	return &Cheese{params: params}
}

func (c *Cheese) Name() string { return "cheese" }

func (c *Cheese) Stages(k kernel.Kernel) Stages {
	p := c.params
	side := 1.1 * p.Size
	return Stages{
		Patterns: func() error { return nil },
		Profiles: func() error {
			var err error
			c.outline, err = profile.NewBuilder().
				MoveTo(-side/2, -side/2).
				LineTo(side/2, -side/2).
				LineTo(side/2, side/2).
				Close()
			return err
		},
		Solids: func() error {
			wedge, err := solid.Extrude(k, c.outline, p.totalHeight())
			if err != nil {
				return err
			}
			bite, err := solid.Cylinder(k, 0.2*side, p.totalHeight()+2)
			if err != nil {
				return err
			}
			bite = bite.Translate(side/2, 0, -1)
			c.body, err = solid.Compose(solid.SubtractOf(solid.Leaf(wedge), solid.Leaf(bite)))
			return err
		},
		Features: func() error {
			holes := []struct {
				at layout.PlacementSet
				d  float64
			}{
				{layout.PlacementSet{{X: side / 4, Y: -side / 4}}, 0.24 * side},
				{layout.PlacementSet{{X: -side / 8, Y: -side / 3}}, 0.16 * side},
				{layout.PlacementSet{{X: side / 2.5, Y: side / 4}}, 0.14 * side},
			}
			for _, hole := range holes {
				b, err := feature.ThroughHole(c.body, hole.at, hole.d)
				if err != nil {
					return err
				}
				c.body = b
			}
			return nil
		},
		Bodies: func() []assembly.NamedBody {
			return []assembly.NamedBody{{Label: "cheese_yellow_single", Body: c.body}}
		},
	}
}
