package parts

import (
	"github.com/chazu/filament/pkg/assembly"
	"github.com/chazu/filament/pkg/feature"
	"github.com/chazu/filament/pkg/kernel"
	"github.com/chazu/filament/pkg/layout"
	"github.com/chazu/filament/pkg/profile"
	"github.com/chazu/filament/pkg/solid"
)

// CapTrayParams sizes the two-piece stacking cap tray. The peg plate
// and the socket plate print separately and register on dowel pins
// pressed into blind pockets on the undersides.
type CapTrayParams struct {
	PlateRadius   float64 `yaml:"plate_radius"`
	BaseThickness float64 `yaml:"base_thickness"`
	Pitch         float64 `yaml:"pitch"`
	PegDiameter   float64 `yaml:"peg_diameter"`
	PegHeight     float64 `yaml:"peg_height"`
	PegChamfer    float64 `yaml:"peg_chamfer"`
	SocketBore    float64 `yaml:"socket_bore"`
	SocketWall    float64 `yaml:"socket_wall"`
	SocketHeight  float64 `yaml:"socket_height"`
	DrainDiameter float64 `yaml:"drain_diameter"`
	DowelDiameter float64 `yaml:"dowel_diameter"`
	DowelDepth    float64 `yaml:"dowel_depth"`
	DowelRadius   float64 `yaml:"dowel_radius"`
}

func DefaultCapTrayParams() CapTrayParams {
	return CapTrayParams{
		PlateRadius:   65,
		BaseThickness: 5,
		Pitch:         45,
		PegDiameter:   27.2,
		PegHeight:     10,
		PegChamfer:    1.0,
		SocketBore:    31,
		SocketWall:    3,
		SocketHeight:  10,
		DrainDiameter: 12,
		DowelDiameter: 2,
		DowelDepth:    3,
		DowelRadius:   25,
	}
}

// CapTray is a pair of hex plates: one carries seven pegs that caps
// press onto, the other carries seven socket rings the pegs nest into
// when the trays stack.
type CapTray struct {
	params CapTrayParams

	caps    layout.PlacementSet
	dowels  layout.PlacementSet
	plate   *profile.Profile
	pegs    *solid.Body
	sockets *solid.Body
}

func NewCapTray(override *CapTrayParams) *CapTray {
	params := DefaultCapTrayParams()
	if override != nil {
		params = *override
	}
	return &CapTray{params: params}
}

func (c *CapTray) Name() string { return "cap-tray" }

func (c *CapTray) Stages(k kernel.Kernel) Stages {
	p := c.params
	return Stages{
		Patterns: func() error {
			var err error
			if c.caps, err = layout.HexWithCenter(p.Pitch); err != nil {
				return err
			}
			c.dowels, err = layout.Polar(3, p.DowelRadius, 30)
			return err
		},
		Profiles: func() error {
			var err error
			c.plate, err = profile.Ngon(6, p.PlateRadius, 0)
			return err
		},
		Solids: func() error {
			var err error
			if c.pegs, err = c.buildPegPlate(k); err != nil {
				return err
			}
			c.sockets, err = c.buildSocketPlate(k)
			return err
		},
		Features: func() error {
			var err error
			if c.pegs, err = c.finishPegPlate(c.pegs); err != nil {
				return err
			}
			c.sockets, err = c.finishSocketPlate(c.sockets)
			return err
		},
		Bodies: func() []assembly.NamedBody {
			return []assembly.NamedBody{
				{Label: "pegs", Body: c.pegs},
				{Label: "sockets", Body: c.sockets},
			}
		},
	}
}

func (c *CapTray) buildPegPlate(k kernel.Kernel) (*solid.Body, error) {
	p := c.params
	base, err := solid.Extrude(k, c.plate, p.BaseThickness)
	if err != nil {
		return nil, err
	}
	peg, err := solid.Cylinder(k, p.PegDiameter/2, p.PegHeight)
	if err != nil {
		return nil, err
	}
	placed, err := solid.Place(peg.Translate(0, 0, p.BaseThickness), c.caps)
	if err != nil {
		return nil, err
	}
	return base.Union(placed), nil
}

func (c *CapTray) buildSocketPlate(k kernel.Kernel) (*solid.Body, error) {
	p := c.params
	base, err := solid.Extrude(k, c.plate, p.BaseThickness)
	if err != nil {
		return nil, err
	}
	outer, err := solid.Cylinder(k, p.SocketBore/2+p.SocketWall, p.SocketHeight)
	if err != nil {
		return nil, err
	}
	bore, err := solid.Cylinder(k, p.SocketBore/2, p.SocketHeight)
	if err != nil {
		return nil, err
	}
	ring := outer.Subtract(bore)
	placed, err := solid.Place(ring.Translate(0, 0, p.BaseThickness), c.caps)
	if err != nil {
		return nil, err
	}
	return base.Union(placed), nil
}

func (c *CapTray) finishPegPlate(b *solid.Body) (*solid.Body, error) {
	p := c.params
	b, err := feature.Chamfer(b, feature.Topmost(), p.PegChamfer)
	if err != nil {
		return nil, err
	}
	if b, err = feature.ThroughHole(b, c.caps, p.DrainDiameter); err != nil {
		return nil, err
	}
	return feature.HoleFromBottom(b, c.dowels, p.DowelDiameter, p.DowelDepth)
}

func (c *CapTray) finishSocketPlate(b *solid.Body) (*solid.Body, error) {
	p := c.params
	b, err := feature.ThroughHole(b, c.caps, p.DrainDiameter)
	if err != nil {
		return nil, err
	}
	return feature.HoleFromBottom(b, c.dowels, p.DowelDiameter, p.DowelDepth)
}
