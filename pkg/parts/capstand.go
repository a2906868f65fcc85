package parts

import (
	"github.com/chazu/filament/pkg/assembly"
	"github.com/chazu/filament/pkg/feature"
	"github.com/chazu/filament/pkg/kernel"
	"github.com/chazu/filament/pkg/layout"
	"github.com/chazu/filament/pkg/profile"
	"github.com/chazu/filament/pkg/solid"
)

// CapStandParams sizes the seven-cap drying stand. The socket bore is
// CapDiameter plus Clearance on each side, and the hex plate is sized
// so a full socket ring fits inside the rounded corners.
type CapStandParams struct {
	CapDiameter   float64 `yaml:"cap_diameter"`
	Clearance     float64 `yaml:"clearance"`
	SocketWall    float64 `yaml:"socket_wall"`
	SocketHeight  float64 `yaml:"socket_height"`
	BaseThickness float64 `yaml:"base_thickness"`
	Pitch         float64 `yaml:"pitch"`
	VentDiameter  float64 `yaml:"vent_diameter"`
	Chamfer       float64 `yaml:"chamfer"`
	PlateRadius   float64 `yaml:"plate_radius"`
	CornerRound   float64 `yaml:"corner_round"`
}

func DefaultCapStandParams() CapStandParams {
	return CapStandParams{
		CapDiameter:   31,
		Clearance:     0.3,
		SocketWall:    2,
		SocketHeight:  3,
		BaseThickness: 2,
		Pitch:         45,
		VentDiameter:  15,
		Chamfer:       0.8,
		PlateRadius:   62.8,
		CornerRound:   10,
	}
}

// CapStand is a hex plate with seven raised sockets that hold jar caps
// thread side up while they drain.
type CapStand struct {
	params CapStandParams

	sockets layout.PlacementSet
	plate   *profile.Profile
	body    *solid.Body
}

func NewCapStand(override *CapStandParams) *CapStand {
	params := DefaultCapStandParams()
	if override != nil {
		params = *override
	}
	return &CapStand{params: params}
}

func (c *CapStand) Name() string { return "cap-stand" }

func (c *CapStand) boreDiameter() float64 {
	return c.params.CapDiameter + 2*c.params.Clearance
}

func (c *CapStand) socketOuterRadius() float64 {
	return c.boreDiameter()/2 + c.params.SocketWall
}

func (c *CapStand) Stages(k kernel.Kernel) Stages {
	p := c.params
	return Stages{
		Patterns: func() error {
			var err error
			c.sockets, err = layout.HexWithCenter(p.Pitch)
			return err
		},
		Profiles: func() error {
			var err error
			c.plate, err = profile.Ngon(6, p.PlateRadius, p.CornerRound)
			return err
		},
		Solids: func() error {
			base, err := solid.Extrude(k, c.plate, p.BaseThickness)
			if err != nil {
				return err
			}
			boss, err := solid.Cylinder(k, c.socketOuterRadius(), p.SocketHeight)
			if err != nil {
				return err
			}
			bosses, err := solid.Place(boss.Translate(0, 0, p.BaseThickness), c.sockets)
			if err != nil {
				return err
			}
			c.body = base.Union(bosses)
			return nil
		},
		Features: func() error {
			b, err := feature.Hole(c.body, c.sockets, c.boreDiameter(), p.SocketHeight)
			if err != nil {
				return err
			}
			b, err = feature.ThroughHole(b, c.sockets, p.VentDiameter)
			if err != nil {
				return err
			}
			b, err = feature.Chamfer(b, feature.Topmost(), p.Chamfer)
			if err != nil {
				return err
			}
			c.body = b
			return nil
		},
		Bodies: func() []assembly.NamedBody {
			return []assembly.NamedBody{{Label: "stand", Body: c.body}}
		},
	}
}
