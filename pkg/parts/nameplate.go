package parts

import (
	"github.com/chazu/filament/pkg/assembly"
	"github.com/chazu/filament/pkg/kernel"
	"github.com/chazu/filament/pkg/layout"
	"github.com/chazu/filament/pkg/profile"
	"github.com/chazu/filament/pkg/solid"
)

// NameplateParams sizes a two-color desk plate: a rounded base slab
// with a raised label panel exported as a second body so the slicer
// can assign it a contrasting filament.
type NameplateParams struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Thickness    float64 `yaml:"thickness"`
	CornerRadius float64 `yaml:"corner_radius"`
	PanelWidth   float64 `yaml:"panel_width"`
	PanelHeight  float64 `yaml:"panel_height"`
	PanelRelief  float64 `yaml:"panel_relief"`
}

func DefaultNameplateParams() NameplateParams {
	return NameplateParams{
		Width:        60,
		Height:       20,
		Thickness:    3,
		CornerRadius: 2,
		PanelWidth:   48,
		PanelHeight:  12,
		PanelRelief:  1.5,
	}
}

type Nameplate struct {
	params NameplateParams

	anchor    layout.PlacementSet
	plateProf *profile.Profile
	panelProf *profile.Profile
	base      *solid.Body
	panel     *solid.Body
}

func NewNameplate(override *NameplateParams) *Nameplate {
	params := DefaultNameplateParams()
	if override != nil {
		params = *override
	}
	return &Nameplate{params: params}
}

func (n *Nameplate) Name() string { return "nameplate" }

func (n *Nameplate) Stages(k kernel.Kernel) Stages {
	p := n.params
	return Stages{
		Patterns: func() error {
			n.anchor = layout.PlacementSet{{X: 0, Y: 0}}
			return nil
		},
		Profiles: func() error {
			var err error
			if n.plateProf, err = profile.RoundedBox(p.Width, p.Height, p.CornerRadius); err != nil {
				return err
			}
			n.panelProf, err = profile.RoundedBox(p.PanelWidth, p.PanelHeight, p.CornerRadius)
			return err
		},
		Solids: func() error {
			base, err := solid.Extrude(k, n.plateProf, p.Thickness)
			if err != nil {
				return err
			}
			panel, err := solid.Extrude(k, n.panelProf, p.PanelRelief)
			if err != nil {
				return err
			}
			placed, err := solid.Place(panel.Translate(0, 0, p.Thickness), n.anchor)
			if err != nil {
				return err
			}
			n.base = base
			n.panel = placed
			return nil
		},
		Features: func() error { return nil },
		Bodies: func() []assembly.NamedBody {
			return []assembly.NamedBody{
				{Label: "base", Body: n.base},
				{Label: "label", Body: n.panel},
			}
		},
	}
}
