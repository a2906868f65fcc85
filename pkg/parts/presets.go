package parts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Presets carries optional per-part parameter overrides loaded from a
// YAML file. A nil entry keeps the part's defaults. The part variants
// that differ only in numeric tuning are presets of one parameterized
// model, not separate models.
type Presets struct {
	CapStand   *CapStandParams   `yaml:"cap_stand"`
	CapTray    *CapTrayParams    `yaml:"cap_tray"`
	Nameplate  *NameplateParams  `yaml:"nameplate"`
	GamePieces *GamePiecesParams `yaml:"game_pieces"`
}

// LoadPresets reads preset overrides from path. An empty path means no
// overrides. The targets are pre-seeded with the part defaults so a
// preset file only has to name the fields it changes.
func LoadPresets(path string) (Presets, error) {
	if path == "" {
		return Presets{}, nil
	}
	capStand := DefaultCapStandParams()
	capTray := DefaultCapTrayParams()
	nameplate := DefaultNameplateParams()
	gamePieces := DefaultGamePiecesParams()
	p := Presets{
		CapStand:   &capStand,
		CapTray:    &capTray,
		Nameplate:  &nameplate,
		GamePieces: &gamePieces,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Presets{}, fmt.Errorf("parts: reading presets: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Presets{}, fmt.Errorf("parts: parsing presets: %w", err)
	}
	return p, nil
}
