// Package parts is the catalog of printable part models. Each part
// turns its parameters into named bodies by running the fixed pipeline
// stage order, and Generate serializes the result to a 3MF file next
// to the other outputs.
package parts

import (
	"fmt"
	"path/filepath"

	"github.com/chazu/filament/pkg/assembly"
	"github.com/chazu/filament/pkg/kernel"
	"github.com/chazu/filament/pkg/pipeline"
	"github.com/rs/zerolog"
)

// Stages is a part's pipeline, one closure per stage. Bodies is called
// only after the feature stage succeeds.
type Stages struct {
	Patterns func() error
	Profiles func() error
	Solids   func() error
	Features func() error
	Bodies   func() []assembly.NamedBody
}

// Part is one parametric part model.
type Part interface {
	Name() string
	Stages(k kernel.Kernel) Stages
}

// Catalog returns every part model with the given preset overrides
// applied on top of its defaults.
func Catalog(p Presets) []Part {
	return []Part{
		NewCapStand(p.CapStand),
		NewCapTray(p.CapTray),
		NewNameplate(p.Nameplate),
		NewStrawberry(p.GamePieces),
		NewCheese(p.GamePieces),
	}
}

// Generate runs the part's pipeline to completion and writes its
// assembly to <outDir>/<name>.3mf. On failure no output file is
// produced and the error names the failing stage.
func Generate(p Part, k kernel.Kernel, outDir string, log zerolog.Logger) (string, error) {
	st := p.Stages(k)
	path := filepath.Join(outDir, p.Name()+".3mf")

	r := pipeline.NewRun(p.Name(), log).
		Patterns(st.Patterns).
		Profiles(st.Profiles).
		Solids(st.Solids).
		Features(st.Features).
		Export(func() error {
			return assembly.Export(st.Bodies(), path)
		})
	if err := r.Err(); err != nil {
		return "", err
	}
	log.Info().Str("part", p.Name()).Str("path", path).Msg("part exported")
	return path, nil
}

// Build runs the part's construction stages without exporting and
// returns its named bodies.
func Build(p Part, k kernel.Kernel, log zerolog.Logger) ([]assembly.NamedBody, error) {
	st := p.Stages(k)
	r := pipeline.NewRun(p.Name(), log).
		Patterns(st.Patterns).
		Profiles(st.Profiles).
		Solids(st.Solids).
		Features(st.Features)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return st.Bodies(), nil
}

// Find returns the named part from the catalog.
func Find(name string, p Presets) (Part, error) {
	for _, part := range Catalog(p) {
		if part.Name() == name {
			return part, nil
		}
	}
	return nil, fmt.Errorf("parts: unknown part %q", name)
}
