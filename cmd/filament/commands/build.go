package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/filament/pkg/kernel"
	"github.com/chazu/filament/pkg/kernel/sdfkern"
	"github.com/chazu/filament/pkg/kernel/sdfx"
	"github.com/chazu/filament/pkg/parts"
)

// newKernel maps a backend name to a geometry kernel. Both backends
// meet the same contract; sdfkern is the default.
func newKernel(name string) (kernel.Kernel, error) {
	switch name {
	case "sdfkern":
		return sdfkern.New(), nil
	case "sdfx":
		return sdfx.New(), nil
	}
	return nil, fmt.Errorf("unknown geometry backend %q (want sdfkern or sdfx)", name)
}

func buildCmd() *cobra.Command {
	var backend string
	cmd := &cobra.Command{
		Use:   "build [part...]",
		Short: "Generate 3MF files for the named parts, or the whole catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := newKernel(backend)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			var batch []parts.Part
			if len(args) == 0 {
				batch = parts.Catalog(presets)
			} else {
				for _, name := range args {
					p, err := parts.Find(name, presets)
					if err != nil {
						return err
					}
					batch = append(batch, p)
				}
			}
			for _, p := range batch {
				if _, err := parts.Generate(p, k, outDir, logger); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "sdfkern", "geometry backend (sdfkern or sdfx)")
	return cmd
}
