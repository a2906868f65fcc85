package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chazu/filament/pkg/parts"
)

var (
	outDir      string
	presetsPath string
	verbose     bool

	presets parts.Presets
	logger  zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "filament",
		Short: "Parametric model generator for printable jar-cap fixtures and game pieces",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			var err error
			presets, err = parts.LoadPresets(presetsPath)
			return err
		},
	}

	root.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "output directory for generated files")
	root.PersistentFlags().StringVar(&presetsPath, "presets", "", "YAML file with parameter overrides")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-stage progress")

	root.AddCommand(buildCmd(), listCmd())
	return root.Execute()
}
