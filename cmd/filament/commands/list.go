package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/filament/pkg/parts"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the parts in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range parts.Catalog(presets) {
				fmt.Println(p.Name())
			}
			return nil
		},
	}
	return cmd
}
