package cli

import (
	"github.com/spf13/cobra"

	"github.com/mapforge/mapforge/internal/tui"
	"github.com/mapforge/mapforge/pkg/mapfile"
)

// viewCommand creates the view command, an interactive terminal preview of
// map files without rendering an image.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view FILE...",
		Short: "Preview map files in the terminal",
		Long: `Open an interactive terminal preview of one or more map files.

Points and line segments are drawn on a braille canvas; zoom with +/-,
pan with the arrow keys, quit with q.`,
		Example: `  mapforge view zone.txt`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := mapfile.NewLoader(c.Logger)
			items, err := loader.LoadFiles(cmd.Context(), args)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), items, mapfile.Bounds(items))
		},
	}
}
