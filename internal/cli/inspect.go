package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapforge/mapforge/pkg/mapfile"
)

// inspectCommand creates the inspect command, which loads map files and
// reports item counts and the bounding box without rendering anything.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Show item counts and bounding box for map files",
		Example: `  mapforge inspect zone.txt
  mapforge inspect base.txt overlay.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := mapfile.NewLoader(c.Logger)
			items, err := loader.LoadFiles(cmd.Context(), args)
			if err != nil {
				return err
			}

			box := mapfile.Bounds(items)

			printKeyValue("files", fmt.Sprintf("%d", len(args)))
			printKeyValue("points", fmt.Sprintf("%d", items.Points()))
			printKeyValue("lines", fmt.Sprintf("%d", items.Lines()))
			printKeyValue("origin", fmt.Sprintf("(%g, %g)", box.X, box.Y))
			printKeyValue("size", fmt.Sprintf("%g × %g", box.W, box.H))
			return nil
		},
	}
}
