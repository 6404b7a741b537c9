package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	lcio "github.com/matzehuels/linkchart/pkg/io"
	"github.com/matzehuels/linkchart/pkg/pipeline"
)

// fitCommand creates the fit command, which frames an existing layout in a
// viewport.
func (c *CLI) fitCommand() *cobra.Command {
	var (
		width, height float64
		output        string
		format        string
	)

	cmd := &cobra.Command{
		Use:   "fit [layout.json]",
		Short: "Compute the zoom and pan that frame a layout in a viewport",
		Long: `Compute the zoom and pan that frame a layout in a viewport.

The input is a result file written by 'linkchart layout'. The transform is
added to it and the result is written back, or to --output. Node geometry
comes from the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			input := args[0]
			res, err := lcio.ImportResult(input)
			if err != nil {
				return fmt.Errorf("load layout %s: %w", input, err)
			}

			t, err := pipeline.Fit(res.Positions, width, height, cfg.Layout.Config)
			if err != nil {
				return err
			}
			res.Transform = &t

			outputPath := output
			if outputPath == "" {
				outputPath = input
			}
			f, err := resolveFormat(format, outputPath)
			if err != nil {
				return err
			}
			if outputPath == "-" {
				return lcio.WriteResult(cmd.OutOrStdout(), res, f)
			}
			if err := writeResultFile(res, outputPath, f); err != nil {
				return err
			}

			printSuccess("Fit %d items into %gx%g", len(res.Positions), width, height)
			printFile(outputPath)
			printDetail("zoom %.3f · pan (%.1f, %.1f)", t.Zoom, t.PanX, t.PanY)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultWidth, "viewport width")
	cmd.Flags().Float64Var(&height, "height", pipeline.DefaultHeight, "viewport height")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, or - for stdout (default: overwrite input)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, yaml (default: from output extension)")

	return cmd
}
