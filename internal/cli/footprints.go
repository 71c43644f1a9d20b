package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/render/scene"
)

// footprintsOpts holds the command-line flags for the footprints command.
type footprintsOpts struct {
	output     string
	format     string
	dpi        int
	color      string
	background string
	figHeight  float64
	margin     float64
}

// footprintsCommand creates the footprints command for rendering building
// footprints (or any areal features) from a GeoJSON feature collection.
func (c *CLI) footprintsCommand() *cobra.Command {
	opts := footprintsOpts{
		color:      "#c0c0c0",
		background: "#ffffff",
	}

	cmd := &cobra.Command{
		Use:   "footprints [features.geojson]",
		Short: "Render building footprints from GeoJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format == "" {
				opts.format = c.Config.Output.Format
			}
			if opts.dpi == 0 {
				opts.dpi = c.Config.Output.DPI
			}
			if opts.figHeight == 0 {
				opts.figHeight = c.Config.Figure.Height
			}
			if !cmd.Flags().Changed("margin") {
				opts.margin = c.Config.Figure.Margin
			}
			return c.runFootprints(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <input>.<format> under the configured output dir)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "raster resolution for png output")
	cmd.Flags().StringVar(&opts.color, "color", opts.color, "footprint fill color")
	cmd.Flags().StringVar(&opts.background, "bgcolor", opts.background, "background color")
	cmd.Flags().Float64Var(&opts.figHeight, "fig-height", 0, "figure height in inches")
	cmd.Flags().Float64Var(&opts.margin, "margin", 0, "relative margin per side")

	return cmd
}

// runFootprints loads the feature collection and renders its polygons.
func (c *CLI) runFootprints(ctx context.Context, input string, opts *footprintsOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Plotting footprints from %s", input)

	raw, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeFileNotFound, "%s does not exist", input)
		}
		return err
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", input)
	}

	geoms := make([]orb.Geometry, 0, len(fc.Features))
	for _, f := range fc.Features {
		geoms = append(geoms, f.Geometry)
	}
	logger.Infof("Loaded %d features", len(geoms))

	sceneOpts := scene.DefaultShapeOptions()
	sceneOpts.Margin = opts.margin
	sceneOpts.FigHeight = opts.figHeight
	sceneOpts.Background = opts.background
	sceneOpts.FillColor = opts.color
	sceneOpts.EdgeColor = opts.color

	s, err := scene.ComposeShapes(geoms, sceneOpts)
	if err != nil {
		return err
	}

	path, err := c.saveScene(s, input, opts.output, opts.format, opts.dpi)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d features", len(geoms)))
	printSuccess("Generated footprint image")
	printFile(path)
	return nil
}
