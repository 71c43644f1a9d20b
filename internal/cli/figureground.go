package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/geo"
	"github.com/matzehuels/streetplot/pkg/graph"
	"github.com/matzehuels/streetplot/pkg/render/scene"
	"github.com/matzehuels/streetplot/pkg/render/style"
)

// figuregroundOpts holds the command-line flags for the figureground command.
type figuregroundOpts struct {
	output       string
	format       string
	dpi          int
	point        string  // center as "lon,lat"
	dist         float64 // half-width of the square extent in meters
	figLength    float64 // side length of the square figure in inches
	defaultWidth float64 // line width for street types not in the width table
	edgeColor    string
	background   string
}

// figuregroundCommand creates the figureground command: a square
// one-to-one-aspect diagram of street patterns around a point, edges only,
// widths classified by street type.
func (c *CLI) figuregroundCommand() *cobra.Command {
	opts := figuregroundOpts{
		dist:         805,
		figLength:    8,
		defaultWidth: 4,
		edgeColor:    "#ffffff",
		background:   "#333333",
	}

	cmd := &cobra.Command{
		Use:   "figureground [graph.json] --point lon,lat",
		Short: "Render a square figure-ground diagram around a point",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args)
			if err != nil {
				return err
			}
			if opts.format == "" {
				opts.format = c.Config.Output.Format
			}
			if opts.dpi == 0 {
				opts.dpi = c.Config.Output.DPI
			}
			return c.runFigureground(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <input>.<format> under the configured output dir)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "raster resolution for png output")
	cmd.Flags().StringVar(&opts.point, "point", "", "center point as lon,lat (required)")
	cmd.Flags().Float64Var(&opts.dist, "dist", opts.dist, "half-width of the square extent in meters")
	cmd.Flags().Float64Var(&opts.figLength, "fig-length", opts.figLength, "side length of the square figure in inches")
	cmd.Flags().Float64Var(&opts.defaultWidth, "default-width", opts.defaultWidth, "line width for unclassified street types")
	cmd.Flags().StringVar(&opts.edgeColor, "edge-color", opts.edgeColor, "edge line color")
	cmd.Flags().StringVar(&opts.background, "bgcolor", opts.background, "background color")

	return cmd
}

// runFigureground renders the square diagram. The center point must be
// explicit: a graph covers an area, and silently picking one of its nodes
// would frame an arbitrary square.
func (c *CLI) runFigureground(ctx context.Context, input string, opts *figuregroundOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if opts.point == "" {
		return errors.New(errors.ErrCodeAmbiguousInput,
			"figure-ground diagrams need an explicit center; supply --point lon,lat")
	}
	center, err := parsePoint(opts.point)
	if err != nil {
		return err
	}

	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	box := geo.BoxAround(center, opts.dist)
	logger.Debugf("Framing %.0fm square around (%.5f, %.5f)", 2*opts.dist, center.X(), center.Y())

	widths := style.DefaultStreetWidths
	if len(c.Config.Widths) > 0 {
		merged := style.WidthMap{}
		for k, v := range style.DefaultStreetWidths {
			merged[k] = v
		}
		for k, v := range c.Config.Widths {
			merged[k] = v
		}
		widths = merged
	}

	sceneOpts := scene.DefaultOptions()
	sceneOpts.BBox = &box
	sceneOpts.Margin = 0
	sceneOpts.FigHeight = opts.figLength
	sceneOpts.FigWidth = opts.figLength
	sceneOpts.Background = opts.background
	sceneOpts.NodeSize = 0
	sceneOpts.EdgeColor = opts.edgeColor
	sceneOpts.EdgeWidths = style.EdgeWidths(g, widths, opts.defaultWidth)

	sp := newSpinnerWithContext(ctx, "Rendering figure-ground diagram")
	sp.Start()

	s, err := scene.ComposeGraph(g, sceneOpts)
	if err != nil {
		sp.Stop()
		return err
	}

	path, err := c.saveScene(s, input, opts.output, opts.format, opts.dpi)
	if err != nil {
		sp.StopWithError("Rendering failed")
		if sp.Cancelled() {
			return ctx.Err()
		}
		return err
	}
	sp.Stop()

	prog.done(fmt.Sprintf("Rendered %d edges", g.EdgeCount()))
	printSuccess("Generated figure-ground diagram")
	printFile(path)
	return nil
}
