package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/streetplot/pkg/graph"
	"github.com/matzehuels/streetplot/pkg/render/scene"
)

// routeOpts holds the command-line flags for the route command.
type routeOpts struct {
	plot plotOpts

	route      string // comma-separated node IDs
	routeColor string
	routeWidth float64
	routeAlpha float64
	markerSize float64
	origin     string // "lon,lat" marker override
	dest       string // "lon,lat" marker override
}

// routeCommand creates the route command for rendering a graph with a route
// overlay. The route draws above the edges, with origin and destination
// markers on top: either the route's endpoint nodes, or explicit points
// given with --orig and --dest (both required together, shown in a distinct
// color).
func (c *CLI) routeCommand() *cobra.Command {
	opts := routeOpts{
		routeColor: "#ff0000",
		routeWidth: 4,
		routeAlpha: 0.5,
		markerSize: 100,
	}

	cmd := &cobra.Command{
		Use:   "route [graph.json] --route a,b,c",
		Short: "Render a street network with a route overlay",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args)
			if err != nil {
				return err
			}
			c.applyPlotDefaults(cmd, &opts.plot)
			return c.runRoute(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.route, "route", "", "route as comma-separated node IDs (required)")
	cmd.Flags().StringVar(&opts.routeColor, "route-color", opts.routeColor, "route line color")
	cmd.Flags().Float64Var(&opts.routeWidth, "route-width", opts.routeWidth, "route line width in points")
	cmd.Flags().Float64Var(&opts.routeAlpha, "route-alpha", opts.routeAlpha, "route line opacity")
	cmd.Flags().Float64Var(&opts.markerSize, "marker-size", opts.markerSize, "origin/destination marker size")
	cmd.Flags().StringVar(&opts.origin, "orig", "", "origin marker override as lon,lat")
	cmd.Flags().StringVar(&opts.dest, "dest", "", "destination marker override as lon,lat")
	_ = cmd.MarkFlagRequired("route")

	addPlotFlags(cmd, &opts.plot)

	return cmd
}

// addPlotFlags registers the base styling flags shared with the plot
// command.
func addPlotFlags(cmd *cobra.Command, opts *plotOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <input>.<format> under the configured output dir)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "raster resolution for png output")
	cmd.Flags().StringVar(&opts.bbox, "bbox", "", "explicit extent as north,south,east,west")
	cmd.Flags().Float64Var(&opts.margin, "margin", 0, "relative margin per side")
	cmd.Flags().Float64Var(&opts.figHeight, "fig-height", 0, "figure height in inches")
	cmd.Flags().Float64Var(&opts.figWidth, "fig-width", 0, "figure width in inches (default derived from extent aspect)")
	cmd.Flags().Float64Var(&opts.nodeSize, "node-size", 0, "node marker size (0 hides nodes)")
	cmd.Flags().StringVar(&opts.nodeColor, "node-color", "", "node marker color")
	cmd.Flags().StringVar(&opts.edgeColor, "edge-color", "", "edge line color")
	cmd.Flags().Float64Var(&opts.edgeWidth, "edge-width", 0, "edge line width in points")
	cmd.Flags().StringVar(&opts.background, "bgcolor", "", "background color")
	cmd.Flags().BoolVar(&opts.noGeometry, "no-geometry", false, "ignore stored edge curves and draw straight segments")
	cmd.Flags().BoolVar(&opts.showAxis, "show-axis", false, "draw the frame and corner coordinates")
}

// runRoute loads the graph, composes the route scene, and writes the image.
func (c *CLI) runRoute(ctx context.Context, input string, opts *routeOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Plotting route over %s", input)

	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return err
	}
	route, err := parseRoute(opts.route)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges; route has %d nodes",
		g.NodeCount(), g.EdgeCount(), len(route))

	baseOpts, err := opts.plot.sceneOptions()
	if err != nil {
		return err
	}
	sceneOpts := scene.DefaultRouteOptions()
	sceneOpts.Options = baseOpts
	sceneOpts.RouteColor = opts.routeColor
	sceneOpts.RouteWidth = opts.routeWidth
	sceneOpts.RouteAlpha = opts.routeAlpha
	sceneOpts.MarkerSize = opts.markerSize

	if opts.origin != "" {
		p, err := parsePoint(opts.origin)
		if err != nil {
			return err
		}
		sceneOpts.OriginPoint = &p
	}
	if opts.dest != "" {
		p, err := parsePoint(opts.dest)
		if err != nil {
			return err
		}
		sceneOpts.DestPoint = &p
	}

	s, err := scene.ComposeRoute(g, route, sceneOpts)
	if err != nil {
		return err
	}

	path, err := c.saveScene(s, input, opts.plot.output, opts.plot.format, opts.plot.dpi)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered route with %d steps", len(route)-1))
	printSuccess("Generated %s image", opts.plot.format)
	printFile(path)
	printStats(g.NodeCount(), g.EdgeCount())
	return nil
}
