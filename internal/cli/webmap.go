package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/graph"
	"github.com/matzehuels/streetplot/pkg/render/webmap"
)

// webmapOpts holds the command-line flags for the webmap command.
type webmapOpts struct {
	output     string
	route      string // optional route overlay as comma-separated node IDs
	routeOnly  bool   // map only the route, centered on it
	popup      string // edge attribute shown in click popups
	tiles      string
	zoom       int
	edgeColor  string
	edgeWidth  float64
	routeColor string
	routeWidth float64
}

// webmapCommand creates the webmap command for generating an interactive
// Leaflet map. The tile provider comes from the configuration and can be
// overridden with --tiles; an installation with no provider configured
// cannot produce web maps.
func (c *CLI) webmapCommand() *cobra.Command {
	opts := webmapOpts{
		edgeColor:  "#333333",
		edgeWidth:  5,
		routeColor: "#cc0000",
		routeWidth: 5,
	}

	cmd := &cobra.Command{
		Use:   "webmap [graph.json]",
		Short: "Generate an interactive web map",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args)
			if err != nil {
				return err
			}
			if opts.tiles == "" {
				opts.tiles = c.Config.WebMap.Tiles
			}
			if opts.zoom == 0 {
				opts.zoom = c.Config.WebMap.Zoom
			}
			return c.runWebmap(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <input>.html under the configured output dir)")
	cmd.Flags().StringVar(&opts.route, "route", "", "route overlay as comma-separated node IDs")
	cmd.Flags().BoolVar(&opts.routeOnly, "route-only", false, "map only the route, centered on it (requires --route)")
	cmd.Flags().StringVar(&opts.popup, "popup", "", "edge attribute shown in click popups")
	cmd.Flags().StringVar(&opts.tiles, "tiles", "", "tile provider URL template (default from config)")
	cmd.Flags().IntVar(&opts.zoom, "zoom", 0, "initial zoom level")
	cmd.Flags().StringVar(&opts.edgeColor, "edge-color", opts.edgeColor, "edge line color")
	cmd.Flags().Float64Var(&opts.edgeWidth, "edge-width", opts.edgeWidth, "edge line weight in pixels")
	cmd.Flags().StringVar(&opts.routeColor, "route-color", opts.routeColor, "route line color")
	cmd.Flags().Float64Var(&opts.routeWidth, "route-width", opts.routeWidth, "route line weight in pixels")

	return cmd
}

// runWebmap builds the map document and writes it.
func (c *CLI) runWebmap(ctx context.Context, input string, opts *webmapOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Building web map for %s", input)

	m, err := webmap.New(webmap.Options{
		Tiles:       opts.tiles,
		Attribution: c.Config.WebMap.Attribution,
		Zoom:        opts.zoom,
		Fit:         true,
	})
	if err != nil {
		return err
	}

	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	if opts.routeOnly && opts.route == "" {
		return errors.New(errors.ErrCodeAmbiguousInput, "--route-only needs --route")
	}

	if !opts.routeOnly {
		edgeStyle := webmap.DefaultEdgeStyle()
		edgeStyle.Color = opts.edgeColor
		edgeStyle.Width = opts.edgeWidth
		edgeStyle.PopupAttribute = opts.popup
		if err := m.AddGraphEdges(g, edgeStyle); err != nil {
			return err
		}
	}

	if opts.route != "" {
		route, err := parseRoute(opts.route)
		if err != nil {
			return err
		}
		routeStyle := webmap.DefaultRouteStyle()
		routeStyle.Color = opts.routeColor
		routeStyle.Width = opts.routeWidth
		if err := m.AddRoute(g, route, routeStyle); err != nil {
			return err
		}
		logger.Debugf("Added route overlay with %d nodes", len(route))
	}

	output := opts.output
	if output == "" {
		name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		output = filepath.Join(c.Config.Output.Dir, name+".html")
	}
	path, err := m.SaveHTML(output)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Mapped %d edges", g.EdgeCount()))
	printSuccess("Generated web map")
	printFile(path)
	printNextStep("Open it", "xdg-open "+path)
	return nil
}
