package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/graph"
	"github.com/matzehuels/streetplot/pkg/render/scene"
	"github.com/matzehuels/streetplot/pkg/render/sink"
	"github.com/matzehuels/streetplot/pkg/render/style"
)

// plotOpts holds the command-line flags for the plot command.
type plotOpts struct {
	output     string  // output file path; empty derives from input and config
	format     string  // output format: "png" or "svg"
	dpi        int     // raster resolution
	bbox       string  // explicit extent as "north,south,east,west"
	margin     float64 // relative margin per side
	figHeight  float64 // figure height in inches
	figWidth   float64 // figure width in inches; 0 derives from aspect
	nodeSize   float64 // node marker size; 0 hides nodes
	nodeColor  string
	edgeColor  string
	edgeWidth  float64
	background string
	noGeometry bool   // force straight segments instead of stored curves
	annotate   bool   // label nodes with their IDs
	showAxis   bool   // draw the frame and corner coordinates
	colorBy    string // edge attribute for quantile coloring
	colormap   string // colormap name for --color-by
	bins       int    // quantile bin count for --color-by
	cmapStart  float64
	cmapStop   float64
}

// plotCommand creates the plot command for rendering a graph to a static
// image. Run without arguments it offers an interactive picker over the
// graph files in the current directory.
func (c *CLI) plotCommand() *cobra.Command {
	opts := plotOpts{
		colormap: "viridis",
		bins:     5,
		cmapStop: 1,
	}

	cmd := &cobra.Command{
		Use:   "plot [graph.json]",
		Short: "Render a street network to a static image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args)
			if err != nil {
				return err
			}
			if opts.colorBy == "" && cmd.Flags().Changed("colormap") {
				printWarning("--colormap has no effect without --color-by")
			}
			c.applyPlotDefaults(cmd, &opts)
			return c.runPlot(cmd.Context(), input, &opts)
		},
	}

	addPlotFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.annotate, "annotate", false, "label nodes with their IDs")
	cmd.Flags().StringVar(&opts.colorBy, "color-by", "", "edge attribute to color by (quantile bins)")
	cmd.Flags().StringVar(&opts.colormap, "colormap", opts.colormap, "colormap for --color-by: viridis, plasma, inferno, magma, gray")
	cmd.Flags().IntVar(&opts.bins, "bins", opts.bins, "quantile bin count for --color-by")
	cmd.Flags().Float64Var(&opts.cmapStart, "cmap-start", 0, "colormap sample range start")
	cmd.Flags().Float64Var(&opts.cmapStop, "cmap-stop", opts.cmapStop, "colormap sample range end")

	return cmd
}

// resolveInput returns the graph file argument, falling back to the
// interactive picker when none was given.
func resolveInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return pickGraphFile(".")
}

// applyPlotDefaults fills unset flags from the loaded configuration. Flags
// the user set explicitly always win.
func (c *CLI) applyPlotDefaults(cmd *cobra.Command, opts *plotOpts) {
	cfg := c.Config
	if opts.format == "" {
		opts.format = cfg.Output.Format
	}
	if opts.dpi == 0 {
		opts.dpi = cfg.Output.DPI
	}
	if !cmd.Flags().Changed("margin") {
		opts.margin = cfg.Figure.Margin
	}
	if opts.figHeight == 0 {
		opts.figHeight = cfg.Figure.Height
	}
	if !cmd.Flags().Changed("node-size") {
		opts.nodeSize = cfg.Style.NodeSize
	}
	if opts.nodeColor == "" {
		opts.nodeColor = cfg.Style.NodeColor
	}
	if opts.edgeColor == "" {
		opts.edgeColor = cfg.Style.EdgeColor
	}
	if opts.edgeWidth == 0 {
		opts.edgeWidth = cfg.Style.EdgeWidth
	}
	if opts.background == "" {
		opts.background = cfg.Style.Background
	}
}

// sceneOptions translates plot flags to composition options.
func (o *plotOpts) sceneOptions() (scene.Options, error) {
	for _, color := range []string{o.nodeColor, o.edgeColor, o.background} {
		if err := errors.ValidateHexColor(color); err != nil {
			return scene.Options{}, err
		}
	}

	sceneOpts := scene.DefaultOptions()
	sceneOpts.Margin = o.margin
	sceneOpts.FigHeight = o.figHeight
	sceneOpts.FigWidth = o.figWidth
	sceneOpts.Background = o.background
	sceneOpts.AxisOff = !o.showAxis
	sceneOpts.UseGeometry = !o.noGeometry
	sceneOpts.NodeSize = o.nodeSize
	sceneOpts.NodeColor = o.nodeColor
	sceneOpts.EdgeColor = o.edgeColor
	sceneOpts.EdgeWidth = o.edgeWidth
	sceneOpts.Annotate = o.annotate

	if o.bbox != "" {
		box, err := parseBBox(o.bbox)
		if err != nil {
			return scene.Options{}, err
		}
		sceneOpts.BBox = box
	}
	return sceneOpts, nil
}

// runPlot loads the graph, composes the scene, and writes the image.
func (c *CLI) runPlot(ctx context.Context, input string, opts *plotOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Plotting %s", input)

	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	sceneOpts, err := opts.sceneOptions()
	if err != nil {
		return err
	}
	if opts.colorBy != "" {
		logger.Debugf("Coloring edges by %s (%d %s bins)", opts.colorBy, opts.bins, opts.colormap)
		colors, err := style.EdgeBinColors(g, opts.colorBy, opts.bins, opts.colormap, opts.cmapStart, opts.cmapStop)
		if err != nil {
			return err
		}
		sceneOpts.EdgeColors = colors
	}

	s, err := scene.ComposeGraph(g, sceneOpts)
	if err != nil {
		return err
	}

	path, err := c.saveScene(s, input, opts.output, opts.format, opts.dpi)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d edges", g.EdgeCount()))
	printSuccess("Generated %s image", opts.format)
	printFile(path)
	printStats(g.NodeCount(), g.EdgeCount())
	return nil
}

// saveScene resolves the output target and writes the scene. An explicit
// output path wins entirely; otherwise the filename derives from the input
// and the directory from the configuration.
func (c *CLI) saveScene(s *scene.Scene, input, output, format string, dpi int) (string, error) {
	saveOpts := sink.Options{
		OutputDir: c.Config.Output.Dir,
		Filename:  strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)),
		Format:    sink.Format(format),
		DPI:       dpi,
	}
	if output != "" {
		saveOpts.OutputDir = filepath.Dir(output)
		base := filepath.Base(output)
		if ext := strings.TrimPrefix(filepath.Ext(base), "."); ext != "" {
			if f, err := sink.ParseFormat(ext); err == nil {
				saveOpts.Format = f
			}
		}
		saveOpts.Filename = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sink.Save(s, saveOpts)
}
