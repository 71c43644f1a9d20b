package cli

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/streetplot/pkg/cache"
	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/graph"
	"github.com/matzehuels/streetplot/pkg/render/scene"
	"github.com/matzehuels/streetplot/pkg/render/sink"
	"github.com/matzehuels/streetplot/pkg/render/webmap"
)

// serveCommand creates the serve command: an HTTP server that renders graph
// files from a directory on demand, caching the rendered artifacts.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		dir     string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered graphs over HTTP",
		Long: `Serve renders graph files from a directory on demand.

Routes:
  GET /graphs/{name}.png   static raster image
  GET /graphs/{name}.svg   static vector image
  GET /graphs/{name}.html  interactive web map
  GET /healthz             liveness probe

Rendered artifacts are cached keyed on the graph file's content hash, so
edits to a graph file invalidate its artifacts automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			if dir == "" {
				dir = c.Config.Serve.GraphDir
			}

			store, err := c.newCache(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			logger.Infof("Serving graphs from %s on %s", dir, addr)
			srv := &http.Server{
				Addr:              addr,
				Handler:           c.newServeHandler(dir, store),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&dir, "dir", "", "directory of graph JSON files (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// newServeHandler builds the HTTP routing for the serve command.
func (c *CLI) newServeHandler(dir string, store cache.Cache) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/graphs/{name}.{ext}", c.handleGraph(dir, store))

	return r
}

var contentTypes = map[string]string{
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"html": "text/html; charset=utf-8",
}

// handleGraph renders one graph file to the requested format, consulting the
// artifact cache first. Cache keys include the graph file's content hash, so
// a changed file never serves a stale artifact.
func (c *CLI) handleGraph(dir string, store cache.Cache) http.HandlerFunc {
	ttl := time.Duration(c.Config.Serve.CacheTTLMinutes) * time.Minute

	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		logger := c.Logger
		name := chi.URLParam(req, "name")
		ext := chi.URLParam(req, "ext")

		if err := errors.ValidateGraphName(name); err != nil {
			http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
			return
		}

		contentType, ok := contentTypes[ext]
		if !ok {
			http.Error(w, "unsupported format "+ext, http.StatusBadRequest)
			return
		}

		raw, err := os.ReadFile(filepath.Join(dir, name+".json"))
		if os.IsNotExist(err) {
			http.Error(w, "unknown graph "+name, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		hash := cache.Hash(raw)
		var key string
		if ext == "html" {
			key = cache.WebMapKey(hash, c.Config.WebMap.Tiles)
		} else {
			key = cache.ArtifactKey(hash, ext, c.Config.Output.DPI)
		}

		if data, hit, err := store.Get(ctx, key); err == nil && hit {
			logger.Debugf("Serving %s.%s from cache", name, ext)
			w.Header().Set("Content-Type", contentType)
			w.Header().Set("X-Cache", "hit")
			_, _ = w.Write(data)
			return
		}

		g, err := graph.ReadGraph(bytes.NewReader(raw))
		if err != nil {
			http.Error(w, errors.UserMessage(err), httpStatus(err))
			return
		}

		data, err := c.renderArtifact(g, ext)
		if err != nil {
			http.Error(w, errors.UserMessage(err), httpStatus(err))
			return
		}

		if err := store.Set(ctx, key, data, ttl); err != nil {
			logger.Warnf("Caching %s.%s failed: %v", name, ext, err)
		}
		logger.Debugf("Rendered %s.%s (%d bytes)", name, ext, len(data))
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("X-Cache", "miss")
		_, _ = w.Write(data)
	}
}

// renderArtifact renders a graph to the requested format using the
// configured styling defaults.
func (c *CLI) renderArtifact(g *graph.Graph, ext string) ([]byte, error) {
	if ext == "html" {
		m, err := webmap.New(webmap.Options{
			Tiles:       c.Config.WebMap.Tiles,
			Attribution: c.Config.WebMap.Attribution,
			Zoom:        c.Config.WebMap.Zoom,
			Fit:         true,
		})
		if err != nil {
			return nil, err
		}
		if err := m.AddGraphEdges(g, webmap.DefaultEdgeStyle()); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := m.WriteHTML(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	sceneOpts := scene.DefaultOptions()
	sceneOpts.Margin = c.Config.Figure.Margin
	sceneOpts.FigHeight = c.Config.Figure.Height
	sceneOpts.Background = c.Config.Style.Background
	sceneOpts.NodeSize = c.Config.Style.NodeSize
	sceneOpts.NodeColor = c.Config.Style.NodeColor
	sceneOpts.EdgeColor = c.Config.Style.EdgeColor
	sceneOpts.EdgeWidth = c.Config.Style.EdgeWidth

	s, err := scene.ComposeGraph(g, sceneOpts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch ext {
	case "png":
		err = sink.WritePNG(&buf, s, c.Config.Output.DPI)
	case "svg":
		err = sink.WriteSVG(&buf, s)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// httpStatus maps error codes to HTTP statuses.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeFileNotFound), errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupportedCapability):
		return http.StatusNotImplemented
	case errors.Is(err, errors.ErrCodeInvalidInput),
		errors.Is(err, errors.ErrCodeInvalidFormat),
		errors.Is(err, errors.ErrCodeInvalidGraph),
		errors.Is(err, errors.ErrCodeMissingExtent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
