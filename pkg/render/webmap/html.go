package webmap

import (
	"encoding/json"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/streetplot/pkg/errors"
)

var pageTemplate = template.Must(template.New("webmap").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
html, body, #map-{{.ID}} { margin: 0; width: 100%; height: 100%; }
</style>
</head>
<body>
<div id="map-{{.ID}}"></div>
<script>
var map = L.map("map-{{.ID}}").setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer({{.Tiles}}, {attribution: {{.Attribution}}}).addTo(map);
{{- range .Lines}}
L.polyline({{.Coords}}, {color: {{.Color}}, weight: {{.Weight}}, opacity: {{.Opacity}}}){{if .Popup}}.bindPopup({{.Popup}}){{end}}.addTo(map);
{{- end}}
{{- if .Fit}}
map.fitBounds({{.Bounds}});
{{- end}}
</script>
</body>
</html>
`))

type lineView struct {
	Coords  template.JS
	Color   string
	Weight  float64
	Opacity float64
	Popup   string
}

type pageView struct {
	ID          string
	Tiles       string
	Attribution string
	Zoom        int
	CenterLat   float64
	CenterLon   float64
	Lines       []lineView
	Fit         bool
	Bounds      template.JS
}

// WriteHTML emits the map as a standalone HTML document. An empty map has no
// extent to frame and fails with MISSING_EXTENT.
func (m *Map) WriteHTML(w io.Writer) error {
	center, err := m.Center()
	if err != nil {
		return err
	}

	view := pageView{
		ID:          m.id,
		Tiles:       m.opts.Tiles,
		Attribution: m.opts.Attribution,
		Zoom:        m.opts.Zoom,
		CenterLat:   center.Y(),
		CenterLon:   center.X(),
		Fit:         m.opts.Fit,
	}
	for _, line := range m.lines {
		coords, err := json.Marshal(line.coords)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode polyline")
		}
		view.Lines = append(view.Lines, lineView{
			Coords:  template.JS(coords),
			Color:   line.color,
			Weight:  line.weight,
			Opacity: line.opacity,
			Popup:   line.popup,
		})
	}
	if m.opts.Fit {
		bounds, err := m.FitBounds()
		if err != nil {
			return err
		}
		raw, err := json.Marshal(bounds)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode bounds")
		}
		view.Bounds = template.JS(raw)
	}

	if err := pageTemplate.Execute(w, view); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render web map")
	}
	return nil
}

// SaveHTML writes the map document to a file, creating parent directories as
// needed, and returns the written path.
func (m *Map) SaveHTML(path string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create output directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := m.WriteHTML(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return path, nil
}
