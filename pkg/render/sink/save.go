package sink

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/render/scene"
)

// Format is an output file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPNG, FormatSVG:
		return Format(name), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want png or svg)", name)
	}
}

// Options controls where and how a scene is written.
type Options struct {
	// OutputDir is created if absent. Filename carries no extension; the
	// format supplies it.
	OutputDir string
	Filename  string
	Format    Format
	// DPI applies to raster output only.
	DPI int
}

// DefaultOptions writes a 300 DPI PNG named "image" under "images".
func DefaultOptions() Options {
	return Options{
		OutputDir: "images",
		Filename:  "image",
		Format:    FormatPNG,
		DPI:       300,
	}
}

// Path returns the full output path the options resolve to.
func (o Options) Path() string {
	return filepath.Join(o.OutputDir, o.Filename+"."+string(o.Format))
}

// Save writes the scene to disk in the configured format and returns the
// written path.
func Save(s *scene.Scene, opts Options) (string, error) {
	if opts.Filename == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "output filename is empty")
	}
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return "", err
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create output directory %s", opts.OutputDir)
	}

	path := opts.Path()
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}

	switch opts.Format {
	case FormatPNG:
		err = WritePNG(f, s, opts.DPI)
	case FormatSVG:
		err = WriteSVG(f, s)
	}
	if err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return path, nil
}
