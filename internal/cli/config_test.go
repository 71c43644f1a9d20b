package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/streetplot/pkg/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No config file anywhere: pure defaults.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Output.DPI != 300 {
		t.Errorf("default DPI = %d, want 300", cfg.Output.DPI)
	}
	if cfg.Figure.Margin != 0.02 {
		t.Errorf("default margin = %g, want 0.02", cfg.Figure.Margin)
	}
	if cfg.Style.EdgeColor != "#999999" {
		t.Errorf("default edge color = %s, want #999999", cfg.Style.EdgeColor)
	}
	if cfg.WebMap.Tiles == "" {
		t.Error("default tile provider should be set")
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[output]
dpi = 150

[figure]
margin = 0.1

[street_widths]
motorway = 8
alley = 0.5

[webmap]
tiles = ""
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Output.DPI != 150 {
		t.Errorf("DPI = %d, want 150 from file", cfg.Output.DPI)
	}
	if cfg.Output.Format != "png" {
		t.Errorf("format = %s, want default png to survive partial file", cfg.Output.Format)
	}
	if cfg.Figure.Margin != 0.1 {
		t.Errorf("margin = %g, want 0.1 from file", cfg.Figure.Margin)
	}
	if cfg.Widths["motorway"] != 8 || cfg.Widths["alley"] != 0.5 {
		t.Errorf("street widths = %v, want file values", cfg.Widths)
	}
	// Blanking the tile provider disables web maps.
	if cfg.WebMap.Tiles != "" {
		t.Errorf("tiles = %q, want empty from file", cfg.WebMap.Tiles)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}
