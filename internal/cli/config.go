package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/streetplot/pkg/errors"
)

// Config is the on-disk CLI configuration. Every field has a working default
// so the tool runs without any config file; a file only overrides what it
// mentions.
type Config struct {
	Output OutputConfig       `toml:"output"`
	Figure FigureConfig       `toml:"figure"`
	Style  StyleConfig        `toml:"style"`
	Widths map[string]float64 `toml:"street_widths"`
	WebMap WebMapConfig       `toml:"webmap"`
	Serve  ServeConfig        `toml:"serve"`
}

// OutputConfig controls where rendered files land.
type OutputConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
	DPI    int    `toml:"dpi"`
}

// FigureConfig controls figure framing.
type FigureConfig struct {
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
}

// StyleConfig controls default colors and sizes.
type StyleConfig struct {
	Background string  `toml:"background"`
	NodeColor  string  `toml:"node_color"`
	NodeSize   float64 `toml:"node_size"`
	EdgeColor  string  `toml:"edge_color"`
	EdgeWidth  float64 `toml:"edge_width"`
}

// WebMapConfig controls interactive map output. An empty tiles template
// disables web maps for this installation.
type WebMapConfig struct {
	Tiles       string `toml:"tiles"`
	Attribution string `toml:"attribution"`
	Zoom        int    `toml:"zoom"`
}

// ServeConfig controls the HTTP server and its artifact cache.
type ServeConfig struct {
	Addr            string `toml:"addr"`
	GraphDir        string `toml:"graph_dir"`
	CacheBackend    string `toml:"cache_backend"` // file, redis, none
	CacheTTLMinutes int    `toml:"cache_ttl_minutes"`
	RedisAddr       string `toml:"redis_addr"`
	RedisPassword   string `toml:"redis_password"`
	RedisDB         int    `toml:"redis_db"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{Dir: "images", Format: "png", DPI: 300},
		Figure: FigureConfig{Height: 6, Margin: 0.02},
		Style: StyleConfig{
			Background: "#ffffff",
			NodeColor:  "#66ccff",
			NodeSize:   15,
			EdgeColor:  "#999999",
			EdgeWidth:  1,
		},
		WebMap: WebMapConfig{
			Tiles:       "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}.png",
			Attribution: "© OpenStreetMap contributors © CARTO",
			Zoom:        1,
		},
		Serve: ServeConfig{
			Addr:            ":8080",
			GraphDir:        "graphs",
			CacheBackend:    "file",
			CacheTTLMinutes: 60,
			RedisAddr:       "localhost:6379",
		},
	}
}

// LoadConfig reads the TOML config at path on top of the defaults. An empty
// path means the default location; a missing file there is fine, while a
// missing explicit path is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config file %s does not exist", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}

// defaultConfigPath returns ~/.config/streetplot/config.toml, honoring
// XDG_CONFIG_HOME.
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
