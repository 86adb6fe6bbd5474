package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"geotrack/internal/mapview"
)

// Config holds all application configuration.
type Config struct {
	Form FormConfig `mapstructure:"form"`
	Map  MapConfig  `mapstructure:"map"`
	Log  LogConfig  `mapstructure:"log"`
}

type FormConfig struct {
	// Named shows a name field per row and labels popups with it.
	Named  bool `mapstructure:"named"`
	Points int  `mapstructure:"points"`
	Seed   bool `mapstructure:"seed"`
}

type MapConfig struct {
	Zoom    int      `mapstructure:"zoom"`
	Palette []string `mapstructure:"palette"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Flags registers the command-line overrides understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("geotrack", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file")
	fs.Bool("named", true, "named four-point mode; --named=false for two anonymous points")
	fs.Int("points", 0, "number of locations (2 or 4); defaults by mode")
	fs.Bool("seed", true, "pre-fill the form with sample locations")
	fs.Int("zoom", mapview.DefaultZoom, "initial map zoom")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-file", "geotrack.log", "log file path; empty disables logging")
	return fs
}

var flagKeys = map[string]string{
	"named":     "form.named",
	"points":    "form.points",
	"seed":      "form.seed",
	"zoom":      "map.zoom",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load reads configuration from defaults, an optional config file, GEOTRACK_*
// environment variables and, when fs is non-nil, explicitly set flags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("form.named", true)
	v.SetDefault("form.points", 0)
	v.SetDefault("form.seed", true)
	v.SetDefault("map.zoom", mapview.DefaultZoom)
	v.SetDefault("map.palette", mapview.DefaultPalette)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "geotrack.log")

	// Config file (optional)
	v.SetConfigName("geotrack")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/geotrack")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: GEOTRACK_MAP_ZOOM → map.zoom
	v.SetEnvPrefix("GEOTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Form.Points == 0 {
		cfg.Form.Points = 2
		if cfg.Form.Named {
			cfg.Form.Points = 4
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every field is present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Form.Points != 2 && c.Form.Points != 4 {
		errs = append(errs, fmt.Sprintf("form.points must be 2 or 4, got %d", c.Form.Points))
	}
	if c.Map.Zoom < 1 || c.Map.Zoom > 19 {
		errs = append(errs, fmt.Sprintf("map.zoom must be 1-19, got %d", c.Map.Zoom))
	}
	if len(c.Map.Palette) == 0 {
		errs = append(errs, "map.palette must not be empty")
	}
	for _, p := range c.Map.Palette {
		if _, err := mapview.ResolveColor(p); err != nil {
			errs = append(errs, "map.palette: "+err.Error())
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
