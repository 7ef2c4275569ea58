// Package config loads runtime settings from viper: built-in defaults,
// an optional .ls-jyotish.yaml, JYOTISH_* environment variables and flags
// bound by the CLI.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/litescript/ls-jyotish/internal/astro"
	"github.com/litescript/ls-jyotish/internal/chart"
	"github.com/litescript/ls-jyotish/internal/logging"
	"github.com/litescript/ls-jyotish/internal/panchang"
)

// EnvPrefix prefixes every environment override, e.g. JYOTISH_SERVER_ADDR.
const EnvPrefix = "JYOTISH"

// MinRefresh is the shortest accepted refresh interval.
const MinRefresh = time.Second

// ChartConfig holds chart generation settings.
type ChartConfig struct {
	AspectOrb  float64  `mapstructure:"aspect_orb"`
	TransitOrb float64  `mapstructure:"transit_orb"`
	Planets    []string `mapstructure:"planets"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Config holds all runtime configuration.
type Config struct {
	LogLevel          string            `mapstructure:"log_level"`
	LogFormat         string            `mapstructure:"log_format"`
	Ayanamsa          float64           `mapstructure:"ayanamsa"`
	Refresh           time.Duration     `mapstructure:"refresh"`
	FestivalsFile     string            `mapstructure:"festivals_file"`
	ReferenceLocation panchang.Location `mapstructure:"reference_location"`
	Chart             ChartConfig       `mapstructure:"chart"`
	Server            ServerConfig      `mapstructure:"server"`
}

// ConfigureEnv enables JYOTISH_* overrides, mapping nested keys with
// underscores.
func ConfigureEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// SetDefaults registers the built-in value of every key.
func SetDefaults() {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "auto")
	viper.SetDefault("ayanamsa", astro.DefaultAyanamsa)
	viper.SetDefault("refresh", time.Minute)
	viper.SetDefault("festivals_file", "")
	viper.SetDefault("reference_location.name", panchang.ReferenceLocation.Name)
	viper.SetDefault("reference_location.latitude", panchang.ReferenceLocation.Latitude)
	viper.SetDefault("reference_location.longitude", panchang.ReferenceLocation.Longitude)
	viper.SetDefault("chart.aspect_orb", 0.0)
	viper.SetDefault("chart.transit_orb", chart.DefaultTransitOrb)
	viper.SetDefault("chart.planets", []string{"Sun", "Moon"})
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// Load reads configuration from viper, applying defaults for any values not
// set by config file, environment or flags, and validates the result.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and clamps the refresh interval to MinRefresh.
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	switch c.LogFormat {
	case "auto", "console":
	default:
		return fmt.Errorf("log_format %q: want auto or console", c.LogFormat)
	}
	if c.Refresh < MinRefresh {
		c.Refresh = MinRefresh
	}
	if lat := c.ReferenceLocation.Latitude; lat < -90 || lat > 90 {
		return fmt.Errorf("reference_location.latitude %v outside [-90, 90]", lat)
	}
	if lon := c.ReferenceLocation.Longitude; lon < -180 || lon > 180 {
		return fmt.Errorf("reference_location.longitude %v outside [-180, 180]", lon)
	}
	if c.Ayanamsa < 0 || c.Ayanamsa >= 360 {
		return fmt.Errorf("ayanamsa %v outside [0, 360)", c.Ayanamsa)
	}
	if c.Chart.AspectOrb < 0 || c.Chart.TransitOrb < 0 {
		return fmt.Errorf("chart orbs must not be negative")
	}
	if _, err := c.ChartPlanets(); err != nil {
		return fmt.Errorf("chart.planets: %w", err)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	return nil
}

// ChartPlanets parses the configured planet names.
func (c Config) ChartPlanets() ([]chart.Planet, error) {
	planets := make([]chart.Planet, 0, len(c.Chart.Planets))
	for _, name := range c.Chart.Planets {
		p, err := chart.ParsePlanet(name)
		if err != nil {
			return nil, err
		}
		planets = append(planets, p)
	}
	return planets, nil
}

// Logger returns the application logger writing to w. "console" forces the
// plain console format; "auto" picks console on a terminal and JSON otherwise.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	level := logging.ParseLevel(c.LogLevel)
	if c.LogFormat == "console" {
		return logging.NewConsole(level, w)
	}
	return logging.New(level, w)
}

// Calculator returns a Panchang calculator on the configured site and
// ayanamsa.
func (c Config) Calculator() *panchang.Calculator {
	return &panchang.Calculator{
		Location: c.ReferenceLocation,
		Ayanamsa: c.Ayanamsa,
	}
}

// ChartGenerator returns a chart generator on the built-in ephemeris.
func (c Config) ChartGenerator() (*chart.Generator, error) {
	planets, err := c.ChartPlanets()
	if err != nil {
		return nil, err
	}
	return chart.NewGenerator(chart.Config{
		Ayanamsa:   c.Ayanamsa,
		AspectOrb:  c.Chart.AspectOrb,
		TransitOrb: c.Chart.TransitOrb,
		Planets:    planets,
	}, nil)
}
