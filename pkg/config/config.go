// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/user/bwvid/pkg/adapters/smartsource"
	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/compression"
	"github.com/user/bwvid/pkg/orchestrator"
	"github.com/user/bwvid/pkg/ports"
)

// Config represents the full configuration for bwvid.
type Config struct {
	// Input/Output
	Input      string `yaml:"input"`
	InputKind  string `yaml:"input_kind"` // auto, image or video
	OutputPath string `yaml:"output"`

	// Output resolution; 0 keeps the source value
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Container
	Compression      string `yaml:"compression"`
	CompressionLevel int    `yaml:"compression_level"`

	// Sources
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Console
	LogLevel string `yaml:"log_level"`
	Progress bool   `yaml:"progress"`

	// Show / export
	Direction   string `yaml:"direction"`
	ExportScale int    `yaml:"export_scale"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		InputKind: "auto",

		Compression:      string(compression.None),
		CompressionLevel: compression.DefaultLevel,

		LogLevel: "info",
		Progress: true,

		Direction:   bwimg.Horizontal.String(),
		ExportScale: 1,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs *multierror.Error

	if c.Width < 0 {
		errs = multierror.Append(errs, fmt.Errorf("width must not be negative, got %d", c.Width))
	}
	if c.Height < 0 {
		errs = multierror.Append(errs, fmt.Errorf("height must not be negative, got %d", c.Height))
	}
	if _, err := smartsource.ParseKind(c.InputKind); err != nil {
		errs = multierror.Append(errs, err)
	}
	if kind, err := compression.ParseKind(c.Compression); err != nil {
		errs = multierror.Append(errs, err)
	} else if _, err := compression.New(kind, c.CompressionLevel); err != nil {
		errs = multierror.Append(errs, err)
	}
	if _, err := ports.ParseLogLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, err)
	}
	if _, err := bwimg.ParseDirection(c.Direction); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.ExportScale < 1 {
		errs = multierror.Append(errs, fmt.Errorf("export_scale must be at least 1, got %d", c.ExportScale))
	}

	return errs.ErrorOrNil()
}

// Codec returns the configured compression codec.
func (c Config) Codec() (compression.Codec, error) {
	kind, err := compression.ParseKind(c.Compression)
	if err != nil {
		return nil, err
	}
	return compression.New(kind, c.CompressionLevel)
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	cfg := orchestrator.DefaultConfig()
	cfg.InputPath = c.Input
	cfg.OutputPath = c.OutputPath
	cfg.Width = c.Width
	cfg.Height = c.Height
	if kind, err := compression.ParseKind(c.Compression); err == nil {
		cfg.Compression = kind
	}
	cfg.CompressionLevel = c.CompressionLevel
	return cfg
}
