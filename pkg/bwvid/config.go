// Package bwvid provides a high-level API for converting images and videos
// into monochrome frame containers and reading them back.
package bwvid

import (
	"github.com/user/bwvid/pkg/compression"
	"github.com/user/bwvid/pkg/orchestrator"
	"github.com/user/bwvid/pkg/ports"
)

// Config represents the configuration for a conversion.
type Config struct {
	// Output resolution
	Width  int // 0 keeps the source width
	Height int // 0 keeps the source height

	// Container
	Compression      compression.Kind
	CompressionLevel int // compression.DefaultLevel selects the backend default

	// Input
	InputKind  ports.InputKind // empty selects by file extension
	FFmpegPath string          // custom ffmpeg binary for video inputs
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: defaults(),
	}
}

func defaults() Config {
	return Config{
		Compression:      compression.None,
		CompressionLevel: compression.DefaultLevel,
	}
}

// Build returns the final Config. Negative sizes are treated as unset.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}
	if cfg.Compression == "" {
		cfg.Compression = compression.None
	}
	return cfg
}

// WithWidth sets the output width.
func (b *ConfigBuilder) WithWidth(width int) *ConfigBuilder {
	b.config.Width = width
	return b
}

// WithHeight sets the output height.
func (b *ConfigBuilder) WithHeight(height int) *ConfigBuilder {
	b.config.Height = height
	return b
}

// WithSize sets both output dimensions.
func (b *ConfigBuilder) WithSize(width, height int) *ConfigBuilder {
	b.config.Width = width
	b.config.Height = height
	return b
}

// WithCompression sets the container compression.
func (b *ConfigBuilder) WithCompression(kind compression.Kind) *ConfigBuilder {
	b.config.Compression = kind
	return b
}

// WithCompressionLevel sets the compression level on the backend's scale.
func (b *ConfigBuilder) WithCompressionLevel(level int) *ConfigBuilder {
	b.config.CompressionLevel = level
	return b
}

// WithInputKind forces the input to be read as an image or a video.
func (b *ConfigBuilder) WithInputKind(kind ports.InputKind) *ConfigBuilder {
	b.config.InputKind = kind
	return b
}

// WithFFmpegPath sets a custom ffmpeg binary.
func (b *ConfigBuilder) WithFFmpegPath(path string) *ConfigBuilder {
	b.config.FFmpegPath = path
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(inputPath, outputPath string) orchestrator.Config {
	cfg := orchestrator.DefaultConfig()
	cfg.InputPath = inputPath
	cfg.OutputPath = outputPath
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.Compression = c.Compression
	cfg.CompressionLevel = c.CompressionLevel
	return cfg
}
