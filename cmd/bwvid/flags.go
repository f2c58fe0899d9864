package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/bwvid/pkg/adapters/logger"
	"github.com/user/bwvid/pkg/adapters/termrenderer"
	"github.com/user/bwvid/pkg/compression"
	"github.com/user/bwvid/pkg/config"
	"github.com/user/bwvid/pkg/ports"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "config",
		Usage: l10n.T("YAML configuration file"),
	}
}

func compressionFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "compression",
		Aliases:  []string{"c"},
		Usage:    l10n.T("Container compression (none, deflate-gzip, deflate-zlib, zstd)"),
		Category: l10n.T("Container"),
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "log-level",
			Aliases:  []string{"l"},
			Usage:    l10n.T("Log level (debug, info, warn, error)"),
			Category: l10n.T("Logging"),
		},
		&cli.BoolFlag{
			Name:     "quiet",
			Aliases:  []string{"Q"},
			Usage:    l10n.T("Suppress all log output"),
			Category: l10n.T("Logging"),
		},
	}
}

// loadConfig merges defaults, the optional config file and the flags set
// on the command line, in that order, and validates the result.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("compression") {
		cfg.Compression = c.String("compression")
	}
	if c.IsSet("level") {
		cfg.CompressionLevel = c.Int("level")
	}
	if c.IsSet("ffmpeg") {
		cfg.FFmpegPath = c.String("ffmpeg")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("no-progress") {
		cfg.Progress = false
	}
	if c.IsSet("direction") {
		cfg.Direction = c.String("direction")
	}
	if c.IsSet("scale") {
		cfg.ExportScale = c.Int("scale")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}

	return cfg, cfg.Validate()
}

// newLogger creates the command logger. Informational output goes to out.
func newLogger(c *cli.Context, cfg config.Config, out io.Writer) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	level, _ := ports.ParseLogLevel(cfg.LogLevel)
	if out == io.Writer(os.Stdout) && c.App.ErrWriter == io.Writer(os.Stderr) {
		return logger.NewConsole(level)
	}
	return logger.NewWriters(level, out, c.App.ErrWriter)
}

// containerArgs returns the container path argument and the configured codec.
func containerArgs(c *cli.Context, cfg config.Config) (string, compression.Codec, error) {
	path := c.Args().First()
	if path == "" {
		return "", nil, fmt.Errorf("%s", l10n.T("container path argument is required"))
	}
	codec, err := cfg.Codec()
	if err != nil {
		return "", nil, err
	}
	return path, codec, nil
}

// rendererFor picks terminal cells for w.
func rendererFor(w io.Writer) ports.Renderer {
	if f, ok := w.(*os.File); ok {
		return termrenderer.ForFile(f)
	}
	return termrenderer.NewWithCells(termrenderer.ASCIIWhite, termrenderer.Blank)
}
