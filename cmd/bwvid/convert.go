package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/bwvid/pkg/adapters/filesink"
	"github.com/user/bwvid/pkg/adapters/ggrenderer"
	"github.com/user/bwvid/pkg/adapters/nullsink"
	"github.com/user/bwvid/pkg/adapters/osfilesystem"
	"github.com/user/bwvid/pkg/adapters/progressbar"
	"github.com/user/bwvid/pkg/adapters/smartsource"
	"github.com/user/bwvid/pkg/config"
	"github.com/user/bwvid/pkg/orchestrator"
	"github.com/user/bwvid/pkg/ports"
	"github.com/user/bwvid/pkg/stages/convert"
	"github.com/user/bwvid/pkg/summarizer"
)

func convertCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "video",
			Usage:    l10n.T("Input video file"),
			Category: l10n.T("Input"),
		},
		&cli.StringFlag{
			Name:     "image",
			Usage:    l10n.T("Input image file"),
			Category: l10n.T("Input"),
		},
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    l10n.T("Output container file path (required)"),
			Category: l10n.T("Output"),
		},
		&cli.IntFlag{
			Name:     "width",
			Aliases:  []string{"W"},
			Usage:    l10n.T("Output width in pixels (default: source width)"),
			Category: l10n.T("Output"),
		},
		&cli.IntFlag{
			Name:     "height",
			Aliases:  []string{"H"},
			Usage:    l10n.T("Output height in pixels (default: source height)"),
			Category: l10n.T("Output"),
		},
		compressionFlag(),
		&cli.IntFlag{
			Name:     "level",
			Usage:    l10n.T("Compression level (0 = backend default)"),
			Category: l10n.T("Container"),
		},
		&cli.StringFlag{
			Name:     "summary",
			Usage:    l10n.T("Output execution summary to file (Markdown format)"),
			Category: l10n.T("Output"),
		},
		&cli.StringFlag{
			Name:     "ffmpeg",
			Usage:    l10n.T("Path to ffmpeg executable"),
			Category: l10n.T("Input"),
		},
		&cli.BoolFlag{
			Name:     "debug",
			Usage:    l10n.T("Enable debug output"),
			Category: l10n.T("Debug"),
		},
		&cli.StringFlag{
			Name:     "debug-dir",
			Usage:    l10n.T("Directory for debug output"),
			Category: l10n.T("Debug"),
		},
		&cli.BoolFlag{
			Name:     "no-progress",
			Usage:    l10n.T("Disable the progress bar"),
			Category: l10n.T("Logging"),
		},
		configFlag(),
	}

	return &cli.Command{
		Name:      "convert",
		Usage:     l10n.T("Convert a video or image into a monochrome container"),
		ArgsUsage: "[INPUT]",
		Flags:     append(flags, loggingFlags()...),
		Action:    runConvert,
	}
}

func runConvert(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := resolveInput(c, &cfg); err != nil {
		return err
	}
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if cfg.OutputPath == "" {
		return fmt.Errorf("%s", l10n.T("output path is required (--output)"))
	}
	kind, err := smartsource.ParseKind(cfg.InputKind)
	if err != nil {
		return err
	}

	log := newLogger(c, cfg, c.App.Writer)
	fs := osfilesystem.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, ggrenderer.New())
	} else {
		sink = nullsink.New()
	}

	progress := ports.NoProgress
	if cfg.Progress && !c.Bool("quiet") {
		progress = progressFor(c.App.ErrWriter)
	}

	source := smartsource.New(fs, smartsource.Options{Kind: kind, FFmpegPath: cfg.FFmpegPath}, log)
	stage := convert.NewStage(source, sink, progress, log)
	orch := orchestrator.New(source, stage, fs, log)

	result, err := orch.Run(c.Context, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	if path := c.String("summary"); path != "" {
		s := summarizer.NewBuilder().WithRunResult(result).Build()
		w := summarizer.NewWriter(summarizer.FormatterFor(path), fs)
		if err := w.Write(path, s); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", path)
		}
	}
	return nil
}

// resolveInput applies --video, --image or the positional argument.
func resolveInput(c *cli.Context, cfg *config.Config) error {
	video, image := c.String("video"), c.String("image")
	switch {
	case video != "" && image != "":
		return fmt.Errorf("%s", l10n.T("--video and --image are mutually exclusive"))
	case video != "":
		cfg.Input, cfg.InputKind = video, string(ports.InputVideo)
	case image != "":
		cfg.Input, cfg.InputKind = image, string(ports.InputImage)
	case c.Args().Present():
		cfg.Input = c.Args().First()
	}
	if cfg.Input == "" {
		return fmt.Errorf("%s", l10n.T("input is required (--video, --image or an argument)"))
	}
	return nil
}

func progressFor(w io.Writer) ports.ProgressObserver {
	if f, ok := w.(*os.File); ok {
		return progressbar.ForFile(f)
	}
	return ports.NoProgress
}
