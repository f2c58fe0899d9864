package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/bwvid/pkg/adapters/ggrenderer"
	"github.com/user/bwvid/pkg/adapters/osfilesystem"
	"github.com/user/bwvid/pkg/pipeline"
	"github.com/user/bwvid/pkg/ports"
	"github.com/user/bwvid/pkg/stages/export"
)

func exportCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:    "index",
			Aliases: []string{"i"},
			Usage:   l10n.T("Frame to export (zero-based)"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   l10n.T("Output image path (.png or .jpg) (required)"),
		},
		&cli.IntFlag{
			Name:  "scale",
			Usage: l10n.T("Pixel scale factor (min: 1)"),
		},
		compressionFlag(),
		configFlag(),
	}

	return &cli.Command{
		Name:      "export",
		Usage:     l10n.T("Write one container frame as an image"),
		ArgsUsage: "CONTAINER",
		Flags:     append(flags, loggingFlags()...),
		Action:    runExport,
	}
}

func runExport(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	path, codec, err := containerArgs(c, cfg)
	if err != nil {
		return err
	}
	output := c.String("output")
	if output == "" {
		return fmt.Errorf("%s", l10n.T("output path is required (--output)"))
	}

	input := pipeline.DefaultExportInput()
	input.ContainerPath = path
	input.Codec = codec
	input.Index = c.Int("index")
	input.Scale = cfg.ExportScale
	input.Format = formatFor(output)
	input.OutputPath = output

	log := newLogger(c, cfg, c.App.ErrWriter)
	stage := export.NewStage(osfilesystem.New(), ggrenderer.New(), log)
	result, err := stage.Execute(c.Context, input)
	if err != nil {
		return err
	}

	log.Info("Exported %dx%d image to %s", result.Width, result.Height, output)
	return nil
}

// formatFor picks the image format from the file extension.
func formatFor(path string) ports.ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return ports.FormatJPEG
	default:
		return ports.FormatPNG
	}
}
