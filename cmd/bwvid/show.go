package main

import (
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/bwvid/pkg/adapters/osfilesystem"
	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/pipeline"
	"github.com/user/bwvid/pkg/stages/show"
)

func showCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:    "index",
			Aliases: []string{"i"},
			Usage:   l10n.T("Show only this frame (zero-based)"),
		},
		&cli.StringFlag{
			Name:    "direction",
			Aliases: []string{"d"},
			Usage:   l10n.T("Scan direction (horizontal, vertical)"),
		},
		compressionFlag(),
		configFlag(),
	}

	return &cli.Command{
		Name:      "show",
		Usage:     l10n.T("Print container frames to the terminal"),
		ArgsUsage: "CONTAINER",
		Flags:     append(flags, loggingFlags()...),
		Action:    runShow,
	}
}

func runShow(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	path, codec, err := containerArgs(c, cfg)
	if err != nil {
		return err
	}
	dir, err := bwimg.ParseDirection(cfg.Direction)
	if err != nil {
		return err
	}

	index := pipeline.AllFrames
	if c.IsSet("index") {
		index = c.Int("index")
		if index < 0 {
			return fmt.Errorf(l10n.T("frame index must not be negative, got %d"), index)
		}
	}

	log := newLogger(c, cfg, c.App.ErrWriter)
	stage := show.NewStage(osfilesystem.New(), rendererFor(c.App.Writer), log)
	_, err = stage.Execute(c.Context, pipeline.ShowInput{
		ContainerPath: path,
		Codec:         codec,
		Index:         index,
		Direction:     dir,
		Out:           c.App.Writer,
	})
	return err
}
