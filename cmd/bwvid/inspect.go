package main

import (
	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/bwvid/pkg/adapters/osfilesystem"
	"github.com/user/bwvid/pkg/pipeline"
	"github.com/user/bwvid/pkg/stages/inspect"
)

func inspectCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   l10n.T("Output format (text, json, csv)"),
			Value:   string(inspect.FormatText),
		},
		compressionFlag(),
		configFlag(),
	}

	return &cli.Command{
		Name:      "inspect",
		Usage:     l10n.T("List the frames of a container"),
		ArgsUsage: "CONTAINER",
		Flags:     append(flags, loggingFlags()...),
		Action:    runInspect,
	}
}

func runInspect(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	path, codec, err := containerArgs(c, cfg)
	if err != nil {
		return err
	}
	format, err := inspect.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	log := newLogger(c, cfg, c.App.ErrWriter)
	stage := inspect.NewStage(osfilesystem.New(), log)
	result, err := stage.Execute(c.Context, pipeline.InspectInput{
		ContainerPath: path,
		Codec:         codec,
	})
	if err != nil {
		return err
	}
	return inspect.Write(c.App.Writer, result, format)
}
