package convert

import (
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Convert a timetable into directed network files",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Build all three network spaces under both weight schemes",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Usage:    "Path of the semicolon separated timetable file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "output-dir",
						Usage:    "Directory the .net files are written into",
						Value:    ".",
						Required: false,
					},
				},
				Action: func(c *cli.Context) error {
					return Run(Options{
						InputPath: c.String("input"),
						OutputDir: c.String("output-dir"),
					})
				},
			},
		},
	}
}
