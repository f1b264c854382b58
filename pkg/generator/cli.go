package generator

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a synthetic station list and timetable",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Write RandomStationCoordinates.csv and RandomTimetable.csv",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Usage:    "YAML file of generator parameters",
						Required: false,
					},
					&cli.StringFlag{
						Name:     "output-dir",
						Usage:    "Directory the csv files are written into",
						Value:    ".",
						Required: false,
					},
					&cli.IntFlag{
						Name:  "stations",
						Usage: "Overwrite the number of stations",
					},
					&cli.IntFlag{
						Name:  "trains",
						Usage: "Overwrite the number of trains",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Overwrite the random seed for a reproducible run",
					},
				},
				Action: func(c *cli.Context) error {
					config := DefaultConfig()

					if configPath := c.String("config"); configPath != "" {
						var err error
						config, err = LoadConfig(configPath)
						if err != nil {
							return err
						}
					}

					if c.Int("stations") != 0 {
						config.Stations = c.Int("stations")
					}
					if c.Int("trains") != 0 {
						config.Trains = c.Int("trains")
					}
					if c.Int64("seed") != 0 {
						config.Seed = c.Int64("seed")
					}

					if err := config.Validate(); err != nil {
						return err
					}

					generator := New(config)

					stations := generator.Stations()
					trains := generator.Trains()
					events := generator.Timetable(stations, trains)

					stationsPath := filepath.Join(c.String("output-dir"), "RandomStationCoordinates.csv")
					if err := WriteCSV(stationsPath, &stations); err != nil {
						return err
					}
					log.Info().Int("stations", len(stations)).Str("path", stationsPath).Msg("Station coordinates saved")

					timetablePath := filepath.Join(c.String("output-dir"), "RandomTimetable.csv")
					if err := WriteCSV(timetablePath, &events); err != nil {
						return err
					}
					log.Info().Int("trains", len(trains)).Int("events", len(events)).Str("path", timetablePath).Msg("Timetable saved")

					return nil
				},
			},
		},
	}
}
