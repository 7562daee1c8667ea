// gbamap renders GBA decomp map data as PNG snapshots.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Faultbox/gbamap/internal/config"
	"github.com/Faultbox/gbamap/internal/logger"
	"github.com/Faultbox/gbamap/internal/pipeline"
)

func main() {
	app := &cli.App{
		Name:  "gbamap",
		Usage: "render decomp map data as PNG snapshots",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML config file",
			},
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"p"},
				Usage:   "root of the decomp source tree",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "rotating log file path",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "render maps to PNG images",
				ArgsUsage: "[name filter]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "output directory",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "concurrent map workers",
					},
					&cli.IntFlag{
						Name:  "scale",
						Usage: "integer upscale factor",
					},
					&cli.BoolFlag{
						Name:  "indexed",
						Usage: "write quantized paletted PNGs",
					},
				},
				Action: cmdRender,
			},
			{
				Name:   "info",
				Usage:  "list loaded maps and layouts",
				Action: cmdInfo,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges the YAML config with CLI flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if v := c.String("project"); v != "" {
		cfg.Project.Dir = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := c.String("log-file"); v != "" {
		cfg.Logging.LogFile = v
	}
	if v := c.String("out"); v != "" {
		cfg.Output.Dir = v
	}
	if c.IsSet("workers") {
		cfg.Render.Workers = c.Int("workers")
	}
	if c.IsSet("scale") {
		cfg.Output.Scale = c.Int("scale")
	}
	if c.IsSet("indexed") {
		cfg.Output.Indexed = c.Bool("indexed")
	}
	if c.Args().Present() {
		cfg.Render.Filter = c.Args().First()
	}

	return cfg, nil
}

func cmdRender(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger.Init(logger.Options{Level: cfg.Logging.Level, File: cfg.Logging.LogFile})
	defer logger.Sync()

	runner, err := pipeline.New(pipeline.Options{
		ProjectDir: cfg.Project.Dir,
		OutputDir:  cfg.Output.Dir,
		Workers:    cfg.Render.Workers,
		Scale:      cfg.Output.Scale,
		Indexed:    cfg.Output.Indexed,
		Filter:     cfg.Render.Filter,
	})
	if err != nil {
		return err
	}

	summary, err := runner.Run()
	if err != nil {
		return err
	}

	fmt.Printf("Rendered %d maps (%d skipped) in %s to %s\n",
		summary.Rendered, summary.Skipped, summary.Elapsed.Round(10*time.Millisecond), cfg.Output.Dir)
	return nil
}

func cmdInfo(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger.Init(logger.Options{Level: "warn", File: cfg.Logging.LogFile})
	defer logger.Sync()

	runner, err := pipeline.New(pipeline.Options{ProjectDir: cfg.Project.Dir})
	if err != nil {
		return err
	}

	for _, m := range runner.Maps() {
		layout := "(unlinked)"
		if m.Layout != nil {
			layout = fmt.Sprintf("%dx%d %s + %s",
				m.Layout.Width, m.Layout.Height,
				m.Layout.PrimaryTileset, m.Layout.SecondaryTileset)
		}
		fmt.Printf("%04X  %-40s %s\n", m.ID, m.Name, layout)
	}
	return nil
}
