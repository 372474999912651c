package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/bootgen-dev/bootgen/internal/commands"
	"github.com/bootgen-dev/bootgen/internal/config"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "bootgen",
		Usage:   "Generate a layered Spring Boot project for one domain module",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("BOOTGEN_LOG_LEVEL"),
				Value:   "warn",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			ctrl.Flags.LogLevel = level.String()
			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "new",
				Usage: "Create a new project, prompting for anything not given as a flag",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "project", Aliases: []string{"p"}, Usage: "project name (also the output directory)"},
					&cli.StringFlag{Name: "package", Usage: "base Java package, e.g. com.example.myapp"},
					&cli.StringFlag{Name: "module", Aliases: []string{"m"}, Usage: "module name, e.g. Product"},
					&cli.StringFlag{Name: "build-tool", Usage: "maven or gradle"},
					&cli.StringFlag{Name: "config-format", Usage: "properties or yml"},
					&cli.StringFlag{Name: "db", Usage: "h2, mysql or postgresql"},
					&cli.StringFlag{Name: "db-name", Usage: "database name"},
					&cli.StringFlag{Name: "db-dialect", Usage: "hibernate dialect class"},
					&cli.BoolFlag{Name: "db-create", Usage: "create the database if it does not exist"},
					&cli.StringFlag{Name: "db-user", Usage: "database username"},
					&cli.StringFlag{Name: "db-password", Usage: "database password"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: ".", Usage: "directory to create the project in"},
					&cli.BoolFlag{Name: "dry-run", Usage: "print the files without writing them"},
					&cli.BoolFlag{Name: "force", Usage: "write into an existing project directory"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.New(ctx, commands.NewOptions{
						ProjectName:       c.String("project"),
						BasePackage:       c.String("package"),
						Module:            c.String("module"),
						BuildTool:         c.String("build-tool"),
						ConfigFormat:      c.String("config-format"),
						Database:          c.String("db"),
						DatabaseName:      c.String("db-name"),
						Dialect:           c.String("db-dialect"),
						CreateIfNotExists: c.Bool("db-create"),
						Username:          c.String("db-user"),
						Password:          c.String("db-password"),
						Output:            c.String("output"),
						DryRun:            c.Bool("dry-run"),
						Force:             c.Bool("force"),
					})
				},
			},
			{
				Name:  "generate",
				Usage: "Create a project from a " + config.FileName + " spec file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "spec file (default: search upward for " + config.FileName + ")"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output directory (default: the spec file's output setting)"},
					&cli.BoolFlag{Name: "dry-run", Usage: "print the files without writing them"},
					&cli.BoolFlag{Name: "force", Usage: "write into an existing project directory"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx, commands.GenerateOptions{
						File:   c.String("file"),
						Output: c.String("output"),
						DryRun: c.Bool("dry-run"),
						Force:  c.Bool("force"),
					})
				},
			},
			{
				Name:  "watch",
				Usage: "Regenerate the project whenever the spec file changes",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "spec file (default: search upward for " + config.FileName + ")"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output directory (default: the spec file's output setting)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx, commands.WatchOptions{
						File:   c.String("file"),
						Output: c.String("output"),
					})
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run bootgen")
	}
}
