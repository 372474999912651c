package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bootgen-dev/bootgen/internal/codegen/java"
	"github.com/bootgen-dev/bootgen/internal/naming"
	"github.com/bootgen-dev/bootgen/internal/project"
	"github.com/bootgen-dev/bootgen/internal/scaffold"
)

type CreateCommand struct {
	options     NewOptions
	filesystem  scaffold.FileSystem
	logger      zerolog.Logger
	out         io.Writer
	interactive func() bool
	// For testing: if set, skip prompting
	testOptions *NewOptions
}

func NewCreateCommand(opts NewOptions) *CreateCommand {
	return &CreateCommand{
		options:     opts,
		filesystem:  scaffold.OSFileSystem(),
		logger:      log.With().Str("component", "new").Logger(),
		out:         os.Stdout,
		interactive: stdinIsTerminal,
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (cc *CreateCommand) Run(ctx context.Context) error {
	return cc.RunWithOptions(ctx)
}

func (cc *CreateCommand) RunWithOptions(ctx context.Context, opts ...tea.ProgramOption) error {
	options := cc.options

	// For testing: use provided options instead of prompting
	if cc.testOptions != nil {
		options = *cc.testOptions
	} else if len(options.missing()) > 0 && (len(opts) > 0 || cc.interactive()) {
		if err := cc.promptNewOptions(&options, opts...); err != nil {
			return fmt.Errorf("failed to get project options: %w", err)
		}
	}

	spec, warnings, err := options.spec()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		cc.logger.Warn().Str("code", w.Code).Msg(w.Message)
	}

	output := options.Output
	if output == "" {
		output = "."
	}

	gen := scaffold.NewGeneratorWithFS(cc.filesystem, log.With().Str("component", "scaffold").Logger())
	gen.DryRun = options.DryRun
	gen.Overwrite = options.Force

	report, err := gen.Generate(spec, options.Module, output)
	if err != nil {
		return fmt.Errorf("failed to generate project: %w", err)
	}

	fmt.Fprint(cc.out, renderSummary(report, spec.BuildTool, append(warnings, report.Plan.Warnings...)))
	return nil
}

func (cc *CreateCommand) promptNewOptions(options *NewOptions, opts ...tea.ProgramOption) error {
	if options.BuildTool == "" {
		options.BuildTool = string(project.BuildMaven)
	}
	if options.ConfigFormat == "" {
		options.ConfigFormat = string(project.FormatProperties)
	}
	if options.Database == "" {
		options.Database = string(project.DatabaseH2)
	}

	form := cc.createNewForm(options)

	if len(opts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return err
		}
		return nil
	}

	// Normal execution
	return form.Run()
}

func (cc *CreateCommand) createNewForm(o *NewOptions) *huh.Form {
	output := o.Output
	if output == "" {
		output = "."
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Directory and artifact name, e.g. my-app").
				Value(&o.ProjectName).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("project name cannot be empty")
					}
					if _, err := cc.filesystem.Stat(filepath.Join(output, s)); err == nil && !o.Force {
						return fmt.Errorf("directory %s already exists", s)
					}
					return nil
				}),

			huh.NewInput().
				Title("Base package").
				Description("e.g. com.example.myapp").
				Value(&o.BasePackage).
				Validate(func(s string) error {
					if !project.IsJavaPackage(naming.NormalizePackage(s)) {
						return fmt.Errorf("%q is not a valid Java package", s)
					}
					return nil
				}),

			huh.NewInput().
				Title("Module name").
				Description("Singular, e.g. Product or order item").
				Value(&o.Module).
				Validate(func(s string) error {
					return java.ValidateNames(naming.Derive(s))
				}),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Build tool").
				Options(
					huh.NewOption("Maven", string(project.BuildMaven)),
					huh.NewOption("Gradle", string(project.BuildGradle)),
				).
				Value(&o.BuildTool),

			huh.NewSelect[string]().
				Title("Configuration format").
				Options(
					huh.NewOption("application.properties", string(project.FormatProperties)),
					huh.NewOption("application.yml", string(project.FormatYAML)),
				).
				Value(&o.ConfigFormat),

			huh.NewSelect[string]().
				Title("Database").
				Options(
					huh.NewOption("H2 (in-memory)", string(project.DatabaseH2)),
					huh.NewOption("MySQL", string(project.DatabaseMySQL)),
					huh.NewOption("PostgreSQL", string(project.DatabasePostgreSQL)),
				).
				Value(&o.Database),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Database name").
				Value(&o.DatabaseName).
				Validate(func(s string) error {
					if o.needsDatabaseName() {
						return fmt.Errorf("%w: database name", ErrMissingInput)
					}
					return nil
				}),

			huh.NewConfirm().
				Title("Create the database if it does not exist?").
				Value(&o.CreateIfNotExists),

			huh.NewInput().
				Title("Database username").
				Description("Leave empty for the database default").
				Value(&o.Username),

			huh.NewInput().
				Title("Database password").
				EchoMode(huh.EchoModePassword).
				Value(&o.Password),

			huh.NewInput().
				Title("Hibernate dialect").
				Description("Leave empty for the database default").
				Value(&o.Dialect),
		).WithHideFunc(func() bool {
			return o.Database == string(project.DatabaseH2)
		}),
	)
}
