package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bootgen-dev/bootgen/internal/config"
	"github.com/bootgen-dev/bootgen/internal/scaffold"
)

// GenerateOptions are the inputs of `bootgen generate`
type GenerateOptions struct {
	File   string
	Output string
	DryRun bool
	Force  bool
}

type GenerateCommand struct {
	options    GenerateOptions
	filesystem scaffold.FileSystem
	logger     zerolog.Logger
	out        io.Writer
}

func NewGenerateCommand(opts GenerateOptions) *GenerateCommand {
	return &GenerateCommand{
		options:    opts,
		filesystem: scaffold.OSFileSystem(),
		logger:     log.With().Str("component", "generate").Logger(),
		out:        os.Stdout,
	}
}

func (gc *GenerateCommand) Run(ctx context.Context) error {
	path, err := resolveSpecFile(gc.options.File)
	if err != nil {
		return err
	}

	r := &specRunner{filesystem: gc.filesystem, logger: gc.logger, out: gc.out}
	_, err = r.run(path, gc.options.Output, gc.options.DryRun, gc.options.Force)
	return err
}

// resolveSpecFile returns file as is, or searches upward for bootgen.yaml
func resolveSpecFile(file string) (string, error) {
	if file != "" {
		return file, nil
	}

	_, dir, err := config.LoadConfig()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.FileName), nil
}

// specRunner loads a spec file and generates the project it describes
type specRunner struct {
	filesystem scaffold.FileSystem
	logger     zerolog.Logger
	out        io.Writer
}

func (r *specRunner) run(path, output string, dryRun, overwrite bool) (*scaffold.Report, error) {
	cfg, err := config.LoadConfigFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	spec, warnings, err := cfg.Spec()
	if err != nil {
		return nil, fmt.Errorf("invalid spec in %s: %w", path, err)
	}
	for _, w := range warnings {
		r.logger.Warn().Str("code", w.Code).Msg(w.Message)
	}

	if output == "" {
		output = cfg.OutputDir(filepath.Dir(path))
	}

	gen := scaffold.NewGeneratorWithFS(r.filesystem, r.logger.With().Str("component", "scaffold").Logger())
	gen.DryRun = dryRun
	gen.Overwrite = overwrite

	report, err := gen.Generate(spec, cfg.Module, output)
	if err != nil {
		return nil, fmt.Errorf("failed to generate project: %w", err)
	}

	fmt.Fprint(r.out, renderSummary(report, spec.BuildTool, append(warnings, report.Plan.Warnings...)))
	return report, nil
}
