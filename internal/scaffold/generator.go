package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bootgen-dev/bootgen/internal/naming"
	"github.com/bootgen-dev/bootgen/internal/project"
	"github.com/rs/zerolog"
)

// Report describes a finished run
type Report struct {
	Plan   *Plan
	Root   string
	DryRun bool
}

// ProjectDir is the directory holding the generated project
func (r *Report) ProjectDir() string {
	if len(r.Plan.Directories) == 0 {
		return r.Root
	}
	return filepath.Join(r.Root, filepath.FromSlash(r.Plan.Directories[0]))
}

// Generator plans and writes a project
type Generator struct {
	filesystem FileSystem
	logger     zerolog.Logger

	// Overwrite allows writing into an existing project directory
	Overwrite bool
	// DryRun plans and logs without touching the filesystem
	DryRun bool
}

// NewGenerator creates a generator writing to the real filesystem
func NewGenerator(logger zerolog.Logger) *Generator {
	return NewGeneratorWithFS(OSFileSystem(), logger)
}

// NewGeneratorWithFS creates a generator with a custom FileSystem
func NewGeneratorWithFS(fs FileSystem, logger zerolog.Logger) *Generator {
	return &Generator{
		filesystem: fs,
		logger:     logger,
	}
}

// Generate derives the module names, plans the project and writes it under root
func (g *Generator) Generate(spec project.Spec, moduleName, root string) (*Report, error) {
	names := naming.Derive(moduleName)

	plan, err := NewPlan(spec, names)
	if err != nil {
		return nil, err
	}

	for _, w := range plan.Warnings {
		g.logger.Warn().Str("code", w.Code).Msg(w.Message)
	}

	report := &Report{Plan: plan, Root: root, DryRun: g.DryRun}
	projectDir := report.ProjectDir()

	g.logger.Info().
		Str("project", spec.ProjectName).
		Str("module", names.Pascal).
		Str("dir", projectDir).
		Int("files", len(plan.Artifacts)).
		Msg("generating project")

	if g.DryRun {
		for _, a := range plan.Artifacts {
			g.logger.Debug().Str("path", a.Path).Int("size", len(a.Content)).Msg("would write file")
		}
		return report, nil
	}

	if !g.Overwrite {
		if _, err := g.filesystem.Stat(projectDir); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrProjectExists, projectDir)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to check %s: %w", projectDir, err)
		}
	}

	if err := Apply(plan, &loggingFileSystem{FileSystem: g.filesystem, logger: g.logger}, root); err != nil {
		return nil, err
	}
	return report, nil
}

// loggingFileSystem logs each directory and file at debug level
type loggingFileSystem struct {
	FileSystem
	logger zerolog.Logger
}

func (l *loggingFileSystem) MkdirAll(path string, perm os.FileMode) error {
	l.logger.Debug().Str("path", path).Msg("create directory")
	return l.FileSystem.MkdirAll(path, perm)
}

func (l *loggingFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	l.logger.Debug().Str("path", name).Int("size", len(data)).Msg("write file")
	return l.FileSystem.WriteFile(name, data, perm)
}
