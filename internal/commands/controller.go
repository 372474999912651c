// Package commands contains the CLI commands for the application
package commands

import (
	"context"
)

type Flags struct {
	LogLevel string
}

type Controller struct {
	Flags *Flags
}

// New creates a project from flags, prompting for anything missing
func (c *Controller) New(ctx context.Context, opts NewOptions) error {
	return NewCreateCommand(opts).Run(ctx)
}

// Generate creates a project from a bootgen.yaml spec file
func (c *Controller) Generate(ctx context.Context, opts GenerateOptions) error {
	return NewGenerateCommand(opts).Run(ctx)
}

// Watch regenerates the project every time the spec file changes
func (c *Controller) Watch(ctx context.Context, opts WatchOptions) error {
	return NewWatchCommand(opts).Run(ctx)
}
