package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bootgen-dev/bootgen/internal/scaffold"
	"github.com/bootgen-dev/bootgen/internal/watch"
)

// WatchOptions are the inputs of `bootgen watch`
type WatchOptions struct {
	File   string
	Output string
}

type WatchCommand struct {
	options    WatchOptions
	filesystem scaffold.FileSystem
	logger     zerolog.Logger
	out        io.Writer
	// ready is closed once the watcher is running
	ready chan struct{}
}

func NewWatchCommand(opts WatchOptions) *WatchCommand {
	return &WatchCommand{
		options:    opts,
		filesystem: scaffold.OSFileSystem(),
		logger:     log.With().Str("component", "watch").Logger(),
		out:        os.Stdout,
	}
}

// Run generates once, then regenerates on every change to the spec file
// until interrupted. Failed runs are logged and watching continues.
func (wc *WatchCommand) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, err := resolveSpecFile(wc.options.File)
	if err != nil {
		return err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", wc.options.File, err)
	}

	r := &specRunner{filesystem: wc.filesystem, logger: wc.logger, out: wc.out}
	regenerate := func() {
		if _, err := r.run(path, wc.options.Output, false, true); err != nil {
			wc.logger.Error().Err(err).Str("file", path).Msg("generation failed")
		}
	}

	regenerate()

	fw, err := watch.NewFileWatcher(
		[]string{filepath.Base(path)},
		nil,
		func(string, fsnotify.Op) { regenerate() },
		wc.logger,
	)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.AddDirectory(filepath.Dir(path)); err != nil {
		return err
	}

	wc.logger.Info().Str("file", path).Msg("watching for changes")
	if wc.ready != nil {
		close(wc.ready)
	}

	if err := fw.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
