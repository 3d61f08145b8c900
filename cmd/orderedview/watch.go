package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-orderedview/internal/render"
)

var errWatcherClosed = errors.New("file watcher closed unexpectedly")

func newWatchCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-derive the constraint set whenever the document changes",
		Long: `Watch a layout document and print a fresh constraint set after every save.

Each change builds a new engine; derivation errors are logged and the watch
continues. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			return watch(cmd.Context(), cmd.OutOrStdout(), args[0], f, render.Options{NoColor: a.noColor}, a.log)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", string(render.FormatText), "Output format: text, json, or yaml")
	return cmd
}

// watch generates once, then again on every write to path until ctx is done.
// The parent directory is watched so editors that replace the file on save
// are still followed.
func watch(ctx context.Context, w io.Writer, path string, format render.Format, opts render.Options, log zerolog.Logger) error {
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	regenerate := func() {
		if err := generate(w, path, format, opts, log); err != nil {
			log.Error().Err(err).Msg("derivation failed")
		}
	}
	regenerate()
	log.Info().Str("file", path).Msg("watching for changes")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return watcher.Close()
	})
	g.Go(func() error {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return closedErr(ctx)
				}
				if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				log.Debug().Str("file", path).Stringer("op", ev.Op).Msg("change detected")
				regenerate()
			case err, ok := <-watcher.Errors:
				if !ok {
					return closedErr(ctx)
				}
				log.Warn().Err(err).Msg("watch error")
			}
		}
	})
	return g.Wait()
}

// closedErr distinguishes a shutdown close from an unexpected one.
func closedErr(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	return errWatcherClosed
}
