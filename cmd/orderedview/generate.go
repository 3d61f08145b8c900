package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-orderedview/internal/constraint"
	"github.com/grindlemire/go-orderedview/internal/document"
	"github.com/grindlemire/go-orderedview/internal/layout"
	"github.com/grindlemire/go-orderedview/internal/render"
)

// derived is the outcome of attaching one layout document.
type derived struct {
	layout      *document.Layout
	constraints []constraint.Constraint
}

// derive loads the document at path and attaches a fresh engine to its
// parent, recording the activated constraints.
func derive(path string, log zerolog.Logger) (*derived, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	l, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	solver := constraint.NewRecorder()
	engine := l.Engine(layout.WithLogger(log.With().Str("file", path).Logger()))
	if err := engine.Attach(l.Parent, solver); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &derived{layout: l, constraints: engine.Constraints()}, nil
}

func (d *derived) report() render.Report {
	return render.NewReport(d.layout.Parent.Name(), d.layout.Direction.String(), d.constraints)
}

// generate derives path and writes the report to w.
func generate(w io.Writer, path string, format render.Format, opts render.Options, log zerolog.Logger) error {
	d, err := derive(path, log)
	if err != nil {
		return err
	}
	log.Debug().Str("file", path).Int("constraints", len(d.constraints)).Msg("generated")
	return render.Write(w, format, d.report(), opts)
}

func newGenerateCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "generate FILE",
		Short: "Derive and print the constraint set of a layout document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			return generate(cmd.OutOrStdout(), args[0], f, render.Options{NoColor: a.noColor}, a.log)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", string(render.FormatText), "Output format: text, json, or yaml")
	return cmd
}
