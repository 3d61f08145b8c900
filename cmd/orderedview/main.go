// Package main provides the orderedview CLI.
//
// Usage:
//
//	orderedview generate FILE       Derive and print the constraint set of a layout document
//	orderedview check FILE -f SOLVED Verify solved frames against the derived set
//	orderedview watch FILE          Re-derive whenever the document changes
//	orderedview version             Print version information
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-orderedview/internal/logging"
)

const version = "0.1.0"

// app holds state shared by all subcommands.
type app struct {
	verbose bool
	noColor bool

	log    zerolog.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "orderedview",
		Short: "Derive layout constraints for ordered rows and columns",
		Long: `orderedview - constraint derivation for ordered layouts

Reads a YAML layout document (a direction plus components in display order)
and emits the constraint set an external layout solver needs to place them.

Examples:
  orderedview generate toolbar.yaml
  orderedview generate --format json toolbar.yaml
  orderedview check toolbar.yaml --frames solved.yaml
  orderedview watch toolbar.yaml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, closer, err := logging.New(logging.Options{
				Out:     cmd.ErrOrStderr(),
				Verbose: a.verbose,
				NoColor: a.noColor,
			})
			if err != nil {
				return err
			}
			a.log, a.closer = log, closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output (shows derivation steps)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(
		newGenerateCmd(a),
		newCheckCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "orderedview version %s\n", version)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
