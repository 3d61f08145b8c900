package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-orderedview/internal/constraint"
	"github.com/grindlemire/go-orderedview/internal/document"
)

// newCheckCmd verifies a solved frame assignment against the derived set.
// Violated required constraints fail the command; violated optional ones
// and frames that spill out of the parent are only reported.
func newCheckCmd(a *app) *cobra.Command {
	var (
		framesPath string
		tolerance  float64
	)

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Verify solved frames against the derived constraints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := derive(args[0], a.log)
			if err != nil {
				return err
			}
			frames, err := document.LoadFrames(framesPath)
			if err != nil {
				return err
			}

			violations, err := constraint.Check(d.constraints, frames, tolerance)
			if err != nil {
				return err
			}

			parent := d.layout.Parent.Name()
			outside, err := frames.Outside(parent)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range outside {
				fmt.Fprintf(out, "outside %s: %s\n", parent, name)
			}
			var required int
			for _, v := range violations {
				if v.Required() {
					required++
					fmt.Fprintf(out, "violated: %s\n", v)
					continue
				}
				a.log.Warn().Str("constraint", v.Constraint.String()).
					Float64("lhs", v.LHS).Float64("rhs", v.RHS).
					Msg("optional constraint not satisfied")
			}

			if required > 0 {
				return fmt.Errorf("%d of %d required constraints violated", required, len(d.constraints))
			}
			fmt.Fprintf(out, "ok: %d constraints checked, %d optional not satisfied\n",
				len(d.constraints), len(violations))
			return nil
		},
	}

	cmd.Flags().StringVarP(&framesPath, "frames", "f", "", "YAML file with solved frames (required)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0.5, "Allowed absolute error per constraint")
	_ = cmd.MarkFlagRequired("frames")
	return cmd
}
