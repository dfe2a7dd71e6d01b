package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/abacus/internal/keypad"
)

// NewPadCommand creates the pad command.
func NewPadCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pad",
		Short: "Print the key layout",
		Long: `Print the pad layout: every bound key with its symbol, and the
decorative slots that produce no event.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPad(cmd)
		},
	}
	return cmd
}

func runPad(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	border := "+" + strings.Repeat("-----+", len(keypad.Layout[0]))

	fmt.Fprintln(out, border)
	for _, row := range keypad.Layout {
		for _, key := range row {
			label := " "
			if key.Bound {
				label = key.Label
			}
			fmt.Fprintf(out, "|  %s  ", label)
		}
		fmt.Fprintln(out, "|")
		fmt.Fprintln(out, border)
	}
	return nil
}
