package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/abacus/internal/calc"
	"github.com/roach88/abacus/internal/session"
)

// TraceResult holds the complete trace output for a script.
type TraceResult struct {
	SessionToken string               `json:"session_token"`
	Timeline     []session.TraceEvent `json:"timeline"`
	FinalDisplay string               `json:"final_display"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <keys>",
		Short: "Run a key script and print the press-by-press timeline",
		Long: `Run a press script and print the display after every press.

The timeline shows each press in dispatch order with its seq number and
the display it produced, which makes the fold order of chained operators
visible.

Examples:
  abacus trace "2+3+4="
  abacus trace "5/0=" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runTrace(opts *RootOptions, script string, cmd *cobra.Command) error {
	state, sess, err := evalScript(script)
	if err != nil {
		return err
	}

	result := TraceResult{
		SessionToken: sess.Token(),
		Timeline:     sess.Trace(),
		FinalDisplay: calc.FormatDisplay(state.Display),
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "session %s\n", result.SessionToken)
	fmt.Fprintf(out, "%4s  %-3s  %s\n", "SEQ", "KEY", "DISPLAY")
	for _, ev := range result.Timeline {
		fmt.Fprintf(out, "%4d  %-3s  %s\n", ev.Seq, ev.Key, ev.Rendered)
	}
	fmt.Fprintf(out, "final display: %s\n", result.FinalDisplay)
	return nil
}
