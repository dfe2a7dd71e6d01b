package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/abacus/internal/calc"
	"github.com/roach88/abacus/internal/keypad"
	"github.com/roach88/abacus/internal/session"
)

// EvalResult is the eval command's JSON payload.
type EvalResult struct {
	Display string `json:"display"`
	Presses int    `json:"presses"`
}

// String renders the text-mode output: just the display, as the
// presentation layer would show it.
func (r EvalResult) String() string {
	return r.Display
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <keys>",
		Short: "Run a key script and print the final display",
		Long: `Run a press script through the calculator and print the final display.

The script is scanned rune by rune; whitespace is skipped. Keys are the
digits 0-9, "." (decimal), "+", "-", "*" (or "x"), "/", "=" and "C".

Examples:
  abacus eval "2+3+4="
  abacus eval "12.5+3=" --format json
  abacus eval "5/0="`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runEval(opts *RootOptions, script string, cmd *cobra.Command) error {
	state, sess, err := evalScript(script)
	if err != nil {
		return err
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(EvalResult{
		Display: calc.FormatDisplay(state.Display),
		Presses: len(sess.Trace()),
	})
}

// evalScript parses and dispatches a press script on a fresh session.
func evalScript(script string) (calc.State, *session.Session, error) {
	events, err := keypad.ParseScript(script)
	if err != nil {
		return calc.State{}, nil, WrapExitError(ExitCommandError, "invalid key script", err)
	}

	sess := session.New(session.WithLogger(slog.Default()))
	state, err := sess.DispatchAll(events)
	if err != nil {
		return calc.State{}, nil, WrapExitError(ExitCommandError, "dispatch failed", err)
	}
	return state, sess, nil
}
