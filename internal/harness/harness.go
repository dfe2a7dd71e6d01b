package harness

import (
	"fmt"

	"github.com/roach88/abacus/internal/calc"
	"github.com/roach88/abacus/internal/keypad"
	"github.com/roach88/abacus/internal/session"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every step expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace contains one event per press, in order.
	Trace []session.TraceEvent `json:"trace"`

	// Errors lists expectation and assertion failures. Empty when Pass.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result to accumulate into.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Trace: []session.TraceEvent{},
	}
}

// AddError records a failure and marks the result failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Run executes a scenario and returns its result.
//
// An error return means the scenario could not be executed at all (bad
// press token, malformed event). Expectation and assertion failures are
// not errors; they land in Result.Errors with Pass set to false.
func Run(scenario *Scenario) (*Result, error) {
	events, expects, err := scenarioPresses(scenario)
	if err != nil {
		return nil, err
	}

	sess := session.New(
		session.WithTokenGenerator(session.NewFixedGenerator(scenario.Token())),
	)

	result := NewResult()
	for i, e := range events {
		state, err := sess.Dispatch(e)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: press %d: %w", scenario.Name, i+1, err)
		}
		if want := expects[i]; want != "" {
			got := calc.FormatDisplay(state.Display)
			if got != want {
				result.AddError(fmt.Sprintf(
					"step %d (key %q): expected display %q, got %q",
					i+1, e.Label(), want, got,
				))
			}
		}
	}
	result.Trace = sess.Trace()

	for _, a := range scenario.Assertions {
		if err := evaluateAssertion(result.Trace, a); err != nil {
			result.AddError(err.Error())
		}
	}
	return result, nil
}

// scenarioPresses resolves the scenario's press source into events plus a
// parallel slice of per-press display expectations ("" = none).
func scenarioPresses(s *Scenario) ([]calc.Event, []string, error) {
	if s.Keys != "" {
		events, err := keypad.ParseScript(s.Keys)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		return events, make([]string, len(events)), nil
	}

	events := make([]calc.Event, 0, len(s.Steps))
	expects := make([]string, 0, len(s.Steps))
	for i, step := range s.Steps {
		e, err := keypad.Parse(step.Press)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario %q: step %d: %w", s.Name, i+1, err)
		}
		events = append(events, e)
		expects = append(expects, step.Display)
	}
	return events, expects, nil
}
