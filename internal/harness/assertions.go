package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/roach88/abacus/internal/session"
)

// AssertionError is returned when an assertion fails. It carries the full
// trace so a failure message is debuggable on its own.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Trace    []session.TraceEvent
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  actual: %s\n", e.Actual)
	fmt.Fprintf(&buf, "trace:\n")
	for _, ev := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s -> %s\n", ev.Seq, ev.Key, ev.Rendered)
	}
	return buf.String()
}

// evaluateAssertion checks one assertion against the trace. The assertion
// type has already been validated by Scenario.Validate.
func evaluateAssertion(trace []session.TraceEvent, a Assertion) error {
	switch a.Type {
	case "final_display":
		return assertFinalDisplay(trace, a)
	case "display_at":
		return assertDisplayAt(trace, a)
	case "trace_length":
		return assertTraceLength(trace, a)
	case "display_nonfinite":
		return assertDisplayNonfinite(trace, a)
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

func assertFinalDisplay(trace []session.TraceEvent, a Assertion) error {
	if len(trace) == 0 {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("final display %q", a.Display),
			Actual:   "empty trace",
		}
	}
	last := trace[len(trace)-1]
	if last.Rendered != a.Display {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("final display %q", a.Display),
			Actual:   fmt.Sprintf("display %q", last.Rendered),
			Trace:    trace,
		}
	}
	return nil
}

func assertDisplayAt(trace []session.TraceEvent, a Assertion) error {
	for _, ev := range trace {
		if ev.Seq != a.Seq {
			continue
		}
		if ev.Rendered != a.Display {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("display %q at seq %d", a.Display, a.Seq),
				Actual:   fmt.Sprintf("display %q", ev.Rendered),
				Trace:    trace,
			}
		}
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("display %q at seq %d", a.Display, a.Seq),
		Actual:   fmt.Sprintf("no press with seq %d in a trace of %d", a.Seq, len(trace)),
		Trace:    trace,
	}
}

func assertTraceLength(trace []session.TraceEvent, a Assertion) error {
	if len(trace) != a.Count {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%d presses", a.Count),
			Actual:   fmt.Sprintf("%d presses", len(trace)),
			Trace:    trace,
		}
	}
	return nil
}

func assertDisplayNonfinite(trace []session.TraceEvent, a Assertion) error {
	if len(trace) == 0 {
		return &AssertionError{
			Type:     a.Type,
			Expected: "a non-finite final display",
			Actual:   "empty trace",
		}
	}
	last := trace[len(trace)-1]
	if !math.IsInf(last.Display, 0) && !math.IsNaN(last.Display) {
		return &AssertionError{
			Type:     a.Type,
			Expected: "a non-finite final display (±Inf or NaN)",
			Actual:   fmt.Sprintf("display %q", last.Rendered),
			Trace:    trace,
		}
	}
	return nil
}
