package calc

import (
	"math"
	"strconv"
	"strings"
)

// Transition applies one event to a state and returns the next state.
//
// Transition is pure and total: no side effects, no error path. The caller
// replaces its stored state with the result on every press.
//
// Per-event defaults: every event clears PendingFraction and ResetDisplay;
// decimal and digit presses then selectively restore PendingFraction or
// leave LastOp untouched as their rules require.
func Transition(s State, e Event) State {
	switch e.Kind {
	case KindClear:
		return Initial()

	case KindDecimal:
		// Arms the next digit press to start the fractional part.
		// LastOp deliberately keeps its previous value.
		s.PendingFraction = true
		s.ResetDisplay = false
		return s

	case KindDigit:
		if s.ResetDisplay {
			s.Display = float64(e.Digit)
		} else {
			s.Display = appendDigit(s.Display, s.PendingFraction, e.Digit)
		}
		s.PendingFraction = false
		s.ResetDisplay = false
		return s

	case KindOperator:
		next := s
		next.PendingFraction = false
		next.ResetDisplay = true
		next.LastOp = e.Op.Tag()
		switch {
		case s.LastOp == TagEquals:
			// Operator straight after equals starts a new chain on
			// the completed result; nothing folds yet.
		case isFalsy(s.Accumulator):
			// No pending left operand: seed the chain.
			next.Accumulator = s.Display
		default:
			// Eager fold with the operator being pressed NOW, not
			// the previously pending one. Faithful pocket-calculator
			// behavior; see the package doc.
			v := e.Op.Apply(s.Accumulator, s.Display)
			next.Display = v
			next.Accumulator = v
		}
		return next

	case KindEquals:
		next := s
		next.PendingFraction = false
		next.ResetDisplay = true
		next.LastOp = TagEquals
		v := s.Accumulator
		if op, ok := s.LastOp.Operator(); ok {
			v = op.Apply(s.Accumulator, s.Display)
		}
		next.Display = v
		next.Accumulator = v
		return next
	}

	// Unknown kinds do not transition. Inputs are validated at the
	// boundary (Event.Validate), so this is unreachable in practice.
	return s
}

// isFalsy mirrors the truthiness test on the accumulator: zero (either
// sign) and NaN both count as "no pending left operand".
func isFalsy(v float64) bool {
	return v == 0 || math.IsNaN(v)
}

// appendDigit merges digit d into display as its next decimal digit.
//
// startFraction marks the press immediately after the decimal key: the
// digit begins (or, if the display already has fractional digits, extends)
// the fractional part.
//
// The next display is built textually, the way the typed number reads, and
// re-parsed: typing 1 . 1 5 lands on exactly the double that "1.15" parses
// to. ParseFloat and the shortest form from FormatDisplay are both
// locale-free, and the string form carries a negative sign untouched.
//
//	appendDigit(12, false, 5)  = 125
//	appendDigit(12, true, 5)   = 12.5
//	appendDigit(12.5, false, 3) = 12.53
//	appendDigit(-3, true, 5)   = -3.5
func appendDigit(display float64, startFraction bool, d int) float64 {
	// Non-finite displays have no digit form to extend. Not reachable
	// through Transition (non-finite results always set ResetDisplay),
	// but appendDigit stays total.
	if math.IsInf(display, 0) || math.IsNaN(display) {
		return display
	}

	text := FormatDisplay(display)
	if startFraction && !strings.Contains(text, ".") {
		text += "."
	}
	text += strconv.Itoa(d)

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return display
	}
	return v
}
