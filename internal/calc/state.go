package calc

import "strconv"

// State is the complete calculator state. It is a plain value: Transition
// returns a new State and never mutates its input, so callers may copy,
// compare, and store states freely.
//
// INVARIANTS:
//   - Display and Accumulator are always IEEE-754 doubles; non-finite
//     values are legal (divide by zero) and carry no error meaning.
//   - LastOp is one of the six reachable tags (see Tag).
//   - PendingFraction and ResetDisplay describe the NEXT digit press only;
//     every event clears them unless it explicitly sets one.
type State struct {
	// Display is the number currently shown, and the accumulator for
	// in-progress digit entry.
	Display float64

	// Accumulator is the left-hand operand retained across a pending
	// binary operation.
	Accumulator float64

	// LastOp is the tag of the most recent state-changing press. Digit
	// and decimal presses do not update it.
	LastOp Tag

	// PendingFraction is set by the decimal-point key: the next digit
	// press appends as the display's first fractional digit.
	PendingFraction bool

	// ResetDisplay is set after operator and equals presses: the next
	// digit press overwrites the display instead of appending.
	ResetDisplay bool
}

// Initial returns the power-on state. Clear restores exactly this value.
// The zero State is the initial state; Initial exists for readability at
// call sites.
func Initial() State {
	return State{}
}

// FormatDisplay renders a display value as locale-free text, exactly as
// the presentation layer shows it: shortest decimal form that round-trips
// ("125", "1.5"), with non-finite values rendered as strconv prints them
// ("+Inf", "-Inf", "NaN"). No locale formatting, no truncation.
//
// Fixed notation always: 1e21 renders as its full 22-digit integer string,
// never in exponent form. Digit entry (appendDigit) depends on the text
// being plain sign-digits-point-digits, so any future exponent rendering
// would need its own entry path.
func FormatDisplay(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
