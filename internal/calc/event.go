package calc

import "fmt"

// Kind discriminates the five event variants.
type Kind int

const (
	// KindDigit is a digit key press (payload: Digit 0-9).
	KindDigit Kind = iota + 1
	// KindDecimal is the decimal-point key press.
	KindDecimal
	// KindOperator is an operator key press (payload: Op).
	KindOperator
	// KindEquals is the equals key press.
	KindEquals
	// KindClear is the clear key press.
	KindClear
)

// String returns the kind name for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindDecimal:
		return "decimal"
	case KindOperator:
		return "operator"
	case KindEquals:
		return "equals"
	case KindClear:
		return "clear"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is the tagged union of calculator inputs. Payload fields are
// meaningful only for the kind that declares them; build events through
// the constructors so illegal combinations never arise.
type Event struct {
	Kind  Kind
	Digit int      // 0-9, KindDigit only
	Op    Operator // KindOperator only
}

// Digit builds a digit press event. The caller is responsible for keeping
// d within 0-9; Validate catches violations at the input boundary.
func Digit(d int) Event {
	return Event{Kind: KindDigit, Digit: d}
}

// Decimal builds a decimal-point press event.
func Decimal() Event {
	return Event{Kind: KindDecimal}
}

// Op builds an operator press event.
func Op(o Operator) Event {
	return Event{Kind: KindOperator, Op: o}
}

// Equals builds an equals press event.
func Equals() Event {
	return Event{Kind: KindEquals}
}

// Clear builds a clear press event.
func Clear() Event {
	return Event{Kind: KindClear}
}

// Validate reports whether the event is well-formed: a known kind, digit
// payload within 0-9, operator payload within the four operators, and no
// payload on kinds that forbid one. Events built through the constructors
// from in-range inputs always validate.
func (e Event) Validate() error {
	switch e.Kind {
	case KindDigit:
		if e.Digit < 0 || e.Digit > 9 {
			return fmt.Errorf("digit out of range: %d", e.Digit)
		}
		if e.Op != 0 {
			return fmt.Errorf("digit event carries operator payload %v", e.Op)
		}
	case KindOperator:
		if e.Op < OpAdd || e.Op > OpDivide {
			return fmt.Errorf("unknown operator: %d", int(e.Op))
		}
		if e.Digit != 0 {
			return fmt.Errorf("operator event carries digit payload %d", e.Digit)
		}
	case KindDecimal, KindEquals, KindClear:
		if e.Digit != 0 || e.Op != 0 {
			return fmt.Errorf("%s event carries a payload", e.Kind)
		}
	default:
		return fmt.Errorf("unknown event kind: %d", int(e.Kind))
	}
	return nil
}

// Label returns the key-face text for the event: "0".."9", ".", the
// operator symbol, "=", or "C". Used for trace output.
func (e Event) Label() string {
	switch e.Kind {
	case KindDigit:
		return fmt.Sprintf("%d", e.Digit)
	case KindDecimal:
		return "."
	case KindOperator:
		return e.Op.String()
	case KindEquals:
		return "="
	case KindClear:
		return "C"
	}
	return "?"
}
