// Package calc implements the calculator state machine.
//
// The machine is a single pure function, Transition, over a small value
// type, State. Callers own state storage: they hold a State, build an Event
// for each key press, and replace their State with the Transition result.
// Nothing in this package performs I/O, allocates shared state, or fails.
//
// ARCHITECTURE:
//
// Event Model:
// Events form a tagged union (Kind plus per-kind payload fields). The
// constructors (Digit, Decimal, Op, Equals, Clear) are the only supported
// way to build events; they make illegal payload combinations
// unrepresentable in practice. Validate covers the boundary where events
// arrive from outside the package.
//
// Transition Semantics:
// The machine mirrors a non-precedence four-function pocket calculator.
// Operator presses fold the running total eagerly, left to right: each
// operator press finalizes the pending computation using the operator being
// pressed NOW, then becomes the new pending operator. There is no algebraic
// precedence.
//
// Failure Semantics:
// All five event kinds are total over their declared domain. Division by
// zero follows IEEE-754 and yields ±Inf or NaN in the display; the machine
// has no error state and no error returns.
package calc
