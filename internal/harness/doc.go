// Package harness provides conformance testing for the calculator engine.
//
// The harness loads press scenarios from YAML, drives them through a
// deterministic session, and validates per-press expectations, final-state
// assertions, and golden trace snapshots.
//
// # Scenario format
//
//	name: chained_operators
//	description: operator presses fold the running total eagerly
//	keys: "2+3+4="
//	assertions:
//	  - type: final_display
//	    display: "9"
//	  - type: trace_length
//	    count: 6
//
// A scenario provides its presses either as a keys script (scanned rune by
// rune) or as an explicit steps list, where each step may pin the display
// expected immediately after that press:
//
//	steps:
//	  - press: "5"
//	  - press: "+"
//	  - press: "3"
//	  - press: "="
//	    display: "8"
//
// # Assertion types
//
//   - final_display: the rendered display after the last press
//   - display_at: the rendered display at a given press seq
//   - trace_length: the total number of presses in the trace
//   - display_nonfinite: the final display is ±Inf or NaN
//
// Display expectations everywhere compare rendered text, not floats. Raw
// floats do not round-trip deterministically through serialization, so
// scenarios and golden files never contain one.
//
// # Determinism
//
// Scenarios run with a fixed session token (scenario.session_token,
// defaulting to "test-session") and the session's logical press clock, so
// identical scripts always produce identical traces. Golden comparison
// uses goldie; regenerate with:
//
//	go test ./internal/harness -update
package harness
