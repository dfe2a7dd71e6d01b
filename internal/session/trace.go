package session

// TraceEvent records one press and the display it produced.
//
// Display carries the raw float for programmatic assertions; Rendered is
// the locale-free text the presentation layer would show. Only the text
// participates in JSON serialization: raw floats are forbidden in trace
// JSON because they do not round-trip deterministically (and encoding/json
// rejects non-finite values outright).
type TraceEvent struct {
	Seq      int64   `json:"seq"`
	Key      string  `json:"key"`
	Display  float64 `json:"-"`
	Rendered string  `json:"display"`
}
