package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSessionToken is used when a scenario does not pin its own token.
// A stable default keeps golden files reproducible across runs.
const DefaultSessionToken = "test-session"

// Scenario defines one conformance scenario: a press script plus the
// expectations to check against the resulting trace.
type Scenario struct {
	// Name uniquely identifies the scenario; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description,omitempty"`

	// Keys is the press script, scanned rune by rune ("12.5+3=").
	// Mutually exclusive with Steps.
	Keys string `yaml:"keys,omitempty"`

	// Steps lists presses explicitly, each with an optional display
	// expectation. Mutually exclusive with Keys.
	Steps []Step `yaml:"steps,omitempty"`

	// Assertions validate the final trace.
	Assertions []Assertion `yaml:"assertions,omitempty"`

	// SessionToken optionally pins the session token.
	SessionToken string `yaml:"session_token,omitempty"`
}

// Step is a single press with an optional expectation.
type Step struct {
	// Press is the key token ("7", "+", ".", "=", "C").
	Press string `yaml:"press"`

	// Display, when set, is the rendered display expected immediately
	// after this press.
	Display string `yaml:"display,omitempty"`
}

// Assertion validates the trace after the whole script has run.
type Assertion struct {
	// Type is one of final_display, display_at, trace_length,
	// display_nonfinite.
	Type string `yaml:"type"`

	// Display is the expected rendered text (final_display, display_at).
	Display string `yaml:"display,omitempty"`

	// Seq selects the press for display_at (1-based, as stamped).
	Seq int64 `yaml:"seq,omitempty"`

	// Count is the expected press count for trace_length.
	Count int `yaml:"count,omitempty"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks structural requirements before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.Keys == "" && len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q: either keys or steps is required", s.Name)
	}
	if s.Keys != "" && len(s.Steps) > 0 {
		return fmt.Errorf("scenario %q: keys and steps are mutually exclusive", s.Name)
	}
	for i, step := range s.Steps {
		if step.Press == "" {
			return fmt.Errorf("scenario %q: step %d has no press", s.Name, i+1)
		}
	}
	for i, a := range s.Assertions {
		switch a.Type {
		case "final_display", "display_nonfinite":
		case "display_at":
			if a.Seq < 1 {
				return fmt.Errorf("scenario %q: assertion %d: display_at requires seq >= 1", s.Name, i+1)
			}
		case "trace_length":
			if a.Count < 0 {
				return fmt.Errorf("scenario %q: assertion %d: trace_length requires count >= 0", s.Name, i+1)
			}
		default:
			return fmt.Errorf("scenario %q: assertion %d: unknown type %q", s.Name, i+1, a.Type)
		}
	}
	return nil
}

// Token returns the session token the scenario runs under.
func (s *Scenario) Token() string {
	if s.SessionToken != "" {
		return s.SessionToken
	}
	return DefaultSessionToken
}
