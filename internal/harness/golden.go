package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/abacus/internal/session"
)

// TraceSnapshot is the serialized form of a scenario trace for golden
// comparison. Display values appear only as rendered text; see the
// session.TraceEvent JSON contract.
type TraceSnapshot struct {
	ScenarioName string               `json:"scenario_name"`
	SessionToken string               `json:"session_token,omitempty"`
	Trace        []session.TraceEvent `json:"trace"`
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
//
// The error return covers execution problems only; a trace mismatch fails
// the test through goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, scenario.Token(), result)
}

// AssertGolden compares an already-executed result against the golden file
// for scenarioName.
func AssertGolden(t *testing.T, scenarioName, sessionToken string, result *Result) error {
	t.Helper()

	snapshot := TraceSnapshot{
		ScenarioName: scenarioName,
		SessionToken: sessionToken,
		Trace:        result.Trace,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
