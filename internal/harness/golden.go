package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its canonical trace
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for expected commit traces; a diff
// means the runtime's observable behavior changed.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	traceJSON, err := marshalCanonical(snapshotMap(scenario.Name, result.Trace))
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return result, nil
}

// snapshotMap renders a trace as the canonical-JSON-friendly map form.
func snapshotMap(name string, trace []TraceEvent) map[string]any {
	events := make([]any, len(trace))
	for i, e := range trace {
		events[i] = map[string]any{
			"seq":    e.Seq,
			"action": e.Action,
			"key":    e.Key,
			"state": map[string]any{
				"loaded":      e.State.Loaded,
				"favorites":   e.State.Favorites,
				"followed":    e.State.Followed,
				"reader":      e.State.Reader,
				"reader_open": e.State.ReaderOpen,
				"feed_error":  e.State.FeedError,
			},
		}
	}
	return map[string]any{
		"scenario": name,
		"trace":    events,
	}
}
