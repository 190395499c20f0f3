package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarios_Golden runs every shipped scenario and compares its trace
// against the golden file.
//
// To regenerate after an intentional behavior change:
//
//	go test ./internal/harness -run TestScenarios_Golden -update
func TestScenarios_Golden(t *testing.T) {
	scenarios, err := LoadScenarioDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)

	for _, scenario := range scenarios {
		t.Run(scenario.Name, func(t *testing.T) {
			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "assertion errors: %v", result.Errors)
		})
	}
}

func TestSnapshotMap_Shape(t *testing.T) {
	trace := []TraceEvent{
		{
			Seq:    1,
			Action: "feed.refresh",
			State: StateSummary{
				Favorites: []string{},
				Followed:  []string{},
			},
		},
	}

	out, err := marshalCanonical(snapshotMap("shape", trace))
	require.NoError(t, err)
	assert.Equal(t,
		`{"scenario":"shape","trace":[{"action":"feed.refresh","key":"","seq":1,`+
			`"state":{"favorites":[],"feed_error":"","followed":[],"loaded":0,`+
			`"reader":"","reader_open":false}}]}`,
		string(out))
}
