package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario. Scenarios execute root
// actions against the real application store and assert on the resulting
// trace and final state.
type Scenario struct {
	// Name uniquely identifies this scenario; also the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Articles is the fixture the scripted source returns on fetch.
	Articles []FixtureArticle `yaml:"articles,omitempty"`

	// Topics seeds the followed-topics list, in display order.
	Topics []string `yaml:"topics,omitempty"`

	// Fail scripts capability failures for the whole scenario.
	Fail FailSpec `yaml:"fail,omitempty"`

	// Steps is the action sequence to send, in order. The harness waits
	// for effect quiescence between steps.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final state and the trace.
	Assertions []Assertion `yaml:"assertions"`
}

// FixtureArticle is one article in the scripted source.
type FixtureArticle struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	URL     string `yaml:"url,omitempty"`
	Topic   string `yaml:"topic,omitempty"`
	Summary string `yaml:"summary,omitempty"`
}

// FailSpec scripts capability failures. A non-empty string makes the
// capability fail with that message.
type FailSpec struct {
	Fetch        string `yaml:"fetch,omitempty"`
	SaveFavorite string `yaml:"save_favorite,omitempty"`
	FollowTopic  string `yaml:"follow_topic,omitempty"`
}

// Step sends one root action.
//
// Send is one of: refresh, toggle_favorite, open_article, close_reader,
// font_increase, font_decrease, toggle_topic. Keyed sends (toggle_favorite,
// open_article, toggle_topic) require ID.
type Step struct {
	Send string `yaml:"send"`
	ID   string `yaml:"id,omitempty"`
}

// Assertion validates the trace or the final state.
type Assertion struct {
	// Type is one of: state, trace_contains, trace_order, trace_count.
	Type string `yaml:"type"`

	// state fields; nil pointers and nil slices are "don't check".
	Loaded     *int     `yaml:"loaded,omitempty"`
	Favorites  []string `yaml:"favorites,omitempty"`
	Followed   []string `yaml:"followed,omitempty"`
	ReaderOpen *bool    `yaml:"reader_open,omitempty"`
	Reader     string   `yaml:"reader,omitempty"`
	FeedError  *string  `yaml:"feed_error,omitempty"`

	// trace_contains / trace_count fields.
	Action string `yaml:"action,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Count  int    `yaml:"count,omitempty"`

	// trace_order: action names that must appear as a subsequence.
	Actions []string `yaml:"actions,omitempty"`
}

// Assertion type constants.
const (
	AssertState         = "state"
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
)

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadScenarioDir loads every *.yaml scenario in a directory, sorted by
// file name for deterministic test order.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario has no steps")
	}
	for i, step := range s.Steps {
		switch step.Send {
		case "refresh", "close_reader", "font_increase", "font_decrease":
			// no key
		case "toggle_favorite", "open_article", "toggle_topic":
			if step.ID == "" {
				return fmt.Errorf("step %d: %s requires id", i, step.Send)
			}
		default:
			return fmt.Errorf("step %d: unknown send %q", i, step.Send)
		}
	}
	for i, a := range s.Assertions {
		switch a.Type {
		case AssertState:
		case AssertTraceContains, AssertTraceCount:
			if a.Action == "" {
				return fmt.Errorf("assertion %d: %s requires action", i, a.Type)
			}
		case AssertTraceOrder:
			if len(a.Actions) == 0 {
				return fmt.Errorf("assertion %d: trace_order requires actions", i)
			}
		default:
			return fmt.Errorf("assertion %d: unknown type %q", i, a.Type)
		}
	}
	return nil
}
