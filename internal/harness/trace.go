package harness

import (
	"sync"

	"github.com/roach88/newsflow/internal/app"
	"github.com/roach88/newsflow/internal/feature/article"
	"github.com/roach88/newsflow/internal/feature/feed"
	"github.com/roach88/newsflow/internal/feature/reader"
	"github.com/roach88/newsflow/internal/feature/topics"
)

// TraceEvent records one committed action and the state summary after it.
type TraceEvent struct {
	Seq    int64        `json:"seq"`
	Action string       `json:"action"`
	Key    string       `json:"key"`
	State  StateSummary `json:"state"`
}

// StateSummary is the deterministic state digest recorded per commit and
// asserted by scenarios. Slices are sorted; empty never null.
type StateSummary struct {
	Loaded     int      `json:"loaded"`
	Favorites  []string `json:"favorites"`
	Followed   []string `json:"followed"`
	Reader     string   `json:"reader"`
	ReaderOpen bool     `json:"reader_open"`
	FeedError  string   `json:"feed_error"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	Pass   bool
	Trace  []TraceEvent
	Errors []string
	Final  app.State
}

// AddError records a validation failure and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// tracer accumulates trace events from inside the reducer pipeline. The
// store serializes reducer invocations, but the mutex keeps the race
// detector satisfied when tests read the trace while effects settle.
type tracer struct {
	mu     sync.Mutex
	seq    int64
	events []TraceEvent
}

func (t *tracer) record(a app.Action, after app.State) {
	name, key := describe(a)
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.events = append(t.events, TraceEvent{
		Seq:    t.seq,
		Action: name,
		Key:    key,
		State:  summarize(after),
	})
}

func (t *tracer) snapshot() []TraceEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TraceEvent, len(t.events))
	copy(out, t.events)
	return out
}

// summarize digests a state tree into the asserted summary.
func summarize(s app.State) StateSummary {
	followed := make([]string, 0)
	for _, id := range s.TopicOrder {
		if s.Topics[id].Followed {
			followed = append(followed, string(id))
		}
	}
	sum := StateSummary{
		Loaded:    len(s.Feed.Order),
		Favorites: s.Feed.Favorites(),
		Followed:  followed,
		FeedError: s.Feed.LastErr,
	}
	if sum.Favorites == nil {
		sum.Favorites = []string{}
	}
	if s.Reader != nil {
		sum.ReaderOpen = true
		sum.Reader = s.Reader.ArticleID
	}
	return sum
}

// describe names a root action for traces and assertions. Names are part
// of the scenario format: changing them breaks golden files.
func describe(a app.Action) (name, key string) {
	switch act := a.(type) {
	case app.FeedAction:
		switch fa := act.Action.(type) {
		case feed.RefreshTapped:
			return "feed.refresh", ""
		case feed.Loaded:
			return "feed.loaded", ""
		case feed.LoadFailed:
			return "feed.load_failed", ""
		case feed.Item:
			return "feed.item." + describeCard(fa.Action), fa.Key
		}
	case app.ReaderAction:
		switch act.Action.(type) {
		case reader.CloseTapped:
			return "reader.close", ""
		case reader.FontIncreased:
			return "reader.font_increase", ""
		case reader.FontDecreased:
			return "reader.font_decrease", ""
		}
	case app.TopicAction:
		switch act.Action.(type) {
		case topics.ToggleTapped:
			return "topic.toggle", string(act.Key)
		case topics.Saved:
			return "topic.saved", string(act.Key)
		case topics.SaveFailed:
			return "topic.save_failed", string(act.Key)
		}
	}
	return "unknown", ""
}

func describeCard(a article.Action) string {
	switch a.(type) {
	case article.ToggleFavoriteTapped:
		return "toggle_favorite"
	case article.OpenTapped:
		return "open"
	case article.FavoriteSaved:
		return "favorite_saved"
	case article.FavoriteSaveFailed:
		return "favorite_save_failed"
	}
	return "unknown"
}
