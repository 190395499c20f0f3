// Package ui renders the application state tree as a terminal interface.
//
// The model is a thin projection: every keypress becomes an action sent to
// the store, and every committed state arrives back as a stateMsg through
// the store's conflating state channel. The model itself holds only view
// concerns (cursor, viewport size); all domain state lives in the store.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roach88/newsflow/internal/app"
	"github.com/roach88/newsflow/internal/feature/article"
	"github.com/roach88/newsflow/internal/feature/feed"
	"github.com/roach88/newsflow/internal/feature/reader"
	"github.com/roach88/newsflow/internal/feature/topics"
	"github.com/roach88/newsflow/internal/flux"
)

// stateMsg delivers one committed application state to the model.
type stateMsg struct {
	state app.State
}

// Model is the bubbletea model over a running application store.
type Model struct {
	store  flux.Handle[app.State, app.Action]
	states <-chan app.State

	state  app.State
	cursor int
	width  int
	height int
}

// New builds a model over the store. The states channel is the store's
// conflating state stream; the caller owns its context.
func New(store flux.Handle[app.State, app.Action], states <-chan app.State) Model {
	return Model{
		store:  store,
		states: states,
		state:  store.State(),
	}
}

// Init requests the initial refresh and starts listening for commits.
func (m Model) Init() tea.Cmd {
	m.store.Send(app.FeedAction{Action: feed.RefreshTapped{}})
	return m.listen()
}

// listen waits for the next committed state. Re-issued after every
// stateMsg; a closed channel ends the stream silently.
func (m Model) listen() tea.Cmd {
	return func() tea.Msg {
		s, ok := <-m.states
		if !ok {
			return nil
		}
		return stateMsg{state: s}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		m.clampCursor()
		return m, m.listen()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Reader != nil {
		return m.handleReaderKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.store.Send(app.FeedAction{Action: feed.RefreshTapped{}})
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "f":
		if id, ok := m.cursorArticle(); ok {
			m.store.Send(app.FeedAction{Action: feed.ItemOf(id, article.ToggleFavoriteTapped{})})
		}
	case "enter":
		if id, ok := m.cursorArticle(); ok {
			m.store.Send(app.FeedAction{Action: feed.ItemOf(id, article.OpenTapped{})})
		}
	case "t":
		if id, ok := m.cursorTopic(); ok {
			m.store.Send(app.TopicAction{Keyed: flux.Keyed[app.TopicID, topics.ItemAction]{
				Key:    id,
				Action: topics.ToggleTapped{},
			}})
		}
	}
	return m, nil
}

func (m Model) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.store.Send(app.ReaderAction{Action: reader.CloseTapped{}})
	case "+", "=":
		m.store.Send(app.ReaderAction{Action: reader.FontIncreased{}})
	case "-":
		m.store.Send(app.ReaderAction{Action: reader.FontDecreased{}})
	}
	return m, nil
}

func (m *Model) clampCursor() {
	if n := len(m.state.Feed.Order); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// cursorArticle returns the article ID under the cursor.
func (m Model) cursorArticle() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Feed.Order) {
		return "", false
	}
	return m.state.Feed.Order[m.cursor], true
}

// cursorTopic returns the topic of the article under the cursor, when that
// topic is in the followed-topics list.
func (m Model) cursorTopic() (app.TopicID, bool) {
	id, ok := m.cursorArticle()
	if !ok {
		return "", false
	}
	topic := app.TopicID(m.state.Feed.Articles[id].Topic)
	if _, known := m.state.Topics[topic]; !known {
		return "", false
	}
	return topic, true
}
