// Package reader implements the open-article reading pane. Its state exists
// only while an article is open; the application composes it through
// flux.PullbackOptional.
package reader

import "github.com/roach88/newsflow/internal/flux"

// Font size bounds in terminal cells of left padding; the TUI renders the
// body narrower as the size grows.
const (
	MinFontSize     = 1
	MaxFontSize     = 5
	DefaultFontSize = 2
)

// State is the reading pane for one open article.
type State struct {
	ArticleID string
	Title     string
	URL       string
	Body      string
	FontSize  int
}

// Open builds the pane state for an article.
func Open(id, title, url, body string) State {
	return State{
		ArticleID: id,
		Title:     title,
		URL:       url,
		Body:      body,
		FontSize:  DefaultFontSize,
	}
}

// Action is the closed set of reader events.
type Action interface {
	isReaderAction()
}

// CloseTapped asks to leave the reader. The reader reducer does not consume
// it; the application root clears the optional state.
type CloseTapped struct{}

// FontIncreased bumps the font size up one step.
type FontIncreased struct{}

// FontDecreased bumps the font size down one step.
type FontDecreased struct{}

func (CloseTapped) isReaderAction()   {}
func (FontIncreased) isReaderAction() {}
func (FontDecreased) isReaderAction() {}

// Env is empty today; the reader needs no capabilities of its own.
type Env struct{}

// Reducer returns the reading pane transition function.
func Reducer() flux.Reducer[State, Action, Env] {
	return func(s State, a Action, _ Env) (State, flux.Effect[Action]) {
		switch a.(type) {
		case FontIncreased:
			if s.FontSize < MaxFontSize {
				s.FontSize++
			}
			return s, nil
		case FontDecreased:
			if s.FontSize > MinFontSize {
				s.FontSize--
			}
			return s, nil
		case CloseTapped:
			return s, nil
		}
		return s, nil
	}
}
