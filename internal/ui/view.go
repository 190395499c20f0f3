package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/newsflow/internal/feature/reader"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("newsflow"))
	b.WriteString("\n")
	b.WriteString(m.viewTopics())
	b.WriteString("\n\n")

	if m.state.Reader != nil {
		b.WriteString(m.viewReader(*m.state.Reader))
	} else {
		b.WriteString(m.viewFeed())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) viewTopics() string {
	if len(m.state.TopicOrder) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.state.TopicOrder))
	for _, id := range m.state.TopicOrder {
		row := m.state.Topics[id]
		if row.Followed {
			parts = append(parts, topicFollowedStyle.Render("● "+row.Name))
		} else {
			parts = append(parts, topicStyle.Render("○ "+row.Name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewFeed() string {
	if len(m.state.Feed.Order) == 0 {
		if m.state.Feed.Loading {
			return spinnerStyle.Render("Loading articles...")
		}
		return statusStyle.Render("No articles. Press r to refresh.")
	}

	var b strings.Builder
	for i, id := range m.state.Feed.Order {
		card := m.state.Feed.Articles[id]

		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		mark := "  "
		if card.Favorite {
			mark = favoriteStyle.Render("★ ")
		}

		b.WriteString(prefix)
		b.WriteString(mark)
		b.WriteString(titleStyle.Render(card.Title))
		if card.Topic != "" {
			b.WriteString(topicStyle.Render(" [" + card.Topic + "]"))
		}
		if card.LastErr != "" {
			b.WriteString(errorStyle.Render(" !"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewReader(r reader.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Bold(true).Render(r.Title))
	b.WriteString("\n")
	if r.URL != "" {
		b.WriteString(statusStyle.Render(r.URL))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.Body)
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("font %dpt", r.FontSize)))

	box := readerBoxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	return box.Render(b.String())
}

func (m Model) viewStatus() string {
	switch {
	case m.state.Feed.LastErr != "":
		return errorStyle.Render("refresh failed: " + m.state.Feed.LastErr)
	case m.state.Feed.Loading:
		return spinnerStyle.Render("refreshing...")
	default:
		n := len(m.state.Feed.Order)
		fav := len(m.state.Feed.Favorites())
		return statusStyle.Render(fmt.Sprintf("%d articles, %d favorites", n, fav))
	}
}

func (m Model) helpLine() string {
	if m.state.Reader != nil {
		return "esc close · +/- font · q quit"
	}
	return "j/k move · enter read · f favorite · t follow topic · r refresh · q quit"
}
