// Package source supplies articles to the feed. The core never imports it;
// the host wires a Source into the application Environment as a fetch
// closure.
package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/newsflow/internal/feature/feed"
)

// Source is the narrow repository boundary.
type Source interface {
	Fetch(ctx context.Context) ([]feed.Article, error)
}

// fileDoc is the on-disk shape of a feed fixture file.
type fileDoc struct {
	Articles []fileArticle `yaml:"articles"`
}

type fileArticle struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	URL     string `yaml:"url"`
	Topic   string `yaml:"topic"`
	Summary string `yaml:"summary"`
}

// FileSource reads articles from a YAML file on every fetch, so edits to
// the file show up on the next refresh.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading the given YAML file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch loads and decodes the file.
func (fs *FileSource) Fetch(ctx context.Context) ([]feed.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, fmt.Errorf("reading feed file: %w", err)
	}
	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing feed file %s: %w", fs.path, err)
	}
	articles := make([]feed.Article, 0, len(doc.Articles))
	for i, a := range doc.Articles {
		if a.ID == "" {
			return nil, fmt.Errorf("feed file %s: article %d has no id", fs.path, i)
		}
		articles = append(articles, feed.Article{
			ID:      a.ID,
			Title:   a.Title,
			URL:     a.URL,
			Topic:   a.Topic,
			Summary: a.Summary,
		})
	}
	return articles, nil
}

// Static is a fixed in-memory source for tests and scripted scenarios.
type Static struct {
	Articles []feed.Article
	Err      error
}

// Fetch returns the configured articles or error.
func (s *Static) Fetch(ctx context.Context) ([]feed.Article, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Articles, nil
}

// Multi fetches from several sources in order, concatenating results.
// The first failure aborts the whole fetch; partial feeds confuse more than
// they help.
type Multi struct {
	Sources []Source
}

// Fetch concatenates all source results in declaration order.
func (m *Multi) Fetch(ctx context.Context) ([]feed.Article, error) {
	var all []feed.Article
	for _, s := range m.Sources {
		articles, err := s.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, articles...)
	}
	return all, nil
}
