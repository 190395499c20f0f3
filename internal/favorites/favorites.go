// Package favorites persists favorite flags and followed topics in SQLite.
//
// The core runtime never sees this package: the CLI wires its methods into
// the application Environment as capability closures, which is the only
// sanctioned channel from reducers into persistence.
package favorites

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

const currentSchemaVersion = 1

// Store is the durable favorites/topics database.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path (":memory:"
// for tests). Applies required pragmas and the schema automatically;
// idempotent, safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SetFavorite persists the favorite flag for an article.
func (s *Store) SetFavorite(ctx context.Context, articleID string, favorite bool) error {
	if favorite {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO favorites (article_id) VALUES (?) ON CONFLICT (article_id) DO NOTHING`,
			articleID)
		if err != nil {
			return fmt.Errorf("save favorite %s: %w", articleID, err)
		}
		return nil
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE article_id = ?`, articleID); err != nil {
		return fmt.Errorf("remove favorite %s: %w", articleID, err)
	}
	return nil
}

// IsFavorite reports whether an article is marked favorite.
func (s *Store) IsFavorite(ctx context.Context, articleID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM favorites WHERE article_id = ?`, articleID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query favorite %s: %w", articleID, err)
	}
	return true, nil
}

// Favorites returns the set of favorite article IDs.
func (s *Store) Favorites(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT article_id FROM favorites`)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		out[id] = true
	}
	return out, rows.Err()
}

// SetTopicFollowed persists the followed flag for a topic.
func (s *Store) SetTopicFollowed(ctx context.Context, topic string, followed bool) error {
	if followed {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO followed_topics (topic) VALUES (?) ON CONFLICT (topic) DO NOTHING`,
			topic)
		if err != nil {
			return fmt.Errorf("follow topic %s: %w", topic, err)
		}
		return nil
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM followed_topics WHERE topic = ?`, topic); err != nil {
		return fmt.Errorf("unfollow topic %s: %w", topic, err)
	}
	return nil
}

// FollowedTopics returns the set of followed topic names.
func (s *Store) FollowedTopics(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT topic FROM followed_topics`)
	if err != nil {
		return nil, fmt.Errorf("query followed topics: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var topic string
		if err := rows.Scan(&topic); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		out[topic] = true
	}
	return out, rows.Err()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates tables if they don't exist. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}
