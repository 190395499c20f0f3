package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
database: /tmp/newsflow.db
feeds:
  - path: feeds/tech.yaml
  - path: feeds/world.yaml
topics:
  - go
  - science
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/newsflow.db", cfg.Database)
	require.Len(t, cfg.Feeds, 2)
	assert.Equal(t, "feeds/tech.yaml", cfg.Feeds[0].Path)
	assert.Equal(t, []string{"go", "science"}, cfg.Topics)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "database: [unterminated\n")
	_, err := Load(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeParse, loadErr.Code)
}

func TestLoad_SchemaRejectsEmptyDatabase(t *testing.T) {
	path := writeConfig(t, `database: ""`)
	_, err := Load(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeSchema, loadErr.Code)
}

func TestLoad_SchemaRejectsEmptyFeedPath(t *testing.T) {
	path := writeConfig(t, `
database: newsflow.db
feeds:
  - path: ""
`)
	_, err := Load(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeSchema, loadErr.Code)
}

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}
