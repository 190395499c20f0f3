// Package config loads the newsflow configuration file: a YAML document
// validated against an embedded CUE schema before anything touches it.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

var pathConfig = cue.ParsePath("#Config")

//go:embed schema.cue
var schemaCUE string

// Error codes surfaced by Load and Validate.
const (
	ErrCodeNotFound = "E_CONFIG_NOT_FOUND"
	ErrCodeParse    = "E_CONFIG_PARSE"
	ErrCodeSchema   = "E_CONFIG_SCHEMA"
)

// LoadError is a config failure with a stable code callers can branch on.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Feed points at one feed fixture file.
type Feed struct {
	Path string `yaml:"path" json:"path"`
}

// Config is the application configuration.
type Config struct {
	// Database is the SQLite path for favorites; ":memory:" is allowed.
	Database string `yaml:"database" json:"database"`
	// Feeds lists the feed files to read, in display order.
	Feeds []Feed `yaml:"feeds" json:"feeds"`
	// Topics lists the topics offered for following, in display order.
	Topics []string `yaml:"topics" json:"topics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Database: "newsflow.db",
		Topics:   []string{"go", "science", "world"},
	}
}

// Load reads, parses and validates the config file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("config file not found: %s", path)}
	}
	if err != nil {
		return Config{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading config: %v", err)}
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("%s: %v", path, err)}
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against the embedded CUE schema.
func Validate(cfg Config) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		// The schema is embedded; failing to compile it is a build defect.
		return &LoadError{Code: ErrCodeSchema, Message: fmt.Sprintf("schema compile: %v", err)}
	}

	value := schema.LookupPath(pathConfig).Unify(ctx.Encode(cfg))
	if err := value.Validate(); err != nil {
		msgs := errors.Errors(err)
		if len(msgs) > 0 {
			return &LoadError{Code: ErrCodeSchema, Message: errors.Details(msgs[0], nil)}
		}
		return &LoadError{Code: ErrCodeSchema, Message: err.Error()}
	}
	return nil
}
