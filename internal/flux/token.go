package flux

import "github.com/google/uuid"

// TokenGenerator produces correlation tokens for stores and effect drains.
// Tokens appear in log output so a follow-up action can be traced back to
// the effect that produced it.
//
// Implemented by UUIDv7Generator (production) and testutil.FixedTokens
// (deterministic tests).
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, making tokens
// sortable by creation time, which keeps interleaved effect logs readable.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
