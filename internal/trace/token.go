package trace

import "github.com/google/uuid"

// RunTokenGenerator produces tokens that identify one demo run.
//
// Tokens appear in verbose diagnostics and transcript snapshots so that
// a run can be correlated with its artifacts. Implementations must be
// safe for concurrent use.
type RunTokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, making tokens
// sortable by creation time, which is helpful when browsing transcripts.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
