//go:build !demo_easy && !demo_hard

package macros

// Difficulty selection is a genuine build-time branch: exactly one of
// the three difficulty files is compiled into any artifact, so the
// other two messages do not exist in the binary at all. The default
// build is normal mode; tag demo_easy or demo_hard to switch.
const (
	difficultyLevel   = 2
	difficultyMessage = "Normal mode activated."
)
