//go:build demo_hard && !demo_easy

package macros

const (
	difficultyLevel   = 3
	difficultyMessage = "Hard mode activated."
)
