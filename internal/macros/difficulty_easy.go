//go:build demo_easy

package macros

const (
	difficultyLevel   = 1
	difficultyMessage = "Easy mode activated."
)
