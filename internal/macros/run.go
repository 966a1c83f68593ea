package macros

import (
	"context"
	"fmt"
	"io"

	"github.com/roach88/demokit/internal/demo"
)

// debugEnabled gates the diagnostic echo block. It is unconditionally
// on in this demo.
const debugEnabled = true

// Run executes the fixed conditional-text sequence on w.
//
// The values are hard-coded; the demo takes no input and is
// deterministic for a given build. Only the build-metadata lines vary
// across builds, and then only when date/time injection is used.
func Run(w io.Writer) error {
	defs := NewDefinitions()
	defs.Define("MAX_HEALTH", "100")

	playerName := "Hero"
	fmt.Fprintln(w, Greeting(playerName))

	playerHealth := 90
	maxHealth, err := defs.Int("MAX_HEALTH")
	if err != nil {
		return err
	}
	if playerHealth > maxHealth {
		fmt.Fprintln(w, "Health exceeds maximum limit!")
	} else {
		fmt.Fprintf(w, "Your current health is: %d out of %d\n", playerHealth, maxHealth)
	}

	// Redefinition replaces the binding mid-sequence; the boss check
	// below sees the new limit.
	defs.Undef("MAX_HEALTH")
	defs.Define("MAX_HEALTH", "150")

	bossHealth := 120
	maxHealth, err = defs.Int("MAX_HEALTH")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Boss health: %d out of %d\n", bossHealth, maxHealth)

	if debugEnabled {
		fmt.Fprintln(w, "[DEBUG] Debugging information enabled.")
		fmt.Fprintf(w, "[DEBUG] Player name: %s\n", playerName)
		fmt.Fprintf(w, "[DEBUG] Player health: %d\n", playerHealth)
		fmt.Fprintf(w, "[DEBUG] Boss health: %d\n", bossHealth)
	}

	file, _ := Source()
	info := CurrentBuildInfo()
	fmt.Fprintf(w, "File: %s\n", file)
	fmt.Fprintf(w, "Compiled on: %s at %s\n", info.Date, info.Time)
	_, line := Source()
	fmt.Fprintf(w, "Current line number: %d\n", line)

	fmt.Fprintln(w, difficultyMessage)
	return nil
}

// Demo adapts the conditional-text sequence to the demo registry.
type Demo struct{}

// Name implements demo.Demo.
func (Demo) Name() string { return "macros" }

// Description implements demo.Demo.
func (Demo) Description() string {
	return "Macro substitution, conditional text, and build metadata"
}

// Run implements demo.Demo.
func (Demo) Run(ctx context.Context, streams demo.Streams) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return Run(streams.Out)
}

func init() {
	demo.Register(Demo{})
}
