package macros

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionsRedefine(t *testing.T) {
	defs := NewDefinitions()
	defs.Define("MAX_HEALTH", "100")

	v, err := defs.Int("MAX_HEALTH")
	require.NoError(t, err)
	assert.Equal(t, 100, v)

	defs.Undef("MAX_HEALTH")
	assert.False(t, defs.Defined("MAX_HEALTH"))

	defs.Define("MAX_HEALTH", "150")
	v, err = defs.Int("MAX_HEALTH")
	require.NoError(t, err)
	assert.Equal(t, 150, v)
}

func TestDefinitionsUndefUnbound(t *testing.T) {
	defs := NewDefinitions()
	// Undef of an unbound name is a no-op, not an error.
	defs.Undef("NEVER_DEFINED")
	assert.False(t, defs.Defined("NEVER_DEFINED"))
}

func TestDefinitionsIntErrors(t *testing.T) {
	defs := NewDefinitions()

	_, err := defs.Int("MISSING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not bound")

	defs.Define("GREETING", "hello")
	_, err = defs.Int("GREETING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an integer")
}

func TestDefinitionsLookup(t *testing.T) {
	defs := NewDefinitions()
	defs.Define("NAME", "Hero")

	v, ok := defs.Lookup("NAME")
	require.True(t, ok)
	assert.Equal(t, "Hero", v)

	_, ok = defs.Lookup("OTHER")
	assert.False(t, ok)
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hello, Hero! Welcome to the game.", Greeting("Hero"))
	assert.Equal(t, "Hello, Villain! Welcome to the game.", Greeting("Villain"))
}
