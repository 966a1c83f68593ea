package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedTokenGenerator_ReturnsTokensInOrder(t *testing.T) {
	gen := NewFixedTokenGenerator("run-1", "run-2", "run-3")

	assert.Equal(t, "run-1", gen.Generate())
	assert.Equal(t, "run-2", gen.Generate())
	assert.Equal(t, "run-3", gen.Generate())
}

func TestFixedTokenGenerator_PanicsWhenExhausted(t *testing.T) {
	gen := NewFixedTokenGenerator("only-one")

	assert.Equal(t, "only-one", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestFixedTokenGenerator_Remaining(t *testing.T) {
	gen := NewFixedTokenGenerator("a", "b")

	assert.Equal(t, 2, gen.Remaining())
	gen.Generate()
	assert.Equal(t, 1, gen.Remaining())
	gen.Generate()
	assert.Equal(t, 0, gen.Remaining())
}

func TestFixedTokenGenerator_ThreadSafe(t *testing.T) {
	const workers = 10
	const perWorker = 10

	tokens := make([]string, workers*perWorker)
	for i := range tokens {
		tokens[i] = "tok"
	}
	gen := NewFixedTokenGenerator(tokens...)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				assert.Equal(t, "tok", gen.Generate())
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, gen.Remaining())
}
