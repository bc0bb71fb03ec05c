package guard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitGuardBlocksDuplicateKey(t *testing.T) {
	g := NewSubmitGuard()

	assert.True(t, g.Acquire("admin-create:a@b.co"))
	assert.False(t, g.Acquire("admin-create:a@b.co"))

	g.Release("admin-create:a@b.co")
	assert.True(t, g.Acquire("admin-create:a@b.co"))
}

func TestSubmitGuardIndependentKeys(t *testing.T) {
	g := NewSubmitGuard()

	assert.True(t, g.Acquire("key-1"))
	assert.True(t, g.Acquire("key-2"))
}

func TestSubmitGuardEmptyKeyAlwaysAllowed(t *testing.T) {
	g := NewSubmitGuard()

	assert.True(t, g.Acquire(""))
	assert.True(t, g.Acquire(""))
	g.Release("")
}

func TestSubmitGuardConcurrentAcquire(t *testing.T) {
	g := NewSubmitGuard()

	const workers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Acquire("shared-key") {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, granted)
}
