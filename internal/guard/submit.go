package guard

import "sync"

// SubmitGuard suppresses concurrent duplicate submissions of the same
// mutation. A key is held from Acquire until Release, so a double-click
// or a retried request cannot run the same operation twice at once.
type SubmitGuard struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

// NewSubmitGuard creates a new in-memory submit guard.
func NewSubmitGuard() *SubmitGuard {
	return &SubmitGuard{
		inFlight: make(map[string]bool),
	}
}

// Acquire marks key as in flight. It returns false when the key is already
// held, in which case the caller must not proceed. An empty key is always
// allowed and never tracked.
func (g *SubmitGuard) Acquire(key string) bool {
	if key == "" {
		return true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inFlight[key] {
		return false
	}
	g.inFlight[key] = true
	return true
}

// Release frees a key after the operation finishes, success or failure.
func (g *SubmitGuard) Release(key string) {
	if key == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}
