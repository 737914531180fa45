package meta

import (
	"sync"

	"github.com/coregx/coregrep/nfa"
)

// SearchState holds per-search mutable state for thread-safe concurrent searches.
// It is obtained from a sync.Pool so the same compiled Engine can be used
// from multiple goroutines.
//
// Usage pattern:
//
//	state := engine.getSearchState()
//	defer engine.putSearchState(state)
//	// use state for search operations
//
// The SearchState itself is NOT thread-safe.
type SearchState struct {
	// backtracker holds the frame stack of the NFA simulator.
	backtracker *nfa.BacktrackerState
}

func newSearchState() *SearchState {
	return &SearchState{
		backtracker: nfa.NewBacktrackerState(),
	}
}

// searchStatePool manages a pool of SearchState instances for thread-safe reuse.
// This follows the stdlib regexp pattern of using sync.Pool for concurrent safety.
type searchStatePool struct {
	pool sync.Pool
}

func newSearchStatePool() *searchStatePool {
	return &searchStatePool{
		pool: sync.Pool{
			New: func() any { return newSearchState() },
		},
	}
}

// get retrieves a SearchState from the pool, creating one if necessary.
func (p *searchStatePool) get() *SearchState {
	return p.pool.Get().(*SearchState)
}

// put returns a SearchState to the pool for reuse.
// The simulator leaves its stack empty, so there is nothing to reset.
func (p *searchStatePool) put(state *SearchState) {
	if state == nil {
		return
	}
	p.pool.Put(state)
}
