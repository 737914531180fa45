package meta

import (
	"sync/atomic"

	"github.com/coregx/coregrep/literal"
	"github.com/coregx/coregrep/nfa"
	"github.com/coregx/coregrep/prefilter"
)

// Engine is the front-end matcher for one compiled pattern.
//
// The Engine:
//  1. Holds the NFA and the pattern's anchor flags
//  2. Extracts literals and builds a prefilter (if literals are available)
//  3. Selects a strategy
//  4. Applies the sliding-window / anchor policy per line
//
// Thread safety: the NFA, literals and prefilter are immutable after
// compilation and per-search state comes from a sync.Pool, so multiple
// goroutines can call IsMatch and Find on the same Engine concurrently.
//
// Example:
//
//	engine, err := meta.Compile("(foo|bar)\\d+")
//	if err != nil {
//	    return err
//	}
//	if engine.IsMatch([]byte("test foo123 end")) {
//	    // ...
//	}
type Engine struct {
	// stats MUST be first field for proper 8-byte alignment on 32-bit platforms.
	stats Stats

	pattern       string
	nfa           *nfa.NFA
	backtracker   *nfa.Backtracker
	anchoredStart bool
	anchoredEnd   bool
	literals      *literal.Seq
	prefilter     prefilter.Prefilter
	tracker       *prefilter.Tracker
	strategy      Strategy
	config        Config
	statePool     *searchStatePool
}

// Stats tracks execution statistics for performance analysis.
// All counters are updated atomically.
type Stats struct {
	// NFASearches counts lines handed to the NFA simulator
	NFASearches uint64

	// PrefilterHits counts lines that contained a literal
	PrefilterHits uint64

	// PrefilterRejects counts lines rejected without simulation
	PrefilterRejects uint64

	// LiteralSearches counts lines decided by the literal scan alone
	LiteralSearches uint64
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		NFASearches:      atomic.LoadUint64(&e.stats.NFASearches),
		PrefilterHits:    atomic.LoadUint64(&e.stats.PrefilterHits),
		PrefilterRejects: atomic.LoadUint64(&e.stats.PrefilterRejects),
		LiteralSearches:  atomic.LoadUint64(&e.stats.LiteralSearches),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.NFASearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterHits, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
	atomic.StoreUint64(&e.stats.LiteralSearches, 0)
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// NFA returns the compiled automaton.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// Literals returns the literals extracted for prefiltering. The sequence
// may be empty.
func (e *Engine) Literals() *literal.Seq {
	return e.literals
}

// IsAnchoredStart reports whether matches must start at offset 0.
func (e *Engine) IsAnchoredStart() bool {
	return e.anchoredStart
}

// IsAnchoredEnd reports whether matches must end at the end of the line.
func (e *Engine) IsAnchoredEnd() bool {
	return e.anchoredEnd
}

// getSearchState retrieves a SearchState from the pool.
func (e *Engine) getSearchState() *SearchState {
	return e.statePool.get()
}

// putSearchState returns a SearchState to the pool.
func (e *Engine) putSearchState(state *SearchState) {
	e.statePool.put(state)
}
