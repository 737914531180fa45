package nfa

import (
	"sync"
	"unicode/utf8"
)

// Backtracker runs an NFA against a window of text with an explicit-stack
// depth first search. Of the transitions leaving a state the most recently
// added one is explored first, so the order in which the builder adds the
// branches of a quantifier decides whether it is greedy or lazy.
//
// A frame remembers the states it reached through epsilon transitions
// since the last consumed rune. Following an epsilon transition back into
// one of them is refused, which makes the search terminate on cyclic
// epsilon graphs such as (a*)*. Consuming a rune clears that memory.
//
// The worst case is exponential in the window length. There is no step
// budget; callers that need bounded latency must bound the input.
//
// A Backtracker is safe for concurrent use. Per-search memory lives in a
// BacktrackerState.
type Backtracker struct {
	nfa  *NFA
	pool sync.Pool
}

// BacktrackerState holds the mutable memory of one search.
// It must not be shared between goroutines.
type BacktrackerState struct {
	stack []frame
}

type frame struct {
	state StateID
	pos   int
	seen  *guard
}

// guard is a persistent list of states reached through epsilon
// transitions at the current position. Frames share tails.
type guard struct {
	id   StateID
	next *guard
}

func (g *guard) contains(id StateID) bool {
	for ; g != nil; g = g.next {
		if g.id == id {
			return true
		}
	}
	return false
}

// NewBacktracker creates a backtracker for n.
func NewBacktracker(n *NFA) *Backtracker {
	return &Backtracker{
		nfa: n,
		pool: sync.Pool{
			New: func() any { return NewBacktrackerState() },
		},
	}
}

// NewBacktrackerState returns empty search memory.
func NewBacktrackerState() *BacktrackerState {
	return &BacktrackerState{stack: make([]frame, 0, 32)}
}

// NFA returns the automaton being simulated.
func (b *Backtracker) NFA() *NFA {
	return b.nfa
}

// Search returns the end offset of the first match that starts at the
// beginning of window, or -1. The match may end anywhere in window.
func (b *Backtracker) Search(window []byte) int {
	st := b.pool.Get().(*BacktrackerState)
	defer b.pool.Put(st)
	return b.SearchWithState(st, window, false)
}

// SearchFull is like Search but only accepts matches that consume the
// whole window. It returns len(window) or -1.
func (b *Backtracker) SearchFull(window []byte) int {
	st := b.pool.Get().(*BacktrackerState)
	defer b.pool.Put(st)
	return b.SearchWithState(st, window, true)
}

// SearchWithState runs a search using caller-provided memory. With full
// set, reaching the end state only counts at the end of window.
// Offsets are in bytes and always fall on rune boundaries.
func (b *Backtracker) SearchWithState(st *BacktrackerState, window []byte, full bool) int {
	n := b.nfa
	stack := append(st.stack[:0], frame{state: n.start, pos: 0})
	defer func() {
		clear(stack)
		st.stack = stack[:0]
	}()

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.state == n.end {
			if !full || f.pos == len(window) {
				return f.pos
			}
			continue
		}

		var (
			r     rune
			width int
		)
		if f.pos < len(window) {
			r, width = utf8.DecodeRune(window[f.pos:])
		}

		// Pushing in insertion order leaves the last added transition on top.
		for _, t := range n.states[f.state].transitions {
			switch {
			case t.Matcher.IsEpsilon():
				if !f.seen.contains(t.Next) {
					stack = append(stack, frame{
						state: t.Next,
						pos:   f.pos,
						seen:  &guard{id: t.Next, next: f.seen},
					})
				}
			case width > 0 && t.Matcher.Matches(r):
				stack = append(stack, frame{state: t.Next, pos: f.pos + width})
			}
		}
	}
	return -1
}
