package nfa

import (
	"github.com/coregx/coregrep/internal/conv"
)

// Builder constructs an NFA state by state.
//
// Sub-automata are merged with Append, which copies another NFA into the
// builder with every ID shifted past the states already present. IDs of
// different operands therefore never collide.
type Builder struct {
	states []State
	start  StateID
	end    StateID
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		start:  InvalidState,
		end:    InvalidState,
	}
}

// AddState adds a state without transitions and returns its ID.
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id})
	return id
}

// AddTransition appends a transition from -> to guarded by m.
func (b *Builder) AddTransition(from StateID, m Matcher, to StateID) error {
	if int(from) >= len(b.states) {
		return &BuildError{Message: "transition source out of bounds", StateID: from}
	}
	if int(to) >= len(b.states) {
		return &BuildError{Message: "transition target out of bounds", StateID: to}
	}
	s := &b.states[from]
	s.transitions = append(s.transitions, Transition{Matcher: m, Next: to})
	return nil
}

// AddEpsilon appends an epsilon transition from -> to.
func (b *Builder) AddEpsilon(from, to StateID) error {
	return b.AddTransition(from, Epsilon(), to)
}

// Append copies every state of n into the builder, shifting all IDs by the
// number of states already present. It returns that offset; n's state s
// becomes s+offset.
func (b *Builder) Append(n *NFA) StateID {
	offset := StateID(conv.IntToUint32(len(b.states)))
	for i := range n.states {
		src := &n.states[i]
		ts := make([]Transition, len(src.transitions))
		for j, t := range src.transitions {
			ts[j] = Transition{Matcher: t.Matcher, Next: t.Next + offset}
		}
		b.states = append(b.states, State{id: src.id + offset, transitions: ts})
	}
	return offset
}

// SetStart sets the start state
func (b *Builder) SetStart(id StateID) {
	b.start = id
}

// SetEnd sets the end state
func (b *Builder) SetEnd(id StateID) {
	b.end = id
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Build finalizes and returns the constructed NFA. The result is validated
// and the builder must not be used afterwards.
func (b *Builder) Build() (*NFA, error) {
	n := &NFA{states: b.states, start: b.start, end: b.end}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// branch adds the two epsilon transitions of a quantifier decision point.
// Greedy adds exit first so the simulator tries enter first; lazy adds
// them the other way round.
func (b *Builder) branch(from, exit, enter StateID, lazy bool) error {
	first, second := exit, enter
	if lazy {
		first, second = enter, exit
	}
	if err := b.AddEpsilon(from, first); err != nil {
		return err
	}
	return b.AddEpsilon(from, second)
}
