package nfa

import (
	"fmt"
	"math"
	"strings"

	"github.com/coregx/coregrep/internal/conv"
	"github.com/coregx/coregrep/internal/sparse"
)

// StateID uniquely identifies an NFA state within one NFA.
// IDs are dense: an NFA with n states uses exactly the IDs 0..n-1.
type StateID uint32

// InvalidState represents an invalid or uninitialized state ID
const InvalidState StateID = math.MaxUint32

// Transition is one outgoing edge of a state.
type Transition struct {
	Matcher Matcher
	Next    StateID
}

// State is a single NFA state with its transitions in insertion order.
type State struct {
	id          StateID
	transitions []Transition
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Transitions returns the outgoing transitions in insertion order.
// The slice must not be modified.
func (s *State) Transitions() []Transition {
	return s.transitions
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	if len(s.transitions) == 0 {
		return fmt.Sprintf("%d: end", s.id)
	}
	parts := make([]string, len(s.transitions))
	for i, t := range s.transitions {
		parts[i] = fmt.Sprintf("%s->%d", t.Matcher, t.Next)
	}
	return fmt.Sprintf("%d: %s", s.id, strings.Join(parts, ", "))
}

// NFA is a Thompson automaton: an arena of states with one start and one
// end state. States refer to each other by ID only, so a built NFA is
// immutable and safe for concurrent use.
type NFA struct {
	states []State
	start  StateID
	end    StateID
}

// Start returns the start state
func (n *NFA) Start() StateID {
	return n.start
}

// End returns the end (accepting) state
func (n *NFA) End() StateID {
	return n.end
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsMatch returns true if id is the end state
func (n *NFA) IsMatch(id StateID) bool {
	return id == n.end
}

// String lists every state, one per line.
func (n *NFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "NFA{states: %d, start: %d, end: %d}", len(n.states), n.start, n.end)
	for i := range n.states {
		sb.WriteString("\n  ")
		sb.WriteString(n.states[i].String())
	}
	return sb.String()
}

// Validate checks the Thompson shape of n: IDs are dense, start and end
// exist, every transition targets an existing state, the end state has no
// outgoing transitions and every state is reachable from start.
func (n *NFA) Validate() error {
	size := len(n.states)
	if n.start == InvalidState || int(n.start) >= size {
		return &BuildError{Message: "start state out of bounds", StateID: n.start}
	}
	if n.end == InvalidState || int(n.end) >= size {
		return &BuildError{Message: "end state out of bounds", StateID: n.end}
	}
	if len(n.states[n.end].transitions) != 0 {
		return &BuildError{Message: "end state has outgoing transitions", StateID: n.end}
	}

	for i := range n.states {
		s := &n.states[i]
		if int(s.id) != i {
			return &BuildError{Message: fmt.Sprintf("state stored at index %d", i), StateID: s.id}
		}
		for j, t := range s.transitions {
			if t.Next == InvalidState || int(t.Next) >= size {
				return &BuildError{
					Message: fmt.Sprintf("invalid transition %d target %d", j, t.Next),
					StateID: s.id,
				}
			}
		}
	}

	seen := sparse.NewSparseSet(conv.IntToUint32(size))
	queue := []StateID{n.start}
	seen.Insert(uint32(n.start))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, t := range n.states[id].transitions {
			if seen.Insert(uint32(t.Next)) {
				queue = append(queue, t.Next)
			}
		}
	}
	if seen.Len() != size {
		for i := range n.states {
			if !seen.Contains(conv.IntToUint32(i)) {
				return &BuildError{Message: "state unreachable from start", StateID: StateID(i)}
			}
		}
	}
	return nil
}
