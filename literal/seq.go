// Package literal extracts literal strings from postfix patterns so the
// grep engine can reject lines without running the NFA.
//
// Key concepts:
//   - A Literal is a byte sequence that every match must contain, or, when
//     Complete is set, one of the exact strings the pattern matches
//   - A Seq is a set of alternative literals: every match contains at least
//     one of them
package literal

import (
	"bytes"
	"sort"
)

// Literal represents a literal byte sequence extracted from a pattern.
// The Complete flag indicates whether this literal is an entire match
// (true) or only a substring every match contains (false).
//
// Example:
//   - Pattern /hello/ → Literal{[]byte("hello"), true}
//   - Pattern /hello.*world/ → Literal{[]byte("hello"), false}
type Literal struct {
	// Bytes contains the UTF-8 encoded literal.
	Bytes []byte

	// Complete indicates whether this literal represents the entire match.
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq represents a set of alternative literals. An empty Seq carries no
// information: any line may match.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("bar"), true),
//	)
//	fmt.Printf("Sequence has %d literals\n", seq.Len()) // Output: Sequence has 2 literals
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// AllComplete reports whether the sequence is non-empty and every literal
// is an entire match. Finding any of them in a line then decides the match.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 for an empty sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	minLength := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		minLength = min(minLength, lit.Len())
	}
	return minLength
}

// Minimize removes literals that contain another literal of the sequence.
// For a containment test a line holding "foobar" also holds "foo", so only
// the shorter literal is needed. Duplicates are removed as well.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("xfoobar"), true),
//	    literal.NewLiteral([]byte("bar"), true),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Len()) // Output: 2 (foo, bar)
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	// Shortest first, so every literal is compared against all shorter kept ones
	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.Contains(current.Bytes, k.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}

	s.literals = kept
}

// Strings returns the literals as strings, mainly for tests and debugging.
func (s *Seq) Strings() []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = string(s.literals[i].Bytes)
	}
	return out
}
