// Package prefilter provides fast candidate filtering for line matching
// using extracted literal sequences.
//
// A prefilter answers one question cheaply: can this line contain a match
// at all? Every match of the pattern contains one of the extracted
// literals, so a line that contains none of them is rejected without
// running the NFA.
//
// The package selects the prefilter from the literal set:
//   - Single byte → memchr (bytes.IndexByte)
//   - Single substring → memmem (bytes.Index)
//   - Several literals → Aho-Corasick automaton
//
// Example usage:
//
//	seq := literal.New(literal.DefaultConfig()).Extract(syntax.MustParse("hello|world"))
//	pf := prefilter.NewBuilder(seq).Build()
//
//	haystack := []byte("foo hello bar world baz")
//	pos := pf.Find(haystack, 0)
//	// pos == 4 (position of "hello")
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/coregrep/literal"
)

// Prefilter finds candidate positions before the NFA runs.
type Prefilter interface {
	// Find returns the index of the first literal occurrence starting at or
	// after start, or -1 if there is none.
	Find(haystack []byte, start int) int

	// IsComplete returns true if finding a literal guarantees a match of
	// an unanchored pattern.
	IsComplete() bool

	// LiteralLen returns the length of the literal when the prefilter is
	// built from one complete literal, and 0 otherwise.
	LiteralLen() int

	// HeapBytes returns the number of bytes of heap memory used by this prefilter.
	HeapBytes() int
}

// Builder constructs a prefilter from an extracted literal sequence.
type Builder struct {
	literals *literal.Seq
}

// NewBuilder creates a new prefilter builder. A nil or empty sequence
// builds no prefilter.
func NewBuilder(literals *literal.Seq) *Builder {
	return &Builder{literals: literals}
}

// Build constructs the best prefilter for the literals.
//
// Returns nil if no prefilter can be built: no literals, an empty
// literal (which every line contains), or an automaton build failure.
func (b *Builder) Build() Prefilter {
	seq := b.literals
	if seq.IsEmpty() || seq.MinLen() == 0 {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
		}
		return newMemmemPrefilter(lit.Bytes, lit.Complete)
	}

	pf, err := newAhoCorasickPrefilter(seq)
	if err != nil {
		return nil
	}
	return pf
}

// memchrPrefilter searches for a single byte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{
		needle:   needle,
		complete: complete,
	}
}

// Find implements Prefilter.Find using bytes.IndexByte.
func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.IndexByte(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memchrPrefilter) HeapBytes() int {
	return 0
}

// memmemPrefilter searches for a single substring.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

// newMemmemPrefilter copies needle to prevent aliasing.
func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	return &memmemPrefilter{
		needle:   bytes.Clone(needle),
		complete: complete,
	}
}

// Find implements Prefilter.Find using bytes.Index.
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.Index(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}

// ahoCorasickPrefilter searches for any of several literals at once.
type ahoCorasickPrefilter struct {
	auto      *ahocorasick.Automaton
	complete  bool
	heapBytes int
}

func newAhoCorasickPrefilter(seq *literal.Seq) (*ahoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	heap := 0
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		heap += len(lit.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{
		auto:      auto,
		complete:  seq.AllComplete(),
		heapBytes: heap,
	}, nil
}

// Find implements Prefilter.Find using the automaton.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.IsComplete.
func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen. Literals differ in length.
func (p *ahoCorasickPrefilter) LiteralLen() int {
	return 0
}

// HeapBytes implements Prefilter.HeapBytes. It counts the pattern bytes;
// the automaton's own tables are not visible.
func (p *ahoCorasickPrefilter) HeapBytes() int {
	return p.heapBytes
}
