package meta

// Match is the span of the first accepted path on a line.
//
// Offsets are byte positions into the searched line. The line is held by
// reference, so Bytes returns a view that is only valid as long as the
// caller keeps the line unchanged.
//
// Example:
//
//	m := meta.NewMatch(5, 11, []byte("test foo123 end"))
//	println(m.String()) // "foo123"
type Match struct {
	start int
	end   int
	line  []byte
}

// NewMatch creates a Match covering line[start:end].
func NewMatch(start, end int, line []byte) *Match {
	return &Match{start: start, end: end, line: line}
}

// Start returns the inclusive start offset.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end offset.
func (m *Match) End() int {
	return m.end
}

// Len returns the length of the match in bytes.
func (m *Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched bytes, or nil for an out-of-range span.
func (m *Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.line) || m.start > m.end {
		return nil
	}
	return m.line[m.start:m.end]
}

// String returns a copy of the matched text.
func (m *Match) String() string {
	return string(m.Bytes())
}

// IsEmpty reports whether the match consumed no input, as "" or "a*" can.
func (m *Match) IsEmpty() bool {
	return m.start == m.end
}
