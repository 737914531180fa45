package meta

// Find returns the first match in line, or nil if there is none.
//
// The start is the smallest offset from which the simulator accepts and
// the end is where its preferred path reaches the final state, so greedy
// quantifiers extend the match and lazy ones shorten it.
//
// Example:
//
//	engine, _ := meta.Compile("a+?")
//	m := engine.Find([]byte("xaaa"))
//	println(m.Start(), m.End()) // 1 2
func (e *Engine) Find(line []byte) *Match {
	if e.strategy == UsePrefilterBacktrack && e.rejected(line) {
		return nil
	}
	start, end := e.search(line)
	if start < 0 {
		return nil
	}
	return NewMatch(start, end, line)
}

// FindIndex returns the byte offsets of the first match, or nil.
func (e *Engine) FindIndex(line []byte) []int {
	m := e.Find(line)
	if m == nil {
		return nil
	}
	return []int{m.Start(), m.End()}
}
