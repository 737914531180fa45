package meta

import "sync/atomic"

// IsMatch reports whether the pattern matches anywhere in line.
//
// The dispatch depends on the selected strategy:
//
//	UseLiteral:            literal scan only
//	UsePrefilterBacktrack: literal scan rejects, NFA confirms
//	UseBacktrack:          NFA at every start offset
//
// Example:
//
//	engine, _ := meta.Compile("hello")
//	if engine.IsMatch([]byte("say hello world")) {
//	    println("matches!")
//	}
func (e *Engine) IsMatch(line []byte) bool {
	switch e.strategy {
	case UseLiteral:
		return e.isMatchLiteral(line)
	case UsePrefilterBacktrack:
		if e.rejected(line) {
			return false
		}
	}
	start, _ := e.search(line)
	return start >= 0
}

// isMatchLiteral answers from the prefilter alone. Only selected when the
// literal set is exactly the language of the pattern.
func (e *Engine) isMatchLiteral(line []byte) bool {
	atomic.AddUint64(&e.stats.LiteralSearches, 1)
	return e.prefilter.Find(line, 0) >= 0
}
