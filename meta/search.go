package meta

import (
	"sync/atomic"
	"unicode/utf8"
)

// search applies the window policy to line and returns the span of the
// first accepted path, or (-1, -1).
//
// An anchored-start pattern is tried once at offset 0. Otherwise every rune
// boundary 0..len(line) is tried in increasing order and the first success
// wins. With an end anchor the path must consume the whole window.
func (e *Engine) search(line []byte) (int, int) {
	atomic.AddUint64(&e.stats.NFASearches, 1)

	state := e.getSearchState()
	defer e.putSearchState(state)

	if e.anchoredStart {
		end := e.backtracker.SearchWithState(state.backtracker, line, e.anchoredEnd)
		if end < 0 {
			return -1, -1
		}
		return 0, end
	}

	for at := 0; ; {
		end := e.backtracker.SearchWithState(state.backtracker, line[at:], e.anchoredEnd)
		if end >= 0 {
			return at, at + end
		}
		if at >= len(line) {
			return -1, -1
		}
		_, width := utf8.DecodeRune(line[at:])
		at += width
	}
}

// rejected reports whether the prefilter proves that line cannot match.
func (e *Engine) rejected(line []byte) bool {
	if e.tracker == nil {
		return false
	}
	if e.tracker.Reject(line) {
		atomic.AddUint64(&e.stats.PrefilterRejects, 1)
		return true
	}
	if e.tracker.IsActive() {
		atomic.AddUint64(&e.stats.PrefilterHits, 1)
	}
	return false
}
