package nfa

import (
	"cmp"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// RuneRange is an inclusive range of runes [Lo, Hi].
type RuneRange struct {
	Lo, Hi rune
}

// Matcher decides whether a transition may be taken. It is either a
// character set (a normalized list of rune ranges, possibly negated) or
// Epsilon, which is taken without consuming input.
//
// A Matcher is immutable once created and safe to share.
type Matcher struct {
	epsilon bool
	negated bool
	ranges  []RuneRange // sorted, non-overlapping, non-adjacent
}

// Epsilon returns the matcher of a non-consuming transition.
func Epsilon() Matcher {
	return Matcher{epsilon: true}
}

// NewCharSet returns a set matcher for the union of ranges. Ranges may be
// given in any order and may overlap; a range with Lo > Hi is ignored.
func NewCharSet(ranges []RuneRange, negated bool) Matcher {
	return Matcher{negated: negated, ranges: normalize(ranges)}
}

// IsEpsilon reports whether m is taken without consuming input.
func (m Matcher) IsEpsilon() bool {
	return m.epsilon
}

// Negated reports whether m matches runes outside its ranges.
func (m Matcher) Negated() bool {
	return m.negated
}

// Ranges returns the normalized ranges of a set matcher.
// The slice must not be modified.
func (m Matcher) Ranges() []RuneRange {
	return m.ranges
}

// Size returns how many runes the ranges cover.
func (m Matcher) Size() int {
	n := 0
	for _, r := range m.ranges {
		n += int(r.Hi-r.Lo) + 1
	}
	return n
}

// Matches reports whether m accepts r. Epsilon accepts everything but is
// only ever consulted on non-consuming transitions.
func (m Matcher) Matches(r rune) bool {
	if m.epsilon {
		return true
	}
	i := sort.Search(len(m.ranges), func(i int) bool { return m.ranges[i].Hi >= r })
	in := i < len(m.ranges) && m.ranges[i].Lo <= r
	return in != m.negated
}

// String renders m in pattern syntax: "ε", a single rune, or a bracket
// expression such as "[^\n\r]".
func (m Matcher) String() string {
	if m.epsilon {
		return "ε"
	}
	if !m.negated && len(m.ranges) == 1 && m.ranges[0].Lo == m.ranges[0].Hi {
		return quoteRune(m.ranges[0].Lo, false)
	}

	var sb strings.Builder
	sb.WriteByte('[')
	if m.negated {
		sb.WriteByte('^')
	}
	for _, r := range m.ranges {
		sb.WriteString(quoteRune(r.Lo, true))
		if r.Hi > r.Lo {
			if r.Hi > r.Lo+1 {
				sb.WriteByte('-')
			}
			sb.WriteString(quoteRune(r.Hi, true))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func quoteRune(r rune, inClass bool) string {
	if inClass && strings.ContainsRune(`\]^-[`, r) {
		return `\` + string(r)
	}
	if !strconv.IsPrint(r) {
		q := strconv.QuoteRune(r)
		return q[1 : len(q)-1]
	}
	return string(r)
}

// normalize sorts ranges and merges overlapping or adjacent ones.
func normalize(ranges []RuneRange) []RuneRange {
	out := make([]RuneRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Lo <= r.Hi {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b RuneRange) int { return cmp.Compare(a.Lo, b.Lo) })

	merged := out[:0]
	for _, r := range out {
		if n := len(merged); n > 0 && r.Lo <= merged[n-1].Hi+1 {
			merged[n-1].Hi = max(merged[n-1].Hi, r.Hi)
			continue
		}
		merged = append(merged, r)
	}
	return slices.Clip(merged)
}
