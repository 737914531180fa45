package literal

import (
	"slices"
	"unicode/utf8"

	"github.com/coregx/coregrep/nfa"
	"github.com/coregx/coregrep/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits prevent excessive extraction from complex patterns:
//   - MaxLiterals: prevents memory bloat from alternations like (a|b|c|d|...)
//   - MaxLiteralLen: prevents building very long exact strings
//   - MaxClassSize: prevents expanding large character classes like [a-z]
type ExtractorConfig struct {
	// MaxLiterals limits the number of literals in any set. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the byte length of exact strings. Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the size of character classes to expand.
	// Classes like [abc] are expanded to ["a", "b", "c"]; [a-z] (26 runes)
	// is not expanded with the default of 10. Zero disables expansion.
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor derives literal sets from postfix patterns.
//
// It folds the operand stream with a stack, the same way the NFA compiler
// does, and tracks two facts per sub-expression:
//   - exact: the complete finite set of strings it matches, when small
//   - required: a set such that every match contains one of its members
//
// Example:
//
//	p := syntax.MustParse("(foo|bar)+baz")
//	seq := literal.New(literal.DefaultConfig()).Extract(p)
//	// seq = ["baz"], not complete
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

type fragment struct {
	exact    []string // nil when unknown or too large
	required []string // nil when nothing is required
}

// Extract returns the literals of p. If the pattern matches exactly a small
// set of non-empty strings the literals are Complete. Otherwise they are
// the best required set found, or an empty Seq if every line may match.
//
// Anchors are ignored: a required literal is required with or without them.
func (e *Extractor) Extract(p syntax.Postfix) *Seq {
	tokens := p.Operands()
	var stack []fragment
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.Kind {
		case syntax.KindLiteral:
			stack = append(stack, e.runes([]rune{t.Char}))
		case syntax.KindClass:
			stack = append(stack, e.class(t.Class))
		case syntax.KindStar, syntax.KindPlus, syntax.KindQuestion:
			if i+1 < len(tokens) && tokens[i+1].Kind == syntax.KindQuestion {
				i++ // lazy form, same language
			}
			if len(stack) < 1 {
				return NewSeq()
			}
			top := &stack[len(stack)-1]
			*top = e.repeat(t.Kind, *top)
		case syntax.KindConcat, syntax.KindOr:
			if len(stack) < 2 {
				return NewSeq()
			}
			l, r := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if t.Kind == syntax.KindConcat {
				stack[len(stack)-1] = e.concat(l, r)
			} else {
				stack[len(stack)-1] = e.alternate(l, r)
			}
		default:
			return NewSeq()
		}
	}
	if len(stack) != 1 {
		return NewSeq()
	}

	f := stack[0]
	if f.exact != nil && !slices.Contains(f.exact, "") {
		return toSeq(f.exact, true)
	}
	return toSeq(f.required, false)
}

func toSeq(strs []string, complete bool) *Seq {
	lits := make([]Literal, len(strs))
	for i, s := range strs {
		lits[i] = NewLiteral([]byte(s), complete)
	}
	seq := NewSeq(lits...)
	seq.Minimize()
	return seq
}

// runes returns the fragment of a single-rune set.
func (e *Extractor) runes(rs []rune) fragment {
	strs := make([]string, 0, len(rs))
	for _, r := range rs {
		// Invalid input bytes decode to RuneError, which has no fixed encoding.
		if r == utf8.RuneError {
			return fragment{}
		}
		strs = append(strs, string(r))
	}
	return e.finish(fragment{exact: strs})
}

// class expands a small, non-negated class into its runes.
func (e *Extractor) class(spec string) fragment {
	m, err := nfa.ClassMatcher(spec)
	if err != nil || m.Negated() || m.Size() > e.config.MaxClassSize || m.Size() > e.config.MaxLiterals {
		return fragment{}
	}
	var rs []rune
	for _, rr := range m.Ranges() {
		for r := rr.Lo; r <= rr.Hi; r++ {
			rs = append(rs, r)
		}
	}
	return e.runes(rs)
}

func (e *Extractor) repeat(kind syntax.Kind, inner fragment) fragment {
	switch kind {
	case syntax.KindPlus:
		// One copy is always present.
		return fragment{required: inner.required}
	case syntax.KindQuestion:
		if inner.exact != nil && !slices.Contains(inner.exact, "") && len(inner.exact) < e.config.MaxLiterals {
			return e.finish(fragment{exact: append(slices.Clone(inner.exact), "")})
		}
		return fragment{}
	default:
		return fragment{}
	}
}

func (e *Extractor) concat(l, r fragment) fragment {
	var f fragment
	if l.exact != nil && r.exact != nil && len(l.exact)*len(r.exact) <= e.config.MaxLiterals {
		f.exact = make([]string, 0, len(l.exact)*len(r.exact))
		for _, a := range l.exact {
			for _, b := range r.exact {
				if len(a)+len(b) > e.config.MaxLiteralLen {
					f.exact = nil
					break
				}
				f.exact = append(f.exact, a+b)
			}
			if f.exact == nil {
				break
			}
		}
	}
	f.required = better(l.required, r.required)
	return e.finish(f)
}

func (e *Extractor) alternate(l, r fragment) fragment {
	var f fragment
	if l.exact != nil && r.exact != nil {
		f.exact = union(l.exact, r.exact, e.config.MaxLiterals)
	}
	if l.required != nil && r.required != nil {
		f.required = union(l.required, r.required, e.config.MaxLiterals)
	}
	return e.finish(f)
}

// finish prefers the exact set as required set when it has no empty string.
func (e *Extractor) finish(f fragment) fragment {
	if f.exact != nil && !slices.Contains(f.exact, "") {
		f.required = f.exact
	}
	return f
}

// union returns the deduplicated union of a and b, or nil if it has more
// than limit members.
func union(a, b []string, limit int) []string {
	out := slices.Clone(a)
	for _, s := range b {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	if len(out) > limit {
		return nil
	}
	return out
}

// better picks the more selective required set: longer shortest literal
// first, then fewer literals.
func better(a, b []string) []string {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	ma, mb := minLen(a), minLen(b)
	if ma != mb {
		if ma > mb {
			return a
		}
		return b
	}
	if len(b) < len(a) {
		return b
	}
	return a
}

func minLen(strs []string) int {
	m := len(strs[0])
	for _, s := range strs[1:] {
		m = min(m, len(s))
	}
	return m
}
