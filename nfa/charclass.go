package nfa

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coregx/coregrep/syntax"
)

var (
	anyExceptNewline = NewCharSet([]RuneRange{{'\n', '\n'}, {'\r', '\r'}}, true)

	digitClass = NewCharSet([]RuneRange{{'0', '9'}}, false)

	wordClass = NewCharSet([]RuneRange{
		{'0', '9'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'},
	}, false)

	// \t \n \v \f \r and space
	spaceClass = NewCharSet([]RuneRange{{'\t', '\r'}, {' ', ' '}}, false)
)

// LiteralMatcher returns the set matcher {r}.
func LiteralMatcher(r rune) Matcher {
	return NewCharSet([]RuneRange{{r, r}}, false)
}

// ClassMatcher compiles a class specifier into a set matcher.
//
// Accepted specifiers are ".", the shorthand classes `\d`, `\w`, `\s`
// (the bare control letters d, w, s are accepted too), a full bracket
// expression "[...]" or "[^...]", and a single rune.
//
// Bracket bodies are split on '-'. An empty segment stands for a literal
// '-'. A segment that directly follows another non-empty segment opens a
// range from the previous segment's last rune to its own first rune. Every
// rune of every segment is a member as well, so "[a-cx]" is {a, b, c, x}.
func ClassMatcher(spec string) (Matcher, error) {
	switch spec {
	case ".":
		return anyExceptNewline, nil
	case "d", `\d`:
		return digitClass, nil
	case "w", `\w`:
		return wordClass, nil
	case "s", `\s`:
		return spaceClass, nil
	}

	if len(spec) >= 2 && spec[0] == '[' && spec[len(spec)-1] == ']' {
		return bracketMatcher(spec)
	}
	if r, size := utf8.DecodeRuneInString(spec); size > 0 && size == len(spec) {
		return LiteralMatcher(r), nil
	}
	return Matcher{}, fmt.Errorf("%w: unknown class %q", ErrInvalidPattern, spec)
}

func bracketMatcher(text string) (Matcher, error) {
	body := text[1 : len(text)-1]
	negated := strings.HasPrefix(body, "^")
	if negated {
		body = body[1:]
	}
	if body == "" {
		return Matcher{}, &syntax.Error{Code: syntax.ErrEmptyClass, Expr: text}
	}

	var ranges []RuneRange
	segments := strings.Split(body, "-")
	for i, seg := range segments {
		if seg == "" {
			ranges = append(ranges, RuneRange{'-', '-'})
			continue
		}
		if i > 0 && segments[i-1] != "" {
			lo, _ := utf8.DecodeLastRuneInString(segments[i-1])
			hi, _ := utf8.DecodeRuneInString(seg)
			if lo > hi {
				return Matcher{}, &syntax.Error{
					Code: syntax.ErrInvalidRange,
					Expr: string(lo) + "-" + string(hi),
				}
			}
			ranges = append(ranges, RuneRange{lo, hi})
		}
		for _, r := range seg {
			ranges = append(ranges, RuneRange{r, r})
		}
	}
	return NewCharSet(ranges, negated), nil
}
