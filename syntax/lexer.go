package syntax

import (
	"strings"
	"unicode/utf8"
)

// lex splits pattern into tokens in a single left-to-right pass.
//
// A '[' starts class accumulation: every rune up to the next ']' is copied
// verbatim, operators included, and the whole bracket text becomes one
// KindClass token.
func lex(pattern string) ([]Token, error) {
	tokens := make([]Token, 0, len(pattern))
	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		switch r {
		case '*':
			tokens = append(tokens, Op(KindStar))
		case '+':
			tokens = append(tokens, Op(KindPlus))
		case '?':
			tokens = append(tokens, Op(KindQuestion))
		case '|':
			tokens = append(tokens, Op(KindOr))
		case '(':
			tokens = append(tokens, Op(KindLParen))
		case ')':
			tokens = append(tokens, Op(KindRParen))
		case '^':
			tokens = append(tokens, Op(KindStartAnchor))
		case '$':
			tokens = append(tokens, Op(KindEndAnchor))
		case '.':
			tokens = append(tokens, Class("."))
		case '[':
			class, err := lexClass(pattern[i:])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Class(class))
			i += len(class)
			continue
		case '\\':
			if i+size >= len(pattern) {
				return nil, &Error{Code: ErrTrailingBackslash, Expr: ""}
			}
			next, nsize := utf8.DecodeRuneInString(pattern[i+size:])
			switch next {
			case 'd', 'w', 's':
				tokens = append(tokens, Class(pattern[i:i+size+nsize]))
			default:
				tokens = append(tokens, Literal(next))
			}
			i += size + nsize
			continue
		default:
			tokens = append(tokens, Literal(r))
		}
		i += size
	}
	return tokens, nil
}

// lexClass returns the bracket expression at the start of s, brackets
// included.
func lexClass(s string) (string, error) {
	end := strings.IndexByte(s[1:], ']')
	if end < 0 {
		return "", &Error{Code: ErrMissingBracket, Expr: s}
	}
	class := s[:end+2]
	if body := class[1 : len(class)-1]; body == "" || body == "^" {
		return "", &Error{Code: ErrEmptyClass, Expr: class}
	}
	return class, nil
}
