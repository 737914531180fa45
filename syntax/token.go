// Package syntax turns a pattern string of the grep dialect into a postfix
// (reverse Polish) token stream that the NFA builder can fold with a stack.
//
// The dialect is deliberately small:
//
//	c        literal rune
//	.        any rune except \n and \r
//	\d \w \s digit, word and whitespace classes
//	[abc]    class, [^abc] negated class, a-z ranges inside brackets
//	X* X+ X? zero-or-more, one-or-more, zero-or-one (a trailing ? makes them lazy)
//	X|Y      alternation
//	(X)      grouping
//	^ $      line start / line end anchors
//	\c       escapes any other rune to a literal
//
// Parsing happens in four steps: lexing, anchor extraction, implicit
// concatenation and a shunting-yard rewrite from infix to postfix.
package syntax

import (
	"strconv"
	"strings"
)

// Kind identifies the type of a Token.
type Kind uint8

const (
	// KindLiteral is a single literal rune (Token.Char).
	KindLiteral Kind = iota

	// KindClass is a character class specifier (Token.Class): ".", `\d`,
	// `\w`, `\s` or the full bracket text "[...]".
	KindClass

	// KindStar is the zero-or-more quantifier *.
	KindStar

	// KindPlus is the one-or-more quantifier +.
	KindPlus

	// KindQuestion is the zero-or-one quantifier ?. Directly after another
	// quantifier in postfix order it marks that quantifier as lazy.
	KindQuestion

	// KindOr is alternation |.
	KindOr

	// KindConcat is the synthetic concatenation operator inserted between
	// adjacent operands. It never appears in the pattern text.
	KindConcat

	// KindLParen opens a group.
	KindLParen

	// KindRParen closes a group.
	KindRParen

	// KindStartAnchor is ^.
	KindStartAnchor

	// KindEndAnchor is $.
	KindEndAnchor
)

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindClass:
		return "Class"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	case KindQuestion:
		return "Question"
	case KindOr:
		return "Or"
	case KindConcat:
		return "Concat"
	case KindLParen:
		return "LParen"
	case KindRParen:
		return "RParen"
	case KindStartAnchor:
		return "StartAnchor"
	case KindEndAnchor:
		return "EndAnchor"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one lexical unit of a pattern.
// Only the field matching Kind is meaningful.
type Token struct {
	Kind  Kind
	Char  rune   // KindLiteral
	Class string // KindClass
}

// Literal returns a literal token for r.
func Literal(r rune) Token {
	return Token{Kind: KindLiteral, Char: r}
}

// Class returns a class token carrying spec verbatim.
func Class(spec string) Token {
	return Token{Kind: KindClass, Class: spec}
}

// Op returns an operator, grouping or anchor token of the given kind.
func Op(k Kind) Token {
	return Token{Kind: k}
}

// IsQuantifier reports whether t is *, + or ?.
func (t Token) IsQuantifier() bool {
	return t.Kind == KindStar || t.Kind == KindPlus || t.Kind == KindQuestion
}

// IsOperand reports whether t is a leaf that matches one rune.
func (t Token) IsOperand() bool {
	return t.Kind == KindLiteral || t.Kind == KindClass
}

// closesOperand reports whether an operand may end right after t.
func (t Token) closesOperand() bool {
	return t.IsOperand() || t.Kind == KindRParen || t.IsQuantifier()
}

// opensOperand reports whether a new operand starts at t.
func (t Token) opensOperand() bool {
	return t.IsOperand() || t.Kind == KindLParen
}

// String renders the token the way it is written in a pattern.
// Concat has no source form and renders as "&".
func (t Token) String() string {
	switch t.Kind {
	case KindLiteral:
		return string(t.Char)
	case KindClass:
		return t.Class
	case KindStar:
		return "*"
	case KindPlus:
		return "+"
	case KindQuestion:
		return "?"
	case KindOr:
		return "|"
	case KindConcat:
		return "&"
	case KindLParen:
		return "("
	case KindRParen:
		return ")"
	case KindStartAnchor:
		return "^"
	case KindEndAnchor:
		return "$"
	default:
		return t.Kind.String()
	}
}

// Postfix is a token stream in postfix order. Anchors, when present, are
// the first (^) and last ($) tokens; everything between them is the operand
// stream consumed by the NFA builder.
type Postfix []Token

// AnchoredStart reports whether the pattern is anchored at line start.
func (p Postfix) AnchoredStart() bool {
	return len(p) > 0 && p[0].Kind == KindStartAnchor
}

// AnchoredEnd reports whether the pattern is anchored at line end.
func (p Postfix) AnchoredEnd() bool {
	return len(p) > 0 && p[len(p)-1].Kind == KindEndAnchor
}

// Operands returns p without its leading and trailing anchors.
func (p Postfix) Operands() Postfix {
	if p.AnchoredStart() {
		p = p[1:]
	}
	if p.AnchoredEnd() {
		p = p[:len(p)-1]
	}
	return p
}

// String renders p as space separated tokens, e.g. "a b c | * & d &".
func (p Postfix) String() string {
	var sb strings.Builder
	for i, t := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}
