package syntax

// Parse converts pattern into postfix order.
//
// Anchors are pulled out of the stream before the precedence rewrite: if
// a ^ occurs anywhere the result starts with StartAnchor, if a $ occurs
// anywhere it ends with EndAnchor. Their position is otherwise ignored.
//
// A pattern without operands ("", "^", "^$") is valid and yields a
// postfix stream that contains only its anchors.
func Parse(pattern string) (Postfix, error) {
	tokens, err := lex(pattern)
	if err != nil {
		return nil, err
	}

	anchoredStart, anchoredEnd := false, false
	operands := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case KindStartAnchor:
			anchoredStart = true
		case KindEndAnchor:
			anchoredEnd = true
		default:
			operands = append(operands, t)
		}
	}

	if err := checkArity(pattern, operands); err != nil {
		return nil, err
	}

	out := make(Postfix, 0, 2*len(operands)+2)
	if anchoredStart {
		out = append(out, Op(KindStartAnchor))
	}
	out = shuntingYard(out, insertConcat(operands))
	if anchoredEnd {
		out = append(out, Op(KindEndAnchor))
	}
	return out, nil
}

// MustParse is like Parse but panics if the pattern cannot be parsed.
func MustParse(pattern string) Postfix {
	p, err := Parse(pattern)
	if err != nil {
		panic(`syntax: Parse(` + "`" + pattern + "`" + `): ` + err.Error())
	}
	return p
}

// checkArity rejects streams where an operator lacks an operand or the
// groups do not balance. After it succeeds every postfix stream produced
// from tokens evaluates to exactly one operand.
func checkArity(pattern string, tokens []Token) error {
	depth := 0
	operand := false // an operand ends right before the current token
	for _, t := range tokens {
		switch {
		case t.IsOperand():
			operand = true
		case t.IsQuantifier():
			if !operand {
				return &Error{Code: ErrMissingRepeatArgument, Expr: t.String()}
			}
		case t.Kind == KindOr:
			if !operand {
				return &Error{Code: ErrMissingOperand, Expr: pattern}
			}
			operand = false
		case t.Kind == KindLParen:
			depth++
			operand = false
		case t.Kind == KindRParen:
			if depth == 0 {
				return &Error{Code: ErrUnexpectedParen, Expr: pattern}
			}
			if !operand {
				return &Error{Code: ErrMissingOperand, Expr: pattern}
			}
			depth--
		}
	}
	if depth > 0 {
		return &Error{Code: ErrMissingParen, Expr: pattern}
	}
	if len(tokens) > 0 && !operand {
		return &Error{Code: ErrMissingOperand, Expr: pattern}
	}
	return nil
}

// insertConcat adds an explicit Concat between every pair of tokens where
// the first closes an operand and the second opens one.
func insertConcat(tokens []Token) []Token {
	out := make([]Token, 0, 2*len(tokens))
	for i, t := range tokens {
		if i > 0 && tokens[i-1].closesOperand() && t.opensOperand() {
			out = append(out, Op(KindConcat))
		}
		out = append(out, t)
	}
	return out
}

// shuntingYard appends the postfix form of infix to out.
//
// Precedence is quantifier > Concat > Or and every operator associates
// left to right, so an arriving operator first flushes the stacked
// operators that bind at least as tightly.
func shuntingYard(out Postfix, infix []Token) Postfix {
	var stack []Token
	top := func() (Token, bool) {
		if len(stack) == 0 {
			return Token{}, false
		}
		return stack[len(stack)-1], true
	}
	pop := func() {
		out = append(out, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}

	for _, t := range infix {
		switch t.Kind {
		case KindLiteral, KindClass:
			out = append(out, t)
		case KindStar, KindPlus, KindQuestion:
			for s, ok := top(); ok && s.IsQuantifier(); s, ok = top() {
				pop()
			}
			stack = append(stack, t)
		case KindConcat:
			for s, ok := top(); ok && (s.IsQuantifier() || s.Kind == KindConcat); s, ok = top() {
				pop()
			}
			stack = append(stack, t)
		case KindOr:
			for s, ok := top(); ok && s.Kind != KindLParen; s, ok = top() {
				pop()
			}
			stack = append(stack, t)
		case KindLParen:
			stack = append(stack, t)
		case KindRParen:
			for s, ok := top(); ok && s.Kind != KindLParen; s, ok = top() {
				pop()
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1] // matching (
			}
		}
	}
	for len(stack) > 0 {
		pop()
	}
	return out
}
