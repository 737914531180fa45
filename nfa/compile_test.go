package nfa

import (
	"errors"
	"testing"

	"github.com/coregx/coregrep/syntax"
)

func compileNFAForTest(pattern string) *NFA {
	compiler := NewDefaultCompiler()
	nfa, err := compiler.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return nfa
}

func TestCompile_Shapes(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a", "NFA{states: 2, start: 0, end: 1}\n  0: a->1\n  1: end"},
		{"", "NFA{states: 2, start: 0, end: 1}\n  0: ε->1\n  1: end"},
		{"^$", "NFA{states: 2, start: 0, end: 1}\n  0: ε->1\n  1: end"},
		{
			"ab",
			"NFA{states: 6, start: 4, end: 5}\n" +
				"  0: a->1\n  1: ε->2\n  2: b->3\n  3: ε->5\n  4: ε->0\n  5: end",
		},
		{
			"a*",
			"NFA{states: 4, start: 2, end: 3}\n" +
				"  0: a->1\n  1: ε->3, ε->2\n  2: ε->3, ε->0\n  3: end",
		},
		{
			"a*?",
			"NFA{states: 4, start: 2, end: 3}\n" +
				"  0: a->1\n  1: ε->2, ε->3\n  2: ε->0, ε->3\n  3: end",
		},
		{
			"a+",
			"NFA{states: 4, start: 2, end: 3}\n" +
				"  0: a->1\n  1: ε->3, ε->2\n  2: ε->0\n  3: end",
		},
		{
			"a?",
			"NFA{states: 4, start: 2, end: 3}\n" +
				"  0: a->1\n  1: ε->3\n  2: ε->3, ε->0\n  3: end",
		},
		{
			"a??",
			"NFA{states: 4, start: 2, end: 3}\n" +
				"  0: a->1\n  1: ε->3\n  2: ε->0, ε->3\n  3: end",
		},
		{
			"a|b",
			"NFA{states: 6, start: 4, end: 5}\n" +
				"  0: a->1\n  1: ε->5\n  2: b->3\n  3: ε->5\n  4: ε->2, ε->0\n  5: end",
		},
		{
			"[^ab]",
			"NFA{states: 2, start: 0, end: 1}\n  0: [^ab]->1\n  1: end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			nfa := compileNFAForTest(tt.pattern)
			if got := nfa.String(); got != tt.want {
				t.Errorf("Compile(%q):\n%s\nwant:\n%s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestCompile_Validates(t *testing.T) {
	patterns := []string{
		"a", "abc", "a|b|c", "a(b|c)*d", "(a*)*", "(a|b)+?c", "x*?y??z+?",
		`\d+-\w*\s?`, "[a-z]+@[a-z]+", "^(foo|bar)$", ".*", "héllo|wörld", "((a))",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			nfa := compileNFAForTest(pattern)
			if err := nfa.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if n := len(nfa.State(nfa.End()).Transitions()); n != 0 {
				t.Errorf("end state has %d transitions", n)
			}
		})
	}
}

func TestCompile_SyntaxErrors(t *testing.T) {
	tests := []struct {
		pattern string
		code    syntax.ErrorCode
	}{
		{"[z-a]", syntax.ErrInvalidRange},
		{"x[b-a]y", syntax.ErrInvalidRange},
		{"[abc", syntax.ErrMissingBracket},
		{"(a", syntax.ErrMissingParen},
		{"a)", syntax.ErrUnexpectedParen},
		{`a\`, syntax.ErrTrailingBackslash},
		{"*", syntax.ErrMissingRepeatArgument},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := NewDefaultCompiler().Compile(tt.pattern)

			var cerr *CompileError
			if !errors.As(err, &cerr) {
				t.Fatalf("Compile(%q) error = %v, want *CompileError", tt.pattern, err)
			}
			if cerr.Pattern != tt.pattern {
				t.Errorf("CompileError.Pattern = %q, want %q", cerr.Pattern, tt.pattern)
			}

			var serr *syntax.Error
			if !errors.As(err, &serr) {
				t.Fatalf("Compile(%q) error = %v, want wrapped *syntax.Error", tt.pattern, err)
			}
			if serr.Code != tt.code {
				t.Errorf("code = %q, want %q", serr.Code, tt.code)
			}
			if errors.Is(err, ErrInternal) {
				t.Error("pattern errors must not be internal errors")
			}
		})
	}
}

func TestCompilePostfix_InternalErrors(t *testing.T) {
	a, b := syntax.Literal('a'), syntax.Literal('b')
	tests := []struct {
		name string
		p    syntax.Postfix
	}{
		{"binary underflow", syntax.Postfix{a, syntax.Op(syntax.KindConcat)}},
		{"quantifier underflow", syntax.Postfix{syntax.Op(syntax.KindStar)}},
		{"leftover operands", syntax.Postfix{a, b}},
		{"grouping token", syntax.Postfix{a, syntax.Op(syntax.KindLParen)}},
		{"inner anchor", syntax.Postfix{a, syntax.Op(syntax.KindStartAnchor), b, syntax.Op(syntax.KindConcat)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDefaultCompiler().CompilePostfix(tt.p)
			if !errors.Is(err, ErrInternal) {
				t.Fatalf("CompilePostfix(%s) error = %v, want ErrInternal", tt.p, err)
			}
			var berr *BuildError
			if !errors.As(err, &berr) {
				t.Errorf("error %T is not a *BuildError", err)
			}
		})
	}
}

func TestCompile_MaxStates(t *testing.T) {
	c := NewCompiler(CompilerConfig{MaxStates: 5})
	if _, err := c.Compile("a"); err != nil {
		t.Fatalf("Compile(a) error = %v", err)
	}
	if _, err := c.Compile("abc"); !errors.Is(err, ErrTooComplex) {
		t.Errorf("Compile(abc) error = %v, want ErrTooComplex", err)
	}

	unlimited := NewCompiler(CompilerConfig{})
	if _, err := unlimited.Compile("abcdefghij"); err != nil {
		t.Errorf("unlimited Compile error = %v", err)
	}
}
