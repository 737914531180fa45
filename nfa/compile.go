package nfa

import (
	"fmt"

	"github.com/coregx/coregrep/syntax"
)

// CompilerConfig configures NFA compilation behavior
type CompilerConfig struct {
	// MaxStates limits the size of the compiled NFA. Patterns that need
	// more states fail with ErrTooComplex. Zero means no limit.
	MaxStates int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxStates: 1 << 20,
	}
}

// Compiler turns postfix token streams into Thompson NFAs
type Compiler struct {
	config CompilerConfig
}

// NewCompiler creates a new NFA compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a new NFA compiler with default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile parses pattern and compiles it into an NFA. Every failure is
// returned as a *CompileError; the underlying *syntax.Error or *BuildError
// is available through errors.As.
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	p, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	n, err := c.CompilePostfix(p)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return n, nil
}

// CompilePostfix folds the operand stream of p into one NFA using a stack
// of sub-automata. Anchors at the ends of p are ignored; the caller handles
// them. A quantifier directly followed by '?' is compiled as its lazy form
// and the '?' is consumed.
//
// An empty operand stream compiles to a single epsilon transition, which
// matches the empty string.
func (c *Compiler) CompilePostfix(p syntax.Postfix) (*NFA, error) {
	tokens := p.Operands()
	if len(tokens) == 0 {
		return emptyNFA()
	}

	var stack []*NFA
	pop := func(t syntax.Token) (*NFA, error) {
		if len(stack) == 0 {
			return nil, internalError("operand stack underflow at %s", t.Kind)
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, nil
	}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		var (
			frag *NFA
			err  error
		)
		switch t.Kind {
		case syntax.KindLiteral:
			frag, err = leaf(LiteralMatcher(t.Char))

		case syntax.KindClass:
			m, cerr := ClassMatcher(t.Class)
			if cerr != nil {
				return nil, cerr
			}
			frag, err = leaf(m)

		case syntax.KindStar, syntax.KindPlus, syntax.KindQuestion:
			lazy := i+1 < len(tokens) && tokens[i+1].Kind == syntax.KindQuestion
			if lazy {
				i++
			}
			inner, perr := pop(t)
			if perr != nil {
				return nil, perr
			}
			frag, err = repeat(t.Kind, inner, lazy)

		case syntax.KindConcat, syntax.KindOr:
			right, perr := pop(t)
			if perr != nil {
				return nil, perr
			}
			left, perr := pop(t)
			if perr != nil {
				return nil, perr
			}
			if t.Kind == syntax.KindConcat {
				frag, err = concat(left, right)
			} else {
				frag, err = alternate(left, right)
			}

		default:
			return nil, internalError("unexpected %s token in operand stream", t.Kind)
		}
		if err != nil {
			return nil, err
		}
		if c.config.MaxStates > 0 && frag.States() > c.config.MaxStates {
			return nil, fmt.Errorf("%w: more than %d states", ErrTooComplex, c.config.MaxStates)
		}
		stack = append(stack, frag)
	}

	if len(stack) != 1 {
		return nil, internalError("%d automata left on the operand stack", len(stack))
	}
	return stack[0], nil
}

func emptyNFA() (*NFA, error) {
	b := NewBuilderWithCapacity(2)
	start, end := b.AddState(), b.AddState()
	if err := b.AddEpsilon(start, end); err != nil {
		return nil, err
	}
	b.SetStart(start)
	b.SetEnd(end)
	return b.Build()
}

// leaf builds 0 --m--> 1.
func leaf(m Matcher) (*NFA, error) {
	b := NewBuilderWithCapacity(2)
	start, end := b.AddState(), b.AddState()
	if err := b.AddTransition(start, m, end); err != nil {
		return nil, err
	}
	b.SetStart(start)
	b.SetEnd(end)
	return b.Build()
}

// repeat wraps inner with a new start ns and end ne:
//
//	Star:     ns -> {inner, ne}   inner.end -> {ns, ne}
//	Plus:     ns -> inner         inner.end -> {ns, ne}
//	Question: ns -> {inner, ne}   inner.end -> ne
func repeat(kind syntax.Kind, inner *NFA, lazy bool) (*NFA, error) {
	b := NewBuilderWithCapacity(inner.States() + 2)
	off := b.Append(inner)
	in, out := inner.start+off, inner.end+off
	ns, ne := b.AddState(), b.AddState()

	var err error
	switch kind {
	case syntax.KindStar:
		if err = b.branch(ns, ne, in, lazy); err == nil {
			err = b.branch(out, ne, ns, lazy)
		}
	case syntax.KindPlus:
		if err = b.AddEpsilon(ns, in); err == nil {
			err = b.branch(out, ne, ns, lazy)
		}
	case syntax.KindQuestion:
		if err = b.branch(ns, ne, in, lazy); err == nil {
			err = b.AddEpsilon(out, ne)
		}
	default:
		err = internalError("%s is not a quantifier", kind)
	}
	if err != nil {
		return nil, err
	}
	b.SetStart(ns)
	b.SetEnd(ne)
	return b.Build()
}

// concat links left.end -> right.start and wraps both in a new start and end.
func concat(left, right *NFA) (*NFA, error) {
	b := NewBuilderWithCapacity(left.States() + right.States() + 2)
	lo := b.Append(left)
	ro := b.Append(right)
	ns, ne := b.AddState(), b.AddState()

	for _, e := range [][2]StateID{
		{ns, left.start + lo},
		{left.end + lo, right.start + ro},
		{right.end + ro, ne},
	} {
		if err := b.AddEpsilon(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	b.SetStart(ns)
	b.SetEnd(ne)
	return b.Build()
}

// alternate joins left and right in parallel. The right branch is added
// to the new start first, so the left alternative is explored first.
func alternate(left, right *NFA) (*NFA, error) {
	b := NewBuilderWithCapacity(left.States() + right.States() + 2)
	lo := b.Append(left)
	ro := b.Append(right)
	ns, ne := b.AddState(), b.AddState()

	for _, e := range [][2]StateID{
		{ns, right.start + ro},
		{ns, left.start + lo},
		{left.end + lo, ne},
		{right.end + ro, ne},
	} {
		if err := b.AddEpsilon(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	b.SetStart(ns)
	b.SetEnd(ne)
	return b.Build()
}
