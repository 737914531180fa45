package meta

import (
	"errors"

	"github.com/coregx/coregrep/literal"
	"github.com/coregx/coregrep/nfa"
	"github.com/coregx/coregrep/prefilter"
	"github.com/coregx/coregrep/syntax"
)

// Compile compiles a pattern into an executable Engine.
//
// Steps:
//  1. Parse pattern into postfix tokens
//  2. Compile the operand stream to an NFA
//  3. Extract literals
//  4. Build prefilter (if good literals exist)
//  5. Select strategy
//
// Returns an error if:
//   - Pattern syntax is invalid (the error wraps a *syntax.Error)
//   - Pattern is too complex (state limit exceeded)
//   - Configuration is invalid
//
// Example:
//
//	engine, err := meta.Compile("hello.*world")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MaxClassExpansion = 0 // never expand classes into literals
//	engine, err := meta.CompileWithConfig("[ab]c", config)
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	postfix, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	compiler := nfa.NewCompiler(nfa.CompilerConfig{MaxStates: config.MaxStates})
	nfaEngine, err := compiler.CompilePostfix(postfix)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	var (
		literals = literal.NewSeq()
		pf       prefilter.Prefilter
	)
	if config.EnablePrefilter {
		extractor := literal.New(literal.ExtractorConfig{
			MaxLiterals:   config.MaxLiterals,
			MaxLiteralLen: 64,
			MaxClassSize:  config.MaxClassExpansion,
		})
		literals = extractor.Extract(postfix)
		pf = buildPrefilter(literals, config)
	}

	anchoredStart, anchoredEnd := postfix.AnchoredStart(), postfix.AnchoredEnd()
	strategy := SelectStrategy(anchoredStart, anchoredEnd, literals, pf)

	e := &Engine{
		pattern:       pattern,
		nfa:           nfaEngine,
		backtracker:   nfa.NewBacktracker(nfaEngine),
		anchoredStart: anchoredStart,
		anchoredEnd:   anchoredEnd,
		literals:      literals,
		prefilter:     pf,
		strategy:      strategy,
		config:        config,
		statePool:     newSearchStatePool(),
	}
	if strategy == UsePrefilterBacktrack {
		e.tracker = prefilter.NewTracker(pf)
	}
	return e, nil
}

// CompileError represents a pattern compilation error.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
// For syntax errors, returns the error directly to match stdlib behavior.
func (e *CompileError) Error() string {
	var syntaxErr *syntax.Error
	if errors.As(e.Err, &syntaxErr) {
		return syntaxErr.Error()
	}
	return "regexp: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
