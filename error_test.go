package coregrep

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/coregrep/meta"
	"github.com/coregx/coregrep/nfa"
	"github.com/coregx/coregrep/syntax"
)

// Messages for errors both dialects share follow regexp/syntax.
func TestErrorMessageFormat(t *testing.T) {
	patterns := []string{
		"[invalid",
		`\`,
		"(abc",
		"*abc",
		"abc)",
	}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			_, stdlibErr := regexp.Compile(pattern)
			require.Error(t, stdlibErr)

			_, ourErr := Compile(pattern)
			require.Error(t, ourErr)
			assert.Equal(t, stdlibErr.Error(), ourErr.Error())
		})
	}
}

func TestCompile_ReturnsSyntaxError(t *testing.T) {
	tests := []struct {
		pattern string
		code    syntax.ErrorCode
	}{
		{"[abc", syntax.ErrMissingBracket},
		{"[]", syntax.ErrEmptyClass},
		{`a\`, syntax.ErrTrailingBackslash},
		{"[z-a]", syntax.ErrInvalidRange},
		{"(a", syntax.ErrMissingParen},
		{"a)", syntax.ErrUnexpectedParen},
		{"a|", syntax.ErrMissingOperand},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			assert.Nil(t, re)
			var se *syntax.Error
			require.True(t, errors.As(err, &se), "got %T", err)
			assert.Equal(t, tt.code, se.Code)
		})
	}
}

func TestCompileWithConfig_Errors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLiterals = 0
	_, err := CompileWithConfig("a", cfg)
	var ce *meta.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "MaxLiterals", ce.Field)

	cfg = DefaultConfig()
	cfg.MaxStates = 16
	_, err = CompileWithConfig("abcdefgh", cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, nfa.ErrTooComplex)
}

func TestMustCompilePanicFormat(t *testing.T) {
	pattern := "[invalid"

	var stdlibPanic string
	func() {
		defer func() {
			if r := recover(); r != nil {
				stdlibPanic = r.(string)
			}
		}()
		regexp.MustCompile(pattern)
	}()

	assert.PanicsWithValue(t, stdlibPanic, func() { MustCompile(pattern) })
}
