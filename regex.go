// Package coregrep provides the matching core of a line-oriented grep.
//
// A pattern in the grep dialect is compiled once into a Thompson NFA and
// then run against individual lines by a backtracking simulator. Lines that
// cannot contain a match are skipped by a literal prefilter.
//
// Supported syntax:
//
//	c        literal character
//	.        any character except \n and \r
//	\d \w \s digit, word character, whitespace
//	[abc]    character class, a-z ranges allowed, [^abc] negated
//	X* X+ X? zero or more, one or more, zero or one
//	X*? X+? X?? lazy forms
//	X|Y      alternation
//	(X)      grouping
//	^ $      line start and line end anchors
//	\c       escaped literal
//
// Basic usage:
//
//	re, err := coregrep.Compile(`a(b|c)*d`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range lines {
//	    if re.MatchString(line) {
//	        fmt.Println(line)
//	    }
//	}
//
// Limitations:
//   - No backreferences or lookaround
//   - No counted repetition, flags or capture groups
//   - Matching is backtracking and can take exponential time on
//     pathological pattern and line pairs
package coregrep

import (
	"errors"

	"github.com/coregx/coregrep/meta"
	"github.com/coregx/coregrep/syntax"
)

// Matcher is what a grep front end needs from a compiled pattern.
type Matcher interface {
	MatchString(line string) bool
}

var _ Matcher = (*Regex)(nil)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines, except for
// ResetStats.
//
// Example:
//
//	re := coregrep.MustCompile(`hello`)
//	if re.Match([]byte("hello world")) {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern.
//
// A malformed pattern returns a *syntax.Error describing the problem.
//
// Example:
//
//	re, err := coregrep.Compile(`[0-9]+-[0-9]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// Example:
//
//	var logLine = coregrep.MustCompile(`^(ERROR|WARN) `)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := coregrep.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := coregrep.CompileWithConfig("foo|bar", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		var syntaxErr *syntax.Error
		if errors.As(err, &syntaxErr) {
			return nil, syntaxErr
		}
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// QuoteMeta returns a string that escapes all dialect metacharacters
// inside the argument text; the returned string is a pattern that matches
// the literal text.
//
// Example:
//
//	escaped := coregrep.QuoteMeta("1+1=2?")
//	// escaped = `1\+1=2\?`
func QuoteMeta(s string) string {
	const special = `\.+*?()|[]^$`

	// Fast path: nothing to escape.
	i := 0
	for ; i < len(s); i++ {
		if isSpecial(s[i], special) {
			break
		}
	}
	if i == len(s) {
		return s
	}

	b := make([]byte, 0, 2*len(s)-i)
	b = append(b, s[:i]...)
	for ; i < len(s); i++ {
		if isSpecial(s[i], special) {
			b = append(b, '\\')
		}
		b = append(b, s[i])
	}
	return string(b)
}

func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// Match reports whether line contains a match of the pattern.
func (r *Regex) Match(line []byte) bool {
	return r.engine.IsMatch(line)
}

// MatchString reports whether line contains a match of the pattern.
//
// Example:
//
//	re := coregrep.MustCompile(`a$`)
//	println(re.MatchString("ba")) // true
//	println(re.MatchString("ab")) // false
func (r *Regex) MatchString(line string) bool {
	return r.engine.IsMatch([]byte(line))
}

// Find returns the text of the first match in line, or nil.
func (r *Regex) Find(line []byte) []byte {
	m := r.engine.Find(line)
	if m == nil {
		return nil
	}
	return m.Bytes()
}

// FindString returns the text of the first match in line. It returns ""
// both when there is no match and when the match is empty; use
// FindStringIndex to tell them apart.
func (r *Regex) FindString(line string) string {
	loc := r.FindStringIndex(line)
	if loc == nil {
		return ""
	}
	return line[loc[0]:loc[1]]
}

// FindIndex returns a two-element slice holding the byte offsets of the
// first match, or nil if there is none.
//
// Example:
//
//	re := coregrep.MustCompile(`\d+`)
//	loc := re.FindIndex([]byte("age: 42"))
//	println(loc[0], loc[1]) // 5, 7
func (r *Regex) FindIndex(line []byte) []int {
	return r.engine.FindIndex(line)
}

// FindStringIndex is the string version of FindIndex.
func (r *Regex) FindStringIndex(line string) []int {
	return r.engine.FindIndex([]byte(line))
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Strategy reports how lines are matched for this pattern.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Stats returns execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}
