package literal_test

import (
	"fmt"

	"github.com/coregx/coregrep/literal"
	"github.com/coregx/coregrep/syntax"
)

// Example demonstrates basic usage of literal sequences
func Example() {
	// A sequence of literals from an alternation like /foo|bar|baz/
	seq := literal.NewSeq(
		literal.NewLiteral([]byte("foo"), true),
		literal.NewLiteral([]byte("bar"), true),
		literal.NewLiteral([]byte("baz"), true),
	)

	fmt.Printf("Sequence has %d literals\n", seq.Len())
	fmt.Printf("First literal: %s\n", seq.Get(0).Bytes)

	// Output:
	// Sequence has 3 literals
	// First literal: foo
}

// ExampleSeq_Minimize demonstrates removing redundant literals
func ExampleSeq_Minimize() {
	// A line containing "xfoobar" also contains "foo"
	seq := literal.NewSeq(
		literal.NewLiteral([]byte("xfoobar"), true),
		literal.NewLiteral([]byte("foo"), true),
	)

	fmt.Printf("Before minimize: %d literals\n", seq.Len())
	seq.Minimize()
	fmt.Printf("After minimize: %d literals\n", seq.Len())
	fmt.Printf("Remaining: %s\n", seq.Get(0).Bytes)

	// Output:
	// Before minimize: 2 literals
	// After minimize: 1 literals
	// Remaining: foo
}

// ExampleExtractor_Extract shows exact and required literal sets
func ExampleExtractor_Extract() {
	e := literal.New(literal.DefaultConfig())

	exact := e.Extract(syntax.MustParse("colou?r"))
	fmt.Println(exact.Strings(), exact.AllComplete())

	required := e.Extract(syntax.MustParse("(foo|bar)+baz"))
	fmt.Println(required.Strings(), required.AllComplete())

	// Output:
	// [color colour] true
	// [baz] false
}
