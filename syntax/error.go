package syntax

// An Error describes a failure to parse a pattern and gives the offending
// expression. The format follows regexp/syntax so callers can treat both
// the same way.
type Error struct {
	Code ErrorCode
	Expr string
}

func (e *Error) Error() string {
	return "error parsing regexp: " + e.Code.String() + ": `" + e.Expr + "`"
}

// An ErrorCode describes a failure to parse a pattern.
type ErrorCode string

const (
	ErrMissingBracket        ErrorCode = "missing closing ]"
	ErrEmptyClass            ErrorCode = "empty character class"
	ErrInvalidRange          ErrorCode = "invalid character class range"
	ErrTrailingBackslash     ErrorCode = "trailing backslash at end of expression"
	ErrMissingParen          ErrorCode = "missing closing )"
	ErrUnexpectedParen       ErrorCode = "unexpected )"
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"
	ErrMissingOperand        ErrorCode = "missing operand"
)

func (e ErrorCode) String() string {
	return string(e)
}
