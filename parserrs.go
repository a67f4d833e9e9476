package rollin

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidToken is the error that every *LexError unwraps to.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidSyntax is the error that every *SyntaxError unwraps to.
	ErrInvalidSyntax = errors.New("invalid syntax")
)

// SyntaxError is an error indicating a token sequence that does not form an
// expression, usually because an operator lacks an operand. It implements
// InputError and unwraps to ErrInvalidSyntax.
type SyntaxError struct {
	// Col is the position of the operator missing an operand, or of the
	// token that could not be parsed.
	Col int
	// Token is the text of the token at Col. It is empty if there were no
	// tokens at all.
	Token string
	// Missing is "left" or "right" if an operator is missing that operand,
	// or empty if no operator was involved.
	Missing string
}

func (err *SyntaxError) Error() string {
	switch {
	case err.Missing != "":
		return errpos(err.Col, "missing "+err.Missing+" operand for "+strconv.Quote(err.Token))
	case err.Token != "":
		return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
	default:
		return errpos(err.Col, "no expression")
	}
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

func (err *SyntaxError) Unwrap() error {
	return ErrInvalidSyntax
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the start of the token that caused
	// the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LexError)(nil)
)
