package forth

import (
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow       = errors.New("stack underflow")
	ErrStackOverflow        = errors.New("stack overflow")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrUnknownWord          = errors.New("unknown word")
	ErrInvalidDefinition    = errors.New("invalid definition")
	ErrUnbalancedDefinition = errors.New("unbalanced definition")
	ErrNumberRange          = errors.New("number out of range")
)

// WordError annotates an evaluation failure with the word being processed
// when it happened.
type WordError struct {
	Word string
	Err  error
}

func (err *WordError) Error() string { return fmt.Sprintf("%v: %v", err.Word, err.Err) }
func (err *WordError) Unwrap() error { return err.Err }

// LexError reports a token that looked like an integer literal but could not
// be parsed.
type LexError struct {
	Token string
	Err   error
}

func (err *LexError) Error() string { return fmt.Sprintf("invalid literal %q: %v", err.Token, err.Err) }
func (err *LexError) Unwrap() error { return err.Err }

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }
