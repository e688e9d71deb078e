package dice

import (
	"errors"
	"fmt"
)

// ErrParse indicates an expression does not match the dice grammar.
var ErrParse = errors.New("invalid dice expression")

// ErrValidation indicates a parsed expression has degenerate or disallowed values.
var ErrValidation = errors.New("invalid dice parameters")

// ErrMissingSource indicates a roll was requested without a random source.
var ErrMissingSource = errors.New("random source is required")

// ParseError describes why an expression was rejected by the parser.
type ParseError struct {
	Expression string
	Reason     string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %q", ErrParse, e.Expression)
	}
	return fmt.Sprintf("%v: %q: %s", ErrParse, e.Expression, e.Reason)
}

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ValidationError describes a parameter outside its allowed range.
type ValidationError struct {
	Field string
	Value uint
	// Limit is the configured bound that was exceeded, zero when the value
	// was rejected for being zero.
	Limit  uint
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrValidation, e.Field, e.Reason)
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
