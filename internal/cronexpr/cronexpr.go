// Package cronexpr parses and validates five-field cron expressions.
package cronexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/favonia/cronkit/internal/field"
)

// ErrMissing is returned for empty expressions.
var ErrMissing = errors.New("expression is required")

// FieldCountError is returned when an expression does not have exactly [NumFields] fields.
type FieldCountError struct {
	Got int
}

func (e FieldCountError) Error() string {
	return fmt.Sprintf("expected %d fields, got %d", NumFields, e.Got)
}

// Unwrap makes [FieldCountError] a syntax error.
func (e FieldCountError) Unwrap() error { return field.ErrSyntax }

// Expression is a parsed cron expression. It is immutable once returned by [Parse].
type Expression struct {
	raw   [NumFields]string
	specs [NumFields]field.Spec
}

// Parse splits the input on whitespace and parses the five fields in order.
// The first failing field is reported.
func Parse(input string) (Expression, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return Expression{}, ErrMissing
	}
	if len(tokens) != NumFields {
		return Expression{}, FieldCountError{Got: len(tokens)}
	}

	var e Expression
	for _, p := range Positions() {
		spec, err := field.Parse(tokens[p], p.Domain())
		if err != nil {
			return Expression{}, fmt.Errorf("invalid %s field %q: %w", p, tokens[p], err)
		}
		e.raw[p] = tokens[p]
		e.specs[p] = spec
	}
	return e, nil
}

// MustParse is [Parse] that panics on errors.
func MustParse(input string) Expression {
	e, err := Parse(input)
	if err != nil {
		panic(fmt.Errorf(`cronexpr.MustParse failed: %w`, err))
	}
	return e
}

// Validate checks whether the input is a valid expression.
func Validate(input string) error {
	_, err := Parse(input)
	return err
}

// Raw gives the token at the position as written.
func (e Expression) Raw(p Position) string { return e.raw[p] }

// Spec gives the parsed field at the position.
func (e Expression) Spec(p Position) field.Spec { return e.specs[p] }

// Expand gives the values matched at the position.
func (e Expression) Expand(p Position) []int { return field.Expand(e.specs[p], p.Domain()) }

// IsRestricted checks whether the field at the position excludes some value of its domain.
func (e Expression) IsRestricted(p Position) bool { return !field.IsFull(e.specs[p], p.Domain()) }

// String joins the raw tokens with single spaces.
func (e Expression) String() string { return strings.Join(e.raw[:], " ") }
