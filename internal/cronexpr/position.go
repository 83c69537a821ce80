package cronexpr

import "github.com/favonia/cronkit/internal/field"

// Position identifies one of the five fields.
type Position int

// The five positions, in the order they appear in an expression.
const (
	Minute Position = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
	NumFields int = iota
)

//nolint:gochecknoglobals
var positions = [NumFields]struct {
	name   string
	key    string
	domain field.Domain
}{
	Minute:     {"minute", "minute", field.Minute},
	Hour:       {"hour", "hour", field.Hour},
	DayOfMonth: {"day-of-month", "dayOfMonth", field.DayOfMonth},
	Month:      {"month", "month", field.Month},
	DayOfWeek:  {"day-of-week", "dayOfWeek", field.DayOfWeek},
}

// Positions lists all positions in order.
func Positions() []Position {
	return []Position{Minute, Hour, DayOfMonth, Month, DayOfWeek}
}

// String gives the human-readable name of the position.
func (p Position) String() string { return positions[p].name }

// Key gives the camel-cased key used in structured output.
func (p Position) Key() string { return positions[p].key }

// Domain gives the values allowed at the position.
func (p Position) Domain() field.Domain { return positions[p].domain }
