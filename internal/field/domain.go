// Package field parses and expands single fields of cron expressions.
package field

import "fmt"

// Domain is the inclusive range of values a field may take.
type Domain struct {
	Min, Max int
}

// The domains of the five fields.
var (
	Minute     = Domain{0, 59} //nolint:gochecknoglobals
	Hour       = Domain{0, 23} //nolint:gochecknoglobals
	DayOfMonth = Domain{1, 31} //nolint:gochecknoglobals
	Month      = Domain{1, 12} //nolint:gochecknoglobals
	DayOfWeek  = Domain{0, 6}  //nolint:gochecknoglobals
)

// Contains checks whether v is within the domain.
func (d Domain) Contains(v int) bool {
	return d.Min <= v && v <= d.Max
}

// Size is the number of values in the domain.
func (d Domain) Size() int {
	return d.Max - d.Min + 1
}

// String gives "min-max".
func (d Domain) String() string {
	return fmt.Sprintf("%d-%d", d.Min, d.Max)
}
