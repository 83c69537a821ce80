package field

import (
	"strconv"
	"strings"
)

// Spec is the parsed form of a field. It is one of
// [Wildcard], [Single], [Range], [Step] and [List].
type Spec interface {
	// String gives back the canonical text of the spec.
	String() string

	isSpec()
}

// Wildcard matches the whole domain.
type Wildcard struct{}

// Single matches exactly one value.
type Single int

// Range matches the values from Lo to Hi, inclusive. Lo never exceeds Hi.
type Range struct {
	Lo, Hi int
}

// Step matches every Interval-th value of Base, starting at its lower bound.
// Base is either [Wildcard] or [Range].
type Step struct {
	Base     Spec
	Interval int
}

// List is the union of its elements, none of which is a List.
type List []Spec

func (Wildcard) isSpec() {}
func (Single) isSpec()   {}
func (Range) isSpec()    {}
func (Step) isSpec()     {}
func (List) isSpec()     {}

func (Wildcard) String() string { return "*" }

func (s Single) String() string { return strconv.Itoa(int(s)) }

func (r Range) String() string { return strconv.Itoa(r.Lo) + "-" + strconv.Itoa(r.Hi) }

func (s Step) String() string { return s.Base.String() + "/" + strconv.Itoa(s.Interval) }

func (l List) String() string {
	items := make([]string, 0, len(l))
	for _, s := range l {
		items = append(items, s.String())
	}
	return strings.Join(items, ",")
}
