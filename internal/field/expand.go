package field

import (
	"cmp"

	"github.com/favonia/cronkit/internal/sliceutil"
)

// Expand lists the values matched by the spec, in increasing order and without duplicates.
// The spec is assumed to come from [Parse] with the same domain.
func Expand(spec Spec, d Domain) []int {
	switch s := spec.(type) {
	case Wildcard:
		return progression(d.Min, d.Max, 1)
	case Single:
		return []int{int(s)}
	case Range:
		return progression(s.Lo, s.Hi, 1)
	case Step:
		lo, hi := bounds(s.Base, d)
		return progression(lo, hi, s.Interval)
	case List:
		var vals []int
		for _, sub := range s {
			vals = append(vals, Expand(sub, d)...)
		}
		return sliceutil.SortAndCompact(vals, cmp.Compare[int])
	default:
		return nil
	}
}

// IsFull checks whether the spec matches the whole domain.
func IsFull(spec Spec, d Domain) bool {
	return len(Expand(spec, d)) == d.Size()
}

func bounds(base Spec, d Domain) (int, int) {
	if r, ok := base.(Range); ok {
		return r.Lo, r.Hi
	}
	return d.Min, d.Max
}

// progression never steps past hi, even for steps close to the largest int.
func progression(lo, hi, step int) []int {
	if lo > hi {
		return []int{}
	}
	vals := make([]int, 0, (hi-lo)/step+1)
	for v := lo; ; v += step {
		vals = append(vals, v)
		if v > hi-step {
			return vals
		}
	}
}
