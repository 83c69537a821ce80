package field

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrSyntax is wrapped by errors about ill-formed fields.
	ErrSyntax = errors.New("syntax error")

	// ErrRange is wrapped by errors about well-formed values outside the domain.
	ErrRange = errors.New("value out of range")
)

const allowedChars = "0123456789*-/,"

// Parse parses one field against its domain.
// A single element is returned as is; two or more become a [List].
// The first error from the left is reported.
func Parse(token string, d Domain) (Spec, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty field", ErrSyntax)
	}
	if i := strings.IndexFunc(token, func(r rune) bool { return !strings.ContainsRune(allowedChars, r) }); i >= 0 {
		return nil, fmt.Errorf("%w: unexpected character %q", ErrSyntax, token[i:i+1])
	}

	parts := strings.Split(token, ",")
	list := make(List, 0, len(parts))
	for _, part := range parts {
		spec, err := parseElement(part, d)
		if err != nil {
			return nil, err
		}
		list = append(list, spec)
	}

	if len(list) == 1 {
		return list[0], nil
	}
	return list, nil
}

func parseElement(s string, d Domain) (Spec, error) {
	switch {
	case s == "":
		return nil, fmt.Errorf("%w: empty list element", ErrSyntax)
	case strings.Contains(s, "/"):
		return parseStep(s, d)
	case strings.Contains(s, "-"):
		return parseRange(s, d)
	case s == "*":
		return Wildcard{}, nil
	default:
		v, err := parseValue(s, d)
		if err != nil {
			return nil, err
		}
		return Single(v), nil
	}
}

func parseStep(s string, d Domain) (Spec, error) {
	base, rawInterval, _ := strings.Cut(s, "/")
	if strings.Contains(rawInterval, "/") {
		return nil, fmt.Errorf("%w: %q has more than one %q", ErrSyntax, s, "/")
	}

	interval, err := strconv.Atoi(rawInterval)
	if err != nil || interval <= 0 {
		return nil, fmt.Errorf("%w: step %q is not a positive integer", ErrSyntax, rawInterval)
	}

	switch {
	case base == "*":
		return Step{Base: Wildcard{}, Interval: interval}, nil
	case strings.Contains(base, "-"):
		r, err := parseRange(base, d)
		if err != nil {
			return nil, err
		}
		return Step{Base: r, Interval: interval}, nil
	case base == "":
		return nil, fmt.Errorf("%w: step %q has no base", ErrSyntax, s)
	default:
		// "n/k" is shorthand for "n-max/k"
		lo, err := parseValue(base, d)
		if err != nil {
			return nil, err
		}
		return Step{Base: Range{Lo: lo, Hi: d.Max}, Interval: interval}, nil
	}
}

func parseRange(s string, d Domain) (Range, error) {
	rawLo, rawHi, _ := strings.Cut(s, "-")
	if rawLo == "" || rawHi == "" || strings.Contains(rawHi, "-") {
		return Range{}, fmt.Errorf("%w: %q is not a range", ErrSyntax, s)
	}

	lo, err := parseValue(rawLo, d)
	if err != nil {
		return Range{}, err
	}
	hi, err := parseValue(rawHi, d)
	if err != nil {
		return Range{}, err
	}
	if lo > hi {
		return Range{}, fmt.Errorf("%w: range %q starts after it ends", ErrSyntax, s)
	}

	return Range{Lo: lo, Hi: hi}, nil
}

func parseValue(s string, d Domain) (int, error) {
	if s == "*" {
		return 0, fmt.Errorf("%w: %q cannot be used inside a range", ErrSyntax, s)
	}

	v, err := strconv.Atoi(s)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: %s is not within %v", ErrRange, s, d)
	case err != nil:
		return 0, fmt.Errorf("%w: %q is not a number", ErrSyntax, s)
	case !d.Contains(v):
		return 0, fmt.Errorf("%w: %d is not within %v", ErrRange, v, d)
	default:
		return v, nil
	}
}
