// Package phrase turns short English schedule descriptions into cron expressions.
package phrase

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/favonia/cronkit/internal/cronexpr"
)

var (
	// ErrMissing is returned for empty descriptions.
	ErrMissing = errors.New("description is required")

	// ErrUnparseable is returned when no rule matches the description.
	ErrUnparseable = errors.New("Could not parse") //nolint:stylecheck
)

// A rule produces an expression from the submatches of its pattern.
// A producer may still reject the match (e.g., "at 13pm").
type rule struct {
	pattern *regexp.Regexp
	produce func(m []string) (string, bool)
}

// clockPattern matches "9am", "9:30 pm", "17:45", "noon" and "midnight".
// It contributes four submatches: the whole clock, the hour, the minute and "am"/"pm".
const clockPattern = `((\d{1,2})(?::(\d{2}))?\s*(am|pm)?|noon|midnight)`

func exact(expr string) func([]string) (string, bool) {
	return func([]string) (string, bool) { return expr, true }
}

// parseClock converts the four submatches of [clockPattern] to a 24-hour clock.
func parseClock(m []string) (int, int, bool) {
	switch m[0] {
	case "noon":
		return 12, 0, true
	case "midnight":
		return 0, 0, true
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}

	minute := 0
	if m[2] != "" {
		if minute, err = strconv.Atoi(m[2]); err != nil || minute > 59 {
			return 0, 0, false
		}
	}

	switch m[3] {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		hour %= 12
		if m[3] == "pm" {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, 0, false
		}
	}

	return hour, minute, true
}

// atClock builds a producer for "M H * * <dow>" where the clock starts at submatch i.
func atClock(i int, dow func(m []string) string) func([]string) (string, bool) {
	return func(m []string) (string, bool) {
		hour, minute, ok := parseClock(m[i : i+4])
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%d %d * * %s", minute, hour, dow(m)), true
	}
}

func constant(s string) func([]string) string {
	return func([]string) string { return s }
}

// every builds a producer for "every N <unit>" with N in [1, limit].
func every(limit int, format string) func([]string) (string, bool) {
	return func(m []string) (string, bool) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > limit {
			return "", false
		}
		return fmt.Sprintf(format, n), true
	}
}

//nolint:gochecknoglobals
var weekdays = map[string]int{
	"sunday": 0, "sun": 0,
	"monday": 1, "mon": 1,
	"tuesday": 2, "tue": 2, "tues": 2,
	"wednesday": 3, "wed": 3,
	"thursday": 4, "thu": 4, "thurs": 4,
	"friday": 5, "fri": 5,
	"saturday": 6, "sat": 6,
}

func weekday(m []string) string { return strconv.Itoa(weekdays[m[1]]) }

// rules are tried in order; the first rule that matches and produces an expression wins.
//
//nolint:gochecknoglobals
var rules = []rule{
	{regexp.MustCompile(`^every minute$`), exact("* * * * *")},
	{regexp.MustCompile(`^(?:every hour|hourly)$`), exact("0 * * * *")},
	{regexp.MustCompile(`^at noon$`), exact("0 12 * * *")},
	{regexp.MustCompile(`^(?:at midnight|daily)$`), exact("0 0 * * *")},
	{regexp.MustCompile(`^weekly$`), exact("0 0 * * 0")},
	{regexp.MustCompile(`^monthly$`), exact("0 0 1 * *")},
	{regexp.MustCompile(`^(?:yearly|annually)$`), exact("0 0 1 1 *")},
	{regexp.MustCompile(`^every (\d+) minutes?$`), every(59, "*/%d * * * *")},
	{regexp.MustCompile(`^every (\d+) hours?$`), every(23, "0 */%d * * *")},
	{regexp.MustCompile(`^(?:every day )?at ` + clockPattern + `$`), atClock(1, constant("*"))},
	{regexp.MustCompile(`^(?:on )?weekdays at ` + clockPattern + `$`), atClock(1, constant("1-5"))},
	{regexp.MustCompile(`^(?:on )?weekends at ` + clockPattern + `$`), atClock(1, constant("0,6"))},
	{regexp.MustCompile(`^every (sunday|sun|monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thu|friday|fri|saturday|sat) at ` + clockPattern + `$`), atClock(2, weekday)}, //nolint:lll
}

// Generate returns the expression described by the input.
// Every returned expression passes [cronexpr.Validate].
func Generate(description string) (string, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(description)), " ")
	if normalized == "" {
		return "", ErrMissing
	}

	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		expr, ok := r.produce(m)
		if !ok {
			continue
		}
		if err := cronexpr.Validate(expr); err != nil {
			return "", fmt.Errorf("generated an invalid expression %q: %w", expr, err)
		}
		return expr, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnparseable, description)
}
