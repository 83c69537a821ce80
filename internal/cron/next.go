// Package cron handles anything related to time.
package cron

import (
	"errors"
	"fmt"
	"time"

	"github.com/favonia/cronkit/internal/cronexpr"
)

const (
	// DefaultCount is the number of occurrences computed when the caller does not say.
	DefaultCount = 5

	// MaxCount is the largest number of occurrences computed in one call.
	MaxCount = 20

	// SearchHorizon is how many years after the previous occurrence the search may go.
	// The longest gap between two February 29ths is eight years.
	SearchHorizon = 8
)

// ErrExhausted is returned when no further occurrence exists within [SearchHorizon].
var ErrExhausted = errors.New("no matching time found")

// ClampCount moves count into [1, MaxCount].
func ClampCount(count int) int {
	return min(max(count, 1), MaxCount)
}

// matcher holds the expanded fields as bit sets.
type matcher struct {
	minute, hour, dom, month, dow uint64

	// When both day fields are restricted, a day matching either of them is enough.
	eitherDay bool
}

func bits(vals []int) uint64 {
	var set uint64
	for _, v := range vals {
		set |= 1 << uint(v)
	}
	return set
}

func has(set uint64, v int) bool {
	return set&(1<<uint(v)) != 0
}

func newMatcher(e cronexpr.Expression) matcher {
	return matcher{
		minute:    bits(e.Expand(cronexpr.Minute)),
		hour:      bits(e.Expand(cronexpr.Hour)),
		dom:       bits(e.Expand(cronexpr.DayOfMonth)),
		month:     bits(e.Expand(cronexpr.Month)),
		dow:       bits(e.Expand(cronexpr.DayOfWeek)),
		eitherDay: e.IsRestricted(cronexpr.DayOfMonth) && e.IsRestricted(cronexpr.DayOfWeek),
	}
}

func (m matcher) dayMatches(t time.Time) bool {
	domMatch := has(m.dom, t.Day())
	dowMatch := has(m.dow, int(t.Weekday()))
	if m.eitherDay {
		return domMatch || dowMatch
	}
	return domMatch && dowMatch
}

// next finds the earliest matching minute at or after t and not after limit.
// Both t and the result are civil times expressed in UTC.
func (m matcher) next(t, limit time.Time) (time.Time, bool) {
	for !t.After(limit) {
		switch {
		case !has(m.month, int(t.Month())):
			t = time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
		case !m.dayMatches(t):
			t = time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, time.UTC)
		case !has(m.hour, t.Hour()):
			t = t.Truncate(time.Hour).Add(time.Hour)
		case !has(m.minute, t.Minute()):
			t = t.Add(time.Minute)
		default:
			return t, true
		}
	}
	return time.Time{}, false
}

// Next computes the first count occurrences strictly after now, with count clamped by [ClampCount].
// Fields are matched against the wall clock in the location of now.
// Wall-clock times skipped or repeated by daylight saving changes produce at most one occurrence,
// so the result is always strictly increasing.
func Next(e cronexpr.Expression, now time.Time, count int) ([]time.Time, error) {
	count = ClampCount(count)
	m := newMatcher(e)
	loc := now.Location()

	civil := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, time.UTC).Add(time.Minute)
	last := now
	results := make([]time.Time, 0, count)
	for len(results) < count {
		found, ok := m.next(civil, civil.AddDate(SearchHorizon, 0, 0))
		if !ok {
			return nil, fmt.Errorf("%w within %d years", ErrExhausted, SearchHorizon)
		}

		instant := time.Date(found.Year(), found.Month(), found.Day(), found.Hour(), found.Minute(), 0, 0, loc)
		if instant.After(last) {
			results = append(results, instant)
			last = instant
		}
		civil = found.Add(time.Minute)
	}
	return results, nil
}
