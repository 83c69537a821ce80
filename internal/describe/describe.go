// Package describe renders cron expressions as English phrases.
//
// Only common shapes are recognized; everything else gets a generic
// description that lists the fields as written.
package describe

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/favonia/cronkit/internal/cronexpr"
	"github.com/favonia/cronkit/internal/field"
	"github.com/favonia/cronkit/internal/pp"
)

// maxListedDays is the largest number of days of a month listed one by one.
const maxListedDays = 5

// Describe gives a best-effort English description. It never fails.
func Describe(e cronexpr.Expression) string {
	clock, daily, ok := describeClock(e)
	if !ok {
		return fallback(e)
	}

	days, ok := describeDays(e)
	if !ok {
		return fallback(e)
	}
	if days == "" && daily {
		days = "every day"
	}

	phrases := []string{clock}
	if days != "" {
		phrases = append(phrases, days)
	}
	if e.IsRestricted(cronexpr.Month) {
		phrases = append(phrases, "in "+pp.EnglishJoinMap(monthName, e.Expand(cronexpr.Month)))
	}
	return capitalize(strings.Join(phrases, " "))
}

func fallback(e cronexpr.Expression) string {
	return fmt.Sprintf("Custom schedule (%s)", pp.JoinMap(func(p cronexpr.Position) string {
		return p.String() + ": " + e.Raw(p)
	}, cronexpr.Positions()))
}

// describeClock also tells whether the phrase names specific hours,
// in which case "every day" reads better than nothing.
func describeClock(e cronexpr.Expression) (string, bool, bool) {
	minute, hour := e.Spec(cronexpr.Minute), e.Spec(cronexpr.Hour)

	switch m := minute.(type) {
	case field.Wildcard:
		switch h := hour.(type) {
		case field.Wildcard:
			return "every minute", false, true
		case field.Single:
			return fmt.Sprintf("every minute from %s to %s", clockTime(int(h), 0), clockTime(int(h), 59)), true, true
		}

	case field.Step:
		if _, ok := m.Base.(field.Wildcard); !ok {
			return "", false, false
		}
		switch h := hour.(type) {
		case field.Wildcard:
			return fmt.Sprintf("every %d minutes", m.Interval), false, true
		case field.Range:
			return fmt.Sprintf("every %d minutes from %s to %s",
				m.Interval, clockTime(h.Lo, 0), clockTime(h.Hi, 59)), true, true
		}

	case field.Single:
		switch h := hour.(type) {
		case field.Wildcard:
			if m == 0 {
				return "every hour", false, true
			}
			return fmt.Sprintf("at minute %d past every hour", int(m)), false, true
		case field.Step:
			if _, ok := h.Base.(field.Wildcard); !ok {
				return "", false, false
			}
			if m == 0 {
				return fmt.Sprintf("every %d hours", h.Interval), false, true
			}
			return fmt.Sprintf("every %d hours at minute %d", h.Interval, int(m)), false, true
		case field.Single, field.List:
			hours := e.Expand(cronexpr.Hour)
			return "at " + pp.EnglishJoinMap(func(h int) string { return clockTime(h, int(m)) }, hours), true, true
		}
	}

	return "", false, false
}

func describeDays(e cronexpr.Expression) (string, bool) {
	dom, domOK := describeDaysOfMonth(e)
	dow := describeDaysOfWeek(e)

	switch {
	case !e.IsRestricted(cronexpr.DayOfMonth) && !e.IsRestricted(cronexpr.DayOfWeek):
		return "", true
	case !e.IsRestricted(cronexpr.DayOfMonth):
		return dow, true
	case !e.IsRestricted(cronexpr.DayOfWeek):
		return dom, domOK
	default:
		return dom + " or " + dow, domOK
	}
}

func describeDaysOfWeek(e cronexpr.Expression) string {
	days := e.Expand(cronexpr.DayOfWeek)
	switch {
	case slices.Equal(days, []int{1, 2, 3, 4, 5}):
		return "on weekdays"
	case slices.Equal(days, []int{0, 6}):
		return "on weekends"
	default:
		return "on " + pp.EnglishJoinMap(func(d int) string { return time.Weekday(d).String() }, days)
	}
}

func describeDaysOfMonth(e cronexpr.Expression) (string, bool) {
	days := e.Expand(cronexpr.DayOfMonth)
	switch {
	case len(days) == 1:
		return fmt.Sprintf("on day %d of the month", days[0]), true
	case len(days) <= maxListedDays:
		return "on days " + pp.EnglishJoinMap(strconv.Itoa, days) + " of the month", true
	default:
		return "", false
	}
}

func monthName(m int) string { return time.Month(m).String() }

func clockTime(hour, minute int) string { return fmt.Sprintf("%02d:%02d", hour, minute) }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
