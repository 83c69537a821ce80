package cron

import (
	"fmt"
	"time"

	"github.com/favonia/cronkit/internal/pp"
)

const (
	intervalUnit     time.Duration = time.Second
	intervalLargeGap time.Duration = time.Second * 5
	intervalHugeGap  time.Duration = time.Minute * 10
)

// DescribeIntuitively formats target with as little context as needed when read at now.
func DescribeIntuitively(now, target time.Time) string {
	now = now.In(target.Location())

	switch {
	case now.Year() != target.Year():
		return target.Format("Mon 02 Jan 15:04 2006")
	case now.YearDay() != target.YearDay():
		return target.Format("Mon 02 Jan 15:04")
	default:
		return target.Format("15:04")
	}
}

// PPDuration describes a duration for humans.
func PPDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "no time"
	case d < time.Second:
		return "less than 1s"
	default:
		return fmt.Sprintf("about %v", d.Round(time.Second))
	}
}

// PrintCountdown tells how long it is from now to target.
func PrintCountdown(ppfmt pp.PP, activity string, now, target time.Time) {
	interval := target.Sub(now)

	switch {
	case interval < -intervalLargeGap:
		ppfmt.Infof(pp.EmojiNow, "%s now (behind by %v)", activity, -interval.Round(intervalUnit))
	case interval < intervalUnit:
		ppfmt.Infof(pp.EmojiNow, "%s now", activity)
	case interval < intervalLargeGap:
		ppfmt.Infof(pp.EmojiAlarm, "%s in less than %v", activity, intervalLargeGap)
	case interval < intervalHugeGap:
		ppfmt.Infof(pp.EmojiAlarm, "%s in %s", activity, PPDuration(interval))
	default:
		ppfmt.Infof(pp.EmojiAlarm, "%s in %s (%s)",
			activity,
			PPDuration(interval),
			DescribeIntuitively(now, target),
		)
	}
}
