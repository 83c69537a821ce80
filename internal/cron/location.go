package cron

import (
	"fmt"
	"time"
)

func describeOffset(offset int) string {
	sign := "+"
	if offset < 0 {
		sign = "−"
		offset = -offset
	}

	hours, minutes, seconds := offset/3600, offset/60%60, offset%60
	switch {
	case seconds != 0:
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
	case minutes != 0:
		return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
	default:
		return fmt.Sprintf("%s%02d", sign, hours)
	}
}

// DescribeLocation gives the name of the location of t with its UTC offset at t.
func DescribeLocation(t time.Time) string {
	_, offset := t.Zone()
	return fmt.Sprintf("%s (UTC%s)", t.Location().String(), describeOffset(offset))
}
