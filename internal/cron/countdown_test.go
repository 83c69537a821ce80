package cron_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/favonia/cronkit/internal/cron"
	"github.com/favonia/cronkit/internal/pp"
)

func TestPrintCountdown(t *testing.T) {
	t.Parallel()

	activity := "Secretly dancing"
	now := mustParseTime("2024-06-01T12:00:00Z")

	for _, tc := range [...]struct {
		interval []time.Duration
		output   string
	}{
		{
			[]time.Duration{-20 * time.Second},
			string(pp.EmojiNow) + " Secretly dancing now (behind by 20s)\n",
		},
		{
			[]time.Duration{-time.Second, -time.Nanosecond, 0, time.Nanosecond},
			string(pp.EmojiNow) + " Secretly dancing now\n",
		},
		{
			[]time.Duration{2 * time.Second},
			string(pp.EmojiAlarm) + " Secretly dancing in less than 5s\n",
		},
		{
			[]time.Duration{10 * time.Second},
			string(pp.EmojiAlarm) + " Secretly dancing in about 10s\n",
		},
		{
			[]time.Duration{20 * time.Minute},
			string(pp.EmojiAlarm) + " Secretly dancing in about 20m0s (12:20)\n",
		},
		{
			[]time.Duration{36 * time.Hour},
			string(pp.EmojiAlarm) + " Secretly dancing in about 36h0m0s (Mon 03 Jun 00:00)\n",
		},
	} {
		for _, interval := range tc.interval {
			t.Run(interval.String(), func(t *testing.T) {
				t.Parallel()

				var buf strings.Builder
				ppfmt := pp.New(&buf)

				cron.PrintCountdown(ppfmt, activity, now, now.Add(interval))
				require.Equal(t, tc.output, buf.String())
			})
		}
	}
}

func TestDescribeIntuitively(t *testing.T) {
	t.Parallel()

	now := mustParseTime("2024-12-31T22:00:00Z")

	for name, tc := range map[string]struct {
		target   string
		expected string
	}{
		"same-day":  {"2024-12-31T23:30:00Z", "23:30"},
		"next-day":  {"2024-12-30T08:00:00Z", "Mon 30 Dec 08:00"},
		"next-year": {"2025-01-01T00:00:00Z", "Wed 01 Jan 00:00 2025"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, cron.DescribeIntuitively(now, mustParseTime(tc.target)))
		})
	}
}

func TestPPDuration(t *testing.T) {
	t.Parallel()

	for input, expected := range map[time.Duration]string{
		-time.Second:                        "no time",
		0:                                   "no time",
		time.Millisecond:                    "less than 1s",
		time.Minute + 400*time.Millisecond:  "about 1m0s",
		2*time.Hour + 30*time.Minute + 600*time.Millisecond: "about 2h30m1s",
	} {
		require.Equal(t, expected, cron.PPDuration(input))
	}
}
