package fuzzer_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/favonia/cronkit/internal/cron"
	"github.com/favonia/cronkit/internal/cronexpr"
	"github.com/favonia/cronkit/internal/phrase"
	"github.com/favonia/cronkit/test/fuzzer"
)

// FuzzParseExpression fuzz test [cronexpr.Parse].
func FuzzParseExpression(f *testing.F) {
	for _, seed := range []string{
		"* * * * *", "*/15 9-17 * * 1-5", "0 0 29 2 *", "5/10 1,2,3 1-31/2 * 0,6", "60 * * * *",
		"59/9223372036854775807 * * * *", "0 23/9223372036854775807 * * *", "1-59/9223372036854775807 * * * *",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		e, err := cronexpr.Parse(input)
		if err != nil {
			return
		}
		for _, p := range cronexpr.Positions() {
			vals := e.Expand(p)
			require.NotEmpty(t, vals)
			require.True(t, slices.IsSorted(vals))
			require.Equal(t, vals, slices.Compact(slices.Clone(vals)))
		}
		require.Equal(t, 1, fuzzer.ParseExpression([]byte(input)))
	})
}

// FuzzNext fuzz test [cron.Next].
func FuzzNext(f *testing.F) {
	f.Add("*/7 * * * *", int64(0), 5)
	f.Add("0 0 29 2 1", int64(1700000000), 20)
	f.Fuzz(func(t *testing.T, input string, unix int64, count int) {
		e, err := cronexpr.Parse(input)
		if err != nil {
			return
		}
		now := time.Unix(unix%(1<<34), 0).UTC()
		ts, err := cron.Next(e, now, count)
		if err != nil {
			require.ErrorIs(t, err, cron.ErrExhausted)
			return
		}
		require.Len(t, ts, cron.ClampCount(count))
		prev := now
		for _, next := range ts {
			require.True(t, next.After(prev))
			prev = next
		}
	})
}

// FuzzGenerate fuzz test [phrase.Generate].
func FuzzGenerate(f *testing.F) {
	for _, seed := range []string{"every 5 minutes", "weekdays at 9:30am", "every sunday at noon", "at 13pm"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		expr, err := phrase.Generate(input)
		if err != nil {
			require.Empty(t, expr)
			return
		}
		require.NoError(t, cronexpr.Validate(expr))
		require.Equal(t, 1, fuzzer.Generate([]byte(input)))
	})
}

// FuzzDispatch fuzz test [action.Dispatch].
func FuzzDispatch(f *testing.F) {
	f.Add(`{"action": "parse", "expression": "0 9 * * 1-5"}`)
	f.Add(`{"action": "NEXT", "expression": "* * * * *", "count": 100}`)
	f.Fuzz(func(_ *testing.T, input string) {
		fuzzer.Dispatch([]byte(input))
	})
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, fuzzer.Dispatch([]byte(`{"action": "generate", "description": "yearly"}`)))
	require.Equal(t, 1, fuzzer.Dispatch([]byte(`{"action": "?"}`)))
	require.Equal(t, 0, fuzzer.Dispatch([]byte(`not json`)))
}
