package action_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/favonia/cronkit/internal/action"
)

//nolint:gochecknoglobals
var now = time.Date(2024, time.March, 15, 10, 30, 45, 0, time.UTC)

func count(n int) *int { return &n }

func TestDispatchParse(t *testing.T) {
	t.Parallel()

	r := action.Dispatch(action.Request{Action: "parse", Expression: "*/15 9-17 * * 1-5"}, now)
	require.True(t, r.OK())
	require.IsType(t, action.ParseResult{}, r)
	require.Equal(t, action.ParseResult{
		Success:    true,
		Expression: "*/15 9-17 * * 1-5",
		Fields: action.Fields[string]{
			Minute: "*/15", Hour: "9-17", DayOfMonth: "*", Month: "*", DayOfWeek: "1-5",
		},
		Expanded: action.Fields[[]int]{
			Minute:     []int{0, 15, 30, 45},
			Hour:       []int{9, 10, 11, 12, 13, 14, 15, 16, 17},
			DayOfMonth: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31}, //nolint:lll
			Month:      []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
			DayOfWeek:  []int{1, 2, 3, 4, 5},
		},
		Description: r.(action.ParseResult).Description,
	}, r)
}

func TestDispatchParseDescribesWeekdays(t *testing.T) {
	t.Parallel()

	r := action.Dispatch(action.Request{Action: "parse", Expression: "0 9 * * 1-5"}, now)
	require.IsType(t, action.ParseResult{}, r)
	require.Contains(t, r.(action.ParseResult).Description, "weekday")
}

func TestDispatchValidate(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		expression string
		valid      bool
		contains   string
	}{
		"valid":       {"0 9 * * *", true, ""},
		"four-fields": {"0 9 * *", false, "expected 5 fields"},
		"minute-60":   {"60 9 * * *", false, "60 is not within 0-59"},
		"hour-25":     {"0 25 * * *", false, "25 is not within 0-23"},
		"empty":       {"", false, "expression is required"},
		"letters":     {"0 9 * * MON", false, "syntax error"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := action.Dispatch(action.Request{Action: "validate", Expression: tc.expression}, now)
			v, ok := r.(action.ValidateResult)
			require.True(t, ok)
			require.Equal(t, tc.valid, v.Valid)
			require.Equal(t, tc.valid, r.OK())
			if tc.valid {
				require.Empty(t, v.Error)
			} else {
				require.Contains(t, v.Error, tc.contains)
			}
		})
	}
}

func TestDispatchCaseInsensitive(t *testing.T) {
	t.Parallel()

	expected := action.Dispatch(action.Request{Action: "validate", Expression: "0 9 * *"}, now)
	for _, tag := range []string{"VALIDATE", "Validate", "validate"} {
		require.Equal(t, expected, action.Dispatch(action.Request{Action: tag, Expression: "0 9 * *"}, now))
	}
}

func TestDispatchNext(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		count    *int
		expected int
	}{
		"default": {nil, 5},
		"three":   {count(3), 3},
		"hundred": {count(100), 20},
		"zero":    {count(0), 1},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := action.Dispatch(action.Request{Action: "next", Expression: "* * * * *", Count: tc.count}, now)
			n, ok := r.(action.NextResult)
			require.True(t, ok)
			require.True(t, n.Success)
			require.Equal(t, tc.expected, n.Count)
			require.Len(t, n.NextExecutions, tc.expected)

			prev := now
			for _, s := range n.NextExecutions {
				ts, err := time.Parse(time.RFC3339, s)
				require.NoError(t, err)
				require.True(t, ts.After(prev))
				prev = ts
			}
		})
	}
}

func TestDispatchNextValues(t *testing.T) {
	t.Parallel()

	r := action.Dispatch(action.Request{Action: "next", Expression: "0 9 * * 1-5", Count: count(3)}, now)
	require.Equal(t, action.NextResult{
		Success: true,
		Count:   3,
		NextExecutions: []string{
			"2024-03-18T09:00:00Z",
			"2024-03-19T09:00:00Z",
			"2024-03-20T09:00:00Z",
		},
	}, r)
}

func TestDispatchHugeStep(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		expression string
		expected   []string
	}{
		"minute": {
			"59/9223372036854775807 * * * *",
			[]string{"2024-03-15T10:59:00Z", "2024-03-15T11:59:00Z", "2024-03-15T12:59:00Z"},
		},
		"hour": {
			"0 23/9223372036854775807 * * *",
			[]string{"2024-03-15T23:00:00Z", "2024-03-16T23:00:00Z", "2024-03-17T23:00:00Z"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := action.Dispatch(action.Request{Action: "next", Expression: tc.expression, Count: count(3)}, now)
			require.Equal(t, action.NextResult{Success: true, Count: 3, NextExecutions: tc.expected}, r)
		})
	}

	r := action.Dispatch(action.Request{Action: "parse", Expression: "59/9223372036854775807 * * * *"}, now)
	require.IsType(t, action.ParseResult{}, r)
	require.Equal(t, []int{59}, r.(action.ParseResult).Expanded.Minute)
}

func TestDispatchGenerate(t *testing.T) {
	t.Parallel()

	for description, expected := range map[string]string{
		"every 5 minutes":     "*/5 * * * *",
		"every day at 9am":    "0 9 * * *",
		"every day at 3pm":    "0 15 * * *",
		"at noon":             "0 12 * * *",
		"at midnight":         "0 0 * * *",
		"weekdays at 9am":     "0 9 * * 1-5",
		"weekends at 10am":    "0 10 * * 0,6",
		"every monday at 9am": "0 9 * * 1",
		"monthly":             "0 0 1 * *",
		"yearly":              "0 0 1 1 *",
	} {
		t.Run(description, func(t *testing.T) {
			t.Parallel()

			r := action.Dispatch(action.Request{Action: "generate", Description: description}, now)
			require.Equal(t, action.GenerateResult{Success: true, Expression: expected}, r)

			v := action.Dispatch(action.Request{Action: "validate", Expression: expected}, now)
			require.Equal(t, action.ValidateResult{Valid: true, Error: ""}, v)
		})
	}
}

func TestDispatchFailures(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		req      action.Request
		contains string
	}{
		"unknown": {
			action.Request{Action: "explode"},
			"Unknown action: explode. Valid actions: parse, validate, next, generate",
		},
		"parse-missing":      {action.Request{Action: "parse"}, "expression is required"},
		"parse-range":        {action.Request{Action: "parse", Expression: "0 0 32 * *"}, "32 is not within 1-31"},
		"next-syntax":        {action.Request{Action: "next", Expression: "0 9 * *"}, "expected 5 fields, got 4"},
		"next-exhausted":     {action.Request{Action: "next", Expression: "0 0 30 2 *"}, "no matching time found"},
		"generate-missing":   {action.Request{Action: "generate"}, "description is required"},
		"generate-gibberish": {action.Request{Action: "generate", Description: "gibberish text here"}, "Could not parse"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := action.Dispatch(tc.req, now)
			require.False(t, r.OK())
			f, ok := r.(action.Failure)
			require.True(t, ok)
			require.False(t, f.Success)
			require.Contains(t, f.Error, tc.contains)
		})
	}
}
