package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/favonia/cronkit/internal/action"
	"github.com/favonia/cronkit/internal/cron"
	"github.com/favonia/cronkit/internal/cronexpr"
	"github.com/favonia/cronkit/internal/pp"
)

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil

	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w %v", ErrUnknownFormat, format)
	}
}

// Write renders one result. Text goes to ppfmt; the other formats go to w.
func Write(w io.Writer, ppfmt pp.PP, format Format, now time.Time, r action.Result) error {
	if format == Text {
		Print(ppfmt, now, r)
		return nil
	}
	return encode(w, format, r)
}

// WriteAll renders a list of results. In JSON and YAML they form one array.
func WriteAll(w io.Writer, ppfmt pp.PP, format Format, now time.Time, rs []action.Result) error {
	if format == Text {
		for i, r := range rs {
			ppfmt.Noticef(pp.EmojiBatch, "Request #%d:", i+1)
			Print(ppfmt.Indent(), now, r)
		}
		return nil
	}
	if rs == nil {
		rs = []action.Result{}
	}
	return encode(w, format, rs)
}

// Print shows a result through the pretty printer.
func Print(ppfmt pp.PP, now time.Time, r action.Result) {
	switch r := r.(type) {
	case action.ParseResult:
		printParse(ppfmt, r)

	case action.ValidateResult:
		if r.Valid {
			ppfmt.Noticef(pp.EmojiValid, "Valid")
		} else {
			ppfmt.Errorf(pp.EmojiInvalid, "Invalid: %s", r.Error)
		}

	case action.NextResult:
		printNext(ppfmt, now, r)

	case action.GenerateResult:
		ppfmt.Noticef(pp.EmojiGenerate, "%s", r.Expression)

	case action.Failure:
		ppfmt.Errorf(pp.EmojiUserError, "%s", r.Error)

	default:
		ppfmt.Errorf(pp.EmojiImpossible, "Unexpected result %#v", r)
	}
}

func printParse(ppfmt pp.PP, r action.ParseResult) {
	ppfmt.Noticef(pp.EmojiParse, "%s", r.Expression)
	inner := ppfmt.Indent()
	for _, p := range cronexpr.Positions() {
		inner.Noticef(pp.EmojiBullet, "%-13s %-8s %s", p.String()+":", *r.Fields.At(p), pp.JoinMap(itoa, *r.Expanded.At(p)))
	}
	ppfmt.Noticef(pp.EmojiStar, "%s", r.Description)

	if e, err := cronexpr.Parse(r.Expression); err == nil &&
		e.IsRestricted(cronexpr.DayOfMonth) && e.IsRestricted(cronexpr.DayOfWeek) {
		ppfmt.Hintf(pp.HintDayFieldsCombined,
			"Both day-of-month and day-of-week are restricted, so a day matches when either of them does")
	}
}

func printNext(ppfmt pp.PP, now time.Time, r action.NextResult) {
	for _, s := range r.NextExecutions {
		ppfmt.Noticef(pp.EmojiCalendar, "%s", s)
	}
	if len(r.NextExecutions) == 0 {
		return
	}
	if first, err := time.Parse(time.RFC3339, r.NextExecutions[0]); err == nil {
		cron.PrintCountdown(ppfmt, "The first run is", now, first)
	}
}

func itoa(i int) string { return fmt.Sprint(i) }
