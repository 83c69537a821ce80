package action

import (
	"time"

	"github.com/favonia/cronkit/internal/cron"
	"github.com/favonia/cronkit/internal/cronexpr"
	"github.com/favonia/cronkit/internal/describe"
	"github.com/favonia/cronkit/internal/phrase"
)

// Request is a single call into the engine. Which of the other fields
// matter depends on the action.
type Request struct {
	Action      string `json:"action"`
	Expression  string `json:"expression,omitempty"`
	Description string `json:"description,omitempty"`
	// Count is the number of occurrences wanted by [Next]. nil means [cron.DefaultCount].
	Count *int `json:"count,omitempty"`
}

type handler func(req Request, now time.Time) Result

//nolint:gochecknoglobals
var handlers = [numActions]handler{
	Parse:    handleParse,
	Validate: handleValidate,
	Next:     handleNext,
	Generate: handleGenerate,
}

// Dispatch runs the request. The reference instant is only used by [Next].
func Dispatch(req Request, now time.Time) Result {
	a, err := Lookup(req.Action)
	if err != nil {
		return fail(err)
	}
	return handlers[a](req, now)
}

func handleParse(req Request, _ time.Time) Result {
	e, err := cronexpr.Parse(req.Expression)
	if err != nil {
		return fail(err)
	}

	r := ParseResult{
		Success:     true,
		Expression:  e.String(),
		Fields:      Fields[string]{},
		Expanded:    Fields[[]int]{},
		Description: describe.Describe(e),
	}
	for _, p := range cronexpr.Positions() {
		*r.Fields.At(p) = e.Raw(p)
		*r.Expanded.At(p) = e.Expand(p)
	}
	return r
}

func handleValidate(req Request, _ time.Time) Result {
	if err := cronexpr.Validate(req.Expression); err != nil {
		return ValidateResult{Valid: false, Error: err.Error()}
	}
	return ValidateResult{Valid: true, Error: ""}
}

func handleNext(req Request, now time.Time) Result {
	e, err := cronexpr.Parse(req.Expression)
	if err != nil {
		return fail(err)
	}

	count := cron.DefaultCount
	if req.Count != nil {
		count = *req.Count
	}

	ts, err := cron.Next(e, now, count)
	if err != nil {
		return fail(err)
	}

	executions := make([]string, 0, len(ts))
	for _, t := range ts {
		executions = append(executions, t.Format(time.RFC3339))
	}
	return NextResult{Success: true, Count: len(executions), NextExecutions: executions}
}

func handleGenerate(req Request, _ time.Time) Result {
	expr, err := phrase.Generate(req.Description)
	if err != nil {
		return fail(err)
	}
	return GenerateResult{Success: true, Expression: expr}
}
