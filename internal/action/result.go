package action

import "github.com/favonia/cronkit/internal/cronexpr"

// Result is the outcome of a request. Each action has its own shape.
type Result interface {
	// OK tells whether the request succeeded.
	OK() bool
}

// Fields holds one value for each of the five positions, in order.
type Fields[T any] struct {
	Minute     T `json:"minute"     yaml:"minute"`
	Hour       T `json:"hour"       yaml:"hour"`
	DayOfMonth T `json:"dayOfMonth" yaml:"dayOfMonth"`
	Month      T `json:"month"      yaml:"month"`
	DayOfWeek  T `json:"dayOfWeek"  yaml:"dayOfWeek"`
}

// At gives a pointer to the value at the position.
func (f *Fields[T]) At(p cronexpr.Position) *T {
	switch p {
	case cronexpr.Minute:
		return &f.Minute
	case cronexpr.Hour:
		return &f.Hour
	case cronexpr.DayOfMonth:
		return &f.DayOfMonth
	case cronexpr.Month:
		return &f.Month
	default:
		return &f.DayOfWeek
	}
}

// ParseResult is the successful result of [Parse].
type ParseResult struct {
	Success     bool           `json:"success"     yaml:"success"`
	Expression  string         `json:"expression"  yaml:"expression"`
	Fields      Fields[string] `json:"fields"      yaml:"fields"`
	Expanded    Fields[[]int]  `json:"expanded"    yaml:"expanded"`
	Description string         `json:"description" yaml:"description"`
}

// ValidateResult is the result of [Validate], valid or not.
type ValidateResult struct {
	Valid bool   `json:"valid"           yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NextResult is the successful result of [Next].
type NextResult struct {
	Success        bool     `json:"success"         yaml:"success"`
	Count          int      `json:"count"           yaml:"count"`
	NextExecutions []string `json:"next_executions" yaml:"next_executions"`
}

// GenerateResult is the successful result of [Generate].
type GenerateResult struct {
	Success    bool   `json:"success"    yaml:"success"`
	Expression string `json:"expression" yaml:"expression"`
}

// Failure is the result of any failed request except [Validate].
type Failure struct {
	Success bool   `json:"success" yaml:"success"`
	Error   string `json:"error"   yaml:"error"`
}

func (r ParseResult) OK() bool    { return r.Success }
func (r ValidateResult) OK() bool { return r.Valid }
func (r NextResult) OK() bool     { return r.Success }
func (r GenerateResult) OK() bool { return r.Success }
func (r Failure) OK() bool        { return r.Success }

func fail(err error) Failure { return Failure{Success: false, Error: err.Error()} }
