// Package fuzzer implements the fuzzing interface for OSS-Fuzz.
package fuzzer

import (
	"encoding/json"
	"log"
	"time"

	"github.com/favonia/cronkit/internal/action"
	"github.com/favonia/cronkit/internal/cronexpr"
	"github.com/favonia/cronkit/internal/phrase"
)

//nolint:gochecknoglobals
var reference = time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)

// ParseExpression checks that parsing never panics and that whatever parses
// also expands within the domains.
func ParseExpression(bytes []byte) int {
	e, err := cronexpr.Parse(string(bytes))
	if err != nil {
		return 0
	}

	for _, p := range cronexpr.Positions() {
		vals := e.Expand(p)
		if len(vals) == 0 {
			log.Fatalf("%q expands to nothing at the %s field", string(bytes), p)
		}
		for _, v := range vals {
			if !p.Domain().Contains(v) {
				log.Fatalf("%q expands to %d at the %s field", string(bytes), v, p)
			}
		}
	}
	return 1
}

// Generate checks that every generated expression is valid.
func Generate(bytes []byte) int {
	expr, err := phrase.Generate(string(bytes))
	if err != nil {
		return 0
	}
	if err := cronexpr.Validate(expr); err != nil {
		log.Fatalf("%q generated the invalid expression %q: %v", string(bytes), expr, err)
	}
	return 1
}

// Dispatch reads a request as JSON and checks that its result can be encoded.
func Dispatch(bytes []byte) int {
	var req action.Request
	if err := json.Unmarshal(bytes, &req); err != nil {
		return 0
	}
	if _, err := json.Marshal(action.Dispatch(req, reference)); err != nil {
		log.Fatalf("failed to encode the result of %q: %v", string(bytes), err)
	}
	return 1
}
