// Package action dispatches requests to the operations of the engine.
package action

import (
	"errors"
	"fmt"
	"strings"

	"github.com/favonia/cronkit/internal/pp"
)

// Action is one of the supported operations.
type Action int

const (
	// Parse breaks an expression into its fields and describes it.
	Parse Action = iota
	// Validate checks an expression.
	Validate
	// Next predicts the upcoming occurrences of an expression.
	Next
	// Generate turns an English phrase into an expression.
	Generate

	numActions
)

// ErrUnknownAction is returned for tags that name no action.
var ErrUnknownAction = errors.New("Unknown action") //nolint:stylecheck

//nolint:gochecknoglobals
var actionNames = [numActions]string{
	Parse:    "parse",
	Validate: "validate",
	Next:     "next",
	Generate: "generate",
}

// All lists all actions in order.
func All() []Action {
	return []Action{Parse, Validate, Next, Generate}
}

// String gives the tag of the action.
func (a Action) String() string {
	if a < 0 || a >= numActions {
		return fmt.Sprintf("<unknown action %d>", int(a))
	}
	return actionNames[a]
}

// Lookup finds the action named by the tag, ignoring case and surrounding spaces.
func Lookup(tag string) (Action, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	for _, a := range All() {
		if actionNames[a] == normalized {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %s. Valid actions: %s", ErrUnknownAction, tag, pp.JoinMap(Action.String, All()))
}
