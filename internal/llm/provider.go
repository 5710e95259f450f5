// Package llm talks to the external language model that classifies chat
// messages into expense-tracker intents. The model contract is best effort:
// a single JSON object is requested, and anything that cannot be parsed
// degrades to ErrUnparsable at the call site.
package llm

import (
	"context"
	"errors"
)

// Provider completes a prompt against a concrete model backend.
type Provider interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// ErrUnparsable marks model output that carried no usable JSON object.
var ErrUnparsable = errors.New("model response not parsable")

// Intent is the action class inferred from a chat message.
type Intent string

const (
	IntentAddExpense Intent = "add_expense"
	IntentSummary    Intent = "get_summary"
	IntentSetBudget  Intent = "set_budget"
	IntentAdvice     Intent = "advice"
)

// ParseIntent maps loose model output onto a known intent, defaulting to
// advice so an odd label still yields a conversational reply.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentAddExpense, IntentSummary, IntentSetBudget, IntentAdvice:
		return Intent(s)
	}
	return IntentAdvice
}
