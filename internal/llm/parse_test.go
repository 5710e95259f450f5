package llm

import (
	"errors"
	"testing"

	"ledgerchat/internal/core"
)

func TestParseResultAddExpense(t *testing.T) {
	raw := `{"intent": "add_expense", "reply": "Logged it!", "expense": {"amount": "12.34", "category": "food", "note": "lunch", "date": "05-03-2025"}}`

	res, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Intent != IntentAddExpense {
		t.Fatalf("intent = %q", res.Intent)
	}
	if res.Reply != "Logged it!" {
		t.Fatalf("reply = %q", res.Reply)
	}
	if res.Expense == nil {
		t.Fatal("expected an expense")
	}
	if res.Expense.Amount.Cents != 1234 {
		t.Fatalf("amount = %d, want 1234", res.Expense.Amount.Cents)
	}
	if res.Expense.Category != core.Food {
		t.Fatalf("category = %q", res.Expense.Category)
	}
	if !res.Expense.HasDate || res.Expense.Date.String() != "05-03-2025" {
		t.Fatalf("date = %v (has=%v)", res.Expense.Date, res.Expense.HasDate)
	}
}

func TestParseResultNumericAmount(t *testing.T) {
	raw := `{"intent": "add_expense", "reply": "ok", "expense": {"amount": 7.5, "category": "Transport"}}`
	res, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Expense == nil || res.Expense.Amount.Cents != 750 {
		t.Fatalf("expense = %+v", res.Expense)
	}
	if res.Expense.HasDate {
		t.Fatal("no date was supplied")
	}
}

func TestParseResultCodeFences(t *testing.T) {
	raw := "Here you go:\n```json\n{\"intent\": \"get_summary\", \"reply\": \"Summary coming up\"}\n```\nanything else?"
	res, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Intent != IntentSummary {
		t.Fatalf("intent = %q", res.Intent)
	}
}

func TestParseResultBudget(t *testing.T) {
	raw := `{"intent": "set_budget", "reply": "Budget updated", "budget": {"Food": "300", "total": 1000, "Nonsense": "x"}}`
	res, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Budget) != 2 {
		t.Fatalf("budget changes = %+v", res.Budget)
	}
	sawFood, sawTotal := false, false
	for _, ch := range res.Budget {
		switch {
		case ch.Total:
			sawTotal = true
			if ch.Limit.Cents != 100000 {
				t.Fatalf("total limit = %d", ch.Limit.Cents)
			}
		case ch.Category == core.Food:
			sawFood = true
			if ch.Limit.Cents != 30000 {
				t.Fatalf("food limit = %d", ch.Limit.Cents)
			}
		}
	}
	if !sawFood || !sawTotal {
		t.Fatalf("missing changes: food=%v total=%v", sawFood, sawTotal)
	}
}

func TestParseResultUnknownIntentFallsBack(t *testing.T) {
	res, err := ParseResult(`{"intent": "dance", "reply": "hi"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Intent != IntentAdvice {
		t.Fatalf("intent = %q, want advice fallback", res.Intent)
	}
}

func TestParseResultUnparsable(t *testing.T) {
	cases := []string{
		"",
		"I'm sorry, I can't do that.",
		"{broken json",
		`{"reply": "no intent here"}`,
	}
	for _, raw := range cases {
		if _, err := ParseResult(raw); !errors.Is(err, ErrUnparsable) {
			t.Fatalf("%q: expected ErrUnparsable, got %v", raw, err)
		}
	}
}
