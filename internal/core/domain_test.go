package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"Food", Food},
		{"food", Food},
		{"  TRANSPORT ", Transport},
		{"groceries", Food},
		{"rent", Housing},
		{"bills", Utilities},
		{"pharmacy", Health},
		{"something else entirely", Other},
		{"", Other},
	}
	for _, tc := range cases {
		if got := ParseCategory(tc.in); got != tc.want {
			t.Fatalf("ParseCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.IsValid() {
			t.Fatalf("%q should be valid", c)
		}
	}
	if Category("Groceries").IsValid() {
		t.Fatal("alias spellings are not canonical labels")
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"02-01-2025", NewDate(2025, 1, 2), true},
		{"2025-01-02", NewDate(2025, 1, 2), true},
		{"2/1/2025", NewDate(2025, 1, 2), true},
		{"31-12-2024", NewDate(2024, 12, 31), true},
		{"not a date", Date{}, false},
		{"", Date{}, false},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tc.in, err)
			}
			if !got.Equal(tc.want.Time) {
				t.Fatalf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		} else if err == nil {
			t.Fatalf("ParseDate(%q) expected error", tc.in)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, 3, 7)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"07-03-2025"` {
		t.Fatalf("marshal = %s, want %q", raw, `"07-03-2025"`)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, d)
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		ID:       "e1",
		Amount:   Money{Cents: 1250},
		Category: Food,
		Note:     "lunch",
		Date:     NewDate(2025, 1, 15),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		mut  func(*Expense)
	}{
		{"empty id", func(e *Expense) { e.ID = " " }},
		{"zero amount", func(e *Expense) { e.Amount = Money{} }},
		{"negative amount", func(e *Expense) { e.Amount = Money{Cents: -5} }},
		{"unknown category", func(e *Expense) { e.Category = "Gadgets" }},
		{"zero date", func(e *Expense) { e.Date = Date{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := good
			tc.mut(&e)
			if err := e.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestBudgetLimits(t *testing.T) {
	var b Budget
	if _, ok := b.LimitFor(Food); ok {
		t.Fatal("empty budget should have no limits")
	}

	b.SetLimit(Food, Money{Cents: 10000})
	limit, ok := b.LimitFor(Food)
	if !ok || limit.Cents != 10000 {
		t.Fatalf("LimitFor(Food) = %v, %v", limit, ok)
	}

	// Clearing via a zero value
	b.SetLimit(Food, Money{})
	if _, ok := b.LimitFor(Food); ok {
		t.Fatal("limit should be cleared")
	}
}

func TestBudgetClone(t *testing.T) {
	b := Budget{Total: Money{Cents: 50000}}
	b.SetLimit(Transport, Money{Cents: 8000})

	clone := b.Clone()
	clone.SetLimit(Transport, Money{Cents: 1})
	if got, _ := b.LimitFor(Transport); got.Cents != 8000 {
		t.Fatalf("clone mutation leaked into original: %v", got)
	}
}

func TestSameMonth(t *testing.T) {
	d := NewDate(2025, 6, 10)
	if !d.SameMonth(2025, time.June) {
		t.Fatal("expected same month")
	}
	if d.SameMonth(2025, time.July) || d.SameMonth(2024, time.June) {
		t.Fatal("expected different month")
	}
}
