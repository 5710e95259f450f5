package core

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func sampleExpenses() []Expense {
	return []Expense{
		{ID: "1", Amount: Money{Cents: 1200}, Category: Food, Date: NewDate(2025, 5, 3)},
		{ID: "2", Amount: Money{Cents: 800}, Category: Food, Date: NewDate(2025, 5, 10)},
		{ID: "3", Amount: Money{Cents: 4500}, Category: Transport, Date: NewDate(2025, 5, 12)},
		{ID: "4", Amount: Money{Cents: 2000}, Category: Food, Date: NewDate(2025, 6, 1)},
	}
}

func TestSummarize(t *testing.T) {
	var budget Budget
	budget.SetLimit(Food, Money{Cents: 3000})
	budget.Total = Money{Cents: 10000}

	got := Summarize(sampleExpenses(), budget)

	want := Summary{
		Total: Money{Cents: 8500},
		Count: 4,
		ByCategory: []CategoryTotal{
			{
				Category:  Food,
				Spent:     Money{Cents: 4000},
				Count:     3,
				Limit:     Money{Cents: 3000},
				Remaining: Money{Cents: -1000},
				Over:      true,
			},
			{Category: Transport, Spent: Money{Cents: 4500}, Count: 1},
		},
		TotalLimit: Money{Cents: 10000},
		Remaining:  Money{Cents: 1500},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeMonth(t *testing.T) {
	got := SummarizeMonth(sampleExpenses(), Budget{}, 2025, time.May)
	if got.Count != 3 {
		t.Fatalf("count = %d, want 3", got.Count)
	}
	if got.Total.Cents != 6500 {
		t.Fatalf("total = %d, want 6500", got.Total.Cents)
	}

	empty := SummarizeMonth(sampleExpenses(), Budget{}, 2024, time.May)
	if empty.Count != 0 || len(empty.ByCategory) != 0 {
		t.Fatalf("expected empty summary, got %+v", empty)
	}
}

func TestSummarizeIncludesUnspentLimitedCategories(t *testing.T) {
	var budget Budget
	budget.SetLimit(Health, Money{Cents: 5000})

	got := Summarize(nil, budget)
	if len(got.ByCategory) != 1 {
		t.Fatalf("expected one category row, got %d", len(got.ByCategory))
	}
	row := got.ByCategory[0]
	if row.Category != Health || row.Remaining.Cents != 5000 || row.Over {
		t.Fatalf("unexpected row: %+v", row)
	}
}
