package llm

import (
	"strings"
	"testing"
	"time"

	"ledgerchat/internal/core"
)

func TestSystemPrompt(t *testing.T) {
	now := time.Date(2025, 8, 29, 15, 0, 0, 0, time.UTC)
	var budget core.Budget
	budget.SetLimit(core.Food, core.Money{Cents: 30000})
	budget.Total = core.Money{Cents: 120000}

	recent := []core.Expense{
		{ID: "1", Amount: core.Money{Cents: 1250}, Category: core.Food, Date: core.NewDate(2025, 8, 28)},
	}

	got := SystemPrompt(now, budget, recent)

	for _, want := range []string{
		"29-08-2025",
		"Food, Transport, Housing, Utilities, Entertainment, Shopping, Health, Education, Other",
		"- Food: 300.00",
		"- total: 1200.00",
		"- 12.50 Food 28-08-2025",
		`"intent"`,
		"DD-MM-YYYY",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestSystemPromptEmptyState(t *testing.T) {
	got := SystemPrompt(time.Now(), core.Budget{}, nil)
	if strings.Contains(got, "Current budget limits") {
		t.Fatal("empty budget should not render a budget section")
	}
	if strings.Contains(got, "Recent expenses") {
		t.Fatal("empty ledger should not render a digest section")
	}
}

func TestLedgerDigestCap(t *testing.T) {
	items := make([]core.Expense, maxDigestItems+10)
	for i := range items {
		items[i] = core.Expense{Amount: core.Money{Cents: int64(i + 1)}, Category: core.Other, Date: core.NewDate(2025, 1, 1)}
	}
	digest := ledgerDigest(items)
	if got := strings.Count(digest, "\n") + 1; got != maxDigestItems {
		t.Fatalf("digest lines = %d, want %d", got, maxDigestItems)
	}
	// The newest entries survive the cap
	if !strings.Contains(digest, "0.30 Other") {
		t.Fatalf("digest should keep the newest items:\n%s", digest)
	}
}
