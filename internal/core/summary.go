package core

import "time"

// CategoryTotal is the aggregated spend for one category, with budget
// context when a limit is set.
type CategoryTotal struct {
	Category  Category `json:"category"`
	Spent     Money    `json:"spent_cents"`
	Count     int      `json:"count"`
	Limit     Money    `json:"limit_cents"`
	Remaining Money    `json:"remaining_cents"`
	Over      bool     `json:"over_budget"`
}

// Summary is the structured per-category spending breakdown.
type Summary struct {
	Total      Money           `json:"total_cents"`
	Count      int             `json:"count"`
	ByCategory []CategoryTotal `json:"by_category"`
	TotalLimit Money           `json:"total_limit_cents"`
	Remaining  Money           `json:"remaining_cents"`
	Over       bool            `json:"over_budget"`
}

// Summarize aggregates all expenses against the budget. Categories with no
// expenses and no limit are omitted; display order follows Categories().
func Summarize(items []Expense, budget Budget) Summary {
	return summarize(items, budget, nil)
}

// SummarizeMonth aggregates only the expenses falling in the given month.
func SummarizeMonth(items []Expense, budget Budget, year int, month time.Month) Summary {
	return summarize(items, budget, func(e Expense) bool {
		return e.Date.SameMonth(year, month)
	})
}

func summarize(items []Expense, budget Budget, include func(Expense) bool) Summary {
	spent := make(map[Category]int64)
	count := make(map[Category]int)
	var sum Summary
	for _, e := range items {
		if include != nil && !include(e) {
			continue
		}
		spent[e.Category] += e.Amount.Cents
		count[e.Category]++
		sum.Total.Cents += e.Amount.Cents
		sum.Count++
	}

	for _, c := range Categories() {
		limit, hasLimit := budget.LimitFor(c)
		if count[c] == 0 && !hasLimit {
			continue
		}
		ct := CategoryTotal{
			Category: c,
			Spent:    Money{Cents: spent[c]},
			Count:    count[c],
		}
		if hasLimit {
			ct.Limit = limit
			ct.Remaining = Money{Cents: limit.Cents - spent[c]}
			ct.Over = spent[c] > limit.Cents
		}
		sum.ByCategory = append(sum.ByCategory, ct)
	}

	if budget.Total.IsSet() {
		sum.TotalLimit = budget.Total
		sum.Remaining = Money{Cents: budget.Total.Cents - sum.Total.Cents}
		sum.Over = sum.Total.Cents > budget.Total.Cents
	}
	return sum
}
