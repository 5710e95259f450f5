// Package store holds the process-local ledger: the expense list and the
// budget. There is no durable backing; the client-supplied list is
// authoritative and may replace the whole ledger at any time.
package store

import (
	"sync"

	"ledgerchat/internal/core"
)

type Store struct {
	mu     sync.Mutex
	items  []core.Expense
	budget core.Budget
}

func New() *Store {
	return &Store{}
}

// Replace swaps the whole expense list for the client-supplied one.
// The newest expense stays the last element. Categories outside the fixed
// set are folded into their canonical label so the ledger never holds an
// unknown category.
func (s *Store) Replace(items []core.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]core.Expense(nil), items...)
	for i := range s.items {
		if !s.items[i].Category.IsValid() {
			s.items[i].Category = core.ParseCategory(string(s.items[i].Category))
		}
	}
}

// Append validates and stores a new expense at the end of the list.
func (s *Store) Append(e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return nil
}

// Delete removes the first expense matching the id. It reports whether a
// match was found.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the expense list to prevent external mutation.
func (s *Store) List() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.items...)
}

// Len returns the number of stored expenses.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// CategorySpent sums the stored amounts for one category.
func (s *Store) CategorySpent(c core.Category) core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cents int64
	for _, e := range s.items {
		if e.Category == c {
			cents += e.Amount.Cents
		}
	}
	return core.Money{Cents: cents}
}

// TotalSpent sums all stored amounts.
func (s *Store) TotalSpent() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cents int64
	for _, e := range s.items {
		cents += e.Amount.Cents
	}
	return core.Money{Cents: cents}
}

// Budget returns a deep copy of the current budget.
func (s *Store) Budget() core.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget.Clone()
}

// ReplaceBudget swaps the whole budget object.
func (s *Store) ReplaceBudget(b core.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget = b.Clone()
}

// SetLimit sets one per-category limit, leaving the rest untouched.
func (s *Store) SetLimit(c core.Category, m core.Money) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.SetLimit(c, m)
}

// SetTotalLimit sets the overall budget limit.
func (s *Store) SetTotalLimit(m core.Money) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.Total = m
}

// Snapshot returns consistent copies of the ledger and the budget.
func (s *Store) Snapshot() ([]core.Expense, core.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.items...), s.budget.Clone()
}
