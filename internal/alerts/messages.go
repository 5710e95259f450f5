package alerts

import (
	"encoding/json"
	"time"

	"ledgerchat/internal/core"
)

// BudgetAlert is published when logging an expense crosses a budget limit.
// An empty Category means the overall total limit was crossed.
type BudgetAlert struct {
	Category   string    `json:"category,omitempty"`
	SpentCents int64     `json:"spent_cents"`
	LimitCents int64     `json:"limit_cents"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewCategoryAlert builds an alert for a crossed per-category limit.
func NewCategoryAlert(c core.Category, spent, limit core.Money) *BudgetAlert {
	return &BudgetAlert{
		Category:   string(c),
		SpentCents: spent.Cents,
		LimitCents: limit.Cents,
		Message:    "Budget exceeded for " + string(c) + ": spent " + spent.String() + " of " + limit.String(),
		Timestamp:  time.Now(),
	}
}

// NewTotalAlert builds an alert for the crossed overall limit.
func NewTotalAlert(spent, limit core.Money) *BudgetAlert {
	return &BudgetAlert{
		SpentCents: spent.Cents,
		LimitCents: limit.Cents,
		Message:    "Overall budget exceeded: spent " + spent.String() + " of " + limit.String(),
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the alert to JSON bytes.
func (a *BudgetAlert) ToJSON() ([]byte, error) {
	return json.Marshal(a)
}

// BudgetAlertFromJSON creates an alert from JSON bytes.
func BudgetAlertFromJSON(data []byte) (*BudgetAlert, error) {
	var a BudgetAlert
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
