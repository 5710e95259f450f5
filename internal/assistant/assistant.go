// Package assistant turns classified chat messages into ledger operations.
package assistant

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"ledgerchat/internal/alerts"
	"ledgerchat/internal/core"
	"ledgerchat/internal/llm"
	applog "ledgerchat/internal/log"
	"ledgerchat/internal/store"
)

// apologyReply is the canned fallback when the model call fails or its
// output cannot be parsed. The store is left untouched on this path.
const apologyReply = "Sorry, I couldn't process that right now. Please try again."

// AlertPublisher sends budget alerts. Implementations must treat publish
// failure as non-fatal.
type AlertPublisher interface {
	PublishBudgetAlert(ctx context.Context, alert *alerts.BudgetAlert) error
}

// Assistant owns the model provider, the in-memory ledger, and the optional
// alert publisher.
type Assistant struct {
	provider  llm.Provider
	store     *store.Store
	publisher AlertPublisher
	now       func() time.Time
}

func New(provider llm.Provider, st *store.Store, publisher AlertPublisher) *Assistant {
	return &Assistant{
		provider:  provider,
		store:     st,
		publisher: publisher,
		now:       time.Now,
	}
}

// Response is the chat answer. Exactly one of Expenses, Budget, or Summary
// is populated depending on the inferred intent.
type Response struct {
	Reply    string         `json:"reply"`
	Intent   string         `json:"intent"`
	Expenses []core.Expense `json:"expenses,omitempty"`
	Budget   *core.Budget   `json:"budget,omitempty"`
	Summary  *core.Summary  `json:"summary,omitempty"`
}

// Handle processes one chat message. A non-nil clientExpenses list replaces
// the whole ledger first: the client's copy is authoritative.
func (a *Assistant) Handle(ctx context.Context, message string, clientExpenses []core.Expense) Response {
	if clientExpenses != nil {
		a.store.Replace(clientExpenses)
	}

	items, budget := a.store.Snapshot()
	system := llm.SystemPrompt(a.now(), budget, items)

	raw, err := a.provider.Complete(ctx, system, message)
	if err != nil {
		slog.ErrorContext(ctx, "Model call failed",
			applog.FieldError, err,
			applog.FieldComponent, applog.ComponentAssistant)
		return apology()
	}

	res, err := llm.ParseResult(raw)
	if err != nil {
		slog.WarnContext(ctx, "Model output not parsable",
			applog.FieldError, err,
			"raw_len", len(raw),
			applog.FieldComponent, applog.ComponentAssistant)
		return apology()
	}

	slog.InfoContext(ctx, "Chat message classified",
		applog.FieldIntent, string(res.Intent),
		applog.FieldComponent, applog.ComponentAssistant)

	switch res.Intent {
	case llm.IntentAddExpense:
		return a.handleAddExpense(ctx, res)
	case llm.IntentSetBudget:
		return a.handleSetBudget(res)
	case llm.IntentSummary:
		return a.handleSummary(res)
	default:
		reply := res.Reply
		if reply == "" {
			reply = "Happy to help with your spending questions."
		}
		return Response{Reply: reply, Intent: string(llm.IntentAdvice)}
	}
}

func apology() Response {
	return Response{Reply: apologyReply, Intent: string(llm.IntentAdvice)}
}

func (a *Assistant) handleAddExpense(ctx context.Context, res llm.Result) Response {
	if res.Expense == nil || !res.Expense.Amount.IsSet() {
		return Response{
			Reply:  "I couldn't find the amount. How much did you spend?",
			Intent: string(llm.IntentAddExpense),
		}
	}

	e := core.Expense{
		ID:       uuid.NewString(),
		Amount:   res.Expense.Amount,
		Category: res.Expense.Category,
		Note:     res.Expense.Note,
		Date:     res.Expense.Date,
	}
	if !res.Expense.HasDate {
		e.Date = core.Today(a.now())
	}

	if _, err := a.LogExpense(ctx, e); err != nil {
		slog.WarnContext(ctx, "Extracted expense rejected",
			applog.FieldError, err,
			applog.FieldComponent, applog.ComponentAssistant)
		return Response{
			Reply:  "That expense didn't look right, so I left the ledger alone.",
			Intent: string(llm.IntentAddExpense),
		}
	}

	reply := res.Reply
	if reply == "" {
		reply = "Logged " + e.Amount.String() + " for " + string(e.Category) + "."
	}
	return Response{
		Reply:    reply,
		Intent:   string(llm.IntentAddExpense),
		Expenses: a.store.List(),
	}
}

func (a *Assistant) handleSetBudget(res llm.Result) Response {
	if len(res.Budget) == 0 {
		return Response{
			Reply:  "Which category should the budget apply to, and how much?",
			Intent: string(llm.IntentSetBudget),
		}
	}

	for _, ch := range res.Budget {
		if ch.Total {
			a.store.SetTotalLimit(ch.Limit)
			continue
		}
		a.store.SetLimit(ch.Category, ch.Limit)
	}

	budget := a.store.Budget()
	reply := res.Reply
	if reply == "" {
		reply = "Budget updated."
	}
	return Response{Reply: reply, Intent: string(llm.IntentSetBudget), Budget: &budget}
}

func (a *Assistant) handleSummary(res llm.Result) Response {
	items, budget := a.store.Snapshot()
	summary := core.Summarize(items, budget)

	reply := res.Reply
	if reply == "" {
		reply = "You've spent " + summary.Total.String() + " across " + strconv.Itoa(summary.Count) + " expenses."
	}
	return Response{Reply: reply, Intent: string(llm.IntentSummary), Summary: &summary}
}

// LogExpense validates, normalizes, and appends one expense, publishing a
// budget alert when a limit is newly crossed. Used by both the chat path
// and the direct API path. The returned expense carries the generated ID
// and defaulted date.
func (a *Assistant) LogExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = core.Today(a.now())
	}
	if !e.Category.IsValid() {
		e.Category = core.ParseCategory(string(e.Category))
	}

	budget := a.store.Budget()
	catBefore := a.store.CategorySpent(e.Category)
	totalBefore := a.store.TotalSpent()

	if err := a.store.Append(e); err != nil {
		return core.Expense{}, err
	}

	slog.InfoContext(ctx, "Expense logged",
		applog.FieldExpenseID, e.ID,
		applog.FieldCategory, string(e.Category),
		applog.FieldAmount, e.Amount.Cents,
		applog.FieldComponent, applog.ComponentAssistant)

	a.checkLimits(ctx, e, budget, catBefore, totalBefore)
	return e, nil
}

// checkLimits publishes alerts for limits crossed by this expense. Alerts
// fire only on the crossing, not on every expense past the limit.
func (a *Assistant) checkLimits(ctx context.Context, e core.Expense, budget core.Budget, catBefore, totalBefore core.Money) {
	if a.publisher == nil {
		return
	}

	if limit, ok := budget.LimitFor(e.Category); ok {
		after := catBefore.Cents + e.Amount.Cents
		if after > limit.Cents && catBefore.Cents <= limit.Cents {
			alert := alerts.NewCategoryAlert(e.Category, core.Money{Cents: after}, limit)
			if err := a.publisher.PublishBudgetAlert(ctx, alert); err != nil {
				slog.ErrorContext(ctx, "Failed to publish category alert",
					applog.FieldError, err,
					applog.FieldCategory, string(e.Category),
					applog.FieldComponent, applog.ComponentAssistant)
			}
		}
	}

	if budget.Total.IsSet() {
		after := totalBefore.Cents + e.Amount.Cents
		if after > budget.Total.Cents && totalBefore.Cents <= budget.Total.Cents {
			alert := alerts.NewTotalAlert(core.Money{Cents: after}, budget.Total)
			if err := a.publisher.PublishBudgetAlert(ctx, alert); err != nil {
				slog.ErrorContext(ctx, "Failed to publish total alert",
					applog.FieldError, err,
					applog.FieldComponent, applog.ComponentAssistant)
			}
		}
	}
}
