package llm

import (
	"strings"

	"github.com/tidwall/gjson"

	"ledgerchat/internal/core"
)

// ExtractedExpense is the expense the model pulled out of a chat message.
// HasDate distinguishes "no date mentioned" from an explicit date.
type ExtractedExpense struct {
	Amount   core.Money
	Category core.Category
	Note     string
	Date     core.Date
	HasDate  bool
}

// BudgetChange is one limit extracted from a set_budget message. An empty
// Category means the overall total limit.
type BudgetChange struct {
	Category core.Category
	Total    bool
	Limit    core.Money
}

// Result is the parsed model answer.
type Result struct {
	Intent  Intent
	Reply   string
	Expense *ExtractedExpense
	Budget  []BudgetChange
}

// ParseResult extracts the structured answer from raw model output. The
// output is untrusted: code fences, prose around the object, string-or-number
// amounts, and sloppy dates are all tolerated. Returns ErrUnparsable when no
// JSON object with an intent can be located.
func ParseResult(raw string) (Result, error) {
	doc := extractJSONObject(raw)
	if doc == "" || !gjson.Valid(doc) {
		return Result{}, ErrUnparsable
	}

	intentField := gjson.Get(doc, "intent")
	if !intentField.Exists() {
		return Result{}, ErrUnparsable
	}

	res := Result{
		Intent: ParseIntent(intentField.String()),
		Reply:  strings.TrimSpace(gjson.Get(doc, "reply").String()),
	}

	if exp := gjson.Get(doc, "expense"); exp.IsObject() {
		res.Expense = parseExpense(exp)
	}
	if budget := gjson.Get(doc, "budget"); budget.IsObject() {
		res.Budget = parseBudget(budget)
	}
	return res, nil
}

func parseExpense(exp gjson.Result) *ExtractedExpense {
	out := &ExtractedExpense{
		Category: core.ParseCategory(exp.Get("category").String()),
		Note:     strings.TrimSpace(exp.Get("note").String()),
	}
	// gjson renders numbers back as their literal text, so string and
	// number amounts go through the same decimal parser.
	if cents, err := core.ParseDecimalToCents(exp.Get("amount").String()); err == nil {
		out.Amount = core.Money{Cents: cents}
	}
	if d, err := core.ParseDate(exp.Get("date").String()); err == nil {
		out.Date = d
		out.HasDate = true
	}
	return out
}

func parseBudget(budget gjson.Result) []BudgetChange {
	var changes []BudgetChange
	budget.ForEach(func(key, value gjson.Result) bool {
		cents, err := core.ParseDecimalToCents(value.String())
		if err != nil {
			return true // skip unparsable limits
		}
		name := strings.TrimSpace(key.String())
		if strings.EqualFold(name, "total") || strings.EqualFold(name, "overall") {
			changes = append(changes, BudgetChange{Total: true, Limit: core.Money{Cents: cents}})
			return true
		}
		changes = append(changes, BudgetChange{
			Category: core.ParseCategory(name),
			Limit:    core.Money{Cents: cents},
		})
		return true
	})
	return changes
}

// extractJSONObject locates the outermost JSON object in raw model output,
// stripping markdown code fences and surrounding prose.
func extractJSONObject(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "```") {
		raw = stripCodeFences(raw)
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}

func stripCodeFences(raw string) string {
	var sb strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
