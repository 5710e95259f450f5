package llm

import (
	"strings"
	"text/template"
	"time"

	"ledgerchat/internal/core"
)

// maxDigestItems caps how many recent expenses are inlined into the prompt.
const maxDigestItems = 20

const systemTemplate = `You are the assistant inside a personal expense tracker.
Today is {{.Today}}.

Classify the user's message into exactly one intent:
- "add_expense": the user wants to log a purchase or cost
- "get_summary": the user asks what they spent
- "set_budget": the user wants to set or change a spending limit
- "advice": anything else, including requests for financial advice

The only valid categories are: {{.Categories}}.
Dates use the day-month-year format DD-MM-YYYY.
{{if .Budget}}
Current budget limits:
{{.Budget}}{{end}}
{{if .Recent}}
Recent expenses (amount category date):
{{.Recent}}{{end}}
Answer with a single JSON object and nothing else:
{"intent": "...", "reply": "<short friendly sentence for the user>", "expense": {"amount": "12.34", "category": "...", "note": "...", "date": "DD-MM-YYYY"}, "budget": {"<category or total>": "200"}}

Include "expense" only for add_expense and "budget" only for set_budget.`

var systemTmpl = template.Must(template.New("system").Parse(systemTemplate))

// SystemPrompt renders the instruction prompt with today's date, the closed
// category set, and a digest of the current ledger and budget.
func SystemPrompt(now time.Time, budget core.Budget, recent []core.Expense) string {
	cats := make([]string, 0, len(core.Categories()))
	for _, c := range core.Categories() {
		cats = append(cats, string(c))
	}

	data := struct {
		Today      string
		Categories string
		Budget     string
		Recent     string
	}{
		Today:      core.Today(now).String(),
		Categories: strings.Join(cats, ", "),
		Budget:     budgetDigest(budget),
		Recent:     ledgerDigest(recent),
	}

	var sb strings.Builder
	if err := systemTmpl.Execute(&sb, data); err != nil {
		// The template is static; execution only fails on a broken build.
		return systemTemplate
	}
	return sb.String()
}

func budgetDigest(b core.Budget) string {
	var lines []string
	for _, c := range core.Categories() {
		if limit, ok := b.LimitFor(c); ok {
			lines = append(lines, "- "+string(c)+": "+limit.String())
		}
	}
	if b.Total.IsSet() {
		lines = append(lines, "- total: "+b.Total.String())
	}
	return strings.Join(lines, "\n")
}

func ledgerDigest(items []core.Expense) string {
	if len(items) > maxDigestItems {
		items = items[len(items)-maxDigestItems:]
	}
	var lines []string
	for _, e := range items {
		lines = append(lines, "- "+e.Amount.String()+" "+string(e.Category)+" "+e.Date.String())
	}
	return strings.Join(lines, "\n")
}
