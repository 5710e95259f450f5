package core

import (
	"errors"
	"strings"
	"time"
)

// Category is one of the nine fixed expense labels. Anything outside the
// set normalizes to Other, since both users and the model produce free text.
type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Housing       Category = "Housing"
	Utilities     Category = "Utilities"
	Entertainment Category = "Entertainment"
	Shopping      Category = "Shopping"
	Health        Category = "Health"
	Education     Category = "Education"
	Other         Category = "Other"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{Food, Transport, Housing, Utilities, Entertainment, Shopping, Health, Education, Other}
}

// categoryAliases maps common loose spellings to canonical labels.
var categoryAliases = map[string]Category{
	"groceries":      Food,
	"grocery":        Food,
	"dining":         Food,
	"restaurant":     Food,
	"transportation": Transport,
	"travel":         Transport,
	"commute":        Transport,
	"rent":           Housing,
	"home":           Housing,
	"bills":          Utilities,
	"utility":        Utilities,
	"fun":            Entertainment,
	"leisure":        Entertainment,
	"clothes":        Shopping,
	"clothing":       Shopping,
	"medical":        Health,
	"healthcare":     Health,
	"pharmacy":       Health,
	"school":         Education,
	"books":          Education,
	"misc":           Other,
	"miscellaneous":  Other,
}

// ParseCategory normalizes free-text input to a canonical category.
// Unknown input maps to Other rather than failing.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	if c, ok := categoryAliases[strings.ToLower(s)]; ok {
		return c
	}
	return Other
}

// IsValid reports whether c is one of the nine canonical labels.
func (c Category) IsValid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyID         = errors.New("empty expense id")
)

type Money struct {
	Cents int64
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// IsSet reports whether the money value carries a positive amount.
// Budget limits use the zero value to mean "no limit".
func (m Money) IsSet() bool {
	return m.Cents > 0
}

// Expense is a single logged expense.
type Expense struct {
	ID       string   `json:"id"`
	Amount   Money    `json:"amount_cents"`
	Category Category `json:"category"`
	Note     string   `json:"note,omitempty"`
	Date     Date     `json:"date"`
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Category.IsValid() {
		return ErrInvalidCategory
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if len(e.Note) > 200 {
		return errors.New("note too long (max 200 characters)")
	}
	return nil
}

// Budget holds optional per-category limits plus an overall total limit.
// A zero Money means the limit is unset.
type Budget struct {
	Limits map[Category]Money `json:"limits"`
	Total  Money              `json:"total_cents"`
}

// LimitFor returns the limit for a category and whether one is set.
func (b Budget) LimitFor(c Category) (Money, bool) {
	m, ok := b.Limits[c]
	if !ok || !m.IsSet() {
		return Money{}, false
	}
	return m, true
}

// SetLimit sets or clears (cents <= 0) a per-category limit.
func (b *Budget) SetLimit(c Category, m Money) {
	if b.Limits == nil {
		b.Limits = make(map[Category]Money)
	}
	if !m.IsSet() {
		delete(b.Limits, c)
		return
	}
	b.Limits[c] = m
}

// Clone returns a deep copy so callers can hand budgets out safely.
func (b Budget) Clone() Budget {
	out := Budget{Total: b.Total}
	if len(b.Limits) > 0 {
		out.Limits = make(map[Category]Money, len(b.Limits))
		for k, v := range b.Limits {
			out.Limits[k] = v
		}
	}
	return out
}

func (b Budget) Validate() error {
	for c, m := range b.Limits {
		if !c.IsValid() {
			return ErrInvalidCategory
		}
		if m.Cents < 0 {
			return ErrInvalidAmount
		}
	}
	if b.Total.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// DateLayout is the wire format for dates: day-month-year.
const DateLayout = "02-01-2006"

// Date is a calendar day, marshaled as DD-MM-YYYY.
type Date struct {
	time.Time
}

func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today truncates t to its calendar day.
func Today(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// dateLayouts lists the accepted input formats, most specific first.
// The model occasionally answers with ISO dates regardless of instructions.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02",
	"2/1/2006",
	"02/01/2006",
	"2 January 2006",
	"January 2, 2006",
}

// ParseDate parses a date string in any accepted layout.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t.UTC()}, nil
		}
	}
	return Date{}, ErrInvalidDate
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// SameMonth reports whether the date falls in the given year and month.
func (d Date) SameMonth(year int, month time.Month) bool {
	return d.Year() == year && d.Time.Month() == month
}
