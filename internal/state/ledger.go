package state

import (
	"math"
	"strings"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to entries submitted without a category.
const DefaultCategory = "General"

// EntryInput carries the user-supplied fields of a new ledger entry.
type EntryInput struct {
	Description string
	Category    string
	Amount      float64
	Type        string
}

// Ledger is the combined income and expense list of one user.
type Ledger struct {
	Entries []models.Entry
}

// Add validates input and appends a new entry.
func (l *Ledger) Add(gen Generator, input EntryInput) (models.Entry, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return models.Entry{}, ErrEmptyDescription
	}
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) || input.Amount <= 0 {
		return models.Entry{}, ErrInvalidAmount
	}
	entryType := strings.ToLower(strings.TrimSpace(input.Type))
	if entryType == "" {
		entryType = models.EntryExpense
	}
	if entryType != models.EntryIncome && entryType != models.EntryExpense {
		return models.Entry{}, ErrInvalidType
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = DefaultCategory
	}

	entry := models.Entry{
		ID:          gen.NewID(),
		Description: description,
		Category:    category,
		Amount:      input.Amount,
		Type:        entryType,
		Date:        gen.Now(),
	}
	l.Entries = append(l.Entries, entry)
	return entry, nil
}

// Delete removes the entry with id and reports whether one was removed.
func (l *Ledger) Delete(id string) bool {
	for i := range l.Entries {
		if l.Entries[i].ID == id {
			l.Entries = append(l.Entries[:i:i], l.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// Totals sums income and expense entries in decimal arithmetic.
func (l *Ledger) Totals() (income, expense, balance decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, entry := range l.Entries {
		amount := decimal.NewFromFloat(entry.Amount)
		if entry.Type == models.EntryIncome {
			income = income.Add(amount)
		} else {
			expense = expense.Add(amount)
		}
	}
	return income, expense, income.Sub(expense)
}

// RoundedTotals rounds income and expense to places decimals and derives the
// balance from the rounded values, so income minus expense always equals it.
func (l *Ledger) RoundedTotals(places int32) (income, expense, balance decimal.Decimal) {
	income, expense, _ = l.Totals()
	income, expense = income.Round(places), expense.Round(places)
	return income, expense, income.Sub(expense)
}

// Summary returns the totals as floats, rounded to cents.
func (l *Ledger) Summary() models.IncomeExpenseStats {
	income, expense, balance := l.RoundedTotals(2)
	return models.IncomeExpenseStats{
		Income:     income.InexactFloat64(),
		Expense:    expense.InexactFloat64(),
		NetBalance: balance.InexactFloat64(),
	}
}
