package models

import "time"

// Entry types
const (
	EntryIncome  = "income"
	EntryExpense = "expense"
)

// Entry represents an income or expense line in the balance sheet
type Entry struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"` // always positive, sign comes from Type
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
}
