package models

// IncomeExpenseStats represents income and expense totals of a ledger
type IncomeExpenseStats struct {
	Income     float64 `json:"income"`
	Expense    float64 `json:"expense"`
	NetBalance float64 `json:"net_balance"`
}

// FormattedStats carries the same totals rendered in the display currency
type FormattedStats struct {
	Income     string `json:"income"`
	Expense    string `json:"expense"`
	NetBalance string `json:"net_balance"`
}

// LedgerSummary pairs the raw totals with their display strings
type LedgerSummary struct {
	Currency  string             `json:"currency"`
	Totals    IncomeExpenseStats `json:"totals"`
	Formatted FormattedStats     `json:"formatted"`
}
