package models

// Dashboard is the overview shown after sign-in
type Dashboard struct {
	Greeting     string          `json:"greeting"`
	Date         string          `json:"date"`
	Profile      Profile         `json:"profile"`
	Theme        string          `json:"theme"`
	PendingTasks int             `json:"pending_tasks"`
	TopTasks     []Task          `json:"top_tasks"`
	TotalExpense string          `json:"total_expense"`
	QuickNote    string          `json:"quick_note"`
	Weather      WeatherSnapshot `json:"weather"`
}

// QuickNote is the scratch note with its character count
type QuickNote struct {
	Text  string `json:"text"`
	Chars int    `json:"chars"`
}
