package models

import "time"

// Task represents a to-do item
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Task list filters
const (
	FilterAll       = "all"
	FilterCompleted = "completed"
	FilterPending   = "pending"
)

// TaskStats counts tasks by completion state
type TaskStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}
