package state

import "time"

// Greeting returns the salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// LongDate formats t as e.g. "Monday, March 2, 2026".
func LongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
