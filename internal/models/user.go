package models

// User represents a registered dashboard account
type User struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
}

// Profile is the per-user display record
type Profile struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"` // URL or data URL
	Status string `json:"status"`
}

// Settings holds per-user preferences that are not part of the profile
type Settings struct {
	City string `json:"city"`
	// Timezone is an IANA zone name used for the greeting; empty means server local time.
	Timezone string `json:"timezone,omitempty"`
}

// Theme values
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)
