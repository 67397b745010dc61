package state

import (
	"encoding/base64"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/Dan9191/unidash/internal/models"
)

const avatarBaseURL = "https://ui-avatars.com/api/"

// Profile statuses assigned by the system.
const (
	StatusDefault = "Orbiting"
	StatusNew     = "Newly Orbiting"
)

// AvatarURL returns the generated avatar image URL for name.
func AvatarURL(name string) string {
	q := url.Values{}
	q.Set("name", name)
	q.Set("background", "6366f1")
	q.Set("color", "fff")
	return avatarBaseURL + "?" + q.Encode()
}

// DefaultProfile is the profile synthesized for an identity that never saved one.
func DefaultProfile(identity string) models.Profile {
	name := "User"
	if identity != "" {
		name, _, _ = strings.Cut(identity, "@")
	}
	return models.Profile{
		Name:   name,
		Avatar: AvatarURL("User"),
		Status: StatusDefault,
	}
}

// NewUserProfile is the profile written at signup.
func NewUserProfile(name string) models.Profile {
	return models.Profile{
		Name:   name,
		Avatar: AvatarURL(name),
		Status: StatusNew,
	}
}

// Rename sets the profile name to the trimmed value.
func Rename(p models.Profile, name string) (models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return p, ErrEmptyName
	}
	p.Name = name
	return p, nil
}

// DisplayStatus returns the status, falling back to the default.
func DisplayStatus(p models.Profile) string {
	if strings.TrimSpace(p.Status) == "" {
		return StatusDefault
	}
	return p.Status
}

// AvatarDataURL embeds an uploaded image in a data URL.
func AvatarDataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ValidTheme reports whether theme is a known theme.
func ValidTheme(theme string) bool {
	return theme == models.ThemeDark || theme == models.ThemeLight
}

// ToggleTheme switches between dark and light. Anything other than light
// toggles to light.
func ToggleTheme(theme string) string {
	if theme == models.ThemeLight {
		return models.ThemeDark
	}
	return models.ThemeLight
}

// CharCount is the number of characters in a quick note.
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}
