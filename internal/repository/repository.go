package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/state"
	"github.com/Dan9191/unidash/internal/storage"
)

// ErrUserNotFound is returned by FindUser when no account matches.
var ErrUserNotFound = errors.New("user not found")

// Repository provides per-user collections on top of the key-value shim.
// Every read returns a fresh copy of the whole collection and every write
// replaces it.
type Repository struct {
	kv          *storage.Shim
	defaultCity string
}

// NewRepository initializes a new repository
func NewRepository(kv *storage.Shim, defaultCity string) *Repository {
	return &Repository{kv: kv, defaultCity: defaultCity}
}

// Users returns every registered account
func (r *Repository) Users(ctx context.Context) []models.User {
	return storage.Load(ctx, r.kv, storage.KeyUsers, []models.User{})
}

// SaveUser appends user to the account list
func (r *Repository) SaveUser(ctx context.Context, user models.User) error {
	users := r.Users(ctx)
	users = append(users, user)
	if err := storage.Save(ctx, r.kv, storage.KeyUsers, users); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// FindUser looks an account up by email, ignoring case
func (r *Repository) FindUser(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.Users(ctx) {
		if strings.EqualFold(user.Email, email) {
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// StartSession records email as the active user
func (r *Repository) StartSession(ctx context.Context, email string) error {
	return storage.Save(ctx, r.kv, storage.KeySession, email)
}

// EndSession clears the active user
func (r *Repository) EndSession(ctx context.Context) error {
	return r.kv.Remove(ctx, storage.KeySession)
}

// ActiveSession returns the last user to sign in, if any
func (r *Repository) ActiveSession(ctx context.Context) (session.Session, bool) {
	email := storage.Load(ctx, r.kv, storage.KeySession, "")
	if email == "" {
		return session.Session{}, false
	}
	return session.Session{Identity: email}, true
}

// Tasks returns the task list of s
func (r *Repository) Tasks(ctx context.Context, s session.Session) []models.Task {
	return storage.Load(ctx, r.kv, storage.UserKey(s, storage.SuffixTasks), []models.Task{})
}

// SaveTasks replaces the task list of s
func (r *Repository) SaveTasks(ctx context.Context, s session.Session, tasks []models.Task) error {
	return storage.Save(ctx, r.kv, storage.UserKey(s, storage.SuffixTasks), nonNil(tasks))
}

// Entries returns the ledger entries of s
func (r *Repository) Entries(ctx context.Context, s session.Session) []models.Entry {
	return storage.Load(ctx, r.kv, storage.UserKey(s, storage.SuffixExpenses), []models.Entry{})
}

// SaveEntries replaces the ledger entries of s
func (r *Repository) SaveEntries(ctx context.Context, s session.Session, entries []models.Entry) error {
	return storage.Save(ctx, r.kv, storage.UserKey(s, storage.SuffixExpenses), nonNil(entries))
}

// Notes returns the notes of s
func (r *Repository) Notes(ctx context.Context, s session.Session) []models.Note {
	return storage.Load(ctx, r.kv, storage.UserKey(s, storage.SuffixNotes), []models.Note{})
}

// SaveNotes replaces the notes of s
func (r *Repository) SaveNotes(ctx context.Context, s session.Session, notes []models.Note) error {
	return storage.Save(ctx, r.kv, storage.UserKey(s, storage.SuffixNotes), nonNil(notes))
}

// Profile returns the profile of s, synthesizing one from the identity when none is stored
func (r *Repository) Profile(ctx context.Context, s session.Session) models.Profile {
	return storage.Load(ctx, r.kv, storage.UserKey(s, storage.SuffixProfile), state.DefaultProfile(s.Identity))
}

// SaveProfile replaces the profile of s
func (r *Repository) SaveProfile(ctx context.Context, s session.Session, profile models.Profile) error {
	return storage.Save(ctx, r.kv, storage.UserKey(s, storage.SuffixProfile), profile)
}

// Theme returns the theme of s, dark by default
func (r *Repository) Theme(ctx context.Context, s session.Session) string {
	return storage.Load(ctx, r.kv, storage.UserKey(s, storage.SuffixTheme), models.ThemeDark)
}

// SaveTheme stores the theme of s
func (r *Repository) SaveTheme(ctx context.Context, s session.Session, theme string) error {
	return storage.Save(ctx, r.kv, storage.UserKey(s, storage.SuffixTheme), theme)
}

// QuickNote returns the scratch note of s
func (r *Repository) QuickNote(ctx context.Context, s session.Session) string {
	return storage.Load(ctx, r.kv, storage.UserKey(s, storage.SuffixQuickNote), "")
}

// SaveQuickNote stores the scratch note of s
func (r *Repository) SaveQuickNote(ctx context.Context, s session.Session, text string) error {
	return storage.Save(ctx, r.kv, storage.UserKey(s, storage.SuffixQuickNote), text)
}

// Settings returns the preferences of s
func (r *Repository) Settings(ctx context.Context, s session.Session) models.Settings {
	settings := storage.Load(ctx, r.kv, storage.UserKey(s, storage.SuffixSettings), models.Settings{})
	if strings.TrimSpace(settings.City) == "" {
		settings.City = r.defaultCity
	}
	return settings
}

// SaveSettings stores the preferences of s
func (r *Repository) SaveSettings(ctx context.Context, s session.Session, settings models.Settings) error {
	return storage.Save(ctx, r.kv, storage.UserKey(s, storage.SuffixSettings), settings)
}

// ClearUserData removes every per-user key of s. The account itself is kept.
func (r *Repository) ClearUserData(ctx context.Context, s session.Session) error {
	if !s.Valid() {
		return storage.ErrNoKey
	}
	for _, suffix := range storage.UserSuffixes {
		if err := r.kv.Remove(ctx, storage.UserKey(s, suffix)); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
	}
	return nil
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
