package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/state"
)

// MaxAvatarBytes caps uploaded avatar images.
const MaxAvatarBytes = 2 << 20

var (
	ErrAvatarTooLarge = errors.New("avatar must be at most 2 MiB")
	ErrAvatarType     = errors.New("avatar must be an image")
	ErrInvalidZone    = errors.New("timezone must be an IANA name such as Asia/Kolkata")
)

// ProfileUpdate carries optional profile changes. Nil fields are left as is.
type ProfileUpdate struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// Profile returns the profile of sess with its status filled in
func (s *Service) Profile(ctx context.Context, sess session.Session) (models.Profile, error) {
	if !sess.Valid() {
		return models.Profile{}, ErrUnauthorized
	}
	profile := s.repo.Profile(ctx, sess)
	profile.Status = state.DisplayStatus(profile)
	return profile, nil
}

// UpdateProfile renames the user and/or sets their status
func (s *Service) UpdateProfile(ctx context.Context, sess session.Session, upd ProfileUpdate) (models.Profile, error) {
	unlock, err := s.begin(sess)
	if err != nil {
		return models.Profile{}, err
	}
	defer unlock()

	profile := s.repo.Profile(ctx, sess)
	if upd.Name != nil {
		if profile, err = state.Rename(profile, *upd.Name); err != nil {
			return models.Profile{}, err
		}
	}
	if upd.Status != nil {
		profile.Status = strings.TrimSpace(*upd.Status)
	}
	if err := s.repo.SaveProfile(ctx, sess, profile); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	profile.Status = state.DisplayStatus(profile)
	return profile, nil
}

// UploadAvatar stores an image as the avatar of sess
func (s *Service) UploadAvatar(ctx context.Context, sess session.Session, data []byte) (models.Profile, error) {
	if len(data) > MaxAvatarBytes {
		return models.Profile{}, ErrAvatarTooLarge
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return models.Profile{}, ErrAvatarType
	}

	unlock, err := s.begin(sess)
	if err != nil {
		return models.Profile{}, err
	}
	defer unlock()

	profile := s.repo.Profile(ctx, sess)
	profile.Avatar = state.AvatarDataURL(contentType, data)
	if err := s.repo.SaveProfile(ctx, sess, profile); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	s.log.Infof("Avatar updated for %s (%s, %d bytes)", sess.Identity, contentType, len(data))
	profile.Status = state.DisplayStatus(profile)
	return profile, nil
}

// Theme returns the theme of sess
func (s *Service) Theme(ctx context.Context, sess session.Session) (string, error) {
	if !sess.Valid() {
		return "", ErrUnauthorized
	}
	return s.repo.Theme(ctx, sess), nil
}

// SetTheme stores the theme of sess
func (s *Service) SetTheme(ctx context.Context, sess session.Session, theme string) (string, error) {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if !state.ValidTheme(theme) {
		return "", state.ErrInvalidTheme
	}
	unlock, err := s.begin(sess)
	if err != nil {
		return "", err
	}
	defer unlock()

	if err := s.repo.SaveTheme(ctx, sess, theme); err != nil {
		return "", fmt.Errorf("failed to save theme: %w", err)
	}
	return theme, nil
}

// ToggleTheme switches the theme of sess between dark and light
func (s *Service) ToggleTheme(ctx context.Context, sess session.Session) (string, error) {
	unlock, err := s.begin(sess)
	if err != nil {
		return "", err
	}
	defer unlock()

	theme := state.ToggleTheme(s.repo.Theme(ctx, sess))
	if err := s.repo.SaveTheme(ctx, sess, theme); err != nil {
		return "", fmt.Errorf("failed to save theme: %w", err)
	}
	return theme, nil
}

// Settings returns the preferences of sess
func (s *Service) Settings(ctx context.Context, sess session.Session) (models.Settings, error) {
	if !sess.Valid() {
		return models.Settings{}, ErrUnauthorized
	}
	return s.repo.Settings(ctx, sess), nil
}

// SaveSettings stores the preferences of sess. An empty city resets to the default.
func (s *Service) SaveSettings(ctx context.Context, sess session.Session, settings models.Settings) (models.Settings, error) {
	unlock, err := s.begin(sess)
	if err != nil {
		return models.Settings{}, err
	}
	defer unlock()

	settings.City = strings.TrimSpace(settings.City)
	settings.Timezone = strings.TrimSpace(settings.Timezone)
	if settings.Timezone != "" {
		if _, err := time.LoadLocation(settings.Timezone); err != nil {
			return models.Settings{}, ErrInvalidZone
		}
	}
	if err := s.repo.SaveSettings(ctx, sess, settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return s.repo.Settings(ctx, sess), nil
}

// ClearData deletes every task, entry, note and preference of sess. The
// account stays registered.
func (s *Service) ClearData(ctx context.Context, sess session.Session) error {
	unlock, err := s.begin(sess)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.repo.ClearUserData(ctx, sess); err != nil {
		return err
	}
	s.log.Infof("Data cleared for %s", sess.Identity)
	return nil
}
