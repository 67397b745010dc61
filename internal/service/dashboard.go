package service

import (
	"context"
	"time"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/state"
)

// Dashboard assembles the overview of sess
func (s *Service) Dashboard(ctx context.Context, sess session.Session) (models.Dashboard, error) {
	if !sess.Valid() {
		return models.Dashboard{}, ErrUnauthorized
	}

	tasks := state.TaskList{Tasks: s.repo.Tasks(ctx, sess)}
	ledger := state.Ledger{Entries: s.repo.Entries(ctx, sess)}
	_, expense, _ := ledger.RoundedTotals(fractionOf(s.currency()))
	profile := s.repo.Profile(ctx, sess)
	profile.Status = state.DisplayStatus(profile)
	settings := s.repo.Settings(ctx, sess)

	now := s.gen.Now().In(s.zone(settings))
	dash := models.Dashboard{
		Greeting:     state.Greeting(now),
		Date:         state.LongDate(now),
		Profile:      profile,
		Theme:        s.repo.Theme(ctx, sess),
		PendingTasks: tasks.Pending(),
		TopTasks:     tasks.Top(state.MiniListSize),
		TotalExpense: formatMoney(expense, s.currency()),
		QuickNote:    s.repo.QuickNote(ctx, sess),
	}
	if s.weather != nil {
		city := settings.City
		dash.Weather = s.weather.Snapshot(city)
		if dash.Weather.UpdatedAt.IsZero() {
			dash.Weather = s.weather.Lookup(ctx, city)
		}
	}
	return dash, nil
}

// zone returns the user's configured location, or the server's.
func (s *Service) zone(settings models.Settings) *time.Location {
	if settings.Timezone != "" {
		if loc, err := time.LoadLocation(settings.Timezone); err == nil {
			return loc
		}
	}
	if s.loc == nil {
		return time.Local
	}
	return s.loc
}

// Weather looks up the weather for city, or for the city in the settings of
// sess when city is empty
func (s *Service) Weather(ctx context.Context, sess session.Session, city string) (models.WeatherSnapshot, error) {
	if !sess.Valid() {
		return models.WeatherSnapshot{}, ErrUnauthorized
	}
	if s.weather == nil {
		return models.WeatherSnapshot{}, ErrNotFound
	}
	if city == "" {
		city = s.repo.Settings(ctx, sess).City
	}
	return s.weather.Lookup(ctx, city), nil
}
