package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/Dan9191/unidash/internal/config"
	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/repository"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/state"
	"github.com/Dan9191/unidash/internal/storage"
	"github.com/sirupsen/logrus"
)

type stubWeather struct {
	mu      sync.Mutex
	lookups []string
	cached  map[string]models.WeatherSnapshot
}

func (w *stubWeather) Lookup(_ context.Context, city string) models.WeatherSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lookups = append(w.lookups, city)
	snap := models.WeatherSnapshot{City: city, Label: city + ": Sunny", Value: "30°C", UpdatedAt: time.Unix(1, 0)}
	if w.cached == nil {
		w.cached = map[string]models.WeatherSnapshot{}
	}
	w.cached[city] = snap
	return snap
}

func (w *stubWeather) Snapshot(city string) models.WeatherSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	if snap, ok := w.cached[city]; ok {
		return snap
	}
	return models.WeatherSnapshot{City: city, Label: "Updating..."}
}

type stubMailer struct {
	to, name string
	sheet    []byte
	err      error
}

func (m *stubMailer) SendBalanceSheet(to, name string, sheet []byte) error {
	m.to, m.name, m.sheet = to, name, sheet
	return m.err
}

type testEnv struct {
	svc     *Service
	store   *storage.MemoryStore
	weather *stubWeather
	mailer  *stubMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := storage.NewMemoryStore()
	repo := repository.NewRepository(storage.NewShim(store, log), "Bengaluru")
	cfg := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour, Currency: "USD"}
	env := &testEnv{store: store, weather: &stubWeather{}, mailer: &stubMailer{}}
	env.svc = NewService(repo, log, cfg, env.weather, env.mailer)
	env.svc.gen = fixedGenerator()
	env.svc.loc = time.UTC
	return env
}

// fixedGenerator yields id-1, id-2, ... and a clock that advances one second per call.
func fixedGenerator() state.Generator {
	var mu sync.Mutex
	n := 0
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return state.Generator{
		Now: func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			clock = clock.Add(time.Second)
			return clock
		},
		NewID: func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

var ana = session.Session{Identity: "ana@example.com"}
