package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Dan9191/unidash/internal/metrics"
	"github.com/Dan9191/unidash/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	maxTrackedCities = 64

	labelUpdating = "Updating..."
	labelOffline  = "Offline / Error"
	valueOffline  = "--°C"
)

// ErrSuperseded marks a lookup whose result was discarded because a newer
// lookup for the same city started before it finished.
var ErrSuperseded = errors.New("weather lookup superseded by a newer request")

type cityState struct {
	seq      uint64
	cancel   context.CancelFunc
	snapshot models.WeatherSnapshot
	ready    bool
}

// Pulse caches the latest weather snapshot per city. For each city only the
// most recent lookup may update the cache: starting a lookup cancels the one
// in flight and any late result of an older lookup is dropped.
type Pulse struct {
	provider    Provider
	defaultCity string
	log         *logrus.Logger
	metrics     *metrics.Metrics
	now         func() time.Time

	mu     sync.Mutex
	cities map[string]*cityState
	cron   *cron.Cron
}

// NewPulse creates a Pulse over provider. m may be nil.
func NewPulse(provider Provider, defaultCity string, log *logrus.Logger, m *metrics.Metrics) *Pulse {
	return &Pulse{
		provider:    provider,
		defaultCity: defaultCity,
		log:         log,
		metrics:     m,
		now:         func() time.Time { return time.Now().UTC() },
		cities:      make(map[string]*cityState),
	}
}

func cityKey(city string) string {
	return strings.ToLower(city)
}

// Lookup fetches the weather for city and caches the result. A failed fetch
// yields and caches a degraded snapshot; it never returns an error. When a
// newer lookup for the same city supersedes this one, the returned snapshot
// carries ErrSuperseded's message and the cache is left to the newer lookup.
func (p *Pulse) Lookup(ctx context.Context, city string) models.WeatherSnapshot {
	city = strings.TrimSpace(city)
	if city == "" {
		city = p.defaultCity
	}
	key := cityKey(city)

	p.mu.Lock()
	st, ok := p.cities[key]
	if !ok {
		if !p.evictLocked() {
			p.mu.Unlock()
			p.log.Warnf("Weather cache full, %s is fetched without caching", city)
			w, err := p.provider.Current(ctx, city)
			return p.result(city, w, err)
		}
		st = &cityState{}
		p.cities[key] = st
	}
	if st.cancel != nil {
		st.cancel()
	}
	st.seq++
	seq := st.seq
	fetchCtx, cancel := context.WithCancel(ctx)
	st.cancel = cancel
	p.mu.Unlock()
	defer cancel()

	w, err := p.provider.Current(fetchCtx, city)

	p.mu.Lock()
	defer p.mu.Unlock()
	if st.seq != seq {
		p.metrics.ObserveWeatherFetch(p.provider.Name(), "superseded")
		return p.degraded(city, ErrSuperseded)
	}
	st.cancel = nil

	snap := p.result(city, w, err)
	st.snapshot = snap
	st.ready = true
	return snap
}

// result turns a provider answer into a snapshot and records the outcome.
func (p *Pulse) result(city string, w *models.Weather, err error) models.WeatherSnapshot {
	if err != nil {
		p.log.Errorf("Weather error for %s: %v", city, err)
		p.metrics.ObserveWeatherFetch(p.provider.Name(), "error")
		return p.degraded(city, err)
	}
	p.metrics.ObserveWeatherFetch(p.provider.Name(), "ok")
	return models.WeatherSnapshot{
		City:      city,
		Weather:   w,
		Label:     fmt.Sprintf("%s: %s", city, w.Description),
		Value:     w.TempC + "°C",
		UpdatedAt: p.now(),
	}
}

func (p *Pulse) degraded(city string, err error) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		City:      city,
		Label:     labelOffline,
		Value:     valueOffline,
		Error:     fmt.Sprintf("Unable to fetch telemetry from %s: %v", city, err),
		UpdatedAt: p.now(),
	}
}

// Snapshot returns the cached state of city without fetching. A city that was
// never looked up, or whose first lookup is still running, reports Updating.
func (p *Pulse) Snapshot(city string) models.WeatherSnapshot {
	city = strings.TrimSpace(city)
	if city == "" {
		city = p.defaultCity
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if st, ok := p.cities[cityKey(city)]; ok && st.ready {
		return st.snapshot
	}
	return models.WeatherSnapshot{City: city, Label: labelUpdating, Value: valueOffline}
}

// Cities lists the tracked cities.
func (p *Pulse) Cities() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	cities := make([]string, 0, len(p.cities))
	for key, st := range p.cities {
		name := st.snapshot.City
		if name == "" {
			name = key
		}
		cities = append(cities, name)
	}
	return cities
}

// Refresh looks up every tracked city, and the default city.
func (p *Pulse) Refresh(ctx context.Context) {
	cities := p.Cities()
	seen := make(map[string]bool, len(cities)+1)
	for _, city := range append(cities, p.defaultCity) {
		if seen[cityKey(city)] {
			continue
		}
		seen[cityKey(city)] = true
		if ctx.Err() != nil {
			return
		}
		p.Lookup(ctx, city)
	}
}

// Start schedules Refresh on a cron schedule such as "@every 10m", and runs an
// initial refresh in the background.
func (p *Pulse) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		p.Refresh(ctx)
	}); err != nil {
		return fmt.Errorf("invalid weather refresh schedule %q: %w", schedule, err)
	}

	p.mu.Lock()
	p.cron = c
	p.mu.Unlock()

	c.Start()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		p.Refresh(ctx)
	}()
	p.log.Infof("Weather refresh scheduled: %s", schedule)
	return nil
}

// Stop halts the refresh schedule and waits for a running refresh to finish.
func (p *Pulse) Stop() {
	p.mu.Lock()
	c := p.cron
	p.cron = nil
	p.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}

// evictLocked drops the least recently updated idle city once the cache is
// full. It reports false when the cache is full of cities still in flight.
func (p *Pulse) evictLocked() bool {
	if len(p.cities) < maxTrackedCities {
		return true
	}
	var oldestKey string
	var oldest time.Time
	for key, st := range p.cities {
		if st.cancel != nil {
			continue
		}
		if oldestKey == "" || st.snapshot.UpdatedAt.Before(oldest) {
			oldestKey, oldest = key, st.snapshot.UpdatedAt
		}
	}
	if oldestKey == "" {
		return false
	}
	delete(p.cities, oldestKey)
	return true
}
