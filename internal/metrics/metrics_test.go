package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("GET", "/tasks", 200, 20*time.Millisecond)
	m.ObserveRequest("GET", "/tasks", 200, 30*time.Millisecond)
	m.ObserveWeatherFetch("wttr", "ok")

	if got := testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/tasks", "200")); got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.weatherFetches.WithLabelValues("wttr", "ok")); got != 1 {
		t.Fatalf("expected 1 fetch, got %v", got)
	}
}

func TestNewReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New(reg)
	second := New(reg)
	first.ObserveWeatherFetch("owm", "error")
	if got := testutil.ToFloat64(second.weatherFetches.WithLabelValues("owm", "error")); got != 1 {
		t.Fatalf("second instance should share collectors, got %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("GET", "/", 200, time.Millisecond)
	m.ObserveWeatherFetch("wttr", "ok")
}
