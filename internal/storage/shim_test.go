package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type record struct {
	ID    string   `json:"id"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

func TestLoadReturnsDefaultWhenAbsent(t *testing.T) {
	shim := NewShim(NewMemoryStore(), quietLogger())
	got := Load(context.Background(), shim, "missing", []record{})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty default slice, got %#v", got)
	}
	if theme := Load(context.Background(), shim, "missing", "dark"); theme != "dark" {
		t.Fatalf("expected default theme, got %q", theme)
	}
}

func TestLoadReturnsDefaultOnMalformedData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	shim := NewShim(store, quietLogger())

	cases := map[string][]byte{
		"truncated": []byte(`[{"id":"1"`),
		"garbage":   []byte("not json at all"),
		"wrongtype": []byte(`{"id":"1"}`),
		"empty":     {},
	}
	for key, raw := range cases {
		if err := store.Set(ctx, key, raw); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
		def := []record{{ID: "default"}}
		got := Load(ctx, shim, key, def)
		if diff := cmp.Diff(def, got); diff != "" {
			t.Fatalf("%s: expected default (-want +got):\n%s", key, diff)
		}
	}
}

func TestLoadEmptyKeyReturnsDefault(t *testing.T) {
	shim := NewShim(NewMemoryStore(), quietLogger())
	if got := Load(context.Background(), shim, "", 7); got != 7 {
		t.Fatalf("expected default for empty key, got %d", got)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	shim := NewShim(NewMemoryStore(), quietLogger())

	want := []record{
		{ID: "a", Tags: []string{"x", "y"}, Count: 2},
		{ID: "b", Tags: []string{}, Count: 0},
	}
	if err := Save(ctx, shim, "records", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := Load(ctx, shim, "records", []record(nil))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveEmptyKeyFails(t *testing.T) {
	shim := NewShim(NewMemoryStore(), quietLogger())
	if err := Save(context.Background(), shim, "", "x"); !errors.Is(err, ErrNoKey) {
		t.Fatalf("expected ErrNoKey, got %v", err)
	}
}

type failingStore struct{ MemoryStore }

func (f *failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (f *failingStore) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func TestShimSwallowsReadErrorsButReportsWriteErrors(t *testing.T) {
	ctx := context.Background()
	shim := NewShim(&failingStore{}, quietLogger())
	if got := Load(ctx, shim, "k", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback on read error, got %q", got)
	}
	if err := Save(ctx, shim, "k", "v"); err == nil {
		t.Fatal("expected write error to be reported")
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	shim := NewShim(NewMemoryStore(), quietLogger())
	if err := Save(ctx, shim, "k", 1); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := shim.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := Load(ctx, shim, "k", 0); got != 0 {
		t.Fatalf("expected default after remove, got %d", got)
	}
	if err := shim.Remove(ctx, "k"); err != nil {
		t.Fatalf("removing an absent key must not fail: %v", err)
	}
}
