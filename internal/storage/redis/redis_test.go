package redis

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Dan9191/unidash/internal/storage"
	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	st, err := Open(context.Background(), mr.Addr(), "", 0, quietLogger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st, mr
}

func TestGetMissingKeyReturnsErrNotFound(t *testing.T) {
	st, _ := newTestStore(t)
	if _, err := st.Get(context.Background(), "ana@example.com_tasks"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected storage.ErrNotFound, got %v", err)
	}
}

func TestSetOverwritesUnderPrefix(t *testing.T) {
	ctx := context.Background()
	st, mr := newTestStore(t)

	if err := st.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := st.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := st.Get(ctx, "k")
	if err != nil || string(got) != "v2" {
		t.Fatalf("unexpected value %q err=%v", got, err)
	}
	if raw, err := mr.Get(defaultPrefix + "k"); err != nil || raw != "v2" {
		t.Fatalf("expected value under %q, got %q err=%v", defaultPrefix+"k", raw, err)
	}
	if mr.Exists("k") {
		t.Fatal("unprefixed key must not be written")
	}
}

func TestSetRejectsEmptyKey(t *testing.T) {
	st, _ := newTestStore(t)
	if err := st.Set(context.Background(), "", []byte("v")); !errors.Is(err, storage.ErrNoKey) {
		t.Fatalf("expected ErrNoKey, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	st, mr := newTestStore(t)

	if err := st.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists(defaultPrefix + "k") {
		t.Fatal("key should be gone")
	}
	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete of absent key: %v", err)
	}
}

func TestOpenFailsWhenServerIsDown(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	if _, err := Open(context.Background(), addr, "", 0, quietLogger()); err == nil {
		t.Fatal("expected ping failure")
	}
}
