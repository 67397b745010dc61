package storage

import (
	"testing"

	"github.com/Dan9191/unidash/internal/session"
)

func TestUserKey(t *testing.T) {
	s := session.Session{Identity: "ana@example.com"}
	if got := UserKey(s, SuffixTasks); got != "ana@example.com_tasks" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := UserKey(session.Local(), SuffixTheme); got != "local_user_theme" {
		t.Fatalf("unexpected local key %q", got)
	}
	if got := UserKey(session.Session{}, SuffixTasks); got != "" {
		t.Fatalf("expected empty key without identity, got %q", got)
	}
}

func TestUserKeysDoNotCollideAcrossIdentities(t *testing.T) {
	a := session.Session{Identity: "a@example.com"}
	b := session.Session{Identity: "b@example.com"}
	for _, suffix := range UserSuffixes {
		if UserKey(a, suffix) == UserKey(b, suffix) {
			t.Fatalf("suffix %s collides across identities", suffix)
		}
	}
}
