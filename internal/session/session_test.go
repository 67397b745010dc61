package session

import (
	"context"
	"testing"
)

func TestFromContext(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("expected no session in empty context")
	}

	ctx := WithSession(context.Background(), Session{Identity: "ana@example.com"})
	s, ok := FromContext(ctx)
	if !ok || s.Identity != "ana@example.com" {
		t.Fatalf("unexpected session: %+v ok=%v", s, ok)
	}

	if _, ok := FromContext(WithSession(context.Background(), Session{})); ok {
		t.Fatal("empty identity must not count as a session")
	}
}

func TestLocal(t *testing.T) {
	if Local().Identity != LocalIdentity {
		t.Fatalf("unexpected local identity %q", Local().Identity)
	}
}
