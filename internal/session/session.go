// Package session carries the active user's identity through request handling
// so storage keys are always built from an explicit value.
package session

import "context"

// LocalIdentity is the identity used when the dashboard runs in single-user mode.
const LocalIdentity = "local_user"

// Session identifies whose data an operation reads and writes.
type Session struct {
	Identity string
}

// Local returns the single-user session.
func Local() Session {
	return Session{Identity: LocalIdentity}
}

// Valid reports whether the session names an identity.
func (s Session) Valid() bool {
	return s.Identity != ""
}

type contextKey struct{}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext extracts the session stored by WithSession.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	if !ok || !s.Valid() {
		return Session{}, false
	}
	return s, true
}
