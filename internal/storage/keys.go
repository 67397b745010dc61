package storage

import "github.com/Dan9191/unidash/internal/session"

// Fixed keys shared by every user.
const (
	KeyUsers   = "unidash_users"
	KeySession = "unidash_session"
)

// Per-user key suffixes, appended to the session identity.
const (
	SuffixTasks     = "_tasks"
	SuffixExpenses  = "_expenses"
	SuffixProfile   = "_profile"
	SuffixTheme     = "_theme"
	SuffixQuickNote = "_notes_quick"
	SuffixNotes     = "_notes_list"
	SuffixSettings  = "_settings"
)

// UserSuffixes lists every per-user suffix.
var UserSuffixes = []string{
	SuffixTasks,
	SuffixExpenses,
	SuffixProfile,
	SuffixTheme,
	SuffixQuickNote,
	SuffixNotes,
	SuffixSettings,
}

// UserKey namespaces suffix under the session identity. It returns "" when the
// session carries no identity.
func UserKey(s session.Session, suffix string) string {
	if !s.Valid() {
		return ""
	}
	return s.Identity + suffix
}
