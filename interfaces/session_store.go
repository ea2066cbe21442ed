package interfaces

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldtime"
)

// SessionState is the persistable bookkeeping for one identifier scope, as read from or
// written to a SessionStore.
type SessionState struct {
	// ID is the scope's token.
	ID string
	// Generation is the counter from which new activity sequence numbers are taken. A valid
	// state always has a generation of at least 1.
	Generation int
	// Sequences maps activity names to their assigned sequence numbers.
	Sequences map[string]int
	// LastTouched is when the session was last used, for session timeout purposes.
	LastTouched ldtime.UnixMillisecondTime
}

// IsValid returns true if the state has the fields a restored session requires. A state that
// fails this check is treated as absent, causing the token provider to regenerate the session.
func (s SessionState) IsValid() bool {
	return s.ID != "" && s.Generation >= 1
}

// SessionStore is an optional persistence capability for session state, allowing a session to
// survive process restarts.
//
// The SDK has no default store; without one, sessions last for the life of the process. Any
// error from GetSession, and any stored state for which IsValid is false, is handled by
// regenerating a fresh session: malformed persisted state is never fatal. Errors from
// SetSession are logged and otherwise ignored.
type SessionStore interface {
	// GetSession reads the stored session state. Returning a zero-valued SessionState means
	// there is no stored session.
	GetSession() (SessionState, error)

	// SetSession writes the session state, replacing any previous state.
	SetSession(state SessionState) error
}
