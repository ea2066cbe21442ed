package interfaces

// Scope is the lifetime bucket that an activity identifier's sequence counter is keyed to.
type Scope int

const (
	// ScopeSession ties an activity to the current session.
	ScopeSession Scope = iota
	// ScopePageview ties an activity to the current pageview.
	ScopePageview
)

// String returns the wire name of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeSession:
		return "session"
	case ScopePageview:
		return "pageview"
	default:
		return "unknown"
	}
}

// ParseScope returns the Scope for a wire name. The second return value is false if the name
// is not a recognized scope.
func ParseScope(name string) (Scope, bool) {
	switch name {
	case "session":
		return ScopeSession, true
	case "pageview":
		return ScopePageview, true
	default:
		return ScopeSession, false
	}
}

// TokenProvider supplies the session, pageview, and activity identifiers that are embedded in
// event payloads.
//
// Identifiers are opaque strings as far as the rest of the SDK is concerned. The standard
// implementation, created by epcomponents.SessionTracking(), produces eight-group
// lowercase-hex tokens; activity identifiers are the scope's token followed by a four-hex-digit
// sequence number that increases per activity name within the scope.
type TokenProvider interface {
	// SessionID returns the identifier of the current session, generating one if necessary.
	SessionID() string

	// PageviewID returns the identifier of the current pageview, generating one if necessary.
	PageviewID() string

	// ActivityID returns the identifier for a named activity in the given scope. The second
	// return value is false if the scope is not recognized; this is an absent result, not an
	// error.
	ActivityID(name string, scope Scope) (string, bool)

	// ResetActivity forgets the sequence number assigned to a named activity, so that its
	// next ActivityID call is issued a fresh number.
	ResetActivity(name string)
}

// TokenProviderFactory is a factory that creates some implementation of TokenProvider.
type TokenProviderFactory interface {
	// CreateTokenProvider is called by the SDK to create the token provider instance.
	CreateTokenProvider(context ClientContext) (TokenProvider, error)
}
