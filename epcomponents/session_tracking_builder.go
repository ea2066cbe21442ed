package epcomponents

import (
	"time"

	"github.com/eventplatform/go-client-sdk/interfaces"
	"github.com/eventplatform/go-client-sdk/internal/tokens"
)

// SessionTrackingBuilder contains methods for configuring how session, pageview, and activity
// identifiers are generated.
//
// See SessionTracking for usage.
type SessionTrackingBuilder struct {
	timeout time.Duration
	store   interfaces.SessionStore
}

// SessionTracking returns a configuration builder for the SDK's identifier generation.
//
// The default configuration keeps session state in memory for the life of the process, with
// no session timeout. To persist sessions across restarts, provide a store such as
// epfilestore.SessionStore:
//
//	config := epclient.Config{
//	    Sessions: epcomponents.SessionTracking().
//	        Timeout(30 * time.Minute).
//	        Store(epfilestore.SessionStore("/var/lib/myapp/session.json")),
//	}
func SessionTracking() *SessionTrackingBuilder {
	return &SessionTrackingBuilder{}
}

// Timeout sets how long a session may go unused before the next token request starts a new
// one (regenerating the pageview as well). Zero, the default, means sessions never expire.
func (b *SessionTrackingBuilder) Timeout(timeout time.Duration) *SessionTrackingBuilder {
	b.timeout = timeout
	return b
}

// Store sets the persistence for session state, allowing a session to survive process
// restarts. Stored state that is missing or malformed is discarded and a fresh session is
// generated; store failures are never fatal.
func (b *SessionTrackingBuilder) Store(store interfaces.SessionStore) *SessionTrackingBuilder {
	b.store = store
	return b
}

// CreateTokenProvider is called by the SDK to create the token provider instance.
func (b *SessionTrackingBuilder) CreateTokenProvider(
	context interfaces.ClientContext,
) (interfaces.TokenProvider, error) {
	return tokens.NewProvider(tokens.ProviderConfig{
		Store:          b.store,
		SessionTimeout: b.timeout,
		Loggers:        context.GetLogging().Loggers,
	}), nil
}
