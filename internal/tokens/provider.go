// Package tokens implements the SDK's identifier bookkeeping: the session, pageview, and
// activity tokens that callers embed in event payloads.
package tokens

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldtime"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

const (
	idGroups     = 8
	idGroupWidth = 0x10000
)

// ProviderConfig contains the parameters for NewProvider.
type ProviderConfig struct {
	// Store is the optional persistence for session state. If nil, sessions last only for
	// the life of the process.
	Store interfaces.SessionStore
	// SessionTimeout is how long a session may go untouched before it is regenerated. Zero
	// means sessions never expire.
	SessionTimeout time.Duration
	// Loggers is the SDK logging configuration.
	Loggers ldlog.Loggers
}

// scopeState is the in-memory bookkeeping for one identifier scope. The generation counter
// starts at 1; the first activity registered under a name takes the current generation as its
// sequence number and increments the generation.
type scopeState struct {
	id         string
	generation int
	sequences  map[string]int
}

// Provider is the standard implementation of interfaces.TokenProvider.
//
// Session state is created lazily on first use. If a SessionStore is configured, the first use
// attempts to restore the previous session from it; missing or malformed stored state is never
// an error, it simply causes a fresh session to be generated (and written back). A session
// that has outlived the configured timeout is regenerated, along with the pageview, since a
// pageview cannot outlive its session.
type Provider struct {
	lock        sync.Mutex
	rng         *rand.Rand
	session     *scopeState
	pageview    *scopeState
	lastTouched ldtime.UnixMillisecondTime
	config      ProviderConfig
	now         func() ldtime.UnixMillisecondTime // replaced in tests
}

// NewProvider creates a Provider. No token is generated until one is first requested.
func NewProvider(config ProviderConfig) *Provider {
	return &Provider{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // tokens are identifiers, not secrets
		config: config,
		now:    ldtime.UnixMillisNow,
	}
}

// SessionID implements interfaces.TokenProvider.
func (p *Provider) SessionID() string {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.ensureSessionLocked()
	return p.session.id
}

// PageviewID implements interfaces.TokenProvider.
func (p *Provider) PageviewID() string {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.ensurePageviewLocked()
	return p.pageview.id
}

// ActivityID implements interfaces.TokenProvider.
func (p *Provider) ActivityID(name string, scope interfaces.Scope) (string, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	var state *scopeState
	switch scope {
	case interfaces.ScopeSession:
		p.ensureSessionLocked()
		state = p.session
	case interfaces.ScopePageview:
		p.ensurePageviewLocked()
		state = p.pageview
	default:
		return "", false
	}

	sequence, ok := state.sequences[name]
	if !ok {
		sequence = state.generation
		state.generation++
		state.sequences[name] = sequence
		if scope == interfaces.ScopeSession {
			p.persistSessionLocked()
		}
	}
	return fmt.Sprintf("%s%04x", state.id, sequence), true
}

// ResetActivity implements interfaces.TokenProvider. An activity name belongs to one scope at
// a time, so if the name is found in the pageview scope the session scope is not touched.
func (p *Provider) ResetActivity(name string) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.ensurePageviewLocked()
	if _, ok := p.pageview.sequences[name]; ok {
		delete(p.pageview.sequences, name)
		return
	}

	p.ensureSessionLocked()
	if _, ok := p.session.sequences[name]; ok {
		delete(p.session.sequences, name)
		p.persistSessionLocked()
	}
}

func (p *Provider) ensureSessionLocked() {
	if p.session == nil {
		p.session = p.restoreOrCreateSessionLocked()
	}
	if p.sessionTimedOutLocked() {
		p.session = p.newScopeStateLocked()
		p.persistSessionLocked()
		// the pageview cannot outlive the session it started in
		p.pageview = p.newScopeStateLocked()
	}
	p.lastTouched = p.now()
}

func (p *Provider) ensurePageviewLocked() {
	if p.pageview == nil {
		p.pageview = p.newScopeStateLocked()
	}
}

func (p *Provider) restoreOrCreateSessionLocked() *scopeState {
	if p.config.Store != nil {
		stored, err := p.config.Store.GetSession()
		if err != nil {
			p.config.Loggers.Warnf("Could not read stored session state, starting a new session: %s", err)
		} else if stored.IsValid() {
			state := &scopeState{id: stored.ID, generation: stored.Generation, sequences: stored.Sequences}
			if state.sequences == nil {
				state.sequences = make(map[string]int)
			}
			p.lastTouched = stored.LastTouched
			return state
		}
	}
	state := p.newScopeStateLocked()
	p.session = state
	p.persistSessionLocked()
	return state
}

func (p *Provider) sessionTimedOutLocked() bool {
	if p.config.SessionTimeout <= 0 || p.lastTouched == 0 {
		return false
	}
	elapsed := time.Duration(p.now()-p.lastTouched) * time.Millisecond
	return elapsed > p.config.SessionTimeout
}

func (p *Provider) persistSessionLocked() {
	if p.config.Store == nil {
		return
	}
	state := interfaces.SessionState{
		ID:          p.session.id,
		Generation:  p.session.generation,
		Sequences:   p.session.sequences,
		LastTouched: p.now(),
	}
	if err := p.config.Store.SetSession(state); err != nil {
		p.config.Loggers.Warnf("Could not persist session state: %s", err)
	}
}

func (p *Provider) newScopeStateLocked() *scopeState {
	return &scopeState{
		id:         p.newIDLocked(),
		generation: 1,
		sequences:  make(map[string]int),
	}
}

func (p *Provider) newIDLocked() string {
	var b strings.Builder
	for i := 0; i < idGroups; i++ {
		fmt.Fprintf(&b, "%04x", p.rng.Intn(idGroupWidth))
	}
	return b.String()
}
