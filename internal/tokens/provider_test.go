package tokens

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventplatform/go-client-sdk/interfaces"
	"github.com/eventplatform/go-client-sdk/internal/sharedtest"
)

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

func newTestProvider(config ProviderConfig) *Provider {
	config.Loggers = ldlog.NewDisabledLoggers()
	return NewProvider(config)
}

func TestSessionIDIsStableEightGroupHexToken(t *testing.T) {
	p := newTestProvider(ProviderConfig{})
	id := p.SessionID()
	assert.Regexp(t, tokenPattern, id)
	assert.Equal(t, id, p.SessionID())
}

func TestPageviewIDIsIndependentOfSessionID(t *testing.T) {
	p := newTestProvider(ProviderConfig{})
	session, pageview := p.SessionID(), p.PageviewID()
	assert.Regexp(t, tokenPattern, pageview)
	assert.NotEqual(t, session, pageview)
	assert.Equal(t, pageview, p.PageviewID())
}

func TestActivityIDsUsePerScopeSequenceNumbers(t *testing.T) {
	p := newTestProvider(ProviderConfig{})
	session, pageview := p.SessionID(), p.PageviewID()

	foo, ok := p.ActivityID("foo", interfaces.ScopeSession)
	require.True(t, ok)
	assert.Equal(t, session+"0001", foo)

	bar, ok := p.ActivityID("bar", interfaces.ScopeSession)
	require.True(t, ok)
	assert.Equal(t, session+"0002", bar)

	baz, ok := p.ActivityID("baz", interfaces.ScopePageview)
	require.True(t, ok)
	assert.Equal(t, pageview+"0001", baz)

	// asking again for a known activity does not advance its sequence
	fooAgain, ok := p.ActivityID("foo", interfaces.ScopeSession)
	require.True(t, ok)
	assert.Equal(t, foo, fooAgain)
}

func TestActivityIDForUnknownScopeIsAbsent(t *testing.T) {
	p := newTestProvider(ProviderConfig{})
	id, ok := p.ActivityID("foo", interfaces.Scope(99))
	assert.False(t, ok)
	assert.Equal(t, "", id)
}

func TestResetActivityReleasesTheName(t *testing.T) {
	p := newTestProvider(ProviderConfig{})
	session := p.SessionID()

	_, _ = p.ActivityID("foo", interfaces.ScopeSession)
	_, _ = p.ActivityID("bar", interfaces.ScopeSession)

	p.ResetActivity("foo")
	foo, ok := p.ActivityID("foo", interfaces.ScopeSession)
	require.True(t, ok)
	assert.Equal(t, session+"0003", foo)
}

func TestResetActivityPrefersPageviewScope(t *testing.T) {
	p := newTestProvider(ProviderConfig{})
	pageview := p.PageviewID()

	_, _ = p.ActivityID("scroll", interfaces.ScopePageview)
	p.ResetActivity("scroll")

	scroll, ok := p.ActivityID("scroll", interfaces.ScopePageview)
	require.True(t, ok)
	assert.Equal(t, pageview+"0002", scroll)
}

func TestSessionIsRestoredFromStore(t *testing.T) {
	store := sharedtest.NewMockSessionStore()
	storedID := "0123456789abcdef0123456789abcdef"
	store.SetStoredState(interfaces.SessionState{
		ID:         storedID,
		Generation: 5,
		Sequences:  map[string]int{"foo": 2},
	})

	p := newTestProvider(ProviderConfig{Store: store})
	assert.Equal(t, storedID, p.SessionID())

	foo, ok := p.ActivityID("foo", interfaces.ScopeSession)
	require.True(t, ok)
	assert.Equal(t, storedID+"0002", foo)

	// a new activity picks up the restored generation counter and persists the increment
	qux, ok := p.ActivityID("qux", interfaces.ScopeSession)
	require.True(t, ok)
	assert.Equal(t, storedID+"0005", qux)

	state, _ := store.StoredState()
	assert.Equal(t, 6, state.Generation)
	assert.Equal(t, 5, state.Sequences["qux"])
}

func TestMalformedStoredSessionIsRegenerated(t *testing.T) {
	for _, state := range []interfaces.SessionState{
		{},
		{ID: "only-an-id"},
		{Generation: 3},
	} {
		t.Run(fmt.Sprintf("%+v", state), func(t *testing.T) {
			store := sharedtest.NewMockSessionStore()
			store.SetStoredState(state)

			p := newTestProvider(ProviderConfig{Store: store})
			id := p.SessionID()
			assert.Regexp(t, tokenPattern, id)

			written, writes := store.StoredState()
			assert.True(t, written.IsValid())
			assert.Equal(t, id, written.ID)
			assert.GreaterOrEqual(t, writes, 1)
		})
	}
}

func TestStoreReadErrorIsSelfHealing(t *testing.T) {
	store := sharedtest.NewMockSessionStore()
	store.SetErrors(errors.New("corrupt"), nil)

	p := newTestProvider(ProviderConfig{Store: store})
	assert.Regexp(t, tokenPattern, p.SessionID())
}

func TestTimedOutSessionRegeneratesSessionAndPageview(t *testing.T) {
	p := newTestProvider(ProviderConfig{SessionTimeout: 30 * time.Minute})

	current := ldtime.UnixMillisNow()
	p.now = func() ldtime.UnixMillisecondTime { return current }

	session1, pageview1 := p.SessionID(), p.PageviewID()

	current += ldtime.UnixMillisecondTime(31 * time.Minute / time.Millisecond)

	session2 := p.SessionID()
	assert.NotEqual(t, session1, session2)
	assert.NotEqual(t, pageview1, p.PageviewID())
}

func TestSessionSurvivesWithinTimeout(t *testing.T) {
	p := newTestProvider(ProviderConfig{SessionTimeout: 30 * time.Minute})

	current := ldtime.UnixMillisNow()
	p.now = func() ldtime.UnixMillisecondTime { return current }

	session1 := p.SessionID()
	current += ldtime.UnixMillisecondTime(10 * time.Minute / time.Millisecond)
	assert.Equal(t, session1, p.SessionID())
}
