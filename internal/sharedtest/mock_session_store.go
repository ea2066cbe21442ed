package sharedtest

import (
	"sync"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

// MockSessionStore is a test implementation of interfaces.SessionStore holding one state in
// memory. Errors can be injected for either operation.
type MockSessionStore struct {
	lock     sync.Mutex
	state    interfaces.SessionState
	getErr   error
	setErr   error
	setCount int
}

// NewMockSessionStore creates an empty MockSessionStore.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

// SetStoredState seeds the store with a state, as if persisted by an earlier process.
func (m *MockSessionStore) SetStoredState(state interfaces.SessionState) {
	m.lock.Lock()
	m.state = state
	m.lock.Unlock()
}

// SetErrors injects errors to be returned by GetSession and SetSession.
func (m *MockSessionStore) SetErrors(getErr, setErr error) {
	m.lock.Lock()
	m.getErr = getErr
	m.setErr = setErr
	m.lock.Unlock()
}

// StoredState returns the current state and how many times SetSession has been called.
func (m *MockSessionStore) StoredState() (interfaces.SessionState, int) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.state, m.setCount
}

func (m *MockSessionStore) GetSession() (interfaces.SessionState, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.getErr != nil {
		return interfaces.SessionState{}, m.getErr
	}
	return m.state, nil
}

func (m *MockSessionStore) SetSession(state interfaces.SessionState) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.state = state
	m.setCount++
	return nil
}
