package sharedtest

import (
	"sync"
	"testing"
	"time"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

// CapturedDelivery is one call to MockEventSender.SendEventData.
type CapturedDelivery struct {
	Destination string
	Payload     string
}

// MockEventSender is a test implementation of interfaces.EventSender that records every
// delivery on a channel. By default every delivery succeeds; use SetResult to simulate
// transport failures. If Gate is non-nil, SendEventData blocks reading from it before
// returning, which lets tests hold a delivery in progress.
type MockEventSender struct {
	DeliveryCh chan CapturedDelivery
	Gate       chan struct{}
	lock       sync.Mutex
	result     interfaces.EventSenderResult
}

// NewMockEventSender creates a MockEventSender whose deliveries all succeed.
func NewMockEventSender() *MockEventSender {
	return &MockEventSender{
		DeliveryCh: make(chan CapturedDelivery, 100),
		result:     interfaces.EventSenderResult{Success: true},
	}
}

// SetResult changes the result returned by subsequent deliveries.
func (s *MockEventSender) SetResult(result interfaces.EventSenderResult) {
	s.lock.Lock()
	s.result = result
	s.lock.Unlock()
}

func (s *MockEventSender) SendEventData(destination string, payload string) interfaces.EventSenderResult {
	s.lock.Lock()
	result := s.result
	s.lock.Unlock()
	s.DeliveryCh <- CapturedDelivery{Destination: destination, Payload: payload}
	if s.Gate != nil {
		<-s.Gate
	}
	return result
}

// RequireDelivery returns the next captured delivery, failing the test if none arrives in time.
func (s *MockEventSender) RequireDelivery(t *testing.T, timeout time.Duration) CapturedDelivery {
	return RequireValue(t, s.DeliveryCh, timeout)
}

// RequireNoMoreDeliveries fails the test if any delivery arrives within the timeout.
func (s *MockEventSender) RequireNoMoreDeliveries(t *testing.T, timeout time.Duration) {
	RequireNoMoreValues(t, s.DeliveryCh, timeout)
}
