package interfaces

// EventSenderResult is the result of EventSender.SendEventData.
type EventSenderResult struct {
	// Success is true if the payload was delivered.
	Success bool

	// Err is the transport-level error, if any. It may be nil even when Success is false, for
	// instance when the service returned a non-2xx status.
	Err error
}

// EventSender performs one outbound delivery of event data on behalf of the event dispatcher.
//
// The dispatcher treats delivery as fire-and-continue: it does not inspect a response body and
// it has no retry contract with the sender. What happens to an item whose delivery failed is
// decided by the configured DeliveryFailureHandler.
//
// The standard implementation is an HTTP POST using the client's HTTP configuration; any
// per-delivery timeout belongs to that configuration, not to the dispatcher.
type EventSender interface {
	// SendEventData attempts to deliver a payload to a destination.
	SendEventData(destination string, payload string) EventSenderResult
}

// FailureDisposition is the action a DeliveryFailureHandler chooses for an item whose
// delivery failed.
type FailureDisposition int

const (
	// DiscardItem drops the item. Delivery is at most once.
	DiscardItem FailureDisposition = iota
	// RequeueItem puts the item back at the tail of the queue, to be attempted again on the
	// next flush.
	RequeueItem
)

// DeliveryFailureHandler decides what the dispatcher does with an item whose delivery failed.
//
// The default behavior, epcomponents.DiscardFailedDeliveries(), drops the item: delivery is
// best-effort and at most once. Use epcomponents.RequeueFailedDeliveries() to opt in to
// retrying on a later flush instead. This is an explicit policy choice; the SDK never retries
// unless configured to.
type DeliveryFailureHandler interface {
	// HandleDeliveryFailure is called once per failed delivery, outside the dispatcher's
	// internal lock. It may log or record the failure, and returns the disposition for the
	// item.
	HandleDeliveryFailure(destination string, payload string, err error) FailureDisposition
}
