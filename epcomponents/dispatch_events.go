package epcomponents

import (
	"time"

	"github.com/eventplatform/go-client-sdk/interfaces"
	"github.com/eventplatform/go-client-sdk/internal/dispatch"
)

const (
	// DefaultBatchSize is the default value for EventDispatcherBuilder.BatchSize: the queue
	// length that triggers an immediate flush.
	DefaultBatchSize = 10
	// DefaultFlushWait is the default value for EventDispatcherBuilder.FlushWait: how long
	// after the most recent scheduled event a flush happens on its own.
	DefaultFlushWait = 2 * time.Second
)

// EventDispatcherBuilder provides methods for configuring event delivery behavior.
//
// See DispatchEvents for usage.
type EventDispatcherBuilder struct {
	batchSize      int
	flushWait      time.Duration
	failureHandler interfaces.DeliveryFailureHandler
	sender         interfaces.EventSender
}

// DispatchEvents returns a configuration builder for the standard buffered event dispatcher.
//
// The default configuration has event delivery enabled with default settings. If you want to
// customize this behavior, call this method to obtain a builder, change its properties with
// the EventDispatcherBuilder methods, and store it in Config.Events:
//
//	config := epclient.Config{
//	    Events: epcomponents.DispatchEvents().BatchSize(25).FlushWait(5 * time.Second),
//	}
//
// To discard all events, use NoEvents instead of DispatchEvents.
func DispatchEvents() *EventDispatcherBuilder {
	return &EventDispatcherBuilder{
		batchSize:      DefaultBatchSize,
		flushWait:      DefaultFlushWait,
		failureHandler: DiscardFailedDeliveries(),
	}
}

// CreateEventDispatcher is called by the SDK to create the event dispatcher instance.
func (b *EventDispatcherBuilder) CreateEventDispatcher(
	context interfaces.ClientContext,
) (interfaces.EventDispatcher, error) {
	loggers := context.GetLogging().Loggers

	sender := b.sender
	if sender == nil {
		httpConfig := context.GetHTTP()
		sender = dispatch.NewDefaultEventSender(
			httpConfig.CreateHTTPClient(),
			httpConfig.DefaultHeaders,
			loggers,
		)
	}

	return dispatch.NewBufferedDispatcher(dispatch.BufferedDispatcherConfig{
		BatchSize:      b.batchSize,
		FlushWait:      b.flushWait,
		Sender:         sender,
		FailureHandler: b.failureHandler,
		Loggers:        loggers,
	}), nil
}

// BatchSize sets the number of queued events that triggers an immediate flush.
//
// Note that a backlog accumulated while sending was disabled may exceed this count; it is
// still sent in a single pass once a flush is triggered. The default value is
// DefaultBatchSize.
func (b *EventDispatcherBuilder) BatchSize(batchSize int) *EventDispatcherBuilder {
	b.batchSize = batchSize
	return b
}

// FlushWait sets how long after the most recent scheduled event a flush happens, if the batch
// size has not been reached first. Scheduling another event restarts the wait.
//
// The default value is DefaultFlushWait.
func (b *EventDispatcherBuilder) FlushWait(flushWait time.Duration) *EventDispatcherBuilder {
	b.flushWait = flushWait
	return b
}

// FailureHandler sets the policy for events whose delivery failed. The default is
// DiscardFailedDeliveries.
func (b *EventDispatcherBuilder) FailureHandler(handler interfaces.DeliveryFailureHandler) *EventDispatcherBuilder {
	b.failureHandler = handler
	return b
}

// Sender sets a custom EventSender, replacing the standard HTTP delivery. This is mainly
// useful in tests.
func (b *EventDispatcherBuilder) Sender(sender interfaces.EventSender) *EventDispatcherBuilder {
	b.sender = sender
	return b
}
