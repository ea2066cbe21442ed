package interfaces

// EventDispatcher is the component that buffers outbound events and delivers them to the
// intake service.
//
// The standard implementation keeps a FIFO queue of scheduled items and flushes it whenever
// the queue reaches the configured batch size, or after the configured wait time has elapsed
// since the most recent Schedule call, whichever comes first. While sending is disabled,
// items accumulate in the queue and nothing is delivered.
//
// Applications normally use the implementation created by epcomponents.DispatchEvents(), or
// epcomponents.NoEvents() to discard all events.
type EventDispatcher interface {
	// Schedule adds an item to the outbound queue. It never blocks on delivery and never
	// fails; it returns as soon as the item has been enqueued and any flush trigger
	// bookkeeping is done.
	Schedule(destination string, payload string)

	// EnableSending turns delivery on. Anything currently in the queue is flushed as soon as
	// possible, in its original order. Sending is enabled by default; calling EnableSending
	// when sending is already enabled has no additional effect.
	EnableSending()

	// DisableSending turns delivery off and cancels any pending flush timer. Items already in
	// the queue remain queued, and further Schedule calls continue to accumulate items, until
	// EnableSending is called. Calling DisableSending when sending is already disabled has no
	// additional effect.
	DisableSending()

	// Flush requests delivery of everything currently in the queue. It returns immediately;
	// delivery happens in the background. If sending is disabled, Flush does nothing.
	Flush()

	// Close shuts down the dispatcher's background delivery task. Items still in the queue
	// are discarded; the dispatcher does not guarantee delivery on shutdown.
	Close() error
}

// EventDispatcherFactory is a factory that creates some implementation of EventDispatcher.
type EventDispatcherFactory interface {
	// CreateEventDispatcher is called by the SDK to create the event dispatcher instance.
	CreateEventDispatcher(context ClientContext) (EventDispatcher, error)
}
