package interfaces

import (
	"io"
)

// StreamConfig describes how events submitted to one named stream are dispatched.
//
// A stream with no StreamConfig entry is sent unsampled to the default destination; only an
// explicit entry can disable or sample a stream.
type StreamConfig struct {
	// SampleRatio is a 1-in-N sampling rate for the stream. Values of 0 and 1 both mean that
	// every event is kept.
	SampleRatio int

	// Disabled is true if events for this stream should be discarded without being scheduled.
	Disabled bool

	// Destination, if non-empty, overrides the destination URI that events for this stream
	// are delivered to.
	Destination string
}

// StreamConfigUpdates is the write interface given to a StreamConfigSource, allowing it to
// push stream configurations into the client as it acquires them.
type StreamConfigUpdates interface {
	// ApplyStreamConfigs replaces the full set of stream configurations.
	ApplyStreamConfigs(configs map[string]StreamConfig)
}

// StreamConfigSource is a component that obtains stream configurations and delivers them to
// the client through a StreamConfigUpdates sink.
//
// The standard implementation reads configuration files (see the epfiledata package),
// optionally reloading them when they change (see epfilewatch).
type StreamConfigSource interface {
	// Start begins acquiring configuration data. The source should close the closeWhenReady
	// channel once it has delivered its initial data set, or determined that it cannot.
	Start(closeWhenReady chan<- struct{})

	// IsInitialized returns true if the source has delivered at least one data set.
	IsInitialized() bool

	// Close permanently shuts down the source.
	io.Closer
}

// StreamConfigSourceFactory is a factory that creates some implementation of
// StreamConfigSource.
type StreamConfigSourceFactory interface {
	// CreateStreamConfigSource is called by the SDK to create the source instance.
	CreateStreamConfigSource(context ClientContext, updates StreamConfigUpdates) (StreamConfigSource, error)
}
