package epclient

import (
	"errors"
	"time"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/eventplatform/go-client-sdk/epcomponents"
	"github.com/eventplatform/go-client-sdk/interfaces"
	"github.com/eventplatform/go-client-sdk/internal"
	"github.com/eventplatform/go-client-sdk/internal/endpoints"
	"github.com/eventplatform/go-client-sdk/internal/streamstore"
)

// Version is the SDK version.
const Version = internal.SDKVersion

// EPClient is the Event Platform client.
//
// The client buffers submitted events and delivers them to the intake service in the
// background; Submit never performs network activity on the caller's goroutine. Create one
// client per process and share it; all methods are safe for concurrent use.
type EPClient struct {
	appKey             string
	loggers            ldlog.Loggers
	offline            bool
	dispatcher         interfaces.EventDispatcher
	tokens             interfaces.TokenProvider
	streamStore        *streamstore.StreamStore
	streamSource       interfaces.StreamConfigSource
	defaultDestination string
	closed             internal.AtomicBoolean
}

// ErrClientClosed is returned by Submit and ScheduleRaw after the client has been closed.
var ErrClientClosed = errors.New("events cannot be submitted after the client is closed")

// MakeClient creates a new client instance with a default configuration.
//
// The waitFor parameter only matters if the configuration includes a stream configuration
// source; with the default configuration it is ignored and the client is ready immediately.
// See MakeCustomClient.
func MakeClient(appKey string, waitFor time.Duration) (*EPClient, error) {
	return MakeCustomClient(appKey, Config{}, waitFor)
}

// MakeCustomClient creates a new client instance with a custom configuration.
//
// If the configuration includes a stream configuration source (Config.StreamConfigs), the
// constructor waits up to waitFor for the source to deliver its initial data, so that the
// first submitted events are already routed and sampled correctly. If the source is not
// ready in time, the client is still returned; streams without configuration are sent
// unsampled to the default destination until the source catches up.
func MakeCustomClient(appKey string, config Config, waitFor time.Duration) (*EPClient, error) {
	context, err := newClientContextFromConfig(appKey, config)
	if err != nil {
		return nil, err
	}

	client := &EPClient{
		appKey:  appKey,
		loggers: context.GetLogging().Loggers,
		offline: config.Offline,
		defaultDestination: endpoints.AddPath(
			endpoints.SelectBaseURI(config.ServiceEndpoints.Events), endpoints.EventsRequestPath),
	}

	sessionsFactory := config.Sessions
	if sessionsFactory == nil {
		sessionsFactory = epcomponents.SessionTracking()
	}
	client.tokens, err = sessionsFactory.CreateTokenProvider(context)
	if err != nil {
		return nil, err
	}

	eventsFactory := config.Events
	if config.Offline {
		client.loggers.Info("Starting the client in offline mode")
		eventsFactory = epcomponents.NoEvents()
	} else if eventsFactory == nil {
		eventsFactory = epcomponents.DispatchEvents()
	}
	client.dispatcher, err = eventsFactory.CreateEventDispatcher(context)
	if err != nil {
		return nil, err
	}

	if config.StreamConfigs != nil && !config.Offline {
		client.streamStore = streamstore.NewStreamStore()
		client.streamSource, err = config.StreamConfigs.CreateStreamConfigSource(context, client.streamStore)
		if err != nil {
			_ = client.dispatcher.Close()
			return nil, err
		}
		closeWhenReady := make(chan struct{})
		client.streamSource.Start(closeWhenReady)
		if waitFor > 0 {
			client.loggers.Infof("Waiting up to %d milliseconds for stream configuration...",
				waitFor/time.Millisecond)
			timeout := time.NewTimer(waitFor)
			defer timeout.Stop()
			select {
			case <-closeWhenReady:
			case <-timeout.C:
				client.loggers.Warn("Timed out waiting for stream configuration; streams will be" +
					" unsampled until the source delivers data")
			}
		}
	}

	return client, nil
}

// Submit queues an event for the named stream.
//
// The event payload is built from the data value plus the identifiers and metadata the SDK
// maintains: a meta section with the stream name and submission time, and the current
// session and pageview identifiers. If data is a JSON object, its properties appear at the
// top level of the payload; any other non-null value is included under a "data" property.
//
// If the stream has a configuration entry that disables it, or sampling excludes this event,
// the event is discarded and Submit returns nil. Submission is also a no-op in offline mode.
// Submit never blocks on delivery.
func (client *EPClient) Submit(stream string, data ldvalue.Value) error {
	if client.closed.Get() {
		return ErrClientClosed
	}
	if client.offline {
		return nil
	}

	destination := client.defaultDestination
	if client.streamStore != nil {
		if sc, ok := client.streamStore.Get(stream); ok {
			if sc.Disabled {
				return nil
			}
			if !internal.ShouldSample(sc.SampleRatio) {
				return nil
			}
			if sc.Destination != "" {
				destination = sc.Destination
			}
		}
	}

	payload, err := client.encodeEvent(stream, data)
	if err != nil {
		client.loggers.Warnf("Dropping event for stream %q: %s", stream, err)
		return err
	}
	client.dispatcher.Schedule(destination, payload)
	return nil
}

// ScheduleRaw queues an already-encoded payload for delivery to an explicit destination,
// bypassing stream configuration and payload construction. Most applications should use
// Submit instead.
func (client *EPClient) ScheduleRaw(destination string, payload string) error {
	if client.closed.Get() {
		return ErrClientClosed
	}
	if client.offline {
		return nil
	}
	if destination == "" {
		destination = client.defaultDestination
	}
	client.dispatcher.Schedule(destination, payload)
	return nil
}

func (client *EPClient) encodeEvent(stream string, data ldvalue.Value) (string, error) {
	w := jwriter.NewWriter()
	obj := w.Object()
	meta := obj.Name("meta").Object()
	meta.Name("stream").String(stream)
	meta.Name("dt").String(time.Now().UTC().Format(time.RFC3339))
	meta.End()
	obj.Name("session_id").String(client.tokens.SessionID())
	obj.Name("pageview_id").String(client.tokens.PageviewID())
	if data.Type() == ldvalue.ObjectType {
		data.Enumerate(func(index int, key string, value ldvalue.Value) bool {
			value.WriteToJSONWriter(obj.Name(key))
			return true
		})
	} else if data.IsDefined() {
		data.WriteToJSONWriter(obj.Name("data"))
	}
	obj.End()
	if err := w.Error(); err != nil {
		return "", err
	}
	return string(w.Bytes()), nil
}

// EnableSending turns event delivery on. Anything buffered while sending was disabled is
// flushed as soon as possible. Sending is enabled by default.
func (client *EPClient) EnableSending() {
	client.dispatcher.EnableSending()
}

// DisableSending turns event delivery off. Submitted events accumulate in the buffer until
// EnableSending is called; this can be used to defer network activity, for instance until
// consent is obtained or a metered connection is left.
func (client *EPClient) DisableSending() {
	client.dispatcher.DisableSending()
}

// Flush requests immediate delivery of all buffered events. It returns before delivery
// completes; delivery happens in the background. Flush does nothing while sending is
// disabled.
func (client *EPClient) Flush() {
	client.dispatcher.Flush()
}

// SessionID returns the identifier of the current session.
func (client *EPClient) SessionID() string {
	return client.tokens.SessionID()
}

// PageviewID returns the identifier of the current pageview.
func (client *EPClient) PageviewID() string {
	return client.tokens.PageviewID()
}

// ActivityID returns the identifier for a named activity in the given scope, for inclusion
// in event data. The second return value is false if the scope is not recognized.
func (client *EPClient) ActivityID(name string, scope interfaces.Scope) (string, bool) {
	return client.tokens.ActivityID(name, scope)
}

// ResetActivity forgets the sequence number assigned to a named activity.
func (client *EPClient) ResetActivity(name string) {
	client.tokens.ResetActivity(name)
}

// IsOffline returns whether the client was configured to be always offline.
func (client *EPClient) IsOffline() bool {
	return client.offline
}

// Close shuts down the client. Buffered events that have not been delivered are discarded;
// call Flush first and allow some delivery time if that matters. The client cannot be used
// after closing.
func (client *EPClient) Close() error {
	if client.closed.GetAndSet(true) {
		return nil
	}
	if client.streamSource != nil {
		_ = client.streamSource.Close()
	}
	return client.dispatcher.Close()
}
