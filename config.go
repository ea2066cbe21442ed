package epclient

import (
	"github.com/eventplatform/go-client-sdk/interfaces"
)

// Config exposes advanced configuration options for EPClient.
//
// All of these settings are optional, so an empty Config struct is always valid. See the
// description of each field for the default behavior.
//
// Some of the Config fields are factory objects. The standard factories are in the
// epcomponents package; they have builder methods for the settings of each component.
//
//	config := epclient.Config{
//	    Events: epcomponents.DispatchEvents().BatchSize(20),
//	    Sessions: epcomponents.SessionTracking().Timeout(30 * time.Minute),
//	}
//	client, err := epclient.MakeCustomClient(appKey, config, 5*time.Second)
type Config struct {
	// Events sets the implementation of event dispatch. The default is
	// epcomponents.DispatchEvents(); use epcomponents.NoEvents() to discard all events
	// instead of delivering them.
	Events interfaces.EventDispatcherFactory

	// HTTP sets the SDK's networking configuration, using a builder from
	// epcomponents.HTTPConfiguration(). This affects how the SDK communicates with the
	// intake service, including timeouts, proxy settings, and custom headers.
	HTTP interfaces.HTTPConfigurationFactory

	// Logging sets the SDK's logging configuration, using a builder from
	// epcomponents.Logging() or epcomponents.NoLogging(). The default writes to standard
	// error at level Info.
	Logging interfaces.LoggingConfigurationFactory

	// Sessions sets how session, pageview, and activity identifiers are generated, using a
	// builder from epcomponents.SessionTracking(). The default keeps session state in memory
	// with no timeout.
	Sessions interfaces.TokenProviderFactory

	// StreamConfigs sets an optional source of per-stream configuration, such as
	// epfiledata.ConfigSource(). If nil, every stream is sent unsampled to the default
	// destination.
	StreamConfigs interfaces.StreamConfigSourceFactory

	// ServiceEndpoints sets custom service URIs, such as a staging intake deployment. If not
	// set, the SDK's standard intake URI is used.
	ServiceEndpoints interfaces.ServiceEndpoints

	// Offline puts the SDK into a mode where no network activity happens at all: every event
	// is discarded at the point of submission. This is a stronger setting than
	// DisableSending, which buffers events for later delivery.
	Offline bool
}
