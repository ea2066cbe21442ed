// Package endpoints contains the SDK's service URI defaults and helpers.
package endpoints

import (
	"strings"
)

// DefaultEventsBaseURI is the intake service base URI used when none is configured.
const DefaultEventsBaseURI = "https://intake.eventplatform.dev/"

// EventsRequestPath is the URL path events are posted to under the base URI.
const EventsRequestPath = "/v1/events"

// SelectBaseURI returns the custom base URI if one was configured, or the default otherwise,
// with any trailing slash removed.
func SelectBaseURI(overrideValue string) string {
	configuredBaseURI := overrideValue
	if configuredBaseURI == "" {
		configuredBaseURI = DefaultEventsBaseURI
	}
	return strings.TrimRight(configuredBaseURI, "/")
}

// AddPath concatenates a subpath to a URL in a way that will not cause a double slash.
func AddPath(baseURI string, path string) string {
	return strings.TrimSuffix(baseURI, "/") + "/" + strings.TrimPrefix(path, "/")
}
