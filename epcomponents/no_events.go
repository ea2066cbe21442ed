package epcomponents

import (
	"github.com/eventplatform/go-client-sdk/interfaces"
)

type nullEventDispatcherFactory struct{}

type nullEventDispatcher struct{}

// NoEvents returns a configuration object that disables event delivery.
//
// Storing this in Config.Events causes the SDK to silently discard every submitted event,
// regardless of any other configuration.
//
//	config := epclient.Config{
//	    Events: epcomponents.NoEvents(),
//	}
func NoEvents() interfaces.EventDispatcherFactory {
	return nullEventDispatcherFactory{}
}

func (f nullEventDispatcherFactory) CreateEventDispatcher(
	context interfaces.ClientContext,
) (interfaces.EventDispatcher, error) {
	return nullEventDispatcher{}, nil
}

func (d nullEventDispatcher) Schedule(destination string, payload string) {}

func (d nullEventDispatcher) EnableSending() {}

func (d nullEventDispatcher) DisableSending() {}

func (d nullEventDispatcher) Flush() {}

func (d nullEventDispatcher) Close() error { return nil }
