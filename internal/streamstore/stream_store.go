// Package streamstore provides the in-memory holder for stream configurations.
package streamstore

import (
	"sync"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

// StreamStore is a thread-safe in-memory map of stream name to StreamConfig. It is the
// client's implementation of interfaces.StreamConfigUpdates; a StreamConfigSource writes full
// data sets into it and the client reads individual entries on every Submit call.
type StreamStore struct {
	lock    sync.RWMutex
	configs map[string]interfaces.StreamConfig
}

// NewStreamStore creates an empty StreamStore. Until data arrives, every lookup reports that
// the stream has no configuration.
func NewStreamStore() *StreamStore {
	return &StreamStore{}
}

// ApplyStreamConfigs implements interfaces.StreamConfigUpdates by replacing the full data set.
// A nil map is ignored; an empty non-nil map is a valid (empty) data set.
func (s *StreamStore) ApplyStreamConfigs(configs map[string]interfaces.StreamConfig) {
	if configs == nil {
		return
	}
	copied := make(map[string]interfaces.StreamConfig, len(configs))
	for name, config := range configs {
		copied[name] = config
	}
	s.lock.Lock()
	s.configs = copied
	s.lock.Unlock()
}

// Get returns the configuration for a stream, if there is one.
func (s *StreamStore) Get(stream string) (interfaces.StreamConfig, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	config, ok := s.configs[stream]
	return config, ok
}

// Initialized returns true if a data set has been applied, even an empty one.
func (s *StreamStore) Initialized() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.configs != nil
}
