package interfaces

// BasicConfiguration contains the most basic properties of the SDK client that are available
// to all components.
type BasicConfiguration struct {
	// AppKey is the application key that identifies this client to the intake service. It is
	// included in the Authorization header of outbound requests when non-empty.
	AppKey string

	// Offline is true if the client was configured to never contact the intake service.
	Offline bool
}

// ClientContext provides context information from the client when creating other components.
//
// This is passed as a parameter to the factory methods for implementations of EventDispatcher,
// StreamConfigSource, etc. The actual implementation type may contain other properties that are
// only relevant to the built-in SDK components and are therefore not part of the public
// interface; this allows the SDK to add its own context information as needed without
// disturbing the public API.
type ClientContext interface {
	// GetBasic returns the basic properties of the client.
	GetBasic() BasicConfiguration
	// GetHTTP returns the client's HTTP configuration.
	GetHTTP() HTTPConfiguration
	// GetLogging returns the client's logging configuration.
	GetLogging() LoggingConfiguration
}
