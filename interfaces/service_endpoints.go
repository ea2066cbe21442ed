package interfaces

// ServiceEndpoints allows configuration of custom service URIs.
//
// If you want to direct events somewhere other than the standard intake service — for
// instance, a staging deployment or a local test harness — set the ServiceEndpoints field in
// the SDK's Config struct.
type ServiceEndpoints struct {
	// Events is the base URI for the event intake service. If empty, the standard URI is
	// used. Individual streams may still override their destination via StreamConfig.
	Events string
}
