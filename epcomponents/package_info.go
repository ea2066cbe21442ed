// Package epcomponents provides the configuration builders for the standard SDK components.
//
// Each builder is obtained from a function such as DispatchEvents or Logging, configured with
// its methods, and stored in the corresponding field of the epclient.Config struct. The SDK
// calls the builder's CreateX method when the client is created.
package epcomponents
