// Package epclient is the main package for the Event Platform client SDK.
//
// The EPClient type is the SDK client; applications normally create a single instance with
// MakeClient or MakeCustomClient and use it for the life of the process. Configuration
// builders for the client's components are in the epcomponents package; types used in
// configuration, and interfaces for custom component implementations, are in the interfaces
// package.
package epclient
