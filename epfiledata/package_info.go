// Package epfiledata allows the SDK client to read per-stream configuration from a file.
//
// To use it, store a builder from ConfigSource() in the StreamConfigs field of the client
// configuration:
//
//	config := epclient.Config{
//	    StreamConfigs: epfiledata.ConfigSource().FilePaths("./stream-config.yaml"),
//	}
//
// For automatic reloading when the files change, see the epfilewatch package.
package epfiledata
