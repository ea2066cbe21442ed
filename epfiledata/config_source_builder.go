package epfiledata

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

// ReloaderFactory is a function type used with ConfigSourceBuilder.Reloader, to specify a
// mechanism for detecting when configuration files should be reloaded. Its standard
// implementation is epfilewatch.WatchFiles.
type ReloaderFactory func(paths []string, loggers ldlog.Loggers, reload func(), closeCh <-chan struct{}) error

// ConfigSourceBuilder is a builder for configuring the file-based stream configuration
// source.
//
// Obtain an instance of this type by calling ConfigSource(). After calling its methods to
// specify any desired custom settings, store it in the StreamConfigs field of the client
// configuration.
//
// Builder calls can be chained, for example:
//
//	epfiledata.ConfigSource().FilePaths("file1").FilePaths("file2")
//
// You do not need to call the builder's CreateStreamConfigSource() method yourself; that
// will be done by the SDK.
type ConfigSourceBuilder struct {
	filePaths       []string
	reloaderFactory ReloaderFactory
}

// ConfigSource returns a configurable builder for a file-based stream configuration source.
//
// Files may contain either JSON or YAML; if the first non-whitespace character is '{', the
// file is parsed as JSON, otherwise it is parsed as YAML. The file data should consist of an
// object with a "streams" property, mapping each configured stream name to its settings:
//
//	streams:
//	  ui.interactions:
//	    sample_ratio: 10
//	  legacy.clicks:
//	    disabled: true
//	  debug.traces:
//	    destination: "https://intake-debug.example.com/v1/events"
//
// Streams that are not listed are sent unsampled to the default destination. It is an error
// for the same stream name to appear in more than one file; in that case, none of the files
// are loaded.
func ConfigSource() *ConfigSourceBuilder {
	return &ConfigSourceBuilder{}
}

// FilePaths specifies the input files. The paths may be any number of absolute or relative
// file paths.
func (b *ConfigSourceBuilder) FilePaths(paths ...string) *ConfigSourceBuilder {
	b.filePaths = append(b.filePaths, paths...)
	return b
}

// Reloader specifies a mechanism for reloading the files when they change.
//
// It is normally used with the epfilewatch package, as follows:
//
//	config := epclient.Config{
//	    StreamConfigs: epfiledata.ConfigSource().
//	        FilePaths(filePaths...).
//	        Reloader(epfilewatch.WatchFiles),
//	}
func (b *ConfigSourceBuilder) Reloader(reloaderFactory ReloaderFactory) *ConfigSourceBuilder {
	b.reloaderFactory = reloaderFactory
	return b
}

// CreateStreamConfigSource is called by the SDK to create the source instance.
func (b *ConfigSourceBuilder) CreateStreamConfigSource(
	context interfaces.ClientContext,
	updates interfaces.StreamConfigUpdates,
) (interfaces.StreamConfigSource, error) {
	return newFileConfigSource(context, updates, b.filePaths, b.reloaderFactory)
}
