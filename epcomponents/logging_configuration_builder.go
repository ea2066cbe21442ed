package epcomponents

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

// LoggingConfigurationBuilder contains methods for configuring the SDK's logging behavior.
//
// If you want to set non-default values for any of these properties, create a builder with
// epcomponents.Logging(), change its properties with the LoggingConfigurationBuilder methods,
// and store it in Config.Logging:
//
//	config := epclient.Config{
//	    Logging: epcomponents.Logging().MinLevel(ldlog.Warn),
//	}
type LoggingConfigurationBuilder struct {
	config interfaces.LoggingConfiguration
}

// Logging returns a configuration builder for the SDK's logging configuration.
//
// The default configuration has logging enabled with default settings, writing to standard
// error at level Info.
func Logging() *LoggingConfigurationBuilder {
	return &LoggingConfigurationBuilder{
		config: interfaces.LoggingConfiguration{Loggers: ldlog.NewDefaultLoggers()},
	}
}

// Loggers specifies an instance of ldlog.Loggers to use for SDK logging. The ldlog package
// contains methods for customizing the destination and level filtering of log output.
func (b *LoggingConfigurationBuilder) Loggers(loggers ldlog.Loggers) *LoggingConfigurationBuilder {
	b.config.Loggers = loggers
	return b
}

// MinLevel specifies the minimum level for log output, where ldlog.Debug is the lowest and
// ldlog.Error is the highest. Log messages at a level lower than this will be suppressed. The
// default is ldlog.Info.
//
// This is equivalent to creating an ldlog.Loggers instance, calling SetMinLevel() on it, and
// then passing it to LoggingConfigurationBuilder.Loggers().
func (b *LoggingConfigurationBuilder) MinLevel(level ldlog.LogLevel) *LoggingConfigurationBuilder {
	b.config.Loggers.SetMinLevel(level)
	return b
}

// CreateLoggingConfiguration is called internally by the SDK.
func (b *LoggingConfigurationBuilder) CreateLoggingConfiguration(
	basic interfaces.BasicConfiguration,
) (interfaces.LoggingConfiguration, error) {
	return b.config, nil
}

// NoLogging returns a configuration object that disables logging.
//
//	config := epclient.Config{
//	    Logging: epcomponents.NoLogging(),
//	}
func NoLogging() interfaces.LoggingConfigurationFactory {
	return noLoggingConfigurationFactory{}
}

type noLoggingConfigurationFactory struct{}

func (f noLoggingConfigurationFactory) CreateLoggingConfiguration(
	basic interfaces.BasicConfiguration,
) (interfaces.LoggingConfiguration, error) {
	return interfaces.LoggingConfiguration{Loggers: ldlog.NewDisabledLoggers()}, nil
}
