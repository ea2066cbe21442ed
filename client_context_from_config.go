package epclient

import (
	"github.com/eventplatform/go-client-sdk/epcomponents"
	"github.com/eventplatform/go-client-sdk/interfaces"
	"github.com/eventplatform/go-client-sdk/internal"
)

func newClientContextFromConfig(appKey string, config Config) (interfaces.ClientContext, error) {
	basic := interfaces.BasicConfiguration{AppKey: appKey, Offline: config.Offline}

	loggingFactory := config.Logging
	if loggingFactory == nil {
		loggingFactory = epcomponents.Logging()
	}
	logging, err := loggingFactory.CreateLoggingConfiguration(basic)
	if err != nil {
		return nil, err
	}

	httpFactory := config.HTTP
	if httpFactory == nil {
		httpFactory = epcomponents.HTTPConfiguration()
	}
	http, err := httpFactory.CreateHTTPConfiguration(basic)
	if err != nil {
		return nil, err
	}

	return internal.NewClientContextImpl(basic, http, logging), nil
}
