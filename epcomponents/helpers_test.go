package epcomponents

import (
	"net/http"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/eventplatform/go-client-sdk/interfaces"
	"github.com/eventplatform/go-client-sdk/internal"
)

const testAppKey = "test-app-key"

func basicClientContext() interfaces.ClientContext {
	return internal.NewClientContextImpl(
		interfaces.BasicConfiguration{AppKey: testAppKey},
		interfaces.HTTPConfiguration{
			DefaultHeaders:   make(http.Header),
			CreateHTTPClient: func() *http.Client { return http.DefaultClient },
		},
		interfaces.LoggingConfiguration{Loggers: ldlog.NewDisabledLoggers()},
	)
}
