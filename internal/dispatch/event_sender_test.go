package dispatch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-test-helpers/v3/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEventSenderPostsPayloadWithHeaders(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(202))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		headers := make(http.Header)
		headers.Set("Authorization", "app-key")
		sender := NewDefaultEventSender(server.Client(), headers, ldlog.NewDisabledLoggers())

		result := sender.SendEventData(server.URL+"/v1/events", `{"hello":true}`)
		assert.True(t, result.Success)
		assert.NoError(t, result.Err)

		r := <-requestsCh
		assert.Equal(t, "POST", r.Request.Method)
		assert.Equal(t, "/v1/events", r.Request.URL.Path)
		assert.Equal(t, "app-key", r.Request.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
		assert.Equal(t, `{"hello":true}`, string(r.Body))
	})
}

func TestDefaultEventSenderTreatsNon2xxStatusAsFailure(t *testing.T) {
	for _, status := range []int{400, 401, 500, 503} {
		handler := httphelpers.HandlerWithStatus(status)
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			sender := NewDefaultEventSender(server.Client(), nil, ldlog.NewDisabledLoggers())
			result := sender.SendEventData(server.URL, "{}")
			assert.False(t, result.Success, "status %d should be a failure", status)
			assert.NoError(t, result.Err, "status %d is not a transport error", status)
		})
	}
}

func TestDefaultEventSenderReportsTransportError(t *testing.T) {
	sender := NewDefaultEventSender(http.DefaultClient, nil, ldlog.NewDisabledLoggers())
	result := sender.SendEventData("http://127.0.0.1:0/nowhere", "{}")
	assert.False(t, result.Success)
	assert.Error(t, result.Err)
}

func TestDefaultEventSenderRejectsMalformedDestination(t *testing.T) {
	sender := NewDefaultEventSender(nil, nil, ldlog.NewDisabledLoggers())
	result := sender.SendEventData(":not-a-url", "{}")
	require.False(t, result.Success)
	assert.Error(t, result.Err)
}
