package dispatch

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

type defaultEventSender struct {
	httpClient *http.Client
	headers    http.Header
	loggers    ldlog.Loggers
}

// NewDefaultEventSender creates the standard EventSender implementation: an HTTP POST of the
// payload to the destination URI, using the given client and default headers. Any network
// error or non-2xx status is a failed result; the sender does not retry.
func NewDefaultEventSender(
	httpClient *http.Client,
	headers http.Header,
	loggers ldlog.Loggers,
) interfaces.EventSender {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &defaultEventSender{httpClient: httpClient, headers: headers, loggers: loggers}
}

func (s *defaultEventSender) SendEventData(destination string, payload string) interfaces.EventSenderResult {
	req, err := http.NewRequest("POST", destination, bytes.NewReader([]byte(payload)))
	if err != nil {
		return interfaces.EventSenderResult{Err: err}
	}
	for name, values := range s.headers {
		req.Header[name] = values
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return interfaces.EventSenderResult{Err: err}
	}
	_, _ = io.Copy(ioutil.Discard, resp.Body) // fire-and-continue; the response body is not inspected
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.loggers.Debugf("Event post to %s returned status %d", destination, resp.StatusCode)
		return interfaces.EventSenderResult{}
	}
	return interfaces.EventSenderResult{Success: true}
}
