package epcomponents

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"time"

	ntlm "github.com/launchdarkly/go-ntlm-proxy-auth"

	"github.com/eventplatform/go-client-sdk/interfaces"
	"github.com/eventplatform/go-client-sdk/internal"
)

// DefaultConnectTimeout is the default value for HTTPConfigurationBuilder.ConnectTimeout.
const DefaultConnectTimeout = 3 * time.Second

// HTTPConfigurationBuilder contains methods for configuring the SDK's networking behavior.
//
// If you want to set non-default values for any of these properties, create a builder with
// epcomponents.HTTPConfiguration(), change its properties with the HTTPConfigurationBuilder
// methods, and store it in Config.HTTP:
//
//	config := epclient.Config{
//	    HTTP: epcomponents.HTTPConfiguration().ConnectTimeout(3 * time.Second),
//	}
type HTTPConfigurationBuilder struct {
	connectTimeout    time.Duration
	caCerts           []caCertSource
	proxyURL          string
	ntlmAuth          *ntlmAuthParams
	userAgentSuffix   string
	customHeaders     http.Header
	httpClientFactory func() *http.Client
}

type caCertSource struct {
	data []byte
	path string
}

type ntlmAuthParams struct {
	username string
	password string
	domain   string
}

// HTTPConfiguration returns a configuration builder for the SDK's networking configuration.
func HTTPConfiguration() *HTTPConfigurationBuilder {
	return &HTTPConfigurationBuilder{connectTimeout: DefaultConnectTimeout}
}

// CACert specifies a CA certificate to be added to the trusted root CA list for HTTPS
// requests, in PEM format.
func (b *HTTPConfigurationBuilder) CACert(certData []byte) *HTTPConfigurationBuilder {
	b.caCerts = append(b.caCerts, caCertSource{data: certData})
	return b
}

// CACertFile specifies a CA certificate to be added to the trusted root CA list for HTTPS
// requests, as a path to a PEM file.
func (b *HTTPConfigurationBuilder) CACertFile(path string) *HTTPConfigurationBuilder {
	b.caCerts = append(b.caCerts, caCertSource{path: path})
	return b
}

// ConnectTimeout sets the connection timeout, which is also used as the overall request
// timeout for event deliveries. The default is DefaultConnectTimeout.
func (b *HTTPConfigurationBuilder) ConnectTimeout(timeout time.Duration) *HTTPConfigurationBuilder {
	if timeout <= 0 {
		b.connectTimeout = DefaultConnectTimeout
	} else {
		b.connectTimeout = timeout
	}
	return b
}

// Header adds a custom header to all outbound requests. This can overwrite the standard
// headers the SDK sets, except Content-Type.
func (b *HTTPConfigurationBuilder) Header(key string, value string) *HTTPConfigurationBuilder {
	if b.customHeaders == nil {
		b.customHeaders = make(http.Header)
	}
	b.customHeaders.Set(key, value)
	return b
}

// HTTPClientFactory specifies a function for creating each HTTP client instance that the SDK
// uses. Use this only if you need fine-grained control beyond the other builder options; the
// other transport-related options are ignored when a factory is set.
func (b *HTTPConfigurationBuilder) HTTPClientFactory(factory func() *http.Client) *HTTPConfigurationBuilder {
	b.httpClientFactory = factory
	return b
}

// ProxyURL specifies a proxy URL to be used for all requests, overriding any environment
// proxy settings.
func (b *HTTPConfigurationBuilder) ProxyURL(proxyURL string) *HTTPConfigurationBuilder {
	b.proxyURL = proxyURL
	return b
}

// NTLMProxyAuth specifies that NTLM authentication should be used with the proxy server
// configured by ProxyURL. The credentials are those of the proxy, not the intake service.
func (b *HTTPConfigurationBuilder) NTLMProxyAuth(username, password, domain string) *HTTPConfigurationBuilder {
	b.ntlmAuth = &ntlmAuthParams{username: username, password: password, domain: domain}
	return b
}

// UserAgent specifies an additional string to be appended to the SDK's User-Agent header.
func (b *HTTPConfigurationBuilder) UserAgent(userAgent string) *HTTPConfigurationBuilder {
	b.userAgentSuffix = userAgent
	return b
}

// CreateHTTPConfiguration is called internally by the SDK.
func (b *HTTPConfigurationBuilder) CreateHTTPConfiguration(
	basic interfaces.BasicConfiguration,
) (interfaces.HTTPConfiguration, error) {
	headers := make(http.Header)
	if basic.AppKey != "" {
		headers.Set("Authorization", "Bearer "+basic.AppKey)
	}
	userAgent := "EventPlatformGoClient/" + internal.SDKVersion
	if b.userAgentSuffix != "" {
		userAgent += " " + b.userAgentSuffix
	}
	headers.Set("User-Agent", userAgent)
	for key, values := range b.customHeaders {
		headers[key] = values
	}

	clientFactory := b.httpClientFactory
	if clientFactory == nil {
		transport, err := b.makeTransport()
		if err != nil {
			return interfaces.HTTPConfiguration{}, err
		}
		timeout := b.connectTimeout
		clientFactory = func() *http.Client {
			return &http.Client{Timeout: timeout, Transport: transport}
		}
	}

	return interfaces.HTTPConfiguration{
		DefaultHeaders:   headers,
		CreateHTTPClient: clientFactory,
	}, nil
}

func (b *HTTPConfigurationBuilder) makeTransport() (*http.Transport, error) {
	dialer := &net.Dialer{Timeout: b.connectTimeout, KeepAlive: 1 * time.Minute}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	var tlsConfig *tls.Config
	if len(b.caCerts) > 0 {
		pool, err := x509.SystemCertPool()
		if err != nil {
			pool = x509.NewCertPool()
		}
		for _, cert := range b.caCerts {
			data := cert.data
			if cert.path != "" {
				data, err = ioutil.ReadFile(cert.path)
				if err != nil {
					return nil, fmt.Errorf("can't read CA certificate file %s: %w", cert.path, err)
				}
			}
			if !pool.AppendCertsFromPEM(data) {
				return nil, errors.New("invalid CA certificate data")
			}
		}
		tlsConfig = &tls.Config{RootCAs: pool} //nolint:gosec // not setting insecure options
		transport.TLSClientConfig = tlsConfig
	}

	if b.proxyURL != "" {
		parsed, err := url.Parse(b.proxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %s: %w", b.proxyURL, err)
		}
		if b.ntlmAuth != nil {
			transport.Proxy = nil
			transport.DialContext = ntlm.NewNTLMProxyDialContext(dialer, *parsed,
				b.ntlmAuth.username, b.ntlmAuth.password, b.ntlmAuth.domain, tlsConfig)
		} else {
			transport.Proxy = http.ProxyURL(parsed)
		}
	} else if b.ntlmAuth != nil {
		return nil, errors.New("NTLMProxyAuth requires ProxyURL to be set")
	}

	return transport, nil
}
