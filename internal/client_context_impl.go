package internal

import (
	"github.com/eventplatform/go-client-sdk/interfaces"
)

// ClientContextImpl is the SDK's standard implementation of interfaces.ClientContext.
type ClientContextImpl struct {
	basic   interfaces.BasicConfiguration
	http    interfaces.HTTPConfiguration
	logging interfaces.LoggingConfiguration
}

// NewClientContextImpl creates a ClientContextImpl.
func NewClientContextImpl(
	basic interfaces.BasicConfiguration,
	http interfaces.HTTPConfiguration,
	logging interfaces.LoggingConfiguration,
) *ClientContextImpl {
	return &ClientContextImpl{basic: basic, http: http, logging: logging}
}

func (c *ClientContextImpl) GetBasic() interfaces.BasicConfiguration { return c.basic }

func (c *ClientContextImpl) GetHTTP() interfaces.HTTPConfiguration { return c.http }

func (c *ClientContextImpl) GetLogging() interfaces.LoggingConfiguration { return c.logging }
