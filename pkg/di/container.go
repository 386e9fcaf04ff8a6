// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/charcard/pkg/api" //nolint:depguard
	"github.com/ssargent/charcard/pkg/card"
)

// Container holds all the dependencies for the application
type Container struct {
	cardCodec     api.ICardCodec
	serverFactory api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		cardCodec:     card.NewCodec(),
		serverFactory: api.NewServerFactory(),
	}
}

// GetCardCodec returns the card codec shared by the CLI and the API
func (c *Container) GetCardCodec() api.ICardCodec {
	return c.cardCodec
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetCardCodec allows overriding the card codec (for testing)
func (c *Container) SetCardCodec(cardCodec api.ICardCodec) {
	c.cardCodec = cardCodec
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}
