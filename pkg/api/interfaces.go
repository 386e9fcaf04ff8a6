// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the API until ctx is cancelled
	StartServer(ctx context.Context, cardCodec ICardCodec, config ServerConfig, logger logrus.FieldLogger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
