//go:build wireinject
// +build wireinject

package di

import (
	"marketcontext/pkg/config"
	"marketcontext/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Provider client
		ProvideFMPClient,

		// Sinks
		ProvideSnapshotSink,

		// Use cases
		ProvideSnapshotBuilder,
		ProvidePoller,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
