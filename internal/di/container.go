// Package di provides dependency injection configuration for the editor core.
package di

import (
	"github.com/samber/do/v2"

	"github.com/cadenzaapp/cadenza-core/internal/backend"
	"github.com/cadenzaapp/cadenza-core/internal/di/providers"
)

// NewContainer creates and configures the DI container with all providers.
// The backend client is supplied by the host shell, which owns the
// transport to the library process.
func NewContainer(client backend.Client) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, client)

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Editor services
	do.Provide(injector, providers.ProvideSuggestions)
	do.Provide(injector, providers.ProvideArtworkCache)
	do.Provide(injector, providers.ProvideEditor)

	return injector
}
