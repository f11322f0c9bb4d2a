// Package providers contains dependency injection providers for the editor core.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/cadenzaapp/cadenza-core/internal/artwork"
	"github.com/cadenzaapp/cadenza-core/internal/backend"
	"github.com/cadenzaapp/cadenza-core/internal/config"
	"github.com/cadenzaapp/cadenza-core/internal/editor"
	"github.com/cadenzaapp/cadenza-core/internal/logger"
	"github.com/cadenzaapp/cadenza-core/internal/suggest"
	"github.com/cadenzaapp/cadenza-core/internal/validation"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting editor core",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
	)

	return log, nil
}

// ProvideValidator provides the field validation registry.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideSuggestions provides the autocomplete suggestion service.
func ProvideSuggestions(i do.Injector) (*suggest.Service, error) {
	client := do.MustInvoke[backend.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return suggest.New(client, log), nil
}

// ProvideArtworkCache provides the deduplicating cover art cache.
func ProvideArtworkCache(i do.Injector) (*artwork.Cache, error) {
	client := do.MustInvoke[backend.Client](i)
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return artwork.New(client, log, cfg.Artwork.Decode), nil
}

// ProvideEditor provides the tag editor.
func ProvideEditor(i do.Injector) (*editor.Editor, error) {
	client := do.MustInvoke[backend.Client](i)
	cfg := do.MustInvoke[*config.Config](i)
	v := do.MustInvoke[*validation.Validator](i)
	suggestions := do.MustInvoke[*suggest.Service](i)
	log := do.MustInvoke[*logger.Logger](i)

	return editor.New(client, v, suggestions, log, editor.Options{
		AckDuration: cfg.Editor.SavedAckDuration,
	}), nil
}
