package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/skip-hire/internal/config"
	"github.com/jakechorley/skip-hire/pkg/core/services"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg        *config.Config
	SkipSource services.SkipSource
	Fallback   services.FallbackProvider
	Logger     *zap.Logger
	Ctx        context.Context
}

// FetchOffers runs the offer pipeline for the configured location
func (a *AppContext) FetchOffers() services.FetchOffersResult {
	return services.FetchOffers(a.Ctx, a.SkipSource, a.Fallback, a.Cfg.Location, a.Logger)
}
