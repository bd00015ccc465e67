// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/yourusername/audio-drop-bot/config"
	"github.com/yourusername/audio-drop-bot/internal/domain"
	"github.com/yourusername/audio-drop-bot/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, telegram bot, extractor, health)
		infrastructure.Module,

		// Domain (audio extraction flow)
		domain.Module,
	)
}
