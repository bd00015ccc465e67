// Package health exposes a liveness endpoint over HTTP
package health

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/yourusername/audio-drop-bot/config"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/session"
	"github.com/yourusername/audio-drop-bot/internal/infrastructure/telegram"
	"github.com/yourusername/audio-drop-bot/internal/infrastructure/ytdlp"
)

// Module provides the health endpoint for fx dependency injection
var Module = fx.Module("health",
	fx.Provide(provideHandler),
	fx.Provide(provideServer),
	fx.Invoke(registerLifecycle),
)

// provideHandler wires the concrete health reporters
func provideHandler(extractor *ytdlp.Extractor, bot *telegram.Bot, guard *session.Guard, logger zerolog.Logger) *Handler {
	return NewHandler(extractor, bot, guard, logger)
}

// provideServer creates the HTTP server from config
func provideServer(cfg *config.HealthConfig, handler *Handler, logger zerolog.Logger) *Server {
	return NewServer(cfg.Port, handler, logger)
}

// registerLifecycle registers server lifecycle hooks
func registerLifecycle(lc fx.Lifecycle, server *Server) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return server.Start()
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
