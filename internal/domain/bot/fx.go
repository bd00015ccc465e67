// Package bot contains the bot domain module
package bot

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	telegramDelivery "github.com/yourusername/audio-drop-bot/internal/domain/bot/delivery/telegram"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/session"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/usecase/audio"
	"github.com/yourusername/audio-drop-bot/internal/infrastructure/telegram"
)

// Module provides bot domain components for fx dependency injection
var Module = fx.Module("bot",
	// Session state
	fx.Provide(session.NewStore),
	fx.Provide(session.NewGuard),

	// UseCase
	fx.Provide(audio.NewUseCase),

	// Delivery - Telegram (needs raw bot from infrastructure)
	fx.Provide(provideTelegramHandlers),
	fx.Provide(telegramDelivery.NewRouter),

	// Wire cyclic dependency and register routes
	fx.Invoke(wireAndRegister),
)

// provideTelegramHandlers creates Telegram handlers with raw bot
func provideTelegramHandlers(uc *audio.UseCase, bot *telegram.Bot, logger zerolog.Logger) *telegramDelivery.Handlers {
	return telegramDelivery.NewHandlers(uc, bot.Raw(), logger)
}

// wireAndRegister resolves cyclic dependency and registers routes
func wireAndRegister(
	uc *audio.UseCase,
	handlers *telegramDelivery.Handlers,
	router *telegramDelivery.Router,
	bot *telegram.Bot,
) {
	// Handlers implements deps.TelegramSender interface
	// This resolves the cyclic dependency: UseCase -> TelegramSender <- Handlers -> UseCase
	uc.SetSender(handlers)

	router.RegisterRoutes(bot)
}
