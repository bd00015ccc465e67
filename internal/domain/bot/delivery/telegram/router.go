// Package telegram contains Telegram delivery layer
package telegram

import (
	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"

	"github.com/yourusername/audio-drop-bot/internal/domain/bot/consts"
	infratelegram "github.com/yourusername/audio-drop-bot/internal/infrastructure/telegram"
)

// Router registers Telegram bot handlers
type Router struct {
	handlers *Handlers
	logger   zerolog.Logger
}

// NewRouter creates new Telegram router
func NewRouter(handlers *Handlers, logger zerolog.Logger) *Router {
	return &Router{
		handlers: handlers,
		logger:   logger,
	}
}

// RegisterRoutes registers command, callback and text handlers on the
// bot. Plain text goes through the default handler so command routing
// always wins.
func (r *Router) RegisterRoutes(bot *infratelegram.Bot) {
	raw := bot.Raw()

	raw.RegisterHandler(tgbot.HandlerTypeMessageText, "/"+consts.CommandStart.Name, tgbot.MatchTypeExact, r.handlers.HandleStart)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, "/"+consts.CommandHelp.Name, tgbot.MatchTypeExact, r.handlers.HandleHelp)

	raw.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, consts.CallbackQualityPrefix, tgbot.MatchTypePrefix, r.handlers.HandleQualityCallback)
	raw.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, consts.CallbackCodecPrefix, tgbot.MatchTypePrefix, r.handlers.HandleCodecCallback)
	raw.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, consts.CallbackFormatsPrefix, tgbot.MatchTypePrefix, r.handlers.HandleFormatsCallback)

	bot.SetDefaultHandler(r.handlers.HandleText)

	r.logger.Info().Msg("All Telegram handlers registered successfully")
}
