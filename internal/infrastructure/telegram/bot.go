// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"
	"fmt"
	"sync/atomic"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// Bot wraps the Telegram bot for infrastructure layer. The default
// handler is bound late so the delivery layer can install it after
// construction.
type Bot struct {
	bot            *tgbot.Bot
	logger         zerolog.Logger
	defaultHandler atomic.Value // tgbot.HandlerFunc
	running        atomic.Bool
}

// NewBot creates a new Telegram bot wrapper
func NewBot(token string, logger zerolog.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	b := &Bot{logger: logger}

	opts := []tgbot.Option{
		tgbot.WithDefaultHandler(b.dispatchDefault),
	}

	bot, err := tgbot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	b.bot = bot
	logger.Info().Msg("Telegram bot created successfully")

	return b, nil
}

// Raw returns the underlying telegram bot for handler registration
func (b *Bot) Raw() *tgbot.Bot {
	return b.bot
}

// SetDefaultHandler installs the handler for updates no registered
// handler matched. Until it is set, unmatched updates are dropped.
func (b *Bot) SetDefaultHandler(handler tgbot.HandlerFunc) {
	b.defaultHandler.Store(handler)
}

// Start starts the bot (blocking call)
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info().Msg("Starting Telegram bot...")
	b.running.Store(true)
	b.bot.Start(ctx)
	b.running.Store(false)
	b.logger.Info().Msg("Telegram bot stopped")
	return nil
}

// IsRunning reports whether the update loop is active.
// Used by the health endpoint.
func (b *Bot) IsRunning() bool {
	return b.running.Load()
}

// Stop stops the bot
func (b *Bot) Stop() error {
	b.logger.Info().Msg("Stopping Telegram bot...")
	return nil
}

func (b *Bot) dispatchDefault(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	handler, ok := b.defaultHandler.Load().(tgbot.HandlerFunc)
	if !ok {
		b.logger.Debug().Int64("update_id", update.ID).Msg("Dropping update, no default handler installed")
		return
	}
	handler(ctx, bot, update)
}
