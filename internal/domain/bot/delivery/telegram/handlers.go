// Package telegram contains Telegram delivery handlers
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/yourusername/audio-drop-bot/internal/domain/bot/consts"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/dto"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/usecase/audio"
)

// Constants for Telegram API
const (
	MaxMessageLength = 4096
	RequestTimeout   = 30 * time.Second
	// Uploading a multi-hour audio stream can legitimately take a while
	UploadTimeout = 30 * time.Minute

	AudioPerformer = "YouTube"
	AudioCaption   = "🎵 Audio extracted"
)

// Handlers contains Telegram command and callback handlers.
// Implements deps.TelegramSender interface.
type Handlers struct {
	uc     *audio.UseCase
	bot    *tgbot.Bot
	logger zerolog.Logger
}

// NewHandlers creates new Telegram handlers
func NewHandlers(uc *audio.UseCase, bot *tgbot.Bot, logger zerolog.Logger) *Handlers {
	return &Handlers{
		uc:     uc,
		bot:    bot,
		logger: logger,
	}
}

// SendMessage implements deps.TelegramSender interface
func (h *Handlers) SendMessage(ctx context.Context, chatID int64, text string) error {
	if text == "" {
		h.logger.Warn().Int64("chat_id", chatID).Msg("Attempt to send empty message")
		return fmt.Errorf("message text cannot be empty")
	}

	if len(text) > MaxMessageLength {
		text = text[:MaxMessageLength-3] + "..."
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})

	if err != nil {
		handledErr := h.handleSendMessageError(chatID, err)
		h.logger.Error().Int64("chat_id", chatID).Int("message_length", len(text)).Err(handledErr).Msg("Message send failed")
		return handledErr
	}

	return nil
}

// EditMessageText implements deps.TelegramSender interface
func (h *Handlers) EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error {
	if text == "" {
		return fmt.Errorf("message text cannot be empty")
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	if len(text) > MaxMessageLength {
		text = text[:MaxMessageLength-3] + "..."
	}

	_, err := h.bot.EditMessageText(msgCtx, &tgbot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
	})

	if err != nil {
		h.logger.Error().Int64("chat_id", chatID).Int("message_id", messageID).Err(err).Msg("Failed to edit message text")
		return fmt.Errorf("failed to edit message: %w", err)
	}

	return nil
}

// AnswerCallback implements deps.TelegramSender interface
func (h *Handlers) AnswerCallback(ctx context.Context, callbackID, text string) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.AnswerCallbackQuery(msgCtx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})

	if err != nil {
		h.logger.Warn().Str("callback_id", callbackID).Err(err).Msg("Failed to answer callback query")
	}

	return err
}

// SendChatAction implements deps.TelegramSender interface
func (h *Handlers) SendChatAction(ctx context.Context, chatID int64, action string) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendChatAction(msgCtx, &tgbot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatAction(action),
	})

	if err != nil {
		h.logger.Warn().Int64("chat_id", chatID).Str("action", action).Err(err).Msg("Failed to send chat action")
	}

	return err
}

// SendAudio implements deps.TelegramSender interface. The audio stream
// is uploaded directly without buffering it in memory.
func (h *Handlers) SendAudio(ctx context.Context, chatID int64, file *entities.AudioFile) error {
	msgCtx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	h.logger.Debug().
		Int64("chat_id", chatID).
		Str("filename", file.FileName()).
		Int("duration", file.Duration).
		Msg("Uploading audio")

	_, err := h.bot.SendAudio(msgCtx, &tgbot.SendAudioParams{
		ChatID:    chatID,
		Audio:     &models.InputFileUpload{Filename: file.FileName(), Data: file.Stream},
		Title:     file.Title,
		Performer: AudioPerformer,
		Duration:  file.Duration,
		Caption:   AudioCaption,
	})

	if err != nil {
		h.logger.Error().Int64("chat_id", chatID).Str("filename", file.FileName()).Err(err).Msg("Audio upload failed")
		return fmt.Errorf("failed to send audio: %w", err)
	}

	h.logger.Info().Int64("chat_id", chatID).Str("filename", file.FileName()).Msg("Audio uploaded successfully")
	return nil
}

// ShowQualityKeyboard implements deps.TelegramSender interface
func (h *Handlers) ShowQualityKeyboard(ctx context.Context, chatID, userID int64, codec entities.AudioCodec) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        keyboardPrompt(codec),
		ReplyMarkup: qualityKeyboard(userID, codec),
	})

	if err != nil {
		return fmt.Errorf("failed to show quality keyboard: %w", err)
	}

	return nil
}

// EditQualityKeyboard implements deps.TelegramSender interface
func (h *Handlers) EditQualityKeyboard(ctx context.Context, chatID int64, messageID int, userID int64, codec entities.AudioCodec) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.EditMessageText(msgCtx, &tgbot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        keyboardPrompt(codec),
		ReplyMarkup: qualityKeyboard(userID, codec),
	})

	if err != nil {
		return fmt.Errorf("failed to update quality keyboard: %w", err)
	}

	return nil
}

// HandleStart handles /start command
func (h *Handlers) HandleStart(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	resp, err := h.uc.HandleStart(ctx, userID)
	if err != nil {
		h.logError(userID, "/start", err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
}

// HandleHelp handles /help command
func (h *Handlers) HandleHelp(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	resp, err := h.uc.HandleHelp(ctx)
	if err != nil {
		h.logError(chatID, "/help", err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
}

// HandleText is the default handler for plain text messages. Every
// non-command text is treated as a candidate video link.
func (h *Handlers) HandleText(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" || update.Message.From == nil {
		return
	}

	// commands are routed by their registered handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	h.uc.HandleLink(ctx, &dto.LinkRequest{
		UserID:    update.Message.From.ID,
		ChatID:    update.Message.Chat.ID,
		MessageID: update.Message.ID,
		URL:       strings.TrimSpace(update.Message.Text),
	})
}

// HandleQualityCallback handles quality:<tier>:<userId> callbacks
func (h *Handlers) HandleQualityCallback(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	defer h.recoverCallback(ctx, cb.ID)

	tier, userID, err := parseSelectionPayload(cb.Data, consts.CallbackQualityPrefix)
	if err != nil {
		h.logger.Warn().Str("payload", cb.Data).Err(err).Msg("Malformed quality callback")
		_ = h.AnswerCallback(ctx, cb.ID, "")
		return
	}

	quality := entities.AudioQuality(tier)
	if !quality.Valid() || !h.callbackOwnedBy(cb, userID) {
		_ = h.AnswerCallback(ctx, cb.ID, "")
		return
	}

	chatID, messageID, ok := callbackMessage(cb)
	if !ok {
		h.logger.Warn().Int64("user_id", userID).Msg("Quality callback on inaccessible message")
		_ = h.AnswerCallback(ctx, cb.ID, "")
		return
	}

	h.uc.HandleQualitySelect(ctx, &dto.QualitySelection{
		UserID:     userID,
		ChatID:     chatID,
		MessageID:  messageID,
		CallbackID: cb.ID,
		Quality:    quality,
	})
}

// HandleCodecCallback handles codec:<codec>:<userId> callbacks
func (h *Handlers) HandleCodecCallback(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	defer h.recoverCallback(ctx, cb.ID)

	name, userID, err := parseSelectionPayload(cb.Data, consts.CallbackCodecPrefix)
	if err != nil {
		h.logger.Warn().Str("payload", cb.Data).Err(err).Msg("Malformed codec callback")
		_ = h.AnswerCallback(ctx, cb.ID, "")
		return
	}

	codec := entities.AudioCodec(name)
	if !codec.Valid() || !h.callbackOwnedBy(cb, userID) {
		_ = h.AnswerCallback(ctx, cb.ID, "")
		return
	}

	chatID, messageID, ok := callbackMessage(cb)
	if !ok {
		_ = h.AnswerCallback(ctx, cb.ID, "")
		return
	}

	h.uc.HandleCodecToggle(ctx, &dto.CodecSelection{
		UserID:     userID,
		ChatID:     chatID,
		MessageID:  messageID,
		CallbackID: cb.ID,
		Codec:      codec,
	})
}

// HandleFormatsCallback handles formats:<userId> callbacks
func (h *Handlers) HandleFormatsCallback(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	defer h.recoverCallback(ctx, cb.ID)

	userID, err := parseFormatsPayload(cb.Data)
	if err != nil {
		h.logger.Warn().Str("payload", cb.Data).Err(err).Msg("Malformed formats callback")
		_ = h.AnswerCallback(ctx, cb.ID, "")
		return
	}

	if !h.callbackOwnedBy(cb, userID) {
		_ = h.AnswerCallback(ctx, cb.ID, "")
		return
	}

	chatID := userID
	if chat, _, ok := callbackMessage(cb); ok {
		chatID = chat
	}

	h.uc.HandleFormats(ctx, &dto.FormatsRequest{
		UserID:     userID,
		ChatID:     chatID,
		CallbackID: cb.ID,
	})
}

// callbackOwnedBy checks that the payload user matches the actual
// callback sender. Keyboards are personal; a stale keyboard forwarded
// to another chat must not act on behalf of the original user.
func (h *Handlers) callbackOwnedBy(cb *models.CallbackQuery, userID int64) bool {
	if cb.From.ID == userID {
		return true
	}
	h.logger.Warn().
		Int64("payload_user_id", userID).
		Int64("sender_id", cb.From.ID).
		Msg("Callback sender does not match payload")
	return false
}

// recoverCallback keeps a panicking callback handler from killing the
// update loop and stops the client-side spinner.
func (h *Handlers) recoverCallback(ctx context.Context, callbackID string) {
	if r := recover(); r != nil {
		h.logger.Error().Interface("panic", r).Str("callback_id", callbackID).Msg("Recovered from panic in callback handler")
		_ = h.AnswerCallback(ctx, callbackID, "An error occurred. Please try again.")
	}
}

// parseSelectionPayload parses "<prefix><value>:<userId>" payloads
func parseSelectionPayload(payload, prefix string) (value string, userID int64, err error) {
	if !strings.HasPrefix(payload, prefix) {
		return "", 0, fmt.Errorf("payload %q does not match prefix %q", payload, prefix)
	}

	parts := strings.Split(strings.TrimPrefix(payload, prefix), ":")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("payload %q has %d parts, want 2", payload, len(parts))
	}

	userID, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("payload %q has invalid user id: %w", payload, err)
	}

	return parts[0], userID, nil
}

// parseFormatsPayload parses "formats:<userId>" payloads
func parseFormatsPayload(payload string) (int64, error) {
	if !strings.HasPrefix(payload, consts.CallbackFormatsPrefix) {
		return 0, fmt.Errorf("payload %q is not a formats callback", payload)
	}

	userID, err := strconv.ParseInt(strings.TrimPrefix(payload, consts.CallbackFormatsPrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("payload %q has invalid user id: %w", payload, err)
	}

	return userID, nil
}

// callbackMessage extracts the chat and message of the keyboard the
// callback came from. The message may be inaccessible to the bot.
func callbackMessage(cb *models.CallbackQuery) (chatID int64, messageID int, ok bool) {
	if cb.Message.Message == nil {
		return 0, 0, false
	}
	return cb.Message.Message.Chat.ID, cb.Message.Message.ID, true
}

func (h *Handlers) sendResponse(ctx context.Context, chatID int64, text string) {
	if err := h.SendMessage(ctx, chatID, text); err != nil {
		h.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to send Telegram response")
	}
}

func (h *Handlers) handleSendMessageError(chatID int64, err error) error {
	errorMsg := err.Error()

	switch {
	case strings.Contains(errorMsg, "Forbidden"):
		h.logger.Warn().Int64("chat_id", chatID).Msg("User blocked the bot or chat not found")
		return fmt.Errorf("user blocked the bot or chat not found")

	case strings.Contains(errorMsg, "Bad Request: chat not found"):
		h.logger.Warn().Int64("chat_id", chatID).Msg("Chat not found")
		return fmt.Errorf("chat not found")

	case strings.Contains(errorMsg, "Too Many Requests"):
		h.logger.Warn().Int64("chat_id", chatID).Msg("Rate limit exceeded")
		return fmt.Errorf("rate limit exceeded, please try again later")

	default:
		return fmt.Errorf("failed to send message: %w", err)
	}
}

// logError logs command errors
func (h *Handlers) logError(userID int64, command string, err error) {
	h.logger.Error().Int64("user_id", userID).Str("command", command).Err(err).Msg("Telegram command failed")
}
