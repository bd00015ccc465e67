// Package audio contains business logic for the audio extraction flow
package audio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yourusername/audio-drop-bot/config"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/consts"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/deps"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/dto"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"
	boterrors "github.com/yourusername/audio-drop-bot/internal/domain/bot/errors"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/quality"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/session"
)

// maxDurationSeconds is the hard ceiling on extractable content (12 hours)
const maxDurationSeconds = 43200

// User-facing messages for flow outcomes
const (
	msgNotAllowed       = "🔒 This is a private bot.\n\nAccess is restricted to authorized users only."
	msgStillProcessing  = "⏳ I am still processing your previous request. Please wait..."
	msgNotALink         = "❌ This is not a YouTube link.\n\nPlease send a YouTube video link."
	msgChecking         = "🔍 Checking video..."
	msgUnavailable      = "❌ Video is unavailable. Check the link or try another video."
	msgSessionExpired   = "❌ Session expired. Send the link again."
	msgCheckingMetadata = "⏳ Checking video metadata..."
	msgExtracting       = "⏳ Extracting audio... This may take some time."
	msgGenericFailure   = "❌ An error occurred while extracting audio.\n\nTry again later or with another video."
	msgDeliveryFailure  = "❌ Failed to deliver the audio file.\n\nTry again later or with another video."
	msgDone             = "✅ Done! Enjoy listening 🎧"
	msgNoFormats        = "❌ No audio formats found."
	msgFormatsFailed    = "❌ Failed to get available formats."
)

// UseCase drives the end-to-end audio request flow
type UseCase struct {
	extractor deps.AudioExtractor
	sessions  *session.Store
	guard     *session.Guard
	sender    deps.TelegramSender
	logger    zerolog.Logger
	allowed   map[int64]struct{}
}

// NewUseCase creates a new UseCase instance
// Note: sender is not passed here to break cyclic dependency
// Use SetSender after creating the Telegram handlers
func NewUseCase(extractor deps.AudioExtractor, sessions *session.Store, guard *session.Guard, access *config.AccessConfig, logger zerolog.Logger) *UseCase {
	allowed := make(map[int64]struct{}, len(access.AllowedUserIDs))
	for _, id := range access.AllowedUserIDs {
		allowed[id] = struct{}{}
	}

	return &UseCase{
		extractor: extractor,
		sessions:  sessions,
		guard:     guard,
		logger:    logger,
		allowed:   allowed,
	}
}

// SetSender sets the TelegramSender after construction
// This is called by fx.Invoke to resolve cyclic dependency
func (uc *UseCase) SetSender(sender deps.TelegramSender) {
	uc.sender = sender
}

// isAllowed checks the requester against the allow-list.
// An empty allow-list admits everyone.
func (uc *UseCase) isAllowed(userID int64) bool {
	if len(uc.allowed) == 0 {
		return true
	}
	_, ok := uc.allowed[userID]
	return ok
}

// HandleStart handles /start command
func (uc *UseCase) HandleStart(ctx context.Context, userID int64) (*dto.CommandResponse, error) {
	uc.logger.Info().Int64("user_id", userID).Msg("User started bot")

	message := `🎵 *Audio Drop Bot*

Hi! I'll help you extract audio from YouTube videos with quality selection.

*How to use:*
1. Send me a YouTube video link
2. Choose audio quality (Best, High, Medium, Low)
3. Receive your audio file

*Supported formats:*
• youtube.com/watch?v=...
• youtu.be/...
• youtube.com/shorts/...

*Quality options:*
🏆 Best - Highest available quality
⚡ High - ~192kbps
💾 Medium - ~128kbps
📱 Low - ~64kbps
🔇 Ultra-Low - ~48kbps mono (for very long content)

Send a link to get started! 🚀`

	return &dto.CommandResponse{Message: message}, nil
}

// HandleHelp handles /help command
func (uc *UseCase) HandleHelp(ctx context.Context) (*dto.CommandResponse, error) {
	message := `*Help*

*How to use the bot:*
1. Find the video on YouTube
2. Copy the video link
3. Send the link to me
4. Choose quality from buttons
5. Receive the audio file

*Quality guide:*
• Best - Maximum quality (larger file)
• High - Good balance (~192kbps)
• Medium - Smaller size (~128kbps)
• Low - Minimum size (~64kbps)
• Ultra-Low - Smallest size (~48kbps mono, for 6+ hour audiobooks)
• Show Formats - View all available audio formats

*Auto-optimization:*
• 1.5-3h: Best/High → Medium
• 3-6h: Best/High/Medium → Low
• 6+h: Any → Ultra-Low (48k mono)

*Common issues:*
• "Video unavailable" - video is private or deleted
• "Session expired" - send the link again`

	return &dto.CommandResponse{Message: message}, nil
}

// HandleLink validates an inbound link, probes availability and, when
// the video is reachable, opens a selection session for the requester
func (uc *UseCase) HandleLink(ctx context.Context, req *dto.LinkRequest) {
	if !uc.isAllowed(req.UserID) {
		uc.logger.Warn().Int64("user_id", req.UserID).Msg("Unauthorized user attempted access")
		uc.send(ctx, req.ChatID, msgNotAllowed)
		return
	}

	if !uc.guard.TryAcquire(req.UserID) {
		uc.send(ctx, req.ChatID, msgStillProcessing)
		return
	}
	defer uc.guard.Release(req.UserID)

	request := entities.NewAudioRequest(req.URL, req.UserID, req.MessageID, req.ChatID)
	if !request.IsSupportedLink() {
		uc.logger.Debug().Err(boterrors.ErrNotSupportedLink).Int64("user_id", req.UserID).Msg("Rejected message")
		uc.send(ctx, req.ChatID, msgNotALink)
		return
	}

	logger := uc.requestLogger(req.UserID, request)
	logger.Info().Msg("Processing audio request")

	_ = uc.sender.SendChatAction(ctx, req.ChatID, consts.ActionTyping)
	uc.send(ctx, req.ChatID, msgChecking)

	if !uc.extractor.IsAvailable(ctx, req.URL) {
		logger.Warn().Err(boterrors.ErrVideoUnavailable).Msg("Video unavailable")
		uc.send(ctx, req.ChatID, msgUnavailable)
		return
	}

	// a fresh request supersedes any previous session for this user
	uc.sessions.Set(req.UserID, session.UserSession{URL: req.URL, Codec: entities.CodecOpus})

	if err := uc.sender.ShowQualityKeyboard(ctx, req.ChatID, req.UserID, entities.CodecOpus); err != nil {
		logger.Error().Err(err).Msg("Failed to show quality keyboard")
		uc.sessions.Delete(req.UserID)
		uc.send(ctx, req.ChatID, msgGenericFailure)
	}
}

// HandleCodecToggle switches the session codec and re-renders the
// selection keyboard. It does not touch the processing guard.
func (uc *UseCase) HandleCodecToggle(ctx context.Context, sel *dto.CodecSelection) {
	sess, ok := uc.sessions.Get(sel.UserID)
	if !ok {
		_ = uc.sender.AnswerCallback(ctx, sel.CallbackID, msgSessionExpired)
		return
	}

	if sess.Codec == sel.Codec {
		_ = uc.sender.AnswerCallback(ctx, sel.CallbackID, fmt.Sprintf("%s already selected", codecLabel(sel.Codec)))
		return
	}

	sess.Codec = sel.Codec
	uc.sessions.Set(sel.UserID, sess)

	_ = uc.sender.AnswerCallback(ctx, sel.CallbackID, fmt.Sprintf("Format changed to %s", codecLabel(sel.Codec)))

	if err := uc.sender.EditQualityKeyboard(ctx, sel.ChatID, sel.MessageID, sel.UserID, sel.Codec); err != nil {
		uc.logger.Error().Err(err).Int64("user_id", sel.UserID).Msg("Failed to update keyboard")
	}
}

// HandleQualitySelect commits a quality choice: re-fetches metadata,
// enforces the duration ceiling, auto-adjusts quality, extracts and
// delivers the audio. The session is gone and the guard released on
// every terminal outcome.
func (uc *UseCase) HandleQualitySelect(ctx context.Context, sel *dto.QualitySelection) {
	sess, ok := uc.sessions.Get(sel.UserID)
	if !ok {
		uc.logger.Warn().Int64("user_id", sel.UserID).Msg("Quality callback with no session")
		_ = uc.sender.AnswerCallback(ctx, sel.CallbackID, msgSessionExpired)
		return
	}

	if !uc.guard.TryAcquire(sel.UserID) {
		_ = uc.sender.AnswerCallback(ctx, sel.CallbackID, msgStillProcessing)
		return
	}
	defer uc.guard.Release(sel.UserID)
	defer uc.sessions.Delete(sel.UserID)

	_ = uc.sender.AnswerCallback(ctx, sel.CallbackID, fmt.Sprintf("⏳ Extracting %s quality...", sel.Quality))
	uc.edit(ctx, sel.ChatID, sel.MessageID, msgCheckingMetadata)

	logger := uc.logger.With().
		Int64("user_id", sel.UserID).
		Str("quality", string(sel.Quality)).
		Str("codec", string(sess.Codec)).
		Logger()

	meta, err := uc.extractor.GetMetadata(ctx, sess.URL)
	if err != nil {
		logger.Error().Err(err).Str("url", sess.URL).Msg("Metadata re-fetch failed")
		uc.reportFailure(ctx, sel.ChatID, sel.MessageID, err)
		return
	}

	if meta.Duration > maxDurationSeconds {
		logger.Warn().Err(boterrors.ErrDurationExceeded).Int("duration", meta.Duration).Msg("Duration ceiling exceeded")
		uc.edit(ctx, sel.ChatID, sel.MessageID, fmt.Sprintf(
			"❌ Video is too long (%.1f hours).\n\nMaximum supported duration is 12 hours.",
			float64(meta.Duration)/3600))
		return
	}

	opt := quality.Optimize(sel.Quality, meta.Duration)
	if opt.Adjusted {
		logger.Info().
			Str("adjusted_quality", string(opt.Quality)).
			Int("duration", meta.Duration).
			Msg("Quality auto-adjusted for duration")
		uc.edit(ctx, sel.ChatID, sel.MessageID, fmt.Sprintf("ℹ️ %s\n\n⏳ Extracting audio...", opt.Reason))
	} else {
		uc.edit(ctx, sel.ChatID, sel.MessageID, msgExtracting)
	}

	_ = uc.sender.SendChatAction(ctx, sel.ChatID, consts.ActionUploadDocument)

	file, err := uc.extractor.ExtractAudio(ctx, sess.URL, opt.Quality, sess.Codec)
	if err != nil {
		logger.Error().Err(err).Str("url", sess.URL).Msg("Extraction failed")
		uc.reportFailure(ctx, sel.ChatID, sel.MessageID, err)
		return
	}
	defer file.Stream.Close()

	_ = uc.sender.SendChatAction(ctx, sel.ChatID, consts.ActionUploadDocument)

	if err := uc.sender.SendAudio(ctx, sel.ChatID, file); err != nil {
		logger.Error().Err(err).Msg("Audio delivery failed")
		uc.edit(ctx, sel.ChatID, sel.MessageID, msgDeliveryFailure)
		return
	}

	logger.Info().Int("duration", file.Duration).Msg("Audio sent successfully")
	uc.edit(ctx, sel.ChatID, sel.MessageID, msgDone)
}

// HandleFormats lists the available audio-only formats for the session URL
func (uc *UseCase) HandleFormats(ctx context.Context, req *dto.FormatsRequest) {
	sess, ok := uc.sessions.Get(req.UserID)
	if !ok {
		_ = uc.sender.AnswerCallback(ctx, req.CallbackID, msgSessionExpired)
		return
	}

	_ = uc.sender.AnswerCallback(ctx, req.CallbackID, "🔍 Fetching formats...")

	formats, err := uc.extractor.ListFormats(ctx, sess.URL)
	if err != nil {
		uc.logger.Error().Err(err).Int64("user_id", req.UserID).Str("url", sess.URL).Msg("Failed to get formats")
		uc.send(ctx, req.ChatID, msgFormatsFailed)
		return
	}

	if len(formats) == 0 {
		uc.send(ctx, req.ChatID, msgNoFormats)
		return
	}

	message := "📋 *Available Audio Formats:*\n\n"
	for _, f := range formats {
		bitrate := f.Bitrate
		if bitrate == "" {
			bitrate = "unknown bitrate"
		}
		message += fmt.Sprintf("• %s - %s\n", f.Ext, bitrate)
	}
	message += "\nUse quality buttons above to download."

	uc.send(ctx, req.ChatID, message)
}

// reportFailure converts an extraction error into a single outbound
// message: classified errors are already user-appropriate and shown
// verbatim, everything else collapses to a generic failure.
func (uc *UseCase) reportFailure(ctx context.Context, chatID int64, messageID int, err error) {
	if classified, ok := boterrors.AsExtractionError(err); ok {
		uc.edit(ctx, chatID, messageID, "❌ "+classified.Message)
		return
	}
	uc.edit(ctx, chatID, messageID, msgGenericFailure)
}

func (uc *UseCase) send(ctx context.Context, chatID int64, text string) {
	if err := uc.sender.SendMessage(ctx, chatID, text); err != nil {
		uc.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}

func (uc *UseCase) edit(ctx context.Context, chatID int64, messageID int, text string) {
	if err := uc.sender.EditMessageText(ctx, chatID, messageID, text); err != nil {
		uc.logger.Error().Err(err).Int64("chat_id", chatID).Int("message_id", messageID).Msg("Failed to edit message")
	}
}

// requestLogger attaches a correlation id and video id to the log context
func (uc *UseCase) requestLogger(userID int64, request entities.AudioRequest) zerolog.Logger {
	logCtx := uc.logger.With().
		Int64("user_id", userID).
		Str("request_id", uuid.NewString())
	if videoID, ok := request.VideoID(); ok {
		logCtx = logCtx.Str("video_id", videoID)
	}
	return logCtx.Logger()
}

func codecLabel(c entities.AudioCodec) string {
	if c == entities.CodecM4A {
		return "M4A"
	}
	return "OPUS"
}
