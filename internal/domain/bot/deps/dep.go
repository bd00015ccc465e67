// Package deps contains interface definitions for the bot domain dependencies
package deps

import (
	"context"

	"github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"
)

// AudioExtractor defines the contract for extracting audio from a video
// URL. There is one concrete implementer (yt-dlp); the interface exists
// so tests can substitute canned metadata and streams.
type AudioExtractor interface {
	// IsAvailable reports whether a metadata probe for the URL succeeds.
	// Probe failures are converted to false, never propagated.
	IsAvailable(ctx context.Context, url string) bool

	// GetMetadata fetches fresh title and duration for the URL
	GetMetadata(ctx context.Context, url string) (entities.VideoMetadata, error)

	// ExtractAudio spawns the extraction tool and returns the audio as a
	// live stream. The payload is never buffered in memory.
	ExtractAudio(ctx context.Context, url string, quality entities.AudioQuality, codec entities.AudioCodec) (*entities.AudioFile, error)

	// ListFormats lists audio-only formats for display, bounded in count
	ListFormats(ctx context.Context, url string) ([]entities.AudioFormat, error)
}

// TelegramSender defines interface for outbound Telegram operations.
// This interface is used to break the cyclic dependency between UseCase
// and the Telegram handlers.
type TelegramSender interface {
	// SendMessage sends a text message to a chat
	SendMessage(ctx context.Context, chatID int64, text string) error

	// EditMessageText edits a previously sent message
	EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error

	// AnswerCallback answers a callback query with an ephemeral notice
	AnswerCallback(ctx context.Context, callbackID, text string) error

	// SendChatAction sends a typing/uploading indicator
	SendChatAction(ctx context.Context, chatID int64, action string) error

	// SendAudio uploads the audio stream as a file to a chat
	SendAudio(ctx context.Context, chatID int64, file *entities.AudioFile) error

	// ShowQualityKeyboard sends the codec/quality selection keyboard
	ShowQualityKeyboard(ctx context.Context, chatID, userID int64, codec entities.AudioCodec) error

	// EditQualityKeyboard re-renders the selection keyboard on an
	// existing message after a codec toggle
	EditQualityKeyboard(ctx context.Context, chatID int64, messageID int, userID int64, codec entities.AudioCodec) error
}
