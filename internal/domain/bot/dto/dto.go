// Package dto contains data transfer objects for the bot domain
package dto

import "github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"

// LinkRequest represents an inbound text message carrying a video link
type LinkRequest struct {
	UserID    int64
	ChatID    int64
	MessageID int
	URL       string
}

// QualitySelection represents a quality-commit callback
type QualitySelection struct {
	UserID     int64
	ChatID     int64
	MessageID  int // message carrying the selection keyboard
	CallbackID string
	Quality    entities.AudioQuality
}

// CodecSelection represents a codec-toggle callback
type CodecSelection struct {
	UserID     int64
	ChatID     int64
	MessageID  int
	CallbackID string
	Codec      entities.AudioCodec
}

// FormatsRequest represents a format-listing callback
type FormatsRequest struct {
	UserID     int64
	ChatID     int64
	CallbackID string
}

// CommandResponse represents a response for bot commands
type CommandResponse struct {
	Message string
}
