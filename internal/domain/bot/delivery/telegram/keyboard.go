package telegram

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/yourusername/audio-drop-bot/internal/domain/bot/consts"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"
)

// qualityKeyboard builds the codec/quality selection keyboard. Every
// button payload carries the owning user id so stale keyboards can be
// rejected.
func qualityKeyboard(userID int64, codec entities.AudioCodec) *models.InlineKeyboardMarkup {
	opusLabel := "🤖 Opus"
	m4aLabel := "🍎 M4A (iOS)"
	if codec == entities.CodecOpus {
		opusLabel = "🤖 Opus ✓"
	} else {
		m4aLabel = "🍎 M4A ✓"
	}

	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: opusLabel, CallbackData: codecPayload(entities.CodecOpus, userID)},
				{Text: m4aLabel, CallbackData: codecPayload(entities.CodecM4A, userID)},
			},
			{
				{Text: "🏆 Best", CallbackData: qualityPayload(entities.QualityBest, userID)},
				{Text: "⚡ High", CallbackData: qualityPayload(entities.QualityHigh, userID)},
			},
			{
				{Text: "💾 Medium", CallbackData: qualityPayload(entities.QualityMedium, userID)},
				{Text: "📱 Low", CallbackData: qualityPayload(entities.QualityLow, userID)},
			},
			{
				{Text: "🔇 Ultra-Low", CallbackData: qualityPayload(entities.QualityUltraLow, userID)},
			},
			{
				{Text: "📋 Show Formats", CallbackData: fmt.Sprintf("%s%d", consts.CallbackFormatsPrefix, userID)},
			},
		},
	}
}

// keyboardPrompt is the message text shown above the keyboard
func keyboardPrompt(codec entities.AudioCodec) string {
	info := "Opus - Better quality, smaller size"
	if codec == entities.CodecM4A {
		info = "M4A (AAC) - iOS compatible for download"
	}
	return fmt.Sprintf("✅ Video found!\n\n📦 Format: %s\n\nChoose quality:", info)
}

func qualityPayload(q entities.AudioQuality, userID int64) string {
	return fmt.Sprintf("%s%s:%d", consts.CallbackQualityPrefix, q, userID)
}

func codecPayload(c entities.AudioCodec, userID int64) string {
	return fmt.Sprintf("%s%s:%d", consts.CallbackCodecPrefix, c, userID)
}
