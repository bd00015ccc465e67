package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/audio-drop-bot/internal/domain/bot/consts"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"
)

func TestParseSelectionPayload(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		prefix     string
		wantValue  string
		wantUserID int64
		wantErr    bool
	}{
		{
			name:       "quality payload",
			payload:    "quality:best:123456",
			prefix:     consts.CallbackQualityPrefix,
			wantValue:  "best",
			wantUserID: 123456,
		},
		{
			name:       "codec payload",
			payload:    "codec:m4a:42",
			prefix:     consts.CallbackCodecPrefix,
			wantValue:  "m4a",
			wantUserID: 42,
		},
		{
			name:    "wrong prefix",
			payload: "codec:m4a:42",
			prefix:  consts.CallbackQualityPrefix,
			wantErr: true,
		},
		{
			name:    "missing user id",
			payload: "quality:best",
			prefix:  consts.CallbackQualityPrefix,
			wantErr: true,
		},
		{
			name:    "non-numeric user id",
			payload: "quality:best:abc",
			prefix:  consts.CallbackQualityPrefix,
			wantErr: true,
		},
		{
			name:    "extra parts",
			payload: "quality:best:1:2",
			prefix:  consts.CallbackQualityPrefix,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, userID, err := parseSelectionPayload(tt.payload, tt.prefix)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantValue, value)
			require.Equal(t, tt.wantUserID, userID)
		})
	}
}

func TestParseFormatsPayload(t *testing.T) {
	userID, err := parseFormatsPayload("formats:987")
	require.NoError(t, err)
	require.Equal(t, int64(987), userID)

	_, err = parseFormatsPayload("quality:best:987")
	require.Error(t, err)

	_, err = parseFormatsPayload("formats:")
	require.Error(t, err)
}

func TestQualityKeyboardPayloadsRoundTrip(t *testing.T) {
	kb := qualityKeyboard(777, entities.CodecOpus)
	require.Len(t, kb.InlineKeyboard, 5)

	// every quality button payload must parse back to its tier and owner
	for _, row := range kb.InlineKeyboard[1:4] {
		for _, btn := range row {
			tier, userID, err := parseSelectionPayload(btn.CallbackData, consts.CallbackQualityPrefix)
			require.NoError(t, err)
			require.Equal(t, int64(777), userID)
			require.True(t, entities.AudioQuality(tier).Valid())
		}
	}

	for _, btn := range kb.InlineKeyboard[0] {
		name, userID, err := parseSelectionPayload(btn.CallbackData, consts.CallbackCodecPrefix)
		require.NoError(t, err)
		require.Equal(t, int64(777), userID)
		require.True(t, entities.AudioCodec(name).Valid())
	}

	userID, err := parseFormatsPayload(kb.InlineKeyboard[4][0].CallbackData)
	require.NoError(t, err)
	require.Equal(t, int64(777), userID)
}

func TestQualityKeyboardMarksSelectedCodec(t *testing.T) {
	opusKb := qualityKeyboard(1, entities.CodecOpus)
	require.Contains(t, opusKb.InlineKeyboard[0][0].Text, "✓")
	require.NotContains(t, opusKb.InlineKeyboard[0][1].Text, "✓")

	m4aKb := qualityKeyboard(1, entities.CodecM4A)
	require.NotContains(t, m4aKb.InlineKeyboard[0][0].Text, "✓")
	require.Contains(t, m4aKb.InlineKeyboard[0][1].Text, "✓")
}

func TestKeyboardPrompt(t *testing.T) {
	require.Contains(t, keyboardPrompt(entities.CodecOpus), "Opus")
	require.Contains(t, keyboardPrompt(entities.CodecM4A), "iOS compatible")
}
