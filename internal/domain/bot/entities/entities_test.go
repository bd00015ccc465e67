package entities

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSupportedLink(t *testing.T) {
	supported := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ",
		"http://youtube.com/watch?v=dQw4w9WgXcQ",
		"youtube.com/watch?v=dQw4w9WgXcQ",
		"www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"youtube.com/shorts/dQw4w9WgXcQ",
		"https://youtube.com/embed/dQw4w9WgXcQ",
		"https://youtube.com/v/dQw4w9WgXcQ",
	}
	for _, url := range supported {
		req := NewAudioRequest(url, 1, 1, 1)
		require.True(t, req.IsSupportedLink(), "url %q", url)
	}

	unsupported := []string{
		"",
		"hello world",
		"https://vimeo.com/123456",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"not a url at all",
		"ftp://youtube.com",
	}
	for _, url := range unsupported {
		req := NewAudioRequest(url, 1, 1, 1)
		require.False(t, req.IsSupportedLink(), "url %q", url)
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		url string
		id  string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/shorts/aB3_x-9Yz01", "aB3_x-9Yz01"},
		{"youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		req := NewAudioRequest(tt.url, 1, 1, 1)
		id, ok := req.VideoID()
		require.True(t, ok, "url %q", tt.url)
		require.Equal(t, tt.id, id)
	}

	for _, url := range []string{"https://example.com/video", "youtube.com/watch?v=short"} {
		req := NewAudioRequest(url, 1, 1, 1)
		_, ok := req.VideoID()
		require.False(t, ok, "url %q", url)
	}
}

func TestAudioFileFileName(t *testing.T) {
	f := NewAudioFile(io.NopCloser(strings.NewReader("")), "My Song / Remix", 120, CodecOpus)
	require.Equal(t, "My_Song_Remix.opus", f.FileName())

	f = NewAudioFile(io.NopCloser(strings.NewReader("")), "", 0, "")
	require.Equal(t, CodecOpus, f.Format)
	require.Equal(t, "audio.opus", f.FileName())
}

func TestQualityAndCodecValidation(t *testing.T) {
	for _, q := range []AudioQuality{QualityBest, QualityHigh, QualityMedium, QualityLow, QualityUltraLow} {
		require.True(t, q.Valid())
	}
	require.False(t, AudioQuality("superb").Valid())
	require.False(t, AudioQuality("").Valid())

	require.True(t, CodecOpus.Valid())
	require.True(t, CodecM4A.Valid())
	require.False(t, AudioCodec("mp3").Valid())
}
