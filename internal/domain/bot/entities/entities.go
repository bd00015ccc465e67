// Package entities contains domain entities
package entities

import (
	"io"
	"regexp"

	"github.com/yourusername/audio-drop-bot/pkg/filename"
)

// AudioQuality represents a requested audio quality tier, ordered by
// descending bitrate
type AudioQuality string

// Quality tiers
const (
	QualityBest     AudioQuality = "best"
	QualityHigh     AudioQuality = "high"     // ~192kbps
	QualityMedium   AudioQuality = "medium"   // ~128kbps
	QualityLow      AudioQuality = "low"      // ~64kbps
	QualityUltraLow AudioQuality = "ultralow" // ~48kbps mono
)

// Valid reports whether q is a known quality tier
func (q AudioQuality) Valid() bool {
	switch q {
	case QualityBest, QualityHigh, QualityMedium, QualityLow, QualityUltraLow:
		return true
	}
	return false
}

// AudioCodec represents the output audio container/encoding choice
type AudioCodec string

// Supported codecs
const (
	CodecOpus AudioCodec = "opus"
	CodecM4A  AudioCodec = "m4a"
)

// Valid reports whether c is a known codec
func (c AudioCodec) Valid() bool {
	return c == CodecOpus || c == CodecM4A
}

// VideoMetadata holds the metadata fetched for a video before extraction
type VideoMetadata struct {
	Title    string
	Duration int // seconds
}

// AudioFormat describes one audio-only entry from the format listing.
// It is produced for display only and never fed back into extraction.
type AudioFormat struct {
	ID      string
	Ext     string
	Quality string
	Size    string // optional
	Bitrate string // optional
}

// AudioFile is the produced artifact of an extraction. Stream is the
// live output of the extraction tool; it is owned by the delivery step
// and must be closed exactly once.
type AudioFile struct {
	Stream   io.ReadCloser
	Title    string
	Duration int // seconds
	Format   AudioCodec
}

// NewAudioFile creates an AudioFile, defaulting the format to opus
func NewAudioFile(stream io.ReadCloser, title string, duration int, format AudioCodec) *AudioFile {
	if format == "" {
		format = CodecOpus
	}
	return &AudioFile{
		Stream:   stream,
		Title:    title,
		Duration: duration,
		Format:   format,
	}
}

// FileName derives the delivery filename from the sanitized title
func (f *AudioFile) FileName() string {
	return filename.Sanitize(f.Title) + "." + string(f.Format)
}

var (
	supportedLinkRe = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/(watch\?v=|embed/|v/|shorts/)?[\w-]+`)
	videoIDRe       = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/|v/|shorts/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
)

// AudioRequest represents an inbound request to extract audio from a video
type AudioRequest struct {
	URL       string
	UserID    int64
	MessageID int
	ChatID    int64
}

// NewAudioRequest creates a request from raw message text. Validity of
// the URL is a derived predicate, not enforced here.
func NewAudioRequest(url string, userID int64, messageID int, chatID int64) AudioRequest {
	return AudioRequest{
		URL:       url,
		UserID:    userID,
		MessageID: messageID,
		ChatID:    chatID,
	}
}

// IsSupportedLink reports whether the URL looks like a supported
// YouTube link (watch, short, shorts, embed), scheme and www optional
func (r AudioRequest) IsSupportedLink() bool {
	return supportedLinkRe.MatchString(r.URL)
}

// VideoID extracts the 11-character video identifier when present.
// Used for logging only.
func (r AudioRequest) VideoID() (string, bool) {
	m := videoIDRe.FindStringSubmatch(r.URL)
	if m == nil {
		return "", false
	}
	return m[1], true
}
