package ytdlp

import (
	"strings"

	boterrors "github.com/yourusername/audio-drop-bot/internal/domain/bot/errors"
)

// classifications is the ordered list of (substring, category) pairs
// applied to the tool's stderr, first match wins. The substrings track
// yt-dlp's diagnostic wording empirically; they are not guaranteed by
// the tool and need occasional re-checking against its output.
var classifications = []struct {
	substr   string
	category boterrors.Category
}{
	{"Private video", boterrors.CategoryPrivate},
	{"age", boterrors.CategoryAgeRestricted},
	{"not available", boterrors.CategoryUnavailable},
	{"copyright", boterrors.CategoryCopyright},
	{"Sign in", boterrors.CategorySignInRequired},
}

// classify maps the tool's diagnostic output to a classified error with
// a user-appropriate message
func (e *Extractor) classify(stderr string) *boterrors.ExtractionError {
	for _, c := range classifications {
		if strings.Contains(stderr, c.substr) {
			return boterrors.NewExtractionError(c.category, e.userMessage(c.category))
		}
	}
	return boterrors.NewExtractionError(boterrors.CategoryUnknown, e.userMessage(boterrors.CategoryUnknown))
}

func (e *Extractor) userMessage(category boterrors.Category) string {
	switch category {
	case boterrors.CategoryPrivate:
		return "This is a private video. Cannot extract audio."
	case boterrors.CategoryAgeRestricted:
		if e.cookieFile != "" {
			return "Age-restricted video. Extraction failed even with cookies, they may have expired."
		}
		return "Age-restricted video. Cannot extract audio without authentication."
	case boterrors.CategoryUnavailable:
		return "Video is unavailable or deleted."
	case boterrors.CategoryCopyright:
		return "Video is blocked due to copyright."
	case boterrors.CategorySignInRequired:
		return "YouTube requires authentication for this video. Cannot extract audio."
	default:
		return "Failed to extract audio. Check the link."
	}
}
