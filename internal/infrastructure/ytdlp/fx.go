// Package ytdlp invokes the yt-dlp command-line tool
package ytdlp

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/yourusername/audio-drop-bot/config"
	"github.com/yourusername/audio-drop-bot/internal/domain/bot/deps"
)

// Module provides the audio extractor for fx dependency injection.
// The concrete type is also exposed for the health endpoint.
var Module = fx.Module("ytdlp",
	fx.Provide(provideExtractor),
	fx.Provide(provideAudioExtractor),
)

// provideExtractor creates the extractor from config
func provideExtractor(cfg *config.ExtractorConfig, logger zerolog.Logger) *Extractor {
	return NewExtractor(cfg.Path, cfg.Proxy, cfg.CookieFile, logger)
}

// provideAudioExtractor exposes the extractor through the domain interface
func provideAudioExtractor(e *Extractor) deps.AudioExtractor {
	return e
}
