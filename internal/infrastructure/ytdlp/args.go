package ytdlp

import "github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"

// qualityCode maps a quality tier to the tool-native --audio-quality
// code (0 = best, 7 = low)
func qualityCode(q entities.AudioQuality) string {
	switch q {
	case entities.QualityBest:
		return "0"
	case entities.QualityHigh:
		return "2"
	case entities.QualityMedium:
		return "5"
	case entities.QualityLow:
		return "7"
	case entities.QualityUltraLow:
		return "7"
	default:
		return "5"
	}
}

// formatSelector maps a quality tier to a -f expression bounding the
// maximum average bitrate for non-best tiers
func formatSelector(q entities.AudioQuality) string {
	switch q {
	case entities.QualityHigh:
		return "bestaudio[abr<=192]/bestaudio/best"
	case entities.QualityMedium:
		return "bestaudio[abr<=128]/bestaudio/best"
	case entities.QualityLow:
		return "bestaudio[abr<=64]/bestaudio/best"
	case entities.QualityUltraLow:
		return "bestaudio[abr<=48]/bestaudio/best"
	default:
		return "bestaudio/best"
	}
}

// commonArgs assembles the option groups shared by every invocation:
// client authentication, proxy routing, and single-resource hygiene.
//
// When a cookie file is configured the invocation also requests a
// browser-like client identity, because cookie auth only works with
// one. Without cookies the TV client is used instead: it needs no
// cookies or PO token and is more robust against upstream access
// changes, at the cost of being unable to reach cookie-gated content.
func (e *Extractor) commonArgs() []string {
	args := []string{
		"--no-playlist",
		"--no-warnings",
		"--no-check-certificate",
	}

	if e.cookieFile != "" {
		args = append(args,
			"--cookies", e.cookieFile,
			"--extractor-args", "youtube:player_client=web_safari",
		)
	} else {
		args = append(args,
			"--extractor-args", "youtube:player_client=tv",
		)
	}

	if e.proxy != "" {
		args = append(args, "--proxy", e.proxy)
	}

	return args
}

// metadataArgs builds the invocation for a structured metadata dump
func (e *Extractor) metadataArgs(url string) []string {
	args := []string{
		"--dump-json",
		"--skip-download",
	}
	args = append(args, e.commonArgs()...)
	return append(args, url)
}

// extractArgs builds the invocation for a streaming audio extraction.
// Output goes to stdout so the payload is never written to disk.
func (e *Extractor) extractArgs(url string, q entities.AudioQuality, c entities.AudioCodec) []string {
	args := []string{
		"--extract-audio",
		"--audio-format", string(c),
		"--audio-quality", qualityCode(q),
		"-f", formatSelector(q),
		"-o", "-",
	}

	if q == entities.QualityUltraLow {
		// mono downmix, speech content does not need stereo
		args = append(args, "--postprocessor-args", "ffmpeg:-ac 1")
	}

	args = append(args, e.commonArgs()...)
	return append(args, url)
}

// formatListArgs builds the invocation for the format listing
func (e *Extractor) formatListArgs(url string) []string {
	args := []string{"-F"}
	args = append(args, e.commonArgs()...)
	return append(args, url)
}
