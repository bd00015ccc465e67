// Package quality auto-adjusts the requested audio quality for very
// long recordings. High bitrate buys nothing for multi-hour speech
// content and makes files impractically large to deliver.
package quality

import (
	"fmt"

	"github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"
)

// Result is the outcome of a quality optimization pass
type Result struct {
	Quality  entities.AudioQuality
	Adjusted bool
	Reason   string
}

// Optimize maps a requested quality tier and a duration to an
// effective tier. Thresholds are evaluated in order, first match wins,
// and only ever downgrade. The 12-hour ceiling is enforced by the
// caller, not here.
func Optimize(requested entities.AudioQuality, durationSeconds int) Result {
	hours := float64(durationSeconds) / 3600

	// 6+ hours: ultra-low, 48kbps mono is fine for very long audiobooks
	if hours >= 6 {
		if requested != entities.QualityUltraLow {
			return Result{
				Quality:  entities.QualityUltraLow,
				Adjusted: true,
				Reason:   fmt.Sprintf("Auto-adjusted to Ultra-Low quality for %.1fh duration (48kbps mono is optimal for very long audiobooks)", hours),
			}
		}
	}

	// 3-6 hours: low, 64kbps is fine for voice
	if hours >= 3 && hours < 6 {
		if requested == entities.QualityBest || requested == entities.QualityHigh || requested == entities.QualityMedium {
			return Result{
				Quality:  entities.QualityLow,
				Adjusted: true,
				Reason:   fmt.Sprintf("Auto-adjusted to Low quality for %.1fh duration (64kbps is optimal for long audiobooks/podcasts)", hours),
			}
		}
	}

	// 1.5-3 hours: medium
	if hours >= 1.5 && hours < 3 {
		if requested == entities.QualityBest || requested == entities.QualityHigh {
			return Result{
				Quality:  entities.QualityMedium,
				Adjusted: true,
				Reason:   fmt.Sprintf("Auto-adjusted to Medium quality for %.1fh duration (good balance of quality/size)", hours),
			}
		}
	}

	return Result{Quality: requested, Adjusted: false}
}
