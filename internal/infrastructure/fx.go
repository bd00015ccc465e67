// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/yourusername/audio-drop-bot/internal/infrastructure/health"
	"github.com/yourusername/audio-drop-bot/internal/infrastructure/logger"
	"github.com/yourusername/audio-drop-bot/internal/infrastructure/telegram"
	"github.com/yourusername/audio-drop-bot/internal/infrastructure/ytdlp"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	telegram.Module,
	ytdlp.Module,
	health.Module,
)
