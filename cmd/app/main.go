package main

import (
	"go.uber.org/fx"

	"github.com/yourusername/audio-drop-bot/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
