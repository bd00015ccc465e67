package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCreateApp(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token-123")

	// Validate fx dependency graph
	require.NoError(t, fx.ValidateApp(CreateApp()))
}
