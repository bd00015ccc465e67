// Package health exposes a liveness endpoint over HTTP
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ToolHealthChecker reports whether the extraction tool is usable
type ToolHealthChecker interface {
	ToolAvailable() bool
}

// BotHealthChecker reports whether the Telegram update loop is running
type BotHealthChecker interface {
	IsRunning() bool
}

// LoadReporter reports how many extractions are currently in flight
type LoadReporter interface {
	ActiveCount() int
}

// HealthStatus represents the overall health status
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth represents health status of a single component
type ComponentHealth struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the JSON response for health check
type HealthResponse struct {
	Status            HealthStatus      `json:"status"`
	Timestamp         time.Time         `json:"timestamp"`
	UptimeSeconds     int64             `json:"uptime_seconds"`
	ActiveExtractions int               `json:"active_extractions"`
	Components        []ComponentHealth `json:"components"`
}

// Handler handles HTTP health check requests
type Handler struct {
	tool      ToolHealthChecker
	bot       BotHealthChecker
	load      LoadReporter
	startedAt time.Time
	logger    zerolog.Logger
}

// NewHandler creates a new health check handler
func NewHandler(tool ToolHealthChecker, bot BotHealthChecker, load LoadReporter, logger zerolog.Logger) *Handler {
	return &Handler{
		tool:      tool,
		bot:       bot,
		load:      load,
		startedAt: time.Now().UTC(),
		logger:    logger,
	}
}

// ServeHTTP implements http.Handler interface
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	components := h.checkComponents(ctx)
	status := h.determineOverallStatus(components)

	response := HealthResponse{
		Status:            status,
		Timestamp:         time.Now().UTC(),
		UptimeSeconds:     int64(time.Since(h.startedAt).Seconds()),
		ActiveExtractions: h.load.ActiveCount(),
		Components:        components,
	}

	statusCode := http.StatusOK
	if status == HealthStatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	logEvent := h.logger.Debug()
	if status != HealthStatusHealthy {
		logEvent = h.logger.Warn()
	}
	logEvent.
		Str("status", string(status)).
		Int("status_code", statusCode).
		Interface("components", components).
		Msg("Health check completed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode health check response")
	}
}

// checkComponents checks health of all service components
func (h *Handler) checkComponents(ctx context.Context) []ComponentHealth {
	select {
	case <-ctx.Done():
		return []ComponentHealth{{
			Name:    "health_check",
			Healthy: false,
			Message: "Health check timeout",
		}}
	default:
	}

	components := make([]ComponentHealth, 0, 2)

	toolHealthy := h.tool.ToolAvailable()
	toolMsg := ""
	if !toolHealthy {
		toolMsg = "Extraction tool not found in PATH"
	}
	components = append(components, ComponentHealth{
		Name:    "extractor_tool",
		Healthy: toolHealthy,
		Message: toolMsg,
	})

	botHealthy := h.bot.IsRunning()
	botMsg := ""
	if !botHealthy {
		botMsg = "Telegram update loop is not running"
	}
	components = append(components, ComponentHealth{
		Name:    "telegram_bot",
		Healthy: botHealthy,
		Message: botMsg,
	})

	return components
}

// determineOverallStatus determines overall health status based on component health
func (h *Handler) determineOverallStatus(components []ComponentHealth) HealthStatus {
	allHealthy := true
	anyHealthy := false

	for _, component := range components {
		if !component.Healthy {
			allHealthy = false
		} else {
			anyHealthy = true
		}
	}

	if allHealthy {
		return HealthStatusHealthy
	} else if anyHealthy {
		return HealthStatusDegraded
	}

	return HealthStatusUnhealthy
}
