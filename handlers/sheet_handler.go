package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/storyflow/director/config"
	"github.com/storyflow/director/director"
	"github.com/storyflow/director/plugin_registry"
	"github.com/storyflow/director/prompts"
	"github.com/storyflow/director/scene"
)

type SheetHandler struct {
	Config   config.Config
	Registry *plugin_registry.PluginRegistry
	Logger   *slog.Logger
}

func NewSheetHandler(cfg config.Config, registry *plugin_registry.PluginRegistry, logger *slog.Logger) *SheetHandler {
	return &SheetHandler{
		Config:   cfg,
		Registry: registry,
		Logger:   logger,
	}
}

// GenerateSheet runs the full script-to-sheet conversion for a single
// request and returns the normalized scenes together with their
// statistics. Generation failures on the backend side never surface as
// HTTP errors: the director degrades to its fallback sheet instead.
func (h *SheetHandler) GenerateSheet(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		Story          string `json:"story"`
		Style          string `json:"style"`
		Provider       string `json:"provider"`
		Model          string `json:"model"`
		TargetDuration int    `json:"target_duration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if requestBody.Story == "" {
		http.Error(w, "Missing required field: story", http.StatusBadRequest)
		return
	}

	d := director.New(h.Config, h.Registry, director.Options{
		Provider:  requestBody.Provider,
		Style:     requestBody.Style,
		ModelName: requestBody.Model,
	}, h.Logger)

	executionID := uuid.New().String()
	h.Logger.Info("Handling sheet generation request",
		slog.String("execution_id", executionID),
		slog.String("provider", d.Provider()),
		slog.String("style", d.Style()))

	scenes := d.ProcessScript(r.Context(), requestBody.Story, requestBody.TargetDuration)

	response := map[string]interface{}{
		"execution_id": executionID,
		"generated_at": time.Now().Format(time.RFC3339),
		"metadata": map[string]interface{}{
			"provider":  d.Provider(),
			"model":     d.ModelName(),
			"style":     d.Style(),
			"mock_mode": d.MockMode(),
		},
		"statistics": scene.CalculateStatistics(scenes),
		"scenes":     scenes,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.Logger.Error("Failed to encode sheet response",
			slog.String("execution_id", executionID),
			slog.String("error", err.Error()))
	}
}

// ListStyles exposes the configured visual style presets.
func (h *SheetHandler) ListStyles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"styles": prompts.Styles()})
}
