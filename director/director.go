// Package director converts a narrative script into a normalized video
// production sheet by driving one of the configured LLM backends.
package director

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/storyflow/director/config"
	"github.com/storyflow/director/llm_service"
	"github.com/storyflow/director/plugin_registry"
	"github.com/storyflow/director/prompts"
	"github.com/storyflow/director/scene"
)

// DefaultModels maps provider tags to the model used when none is given.
var DefaultModels = map[string]string{
	"gemini": "gemini-2.0-flash-exp",
	"openai": "gpt-4-turbo",
	"groq":   "llama-3.3-70b-versatile",
}

type Options struct {
	Provider  string
	Style     string
	ModelName string
}

type Director struct {
	provider  string
	style     string
	modelName string
	service   llm_service.LLMService
	llmConfig map[string]interface{}
	logger    *slog.Logger
}

// New wires a director against the registry. A missing credential or an
// unregistered provider does not fail construction: the director starts
// in mock mode and every request resolves to the fallback sheet.
func New(cfg config.Config, registry *plugin_registry.PluginRegistry, opts Options, logger *slog.Logger) *Director {
	provider := strings.ToLower(opts.Provider)
	if provider == "" {
		provider = cfg.DefaultProvider
	}

	style := opts.Style
	if style == "" {
		style = prompts.DefaultStyle
	}

	modelName := opts.ModelName
	if modelName == "" {
		if m, ok := DefaultModels[provider]; ok {
			modelName = m
		} else {
			modelName = DefaultModels["gemini"]
		}
	}

	d := &Director{
		provider:  provider,
		style:     style,
		modelName: modelName,
		logger:    logger,
	}

	apiKey := cfg.APIKey(provider)
	service, registered := registry.GetLLMService(provider)
	if apiKey == "" || !registered {
		logger.Warn("Provider not available, running in mock mode",
			slog.String("provider", provider),
			slog.Bool("has_credentials", apiKey != ""),
			slog.Bool("registered", registered))
		return d
	}

	d.service = service
	d.llmConfig = map[string]interface{}{
		"api_url":            apiURL(cfg, provider, modelName),
		"api_key":            apiKey,
		"model_name":         modelName,
		"system_instruction": prompts.SystemInstruction(style),
	}

	logger.Info("Director ready",
		slog.String("provider", provider),
		slog.String("model", modelName),
		slog.String("style", style))
	return d
}

func apiURL(cfg config.Config, provider, modelName string) string {
	switch provider {
	case "openai":
		return cfg.OpenAIAPIURL
	case "groq":
		return cfg.GroqAPIURL
	default:
		return cfg.GeminiAPIBase + "/models/" + modelName + ":generateContent"
	}
}

func (d *Director) Provider() string  { return d.provider }
func (d *Director) Style() string     { return d.style }
func (d *Director) ModelName() string { return d.modelName }

// MockMode reports whether the director has no live backend.
func (d *Director) MockMode() bool { return d.service == nil }

// ProcessScript turns story text into a normalized scene sequence. It
// performs at most one backend call and never returns an error: any
// failure along the way degrades to the fixed fallback sheet.
func (d *Director) ProcessScript(ctx context.Context, storyText string, targetDuration int) []scene.Scene {
	if d.service == nil {
		d.logger.Warn("No backend configured, returning fallback scenes")
		return FallbackScenes()
	}

	d.logger.Info("Director analyzing script",
		slog.String("provider", d.provider),
		slog.Int("target_duration", targetDuration))

	prompt := prompts.UserPrompt(storyText, targetDuration)

	response, err := d.service.CallLLM(ctx, d.llmConfig, prompt)
	if err != nil {
		d.logger.Error("Generation failed, falling back to mock output",
			slog.String("provider", d.provider),
			slog.String("error", err.Error()))
		return FallbackScenes()
	}

	var raw interface{}
	if err := json.Unmarshal([]byte(stripFences(response)), &raw); err != nil {
		d.logger.Error("Backend returned malformed JSON, falling back",
			slog.String("error", err.Error()))
		return FallbackScenes()
	}

	scenes, err := scene.Normalize(raw)
	if err != nil {
		d.logger.Error("Backend returned unexpected scene shape, falling back",
			slog.String("error", err.Error()))
		return FallbackScenes()
	}

	d.logger.Info("Generated scenes", slog.Int("count", len(scenes)))
	return scenes
}

// stripFences removes a markdown code fence around a JSON payload. Some
// backends wrap structured responses in ```json fences even when asked
// for a bare JSON document.
func stripFences(response string) string {
	trimmed := strings.TrimSpace(response)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
