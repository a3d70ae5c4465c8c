package video_service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/storyflow/director/config"
	"github.com/storyflow/director/scene"
)

// SoraGenerator is a structural placeholder for OpenAI video generation.
// There is no broadly available Sora API yet, so every scene reports
// unavailability; the batch loop treats that like any other per-scene
// failure and keeps going.
type SoraGenerator struct {
	apiKey string
	logger *slog.Logger
}

func NewSoraGenerator(cfg config.Config, logger *slog.Logger) *SoraGenerator {
	if cfg.OpenAIAPIKey == "" {
		logger.Warn("Sora generator configured without OPENAI_API_KEY")
	}
	return &SoraGenerator{
		apiKey: cfg.OpenAIAPIKey,
		logger: logger,
	}
}

func (g *SoraGenerator) GenerateSceneVideo(ctx context.Context, s scene.Scene, outputDir string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("no OPENAI_API_KEY configured for video generation")
	}
	return "", fmt.Errorf("Sora video generation is not yet available for scene %d", s.Number())
}

func (g *SoraGenerator) GenerateBatch(ctx context.Context, scenes []scene.Scene, outputDir string, parallelCount int) []string {
	g.logger.Info("Starting Sora batch generation", slog.Int("scenes", len(scenes)))

	var produced []string
	for _, s := range scenes {
		path, err := g.GenerateSceneVideo(ctx, s, outputDir)
		if err != nil {
			g.logger.Warn("Skipping scene",
				slog.Int("scene_number", s.Number()),
				slog.String("error", err.Error()))
			continue
		}
		produced = append(produced, path)
	}
	return produced
}
