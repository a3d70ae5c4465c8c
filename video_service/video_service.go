// Package video_service turns finished production sheets into actual video
// files by calling an external video-synthesis backend once per scene.
package video_service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storyflow/director/config"
	"github.com/storyflow/director/scene"
)

// VideoGenerator is implemented by every video-synthesis backend.
type VideoGenerator interface {
	// GenerateSceneVideo renders one scene and returns the written file path.
	GenerateSceneVideo(ctx context.Context, s scene.Scene, outputDir string) (string, error)
	// GenerateBatch renders a whole sheet. Scene failures are skipped, not
	// fatal; the returned slice holds the paths that were produced.
	GenerateBatch(ctx context.Context, scenes []scene.Scene, outputDir string, parallelCount int) []string
}

// New selects a backend by provider tag, defaulting to Veo for
// unrecognized tags.
func New(provider string, cfg config.Config, logger *slog.Logger) VideoGenerator {
	switch strings.ToLower(provider) {
	case "openai":
		return NewSoraGenerator(cfg, logger)
	default:
		return NewVeoGenerator(cfg, logger)
	}
}
