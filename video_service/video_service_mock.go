package video_service

import (
	"context"

	"github.com/storyflow/director/scene"
)

type MockVideoGenerator struct {
	GenerateSceneVideoFunc func(ctx context.Context, s scene.Scene, outputDir string) (string, error)
}

func (m *MockVideoGenerator) GenerateSceneVideo(ctx context.Context, s scene.Scene, outputDir string) (string, error) {
	if m.GenerateSceneVideoFunc != nil {
		return m.GenerateSceneVideoFunc(ctx, s, outputDir)
	}
	return "", nil
}

func (m *MockVideoGenerator) GenerateBatch(ctx context.Context, scenes []scene.Scene, outputDir string, parallelCount int) []string {
	var produced []string
	for _, s := range scenes {
		if path, err := m.GenerateSceneVideo(ctx, s, outputDir); err == nil && path != "" {
			produced = append(produced, path)
		}
	}
	return produced
}
