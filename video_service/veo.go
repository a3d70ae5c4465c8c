package video_service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/storyflow/director/config"
	"github.com/storyflow/director/scene"
)

// VeoGenerator drives Google's Veo model through the Gemini API. Video
// generation is a long-running operation: the initial request returns an
// operation name which is polled until the video bytes are ready.
type VeoGenerator struct {
	httpClient   *http.Client
	apiBase      string
	apiKey       string
	model        string
	pollInterval time.Duration
	maxPolls     int
	logger       *slog.Logger
}

func NewVeoGenerator(cfg config.Config, logger *slog.Logger) *VeoGenerator {
	return &VeoGenerator{
		httpClient:   &http.Client{Timeout: 120 * time.Second},
		apiBase:      cfg.GeminiAPIBase,
		apiKey:       cfg.GoogleAPIKey,
		model:        cfg.VideoModel,
		pollInterval: 10 * time.Second,
		maxPolls:     30,
		logger:       logger,
	}
}

func (g *VeoGenerator) GenerateSceneVideo(ctx context.Context, s scene.Scene, outputDir string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("no GOOGLE_API_KEY configured for video generation")
	}

	prompt := s.VisualPrompt()
	if prompt == "" {
		return "", fmt.Errorf("scene %d has no visual_prompt", s.Number())
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	outputPath := filepath.Join(outputDir, fmt.Sprintf("scene_%d.mp4", s.Number()))

	g.logger.Info("Submitting scene to Veo",
		slog.Int("scene_number", s.Number()),
		slog.String("model", g.model))

	operationName, err := g.submit(ctx, prompt)
	if err != nil {
		return "", err
	}

	videoBytes, err := g.awaitOperation(ctx, operationName)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, videoBytes, 0644); err != nil {
		return "", fmt.Errorf("error writing video file: %w", err)
	}

	g.logger.Info("Scene video written",
		slog.Int("scene_number", s.Number()),
		slog.String("path", outputPath))
	return outputPath, nil
}

// GenerateBatch renders scenes strictly one after another. The parallel
// hint is accepted for interface compatibility but not acted on: the
// backend throttles long-running operations per key anyway.
func (g *VeoGenerator) GenerateBatch(ctx context.Context, scenes []scene.Scene, outputDir string, parallelCount int) []string {
	if parallelCount > 1 {
		g.logger.Info("Parallel hint accepted but generation runs sequentially",
			slog.Int("parallel_count", parallelCount))
	}

	var produced []string
	for _, s := range scenes {
		path, err := g.GenerateSceneVideo(ctx, s, outputDir)
		if err != nil {
			g.logger.Warn("Skipping scene after video generation failure",
				slog.Int("scene_number", s.Number()),
				slog.String("error", err.Error()))
			continue
		}
		produced = append(produced, path)
	}
	return produced
}

func (g *VeoGenerator) submit(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:predictLongRunning?key=%s", g.apiBase, g.model, g.apiKey)

	requestBody, err := json.Marshal(map[string]interface{}{
		"instances": []map[string]interface{}{
			{"prompt": prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error marshaling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Veo API returned HTTP %d: %s", resp.StatusCode, body)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("error unmarshaling response: %w", err)
	}

	name, ok := result["name"].(string)
	if !ok || name == "" {
		return "", fmt.Errorf("operation name missing from Veo API response")
	}
	return name, nil
}

func (g *VeoGenerator) awaitOperation(ctx context.Context, operationName string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s?key=%s", g.apiBase, operationName, g.apiKey)

	for poll := 0; poll < g.maxPolls; poll++ {
		result, err := g.fetchOperation(ctx, url)
		if err != nil {
			return nil, err
		}

		if done, _ := result["done"].(bool); done {
			return extractVideoBytes(result)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.pollInterval):
		}
	}

	return nil, fmt.Errorf("video operation %s did not complete in time", operationName)
}

func (g *VeoGenerator) fetchOperation(ctx context.Context, url string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error polling operation: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading operation body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("operation poll returned HTTP %d: %s", resp.StatusCode, body)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling operation: %w", err)
	}
	return result, nil
}

// extractVideoBytes walks the completed operation payload down to the
// first generated sample and decodes its inline video bytes.
func extractVideoBytes(operation map[string]interface{}) ([]byte, error) {
	response, ok := operation["response"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("completed operation has no response")
	}

	generateResponse, ok := response["generateVideoResponse"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("generateVideoResponse missing from operation")
	}

	samples, ok := generateResponse["generatedSamples"].([]interface{})
	if !ok || len(samples) == 0 {
		return nil, fmt.Errorf("operation returned no generated samples")
	}

	sample, ok := samples[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected sample format in operation")
	}

	video, ok := sample["video"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("video missing from generated sample")
	}

	encoded, ok := video["bytesBase64Encoded"].(string)
	if !ok || encoded == "" {
		return nil, fmt.Errorf("video bytes missing from generated sample")
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("error decoding video bytes: %w", err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("video payload is empty")
	}
	return decoded, nil
}
