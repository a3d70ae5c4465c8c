package video_service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/storyflow/director/config"
	"github.com/storyflow/director/scene"
)

func init() {
	os.Setenv("GO_ENVIRONMENT", "test")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_FactorySelection(t *testing.T) {
	cfg := config.Config{GoogleAPIKey: "g", OpenAIAPIKey: "o"}

	if _, ok := New("openai", cfg, testLogger()).(*SoraGenerator); !ok {
		t.Error("Expected Sora generator for openai tag")
	}
	if _, ok := New("gemini", cfg, testLogger()).(*VeoGenerator); !ok {
		t.Error("Expected Veo generator for gemini tag")
	}
	if _, ok := New("something-else", cfg, testLogger()).(*VeoGenerator); !ok {
		t.Error("Unrecognized tag should default to the Veo generator")
	}
}

func TestVeoGenerator_GenerateSceneVideo(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake mp4 bytes"))

	mux := http.NewServeMux()
	mux.HandleFunc("/models/veo-2.0-generate-001:predictLongRunning", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"name":"operations/op-123"}`)
	})
	mux.HandleFunc("/operations/op-123", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"done":true,"response":{"generateVideoResponse":{"generatedSamples":[{"video":{"bytesBase64Encoded":%q}}]}}}`, payload)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := config.Config{
		GeminiAPIBase: server.URL,
		GoogleAPIKey:  "test-key",
		VideoModel:    "veo-2.0-generate-001",
	}
	gen := NewVeoGenerator(cfg, testLogger())
	gen.pollInterval = time.Millisecond

	outputDir := t.TempDir()
	s := scene.Scene{"scene_number": float64(3), "visual_prompt": "A rooftop at night."}

	path, err := gen.GenerateSceneVideo(context.Background(), s, outputDir)
	if err != nil {
		t.Fatalf("GenerateSceneVideo returned error: %v", err)
	}
	if filepath.Base(path) != "scene_3.mp4" {
		t.Errorf("Unexpected output file name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading output file: %v", err)
	}
	if string(data) != "fake mp4 bytes" {
		t.Errorf("Unexpected file contents: %q", data)
	}
}

func TestVeoGenerator_MissingKey(t *testing.T) {
	gen := NewVeoGenerator(config.Config{VideoModel: "veo-2.0-generate-001"}, testLogger())

	_, err := gen.GenerateSceneVideo(context.Background(), scene.Scene{"visual_prompt": "x"}, t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "GOOGLE_API_KEY") {
		t.Errorf("Expected missing key error, got %v", err)
	}
}

func TestVeoGenerator_BatchSkipsFailures(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("bytes"))
	var submissions int

	mux := http.NewServeMux()
	mux.HandleFunc("/models/veo-2.0-generate-001:predictLongRunning", func(w http.ResponseWriter, r *http.Request) {
		submissions++
		if submissions == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"error":"backend exploded"}`)
			return
		}
		fmt.Fprintf(w, `{"name":"operations/op-%d"}`, submissions)
	})
	mux.HandleFunc("/operations/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"done":true,"response":{"generateVideoResponse":{"generatedSamples":[{"video":{"bytesBase64Encoded":%q}}]}}}`, payload)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := config.Config{
		GeminiAPIBase: server.URL,
		GoogleAPIKey:  "test-key",
		VideoModel:    "veo-2.0-generate-001",
	}
	gen := NewVeoGenerator(cfg, testLogger())
	gen.pollInterval = time.Millisecond

	scenes := []scene.Scene{
		{"scene_number": float64(1), "visual_prompt": "a"},
		{"scene_number": float64(2), "visual_prompt": "b"},
		{"scene_number": float64(3), "visual_prompt": "c"},
	}

	produced := gen.GenerateBatch(context.Background(), scenes, t.TempDir(), 2)
	if len(produced) != 2 {
		t.Fatalf("Expected 2 videos despite one failure, got %d: %v", len(produced), produced)
	}
	if submissions != 3 {
		t.Errorf("Batch should process every scene, got %d submissions", submissions)
	}
}

func TestSoraGenerator_Placeholder(t *testing.T) {
	gen := NewSoraGenerator(config.Config{OpenAIAPIKey: "key"}, testLogger())

	_, err := gen.GenerateSceneVideo(context.Background(), scene.Scene{"scene_number": float64(1)}, t.TempDir())
	if err == nil {
		t.Error("Sora placeholder should report unavailability")
	}

	produced := gen.GenerateBatch(context.Background(), []scene.Scene{{"scene_number": float64(1)}}, t.TempDir(), 1)
	if len(produced) != 0 {
		t.Errorf("Sora batch should produce nothing, got %v", produced)
	}
}
