package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/storyflow/director/scene"
)

func init() {
	os.Setenv("GO_ENVIRONMENT", "test")
}

type fixedClock struct{ t time.Time }

func (f *fixedClock) Now() time.Time { return f.t }

func testClock() TimeProvider {
	return &fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestToCSV_HeterogeneousScenes(t *testing.T) {
	scenes := []scene.Scene{
		{"scene_number": float64(1), "duration_seconds": float64(5)},
		{"scene_number": float64(2), "visual_prompt": "x", "key_elements": []interface{}{"a", "b"}},
	}

	path := filepath.Join(t.TempDir(), "sheet.csv")
	exporter := NewExporter(scenes, nil).WithClock(testClock())
	if err := exporter.ToCSV(path); err != nil {
		t.Fatalf("ToCSV returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Opening CSV: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Parsing CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	want := []string{"scene_number", "visual_prompt", "duration_seconds", "key_elements"}
	if len(header) != len(want) {
		t.Fatalf("Expected columns %v, got %v", want, header)
	}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("Column %d: expected %q, got %q", i, want[i], header[i])
		}
	}

	// Row 1 has no visual_prompt or key_elements; cells must be empty.
	if records[1][1] != "" || records[1][3] != "" {
		t.Errorf("Missing cells should be empty, got row %v", records[1])
	}
	// Row 2's key_elements must be comma-joined.
	if records[2][3] != "a, b" {
		t.Errorf("Expected key_elements cell 'a, b', got %q", records[2][3])
	}
}

func TestToCSV_EmptyScenes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := NewExporter(nil, nil).ToCSV(path); err != nil {
		t.Fatalf("ToCSV on empty scenes returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("No file should be created for an empty sheet")
	}
}

func TestToJSON_RoundTrip(t *testing.T) {
	original, err := scene.Normalize([]interface{}{
		map[string]interface{}{"visual_prompt": "A boy on a rooftop.", "key_elements": []interface{}{"stars"}},
		map[string]interface{}{"visual_prompt": "A light descends.", "duration_seconds": float64(7)},
	})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sheet.json")
	metadata := map[string]interface{}{"style": "cinematic", "provider": "gemini", "model": "test-model"}
	exporter := NewExporter(original, metadata).WithClock(testClock())
	if err := exporter.ToJSON(path); err != nil {
		t.Fatalf("ToJSON returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading JSON: %v", err)
	}

	var decoded struct {
		Metadata map[string]interface{} `json:"metadata"`
		Scenes   []map[string]interface{} `json:"scenes"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Parsing JSON: %v", err)
	}

	if decoded.Metadata["generated_at"] != "2025-06-01T12:00:00Z" {
		t.Errorf("Unexpected generated_at: %v", decoded.Metadata["generated_at"])
	}
	if decoded.Metadata["total_scenes"] != float64(2) {
		t.Errorf("Unexpected total_scenes: %v", decoded.Metadata["total_scenes"])
	}
	if decoded.Metadata["total_duration_seconds"] != float64(12) {
		t.Errorf("Unexpected total_duration_seconds: %v", decoded.Metadata["total_duration_seconds"])
	}
	if decoded.Metadata["style"] != "cinematic" {
		t.Errorf("Caller metadata missing: %v", decoded.Metadata)
	}

	if len(decoded.Scenes) != len(original) {
		t.Fatalf("Expected %d scenes back, got %d", len(original), len(decoded.Scenes))
	}
	for i, want := range original {
		got := decoded.Scenes[i]
		if len(got) != len(want) {
			t.Errorf("Scene %d: key count %d != %d", i, len(got), len(want))
		}
		for key, value := range want {
			switch v := value.(type) {
			case []interface{}:
				gotList, ok := got[key].([]interface{})
				if !ok || len(gotList) != len(v) {
					t.Errorf("Scene %d key %q: %v != %v", i, key, got[key], v)
				}
			default:
				if got[key] != value {
					t.Errorf("Scene %d key %q: %v != %v", i, key, got[key], value)
				}
			}
		}
	}
}

func TestToMarkdown(t *testing.T) {
	scenes, err := scene.Normalize([]interface{}{
		map[string]interface{}{
			"narrative_beat": "Opening",
			"visual_prompt":  "A boy on a rooftop.",
			"key_elements":   []interface{}{"stars", "rooftop"},
		},
		map[string]interface{}{
			"visual_prompt": "A light descends.",
		},
	})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sheet.md")
	metadata := map[string]interface{}{"source_file": "story.txt"}
	exporter := NewExporter(scenes, metadata).WithClock(testClock())
	if err := exporter.ToMarkdown(path); err != nil {
		t.Fatalf("ToMarkdown returned error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading Markdown: %v", err)
	}
	text := string(content)

	for _, want := range []string{
		"# Master Production Sheet",
		"**Total Scenes:** 2",
		"## Generation Settings",
		"- **Source File:** story.txt",
		"## Scene 1",
		"**Beat:** Opening",
		"> A boy on a rooftop.",
		"**Key Elements:**",
		"- stars",
		"## Scene 2",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}

	// Scene 2 has no beat and empty key elements; those sections must be
	// omitted after its header.
	scene2 := text[strings.Index(text, "## Scene 2"):]
	if strings.Contains(scene2, "**Beat:**") {
		t.Error("Scene 2 should have no beat section")
	}
	if strings.Contains(scene2, "**Key Elements:**") {
		t.Error("Scene 2 should have no key elements section")
	}
}

func TestExportAll(t *testing.T) {
	scenes, err := scene.Normalize([]interface{}{
		map[string]interface{}{"visual_prompt": "only scene"},
	})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	base := filepath.Join(t.TempDir(), "production_sheet")
	exporter := NewExporter(scenes, map[string]interface{}{"style": "anime"}).WithClock(testClock())

	files, err := exporter.ExportAll(base)
	if err != nil {
		t.Fatalf("ExportAll returned error: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("Expected 3 files, got %d", len(files))
	}
	for format, path := range files {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Format %s: file %s not written: %v", format, path, err)
		}
	}
	if files["markdown"] != base+".md" {
		t.Errorf("Unexpected markdown path: %s", files["markdown"])
	}
}
