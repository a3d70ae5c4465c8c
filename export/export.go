// Package export serializes a production sheet to the three flat-file
// formats: CSV for spreadsheets, JSON for tooling, Markdown for humans.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/storyflow/director/scene"
)

// Preferred column order for well-known fields; anything else a backend
// returned is appended lexicographically.
var orderedFields = []string{
	scene.FieldSceneNumber,
	scene.FieldNarrativeBeat,
	scene.FieldVisualPrompt,
	scene.FieldCameraMovement,
	scene.FieldMoodLighting,
	scene.FieldDurationSeconds,
	scene.FieldTransitionType,
	scene.FieldMotionIntensity,
	scene.FieldKeyElements,
	scene.FieldAudioSuggestion,
}

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (rtp *realTimeProvider) Now() time.Time {
	return time.Now()
}

// Exporter writes one scene sequence plus run metadata to disk. It never
// mutates its inputs.
type Exporter struct {
	scenes   []scene.Scene
	metadata map[string]interface{}
	clock    TimeProvider
}

func NewExporter(scenes []scene.Scene, metadata map[string]interface{}) *Exporter {
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	return &Exporter{
		scenes:   scenes,
		metadata: metadata,
		clock:    &realTimeProvider{},
	}
}

// WithClock substitutes the timestamp source, used by tests.
func (e *Exporter) WithClock(clock TimeProvider) *Exporter {
	e.clock = clock
	return e
}

// ToCSV writes one row per scene. The column set is the union of keys
// across all scenes, so heterogeneous records export without error;
// missing cells render empty and list values are comma-joined.
func (e *Exporter) ToCSV(outputPath string) error {
	if len(e.scenes) == 0 {
		return nil
	}

	present := make(map[string]bool)
	for _, s := range e.scenes {
		for key := range s {
			present[key] = true
		}
	}

	var fieldnames []string
	for _, f := range orderedFields {
		if present[f] {
			fieldnames = append(fieldnames, f)
			delete(present, f)
		}
	}
	var extras []string
	for f := range present {
		extras = append(extras, f)
	}
	sort.Strings(extras)
	fieldnames = append(fieldnames, extras...)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(fieldnames); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, s := range e.scenes {
		row := make([]string, len(fieldnames))
		for i, key := range fieldnames {
			value, ok := s[key]
			if !ok {
				continue
			}
			row[i] = cellValue(value)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func cellValue(value interface{}) string {
	switch v := value.(type) {
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToJSON writes the scenes verbatim under a metadata wrapper. Reloading
// the document yields an equivalent scene sequence.
func (e *Exporter) ToJSON(outputPath string) error {
	metadata := map[string]interface{}{
		"generated_at":           e.clock.Now().Format(time.RFC3339),
		"total_scenes":           len(e.scenes),
		"total_duration_seconds": e.totalDuration(),
	}
	for key, value := range e.metadata {
		metadata[key] = value
	}

	output := map[string]interface{}{
		"metadata": metadata,
		"scenes":   e.scenes,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling sheet: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	return nil
}

// ToMarkdown writes the human-readable production sheet. Sections for
// absent optional fields are simply omitted.
func (e *Exporter) ToMarkdown(outputPath string) error {
	var b strings.Builder

	b.WriteString("# Master Production Sheet\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", e.clock.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Total Scenes:** %d\n", len(e.scenes))

	totalDuration := e.totalDuration()
	fmt.Fprintf(&b, "**Estimated Duration:** %g seconds (%.1f minutes)\n", totalDuration, totalDuration/60)

	if len(e.metadata) > 0 {
		b.WriteString("\n## Generation Settings\n")
		keys := make([]string, 0, len(e.metadata))
		for key := range e.metadata {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&b, "- **%s:** %v\n", titleCase(key), e.metadata[key])
		}
	}

	b.WriteString("\n---\n\n")

	for _, s := range e.scenes {
		fmt.Fprintf(&b, "## Scene %d\n", s.Number())

		if beat := s.NarrativeBeat(); beat != "" {
			fmt.Fprintf(&b, "**Beat:** %s\n\n", beat)
		}

		if prompt := s.VisualPrompt(); prompt != "" {
			b.WriteString("### Visual Prompt\n")
			fmt.Fprintf(&b, "> %s\n\n", prompt)
		}

		b.WriteString("| Aspect | Details |\n")
		b.WriteString("|--------|---------|\n")
		writeAspectRow(&b, s, scene.FieldCameraMovement, "Camera")
		writeAspectRow(&b, s, scene.FieldMoodLighting, "Lighting")
		if _, ok := s[scene.FieldDurationSeconds]; ok {
			fmt.Fprintf(&b, "| Duration | %g seconds |\n", s.Duration())
		}
		writeAspectRow(&b, s, scene.FieldTransitionType, "Transition")
		writeAspectRow(&b, s, scene.FieldMotionIntensity, "Motion")
		writeAspectRow(&b, s, scene.FieldAudioSuggestion, "Audio")
		b.WriteString("\n")

		if elements := s.KeyElements(); len(elements) > 0 {
			b.WriteString("**Key Elements:**\n")
			for _, element := range elements {
				fmt.Fprintf(&b, "- %s\n", element)
			}
			b.WriteString("\n")
		}

		b.WriteString("---\n\n")
	}

	if err := os.WriteFile(outputPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("error writing Markdown file: %w", err)
	}
	return nil
}

// ExportAll writes every format next to each other under a shared base
// path and returns the produced files keyed by format name.
func (e *Exporter) ExportAll(basePath string) (map[string]string, error) {
	files := map[string]string{
		"csv":      basePath + ".csv",
		"json":     basePath + ".json",
		"markdown": basePath + ".md",
	}

	if err := e.ToCSV(files["csv"]); err != nil {
		return nil, err
	}
	if err := e.ToJSON(files["json"]); err != nil {
		return nil, err
	}
	if err := e.ToMarkdown(files["markdown"]); err != nil {
		return nil, err
	}
	return files, nil
}

func (e *Exporter) totalDuration() float64 {
	var total float64
	for _, s := range e.scenes {
		total += s.Duration()
	}
	return total
}

func writeAspectRow(b *strings.Builder, s scene.Scene, key, label string) {
	if value, ok := s[key]; ok {
		fmt.Fprintf(b, "| %s | %v |\n", label, value)
	}
}

// titleCase turns a snake_case metadata key into a display label.
func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
