package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"github.com/storyflow/director/config"
	"github.com/storyflow/director/director"
	"github.com/storyflow/director/export"
	"github.com/storyflow/director/llm_service"
	"github.com/storyflow/director/logging"
	"github.com/storyflow/director/plugin_registry"
	"github.com/storyflow/director/prompts"
	"github.com/storyflow/director/scene"
	"github.com/storyflow/director/server"
	"github.com/storyflow/director/video_service"
	"github.com/urfave/negroni"
)

var rootCmd = &cobra.Command{
	Use:   "director",
	Short: "Turn a narrative script into a video production sheet",
	Long: `director analyzes a short story with an LLM backend and produces a
production sheet: an ordered list of scenes with visual prompts, camera
movements, durations and transitions, ready for a video generation model.`,
	SilenceUsage: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a production sheet from a story",
	RunE:  runGenerate,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the sheet generation HTTP service",
	RunE:  runServe,
}

var generateFlags struct {
	input          string
	loadFile       string
	output         string
	style          string
	provider       string
	model          string
	format         string
	targetDuration int
	generateVideos bool
	videoProvider  string
	videoOutputDir string
	parallelVideos int
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.input, "input", "i", "", "story file (txt, md, pdf, docx or html)")
	f.StringVar(&generateFlags.loadFile, "load-file", "", "skip generation and load an existing sheet JSON")
	f.StringVarP(&generateFlags.output, "output", "o", "production_sheet", "output base path (extension added per format)")
	f.StringVarP(&generateFlags.style, "style", "s", prompts.DefaultStyle, "visual style preset: "+strings.Join(prompts.Styles(), ", "))
	f.StringVarP(&generateFlags.provider, "provider", "p", "", "LLM provider: gemini, openai or groq")
	f.StringVarP(&generateFlags.model, "model", "m", "", "model name override for the chosen provider")
	f.StringVarP(&generateFlags.format, "format", "f", "all", "export format: csv, json, markdown or all")
	f.IntVarP(&generateFlags.targetDuration, "target-duration", "d", 0, "target total video duration in seconds (0 leaves pacing to the model)")
	f.BoolVar(&generateFlags.generateVideos, "generate-videos", false, "call the video backend for each scene")
	f.StringVar(&generateFlags.videoProvider, "video-provider", "veo", "video backend: veo or sora")
	f.StringVar(&generateFlags.videoOutputDir, "video-output-dir", "", "directory for generated clips (defaults to VIDEO_OUTPUT_DIR)")
	f.IntVar(&generateFlags.parallelVideos, "parallel-videos", 1, "requested video concurrency (clips are rendered sequentially)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := logging.New(cfg.LogDir)
	registry := buildRegistry(cfg, logger)

	var (
		scenes    []scene.Scene
		modelUsed string
		mockMode  bool
	)

	switch {
	case generateFlags.loadFile != "":
		var err error
		scenes, modelUsed, err = director.LoadSheet(generateFlags.loadFile)
		if err != nil {
			return fmt.Errorf("loading sheet %s: %w", generateFlags.loadFile, err)
		}
		fmt.Printf("Loaded %d scenes from %s\n", len(scenes), generateFlags.loadFile)

	case generateFlags.input != "":
		storyText, err := director.ReadStory(generateFlags.input)
		if err != nil {
			return fmt.Errorf("reading story %s: %w", generateFlags.input, err)
		}

		if generateFlags.style != "" && !prompts.IsKnownStyle(generateFlags.style) {
			fmt.Printf("Unknown style %q, using %s\n", generateFlags.style, prompts.DefaultStyle)
			generateFlags.style = prompts.DefaultStyle
		}

		d := director.New(cfg, registry, director.Options{
			Provider:  generateFlags.provider,
			Style:     generateFlags.style,
			ModelName: generateFlags.model,
		}, logger)
		modelUsed = d.ModelName()
		mockMode = d.MockMode()

		if mockMode {
			fmt.Println("No API credentials found, generating a mock production sheet.")
		}

		scenes = d.ProcessScript(cmd.Context(), storyText, generateFlags.targetDuration)

	default:
		return fmt.Errorf("either --input or --load-file is required")
	}

	if len(scenes) == 0 {
		return fmt.Errorf("no scenes were produced")
	}

	printSceneTable(scenes)
	printStatistics(scene.CalculateStatistics(scenes))

	sourceFile := generateFlags.input
	if generateFlags.loadFile != "" {
		sourceFile = generateFlags.loadFile
	}
	metadata := buildMetadata(sourceFile, modelUsed, generateFlags.style,
		providerLabel(cfg), generateFlags.targetDuration, mockMode)

	if err := exportSheet(scenes, metadata); err != nil {
		return err
	}

	if generateFlags.generateVideos {
		outputDir := generateFlags.videoOutputDir
		if outputDir == "" {
			outputDir = cfg.VideoOutputDir
		}
		generator, ok := registry.GetVideoGenerator(strings.ToLower(generateFlags.videoProvider))
		if !ok {
			generator = video_service.New(generateFlags.videoProvider, cfg, logger)
		}
		fmt.Printf("Rendering %d scene clips to %s...\n", len(scenes), outputDir)
		paths := generator.GenerateBatch(cmd.Context(), scenes, outputDir, generateFlags.parallelVideos)
		fmt.Printf("Rendered %d of %d clips.\n", len(paths), len(scenes))
	}

	return nil
}

// buildMetadata assembles the production metadata attached to every
// export: where the scenes came from, what produced them, and the
// style's production defaults (aspect ratio, quality markers). The
// target duration is recorded only when one was supplied.
func buildMetadata(sourceFile, modelUsed, style, provider string, targetDuration int, mockMode bool) map[string]interface{} {
	metadata := map[string]interface{}{
		"run_id":      uuid.New().String(),
		"model":       modelUsed,
		"style":       style,
		"provider":    provider,
		"source_file": sourceFile,
	}
	if targetDuration > 0 {
		metadata["target_duration"] = targetDuration
	}
	for key, value := range prompts.StyleDefaults(style) {
		metadata[key] = value
	}
	if mockMode {
		metadata["mock_mode"] = true
	}
	return metadata
}

func providerLabel(cfg config.Config) string {
	if generateFlags.provider != "" {
		return strings.ToLower(generateFlags.provider)
	}
	return cfg.DefaultProvider
}

func exportSheet(scenes []scene.Scene, metadata map[string]interface{}) error {
	exporter := export.NewExporter(scenes, metadata)
	base := generateFlags.output

	switch strings.ToLower(generateFlags.format) {
	case "csv":
		path := base + ".csv"
		if err := exporter.ToCSV(path); err != nil {
			return err
		}
		fmt.Printf("Production sheet written to %s\n", path)
	case "json":
		path := base + ".json"
		if err := exporter.ToJSON(path); err != nil {
			return err
		}
		fmt.Printf("Production sheet written to %s\n", path)
	case "markdown", "md":
		path := base + ".md"
		if err := exporter.ToMarkdown(path); err != nil {
			return err
		}
		fmt.Printf("Production sheet written to %s\n", path)
	case "all":
		paths, err := exporter.ExportAll(base)
		if err != nil {
			return err
		}
		for _, path := range []string{paths["csv"], paths["json"], paths["markdown"]} {
			fmt.Printf("Production sheet written to %s\n", path)
		}
	default:
		return fmt.Errorf("unknown format %q (want csv, json, markdown or all)", generateFlags.format)
	}
	return nil
}

func printSceneTable(scenes []scene.Scene) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tDURATION\tTRANSITION\tMOTION\tVISUAL PROMPT")
	for _, s := range scenes {
		fmt.Fprintf(w, "%d\t%gs\t%s\t%s\t%s\n",
			s.Number(), s.Duration(), s.TransitionType(), s.MotionIntensity(), truncate(s.VisualPrompt(), 60))
	}
	w.Flush()
}

func printStatistics(stats *scene.Statistics) {
	if stats == nil {
		return
	}
	fmt.Printf("\nTotal: %d scenes, %.0f seconds (%.1f minutes), average %.1fs per scene\n",
		stats.TotalScenes, stats.TotalDurationSeconds, stats.TotalDurationMinutes, stats.AverageSceneDuration)

	fmt.Print("Motion: ")
	for i, key := range stats.MotionDistribution.Keys() {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("%s x%d", key, stats.MotionDistribution.Count(key))
	}
	fmt.Print("\nTransitions: ")
	for i, key := range stats.TransitionDistribution.Keys() {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("%s x%d", key, stats.TransitionDistribution.Count(key))
	}
	fmt.Println()
}

// truncate shortens s to at most max characters, counting runes so a
// multi-byte character is never cut mid-sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := logging.New(cfg.LogDir)
	registry := buildRegistry(cfg, logger)

	r := server.SetupRoutes(cfg, registry, logger)
	n := setupNegroni(r)

	logger.Info("Starting sheet generation service",
		slog.String("environment", cfg.Environment),
		slog.String("http_port", cfg.HTTPPort))

	if cfg.Environment == "production" {
		server.ServeProduction(n, cfg)
	} else {
		srv := &http.Server{
			Addr:         ":" + cfg.HTTPPort,
			Handler:      n,
			IdleTimeout:  time.Minute,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
		}
		server.ServeDevelopment(srv)
	}
	return nil
}

func setupNegroni(r *mux.Router) *negroni.Negroni {
	n := negroni.New()

	// Add middleware here
	n.Use(negroni.NewRecovery())
	n.Use(negroni.NewLogger())

	n.UseHandler(r)
	return n
}

func buildRegistry(cfg config.Config, logger *slog.Logger) *plugin_registry.PluginRegistry {
	registry := plugin_registry.NewPluginRegistry()

	registry.RegisterLLMService("gemini", llm_service.NewGeminiService(logger))
	registry.RegisterLLMService("openai", llm_service.NewOpenAIService(logger))
	registry.RegisterLLMService("groq", llm_service.NewGroqService(logger))

	registry.RegisterVideoGenerator("veo", video_service.NewVeoGenerator(cfg, logger))
	registry.RegisterVideoGenerator("sora", video_service.NewSoraGenerator(cfg, logger))

	return registry
}
