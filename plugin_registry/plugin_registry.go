package plugin_registry

import (
	"github.com/storyflow/director/llm_service"
	"github.com/storyflow/director/video_service"
)

// PluginRegistry holds the configured backends keyed by provider tag so
// that business logic never branches on concrete service types.
type PluginRegistry struct {
	llmServices     map[string]llm_service.LLMService
	videoGenerators map[string]video_service.VideoGenerator
}

func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{
		llmServices:     make(map[string]llm_service.LLMService),
		videoGenerators: make(map[string]video_service.VideoGenerator),
	}
}

// RegisterLLMService registers an LLM backend under a provider tag.
func (pr *PluginRegistry) RegisterLLMService(name string, service llm_service.LLMService) {
	pr.llmServices[name] = service
}

// GetLLMService returns an LLM backend by provider tag.
func (pr *PluginRegistry) GetLLMService(name string) (llm_service.LLMService, bool) {
	service, ok := pr.llmServices[name]
	return service, ok
}

// RegisterVideoGenerator registers a video backend under a provider tag.
func (pr *PluginRegistry) RegisterVideoGenerator(name string, generator video_service.VideoGenerator) {
	pr.videoGenerators[name] = generator
}

// GetVideoGenerator returns a video backend by provider tag.
func (pr *PluginRegistry) GetVideoGenerator(name string) (video_service.VideoGenerator, bool) {
	generator, ok := pr.videoGenerators[name]
	return generator, ok
}
