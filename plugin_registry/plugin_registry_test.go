package plugin_registry

import (
	"os"
	"testing"

	"github.com/storyflow/director/llm_service"
	"github.com/storyflow/director/video_service"
)

func init() {
	os.Setenv("GO_ENVIRONMENT", "test")
}

func TestPluginRegistry_LLMServices(t *testing.T) {
	registry := NewPluginRegistry()

	mock := &llm_service.MockLLMService{}
	registry.RegisterLLMService("gemini", mock)

	got, ok := registry.GetLLMService("gemini")
	if !ok {
		t.Fatal("Registered service not found")
	}
	if got != mock {
		t.Error("Registry returned a different service instance")
	}

	if _, ok := registry.GetLLMService("unknown"); ok {
		t.Error("Unknown tag should not resolve")
	}
}

func TestPluginRegistry_VideoGenerators(t *testing.T) {
	registry := NewPluginRegistry()

	mock := &video_service.MockVideoGenerator{}
	registry.RegisterVideoGenerator("veo", mock)

	got, ok := registry.GetVideoGenerator("veo")
	if !ok {
		t.Fatal("Registered generator not found")
	}
	if got != mock {
		t.Error("Registry returned a different generator instance")
	}

	if _, ok := registry.GetVideoGenerator("sora"); ok {
		t.Error("Unknown tag should not resolve")
	}
}
