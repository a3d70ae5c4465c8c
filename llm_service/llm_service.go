package llm_service

import (
	"context"
	"strconv"
)

// LLMService is the single capability surface shared by all chat-completion
// backends. The config map carries api_url, api_key, model_name, the
// style-derived system_instruction and optional generation parameters.
type LLMService interface {
	CallLLM(ctx context.Context, config map[string]interface{}, prompt string) (string, error)
}

// Helper function to safely parse float values shared by the services.
func safeParseFloat(value interface{}, defaultValue float64) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return defaultValue
}

func stringValue(config map[string]interface{}, key string) (string, bool) {
	v, ok := config[key].(string)
	return v, ok
}

func parameters(config map[string]interface{}) map[string]interface{} {
	params, ok := config["parameters"].(map[string]interface{})
	if !ok {
		return make(map[string]interface{})
	}
	return params
}
