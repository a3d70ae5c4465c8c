package llm_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"
)

type OpenAIService struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewOpenAIService(logger *slog.Logger) *OpenAIService {
	return &OpenAIService{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     logger,
	}
}

// CallLLM performs a single chat-completion request. Failures are reported
// to the caller; the director decides whether to degrade to fallback
// output, so there is no retry loop here.
func (s *OpenAIService) CallLLM(ctx context.Context, config map[string]interface{}, prompt string) (string, error) {
	apiURL, ok := stringValue(config, "api_url")
	if !ok {
		return "", fmt.Errorf("api_url not found in config")
	}

	apiKey, ok := stringValue(config, "api_key")
	if !ok {
		return "", fmt.Errorf("api_key not found in config")
	}

	modelName, ok := stringValue(config, "model_name")
	if !ok {
		return "", fmt.Errorf("model_name not found in config")
	}

	systemInstruction, ok := stringValue(config, "system_instruction")
	if !ok {
		systemInstruction = "You are a helpful assistant."
	}

	params := parameters(config)

	messages := []map[string]string{
		{"role": "system", "content": systemInstruction},
		{"role": "user", "content": prompt},
	}

	requestBody, err := json.Marshal(map[string]interface{}{
		"model":           modelName,
		"messages":        messages,
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     safeParseFloat(params["temperature"], 0.7),
		"max_tokens":      int(safeParseFloat(params["max_tokens"], 4000)),
	})
	if err != nil {
		return "", fmt.Errorf("error marshaling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		httpErr := newChatHTTPError(resp)
		s.logger.Error("OpenAI API error",
			slog.Int("status_code", httpErr.StatusCode),
			slog.String("error_type", httpErr.ErrorType),
			slog.String("error_message", httpErr.Message),
			slog.String("model", modelName))
		return "", httpErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	return extractChatContent(body, "OpenAI")
}

// extractChatContent pulls choices[0].message.content out of an
// OpenAI-compatible response body.
func extractChatContent(body []byte, apiName string) (string, error) {
	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("error unmarshaling response: %w", err)
	}

	choices, ok := result["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", fmt.Errorf("unexpected response format from %s API", apiName)
	}

	firstChoice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected choice format in %s API response", apiName)
	}

	message, ok := firstChoice["message"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("message not found in %s API response", apiName)
	}

	content, ok := message["content"].(string)
	if !ok {
		return "", fmt.Errorf("content not found in %s API response", apiName)
	}

	return content, nil
}
