package llm_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type GeminiService struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewGeminiService(logger *slog.Logger) *GeminiService {
	return &GeminiService{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     logger,
	}
}

func (s *GeminiService) CallLLM(ctx context.Context, config map[string]interface{}, prompt string) (string, error) {
	apiURL, ok := stringValue(config, "api_url")
	if !ok {
		return "", fmt.Errorf("api_url not found in config")
	}

	apiKey, ok := stringValue(config, "api_key")
	if !ok {
		return "", fmt.Errorf("api_key not found in config")
	}

	url := fmt.Sprintf("%s?key=%s", apiURL, apiKey)

	params := parameters(config)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":      safeParseFloat(params["temperature"], 1.0),
			"topK":             safeParseFloat(params["top_k"], 64.0),
			"topP":             safeParseFloat(params["top_p"], 0.95),
			"maxOutputTokens":  safeParseFloat(params["max_tokens"], 8192.0),
			"responseMimeType": "application/json",
		},
	}

	if systemInstruction, ok := stringValue(config, "system_instruction"); ok {
		payload["systemInstruction"] = map[string]interface{}{
			"parts": []map[string]string{
				{"text": systemInstruction},
			},
		}
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error marshaling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Gemini API error",
			slog.Int("status_code", resp.StatusCode),
			slog.String("raw_body", string(body)))
		return "", fmt.Errorf("Gemini API returned HTTP %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("error unmarshaling response: %w", err)
	}

	candidates, ok := result["candidates"].([]interface{})
	if !ok || len(candidates) == 0 {
		return "", fmt.Errorf("unexpected response format from Gemini API")
	}

	content, ok := candidates[0].(map[string]interface{})["content"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("content not found in Gemini API response")
	}

	parts, ok := content["parts"].([]interface{})
	if !ok || len(parts) == 0 {
		return "", fmt.Errorf("parts not found in Gemini API response")
	}

	text, ok := parts[0].(map[string]interface{})["text"].(string)
	if !ok {
		return "", fmt.Errorf("text not found in Gemini API response")
	}

	return text, nil
}
