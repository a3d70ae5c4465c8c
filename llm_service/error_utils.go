package llm_service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ChatAPIError represents the error structure returned by the
// OpenAI-compatible chat completion APIs (OpenAI and Groq share it).
type ChatAPIError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

type ChatHTTPError struct {
	StatusCode int
	Message    string
	ErrorType  string
	RawBody    string
}

func (e *ChatHTTPError) Error() string {
	return fmt.Sprintf("chat API error (HTTP %d): %s (Type: %s)", e.StatusCode, e.Message, e.ErrorType)
}

// extractChatErrorDetails extracts error information from an
// OpenAI-compatible API response body.
func extractChatErrorDetails(resp *http.Response) (string, *ChatAPIError) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil
	}

	var apiErr ChatAPIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return string(body), &apiErr
	}

	return string(body), nil
}

func newChatHTTPError(resp *http.Response) *ChatHTTPError {
	rawBody, apiErr := extractChatErrorDetails(resp)
	httpErr := &ChatHTTPError{
		StatusCode: resp.StatusCode,
		RawBody:    rawBody,
	}
	if apiErr != nil {
		httpErr.Message = apiErr.Error.Message
		httpErr.ErrorType = apiErr.Error.Type
	} else {
		httpErr.Message = "Unknown error"
		httpErr.ErrorType = "unknown"
	}
	return httpErr
}
