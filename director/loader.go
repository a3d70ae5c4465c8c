package director

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"code.sajari.com/docconv/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"

	"github.com/storyflow/director/scene"
)

// LoadSheet reads a pre-existing JSON production sheet, bypassing
// generation entirely. It accepts both a bare list of scene records and a
// {"scenes": [...]} envelope with optional metadata.model; anything else
// is a fatal input error for the run.
func LoadSheet(path string) ([]scene.Scene, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("error reading sheet file: %w", err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, "", fmt.Errorf("error parsing sheet file: %w", err)
	}

	modelName := "manual-list"
	if envelope, ok := raw.(map[string]interface{}); ok {
		modelName = "manual-load"
		if metadata, ok := envelope["metadata"].(map[string]interface{}); ok {
			if m, ok := metadata["model"].(string); ok && m != "" {
				modelName = m
			}
		}
	}

	scenes, err := scene.Normalize(raw)
	if err != nil {
		return nil, "", fmt.Errorf("invalid sheet file %s: %w", path, err)
	}

	return scenes, modelName, nil
}

// ReadStory loads story text from a file, extracting plain text from PDF,
// Word and HTML documents. Unknown extensions are treated as UTF-8 text.
func ReadStory(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading story file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromWord(data)
	case ".html", ".htm":
		return extractTextFromHTML(data)
	default:
		return string(data), nil
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to create PDF reader: %w", err)
	}

	var fullText strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", pageIndex, err)
		}
		fullText.WriteString(text)
	}

	if fullText.Len() == 0 {
		return "", fmt.Errorf("no text content extracted from PDF")
	}
	return fullText.String(), nil
}

func extractTextFromWord(data []byte) (string, error) {
	mimeType := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	result, err := docconv.Convert(bytes.NewReader(data), mimeType, false)
	if err != nil {
		return "", fmt.Errorf("failed to convert Word document: %w", err)
	}
	if len(result.Body) == 0 {
		return "", fmt.Errorf("no text content extracted from Word document")
	}
	return result.Body, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func extractTextFromHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Prefer the main content areas before falling back to the whole body.
	var content string
	doc.Find("article, .content, #content, main, .post, .entry-content, .post-content").Each(func(i int, s *goquery.Selection) {
		content += s.Text() + "\n"
	})
	if content == "" {
		content = doc.Find("body").Text()
	}

	content = strings.TrimSpace(whitespaceRun.ReplaceAllString(content, " "))
	if content == "" {
		return "", fmt.Errorf("no text content extracted from HTML")
	}
	return content, nil
}
