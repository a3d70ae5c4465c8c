package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment     string
	HTTPPort        string
	HTTPSPort       string
	Domains         []string
	CertCacheDir    string
	LogDir          string
	DefaultProvider string
	GoogleAPIKey    string
	OpenAIAPIKey    string
	GroqAPIKey      string
	GeminiAPIBase   string
	OpenAIAPIURL    string
	GroqAPIURL      string
	VideoOutputDir  string
	VideoModel      string
}

var isTest bool

func init() {
	isTest = os.Getenv("GO_ENVIRONMENT") == "test"
	if !isTest {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Error loading .env file:", err)
		}
	}
}

func Load() Config {
	return Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		HTTPPort:        getEnv("HTTP_PORT", "8097"),
		HTTPSPort:       getEnv("HTTPS_PORT", "443"),
		Domains:         strings.Split(getEnv("DOMAIN", "example.com"), ","),
		CertCacheDir:    getEnv("CERT_CACHE_DIR", "/etc/letsencrypt/live/example.com"),
		LogDir:          getEnv("LOG_DIR", "logs"),
		DefaultProvider: getEnv("DEFAULT_PROVIDER", "gemini"),
		GoogleAPIKey:    getEnv("GOOGLE_API_KEY", getEnv("GEMINI_API_KEY", "")),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		GroqAPIKey:      getEnv("GROQ_API_KEY", ""),
		GeminiAPIBase:   getEnv("GEMINI_API_BASE", "https://generativelanguage.googleapis.com/v1beta"),
		OpenAIAPIURL:    getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		GroqAPIURL:      getEnv("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions"),
		VideoOutputDir:  getEnv("VIDEO_OUTPUT_DIR", "generated_videos"),
		VideoModel:      getEnv("VIDEO_MODEL", "veo-2.0-generate-001"),
	}
}

// APIKey returns the credential configured for the given provider tag.
func (c Config) APIKey(provider string) string {
	switch strings.ToLower(provider) {
	case "openai":
		return c.OpenAIAPIKey
	case "groq":
		return c.GroqAPIKey
	default:
		return c.GoogleAPIKey
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
