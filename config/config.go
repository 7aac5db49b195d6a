package config

import "os"

type Config struct {
	ServerPort        string
	UploadDir         string
	TesseractDataPath string
	MaxFileSize       int64
	LLMBaseURL        string
	LLMModel          string
}

func LoadConfig() *Config {
	return &Config{
		ServerPort:        envOrDefault("SERVER_PORT", "8080"),
		UploadDir:         envOrDefault("UPLOAD_DIR", "./data/uploaded_bills"),
		TesseractDataPath: envOrDefault("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
		LLMBaseURL:        envOrDefault("LLM_BASE_URL", "http://localhost:11434"),
		LLMModel:          envOrDefault("LLM_MODEL", "mistral"),
	}
}

// EnsureUploadDir creates the upload directory. Idempotent: an existing
// directory is not an error.
func (c *Config) EnsureUploadDir() error {
	return os.MkdirAll(c.UploadDir, 0o755)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
