package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `default:"0.0.0.0"`
	Port            int           `default:"8080"`
	Mode            string        `default:"debug"`
	ShutdownTimeout time.Duration `split_words:"true" default:"30s"`
}

// ModelConfig holds the classification model settings.
// Path points at a local model directory (model.onnx + tokenizer files);
// when empty, ID is resolved remotely into CacheDir once at startup.
type ModelConfig struct {
	ID              string `default:"raj-tomar001/LLM-DetectAIve_deberta-base"`
	Path            string `default:""`
	HubURL          string `split_words:"true" default:"https://huggingface.co"`
	CacheDir        string `split_words:"true" default:"./models"`
	OnnxLibraryPath string `split_words:"true" default:""`
	MaxConcurrency  int    `split_words:"true" default:"2"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `default:"info"`
	Format string `default:"json"`
}

// Config is the root configuration for the service
type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Log    LogConfig
}

// Load reads configuration from the environment with the AIDETECT_ prefix.
// A .env file in the working directory is loaded first, best effort.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("aidetect", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.Model.MaxConcurrency < 1 {
		cfg.Model.MaxConcurrency = 1
	}

	return &cfg, nil
}
