package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		cfg, err := Load()

		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		// Check server defaults
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.Mode)

		// Check model defaults
		assert.Equal(t, "raj-tomar001/LLM-DetectAIve_deberta-base", cfg.Model.ID)
		assert.Equal(t, "", cfg.Model.Path)
		assert.Equal(t, "https://huggingface.co", cfg.Model.HubURL)
		assert.Equal(t, "./models", cfg.Model.CacheDir)
		assert.Equal(t, 2, cfg.Model.MaxConcurrency)

		// Check log defaults
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("reads from environment variables", func(t *testing.T) {
		os.Setenv("AIDETECT_SERVER_PORT", "9090")
		os.Setenv("AIDETECT_MODEL_PATH", "/opt/models/detector")
		os.Setenv("AIDETECT_MODEL_MAX_CONCURRENCY", "8")
		os.Setenv("AIDETECT_LOG_LEVEL", "debug")
		defer func() {
			os.Unsetenv("AIDETECT_SERVER_PORT")
			os.Unsetenv("AIDETECT_MODEL_PATH")
			os.Unsetenv("AIDETECT_MODEL_MAX_CONCURRENCY")
			os.Unsetenv("AIDETECT_LOG_LEVEL")
		}()

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "/opt/models/detector", cfg.Model.Path)
		assert.Equal(t, 8, cfg.Model.MaxConcurrency)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("clamps non-positive inference concurrency", func(t *testing.T) {
		os.Setenv("AIDETECT_MODEL_MAX_CONCURRENCY", "0")
		defer os.Unsetenv("AIDETECT_MODEL_MAX_CONCURRENCY")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, 1, cfg.Model.MaxConcurrency)
	})
}

func TestLoadDefaultsAreSane(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Greater(t, cfg.Server.Port, 0)
	assert.Greater(t, cfg.Model.MaxConcurrency, 0)
	assert.Greater(t, cfg.Server.ShutdownTimeout.Seconds(), 0.0)
}
