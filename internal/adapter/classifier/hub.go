package classifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// hubClient downloads model artifacts from a Hugging-Face style model hub.
// Resolution happens once at startup; nothing is fetched per request.
type hubClient struct {
	baseURL    string
	httpClient *http.Client
}

func newHubClient(baseURL string, timeout time.Duration) *hubClient {
	return &hubClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Each artifact may live at more than one conventional path in the repo;
// the first candidate that resolves wins.
var modelArtifacts = map[string][]string{
	"config.json":    {"config.json"},
	"tokenizer.json": {"tokenizer.json"},
	"model.onnx":     {"model.onnx", "onnx/model.onnx"},
}

// FetchModel ensures all artifacts for modelID exist under destDir,
// downloading the missing ones. Already-present files are left untouched.
func (c *hubClient) FetchModel(ctx context.Context, modelID, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create model cache dir: %w", err)
	}

	for name, candidates := range modelArtifacts {
		dest := filepath.Join(destDir, name)
		if _, err := os.Stat(dest); err == nil {
			continue
		}
		if err := c.fetchFirst(ctx, modelID, candidates, dest); err != nil {
			return fmt.Errorf("fetch %s for %s: %w", name, modelID, err)
		}
	}
	return nil
}

func (c *hubClient) fetchFirst(ctx context.Context, modelID string, candidates []string, dest string) error {
	var lastErr error
	for _, remote := range candidates {
		url := fmt.Sprintf("%s/%s/resolve/main/%s", c.baseURL, modelID, remote)
		if err := c.fetchFile(ctx, url, dest); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

func (c *hubClient) fetchFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model hub returned status %d for %s", resp.StatusCode, url)
	}

	// Write to a temp file first so a partial download never looks like a
	// complete artifact on the next startup.
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	return os.Rename(tmp.Name(), dest)
}
