// Package classifier implements the classifier host: it owns the loaded
// model and tokenizer artifacts and exposes the classify operation on them.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/daulet/tokenizers"
	ort "github.com/yalue/onnxruntime_go"
	"go.uber.org/zap"

	"github.com/aarong11/ai-detect-api/internal/domain/service"
	"github.com/aarong11/ai-detect-api/internal/infrastructure/config"
)

const fetchTimeout = 15 * time.Minute

// Host owns one immutable (tokenizer, model) pair for the process lifetime.
// Inference runs through a fixed pool of single-owner ONNX sessions, so
// concurrent Classify calls never share mutable state.
type Host struct {
	tokenizer *tokenizers.Tokenizer
	labels    []string
	seqLen    int
	sessions  chan *ortSession
	log       *zap.Logger
}

// New loads the model and tokenizer once. Any failure here is fatal for the
// process: the caller must not start accepting traffic.
func New(cfg *config.ModelConfig, log *zap.Logger) (*Host, error) {
	dir, err := resolveModelDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve model: %w", err)
	}

	meta, err := loadModelMeta(dir)
	if err != nil {
		return nil, err
	}

	tokenizer, err := tokenizers.FromFile(filepath.Join(dir, "tokenizer.json"))
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}

	if cfg.OnnxLibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.OnnxLibraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			tokenizer.Close()
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}
	}

	modelPath := filepath.Join(dir, "model.onnx")
	outputName, err := selectOutputName(modelPath)
	if err != nil {
		tokenizer.Close()
		return nil, fmt.Errorf("inspect model outputs: %w", err)
	}

	poolSize := cfg.MaxConcurrency
	if poolSize < 1 {
		poolSize = 1
	}
	sessions := make(chan *ortSession, poolSize)
	for i := 0; i < poolSize; i++ {
		ss, err := newORTSession(modelPath, meta.MaxSeqLen, len(meta.Labels), meta.RequiresTokenType, outputName)
		if err != nil {
			tokenizer.Close()
			drainAndDestroy(sessions)
			return nil, fmt.Errorf("create onnx session %d/%d: %w", i+1, poolSize, err)
		}
		sessions <- ss
	}

	h := &Host{
		tokenizer: tokenizer,
		labels:    meta.Labels,
		seqLen:    meta.MaxSeqLen,
		sessions:  sessions,
		log:       log,
	}

	start := time.Now()
	if _, err := h.Classify(context.Background(), "warmup"); err != nil {
		h.Close()
		return nil, fmt.Errorf("warmup inference: %w", err)
	}
	log.Info("Classifier model loaded",
		zap.String("model_dir", dir),
		zap.Strings("labels", meta.Labels),
		zap.Int("max_seq_len", meta.MaxSeqLen),
		zap.Int("pool_size", poolSize),
		zap.Duration("warmup", time.Since(start)))

	return h, nil
}

// Classify tokenizes text, runs one forward pass and returns the ranked
// label/score pairs. Inputs beyond the model context window are truncated by
// the tokenizer; no chunking is attempted. Waiting for a free session slot
// respects ctx, the forward pass itself does not.
func (h *Host) Classify(ctx context.Context, text string) (service.ClassificationResult, error) {
	var ss *ortSession
	select {
	case ss = <-h.sessions:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { h.sessions <- ss }()

	inputIDs, mask := h.encode(text)
	copy(ss.inputIDs.GetData(), inputIDs)
	copy(ss.attentionMask.GetData(), mask)
	if ss.tokenTypeIDs != nil {
		tokenTypes := ss.tokenTypeIDs.GetData()
		for i := range tokenTypes {
			tokenTypes[i] = 0
		}
	}

	if err := ss.session.Run(); err != nil {
		return nil, fmt.Errorf("model run: %w", err)
	}

	logits := ss.output.GetData()
	if len(logits) == 0 {
		return nil, errors.New("model produced no logits")
	}

	return rank(h.labels, softmax(logits)), nil
}

// encode converts text into fixed-length input id and attention mask buffers.
func (h *Host) encode(text string) ([]int64, []int64) {
	ids, _ := h.tokenizer.Encode(text, true)
	if len(ids) > h.seqLen {
		ids = ids[:h.seqLen]
	}
	inputIDs := make([]int64, h.seqLen)
	mask := make([]int64, h.seqLen)
	for i, id := range ids {
		inputIDs[i] = int64(id)
		mask[i] = 1
	}
	return inputIDs, mask
}

// Ready reports whether the model is loaded. After New succeeds this is
// always true; it exists so the readiness endpoint can gate on it.
func (h *Host) Ready() bool {
	return h != nil && h.tokenizer != nil
}

// Close tears down every session in the pool and releases the tokenizer.
// It must not be called while requests are still in flight.
func (h *Host) Close() error {
	for i := 0; i < cap(h.sessions); i++ {
		ss := <-h.sessions
		ss.destroy()
	}
	return h.tokenizer.Close()
}

func drainAndDestroy(sessions chan *ortSession) {
	for {
		select {
		case ss := <-sessions:
			ss.destroy()
		default:
			return
		}
	}
}

// resolveModelDir returns a directory holding model.onnx, tokenizer.json and
// config.json: either the locally supplied path or the hub cache, populated
// on first start.
func resolveModelDir(cfg *config.ModelConfig) (string, error) {
	if cfg.Path != "" {
		if _, err := os.Stat(filepath.Join(cfg.Path, "config.json")); err != nil {
			return "", fmt.Errorf("local model path %s: %w", cfg.Path, err)
		}
		return cfg.Path, nil
	}

	if cfg.ID == "" {
		return "", errors.New("neither model path nor model id configured")
	}

	dir := filepath.Join(cfg.CacheDir, filepath.FromSlash(cfg.ID))
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	hub := newHubClient(cfg.HubURL, fetchTimeout)
	if err := hub.FetchModel(ctx, cfg.ID, dir); err != nil {
		return "", err
	}
	return dir, nil
}
