package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const defaultSeqLen = 512

// modelMeta describes the classification head of a loaded model, read from
// the config.json that ships alongside the weights.
type modelMeta struct {
	Labels            []string
	MaxSeqLen         int
	RequiresTokenType bool
}

func loadModelMeta(dir string) (*modelMeta, error) {
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		return nil, fmt.Errorf("read model config: %w", err)
	}

	var cfg struct {
		ID2Label             map[string]string `json:"id2label"`
		TypeVocabSize        int               `json:"type_vocab_size"`
		MaxPositionEmbedding int               `json:"max_position_embeddings"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse model config: %w", err)
	}

	labels, err := labelsFromIDMap(cfg.ID2Label)
	if err != nil {
		return nil, err
	}

	seqLen := cfg.MaxPositionEmbedding
	if seqLen <= 0 || seqLen > defaultSeqLen {
		seqLen = defaultSeqLen
	}

	return &modelMeta{
		Labels:            labels,
		MaxSeqLen:         seqLen,
		RequiresTokenType: cfg.TypeVocabSize > 0,
	}, nil
}

// labelsFromIDMap turns the HF-style {"0": "human-written", ...} map into a
// dense slice indexed by class id.
func labelsFromIDMap(id2label map[string]string) ([]string, error) {
	if len(id2label) == 0 {
		return nil, fmt.Errorf("model config has no id2label head")
	}

	labels := make([]string, len(id2label))
	for k, v := range id2label {
		id, err := strconv.Atoi(k)
		if err != nil || id < 0 || id >= len(labels) {
			return nil, fmt.Errorf("model config has malformed id2label key %q", k)
		}
		labels[id] = v
	}
	return labels, nil
}
