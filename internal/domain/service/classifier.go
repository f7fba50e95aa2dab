package service

import "context"

// LabelScore is one (label, confidence) pair produced by the model head.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassificationResult holds the scores for every label the loaded model
// knows, ordered by descending score.
type ClassificationResult []LabelScore

// Classifier defines the interface for text classification
type Classifier interface {
	// Classify runs a single forward pass over text and returns the ranked
	// label/score pairs. The label set is fixed by the loaded model head and
	// is not configurable per call.
	Classify(ctx context.Context, text string) (ClassificationResult, error)
}
