package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/aarong11/ai-detect-api/internal/domain/service"
	"github.com/aarong11/ai-detect-api/internal/infrastructure/metrics"
)

// Error definitions for the predict usecase
var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInferenceFailed = errors.New("inference failed")
)

// PredictInput represents the input for a classification request. Text is a
// pointer so that a present-but-empty string passes validation while a
// missing field does not.
type PredictInput struct {
	Text *string `json:"text" binding:"required"`
}

// PredictUsecase defines the interface for the classification flow
type PredictUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (service.ClassificationResult, error)
}

type predictUsecase struct {
	classifier service.Classifier
	log        *zap.Logger
}

// NewPredictUsecase creates a new predict usecase
func NewPredictUsecase(classifier service.Classifier, log *zap.Logger) PredictUsecase {
	return &predictUsecase{
		classifier: classifier,
		log:        log,
	}
}

func (u *predictUsecase) Predict(ctx context.Context, input *PredictInput) (service.ClassificationResult, error) {
	if input == nil || input.Text == nil {
		return nil, ErrInvalidRequest
	}

	start := time.Now()
	result, err := u.classifier.Classify(ctx, *input.Text)
	if err != nil {
		metrics.InferenceErrors.Inc()
		u.log.Error("Classification failed",
			zap.Int("text_len", len(*input.Text)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInferenceFailed, err)
	}
	metrics.InferenceDuration.Observe(time.Since(start).Seconds())

	// The classifier already ranks its output; re-sorting keeps the response
	// contract independent of the classifier implementation.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	return result, nil
}
