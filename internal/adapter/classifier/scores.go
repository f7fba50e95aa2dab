package classifier

import (
	"fmt"
	"math"
	"sort"

	"github.com/aarong11/ai-detect-api/internal/domain/service"
)

func softmax(logits []float32) []float32 {
	if len(logits) == 0 {
		return nil
	}
	maxVal := logits[0]
	for _, v := range logits[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	sum := 0.0
	out := make([]float32, len(logits))
	for i, v := range logits {
		exp := math.Exp(float64(v - maxVal))
		out[i] = float32(exp)
		sum += exp
	}
	if sum == 0 {
		return out
	}
	for i := range out {
		out[i] = float32(float64(out[i]) / sum)
	}
	return out
}

// rank pairs each class probability with its label and orders the result by
// descending score. A class without a configured label gets a LABEL_n name.
func rank(labels []string, probs []float32) service.ClassificationResult {
	result := make(service.ClassificationResult, 0, len(probs))
	for i, p := range probs {
		label := fmt.Sprintf("LABEL_%d", i)
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		result = append(result, service.LabelScore{
			Label: label,
			Score: float64(p),
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})
	return result
}
