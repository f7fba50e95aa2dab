package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoftmax(t *testing.T) {
	t.Run("produces a probability distribution", func(t *testing.T) {
		probs := softmax([]float32{2.0, 1.0, 0.1})

		assert.Len(t, probs, 3)
		sum := float32(0)
		for _, p := range probs {
			assert.GreaterOrEqual(t, p, float32(0))
			assert.LessOrEqual(t, p, float32(1))
			sum += p
		}
		assert.InDelta(t, 1.0, float64(sum), 1e-5)
	})

	t.Run("preserves ordering of logits", func(t *testing.T) {
		probs := softmax([]float32{-1.0, 3.0, 0.5})

		assert.Greater(t, probs[1], probs[2])
		assert.Greater(t, probs[2], probs[0])
	})

	t.Run("is stable for large logits", func(t *testing.T) {
		probs := softmax([]float32{1000, 999, 998})

		for _, p := range probs {
			assert.False(t, p != p, "probability must not be NaN")
		}
		assert.Greater(t, probs[0], probs[1])
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, softmax(nil))
	})
}

func TestRank(t *testing.T) {
	labels := []string{"human-written", "machine-generated", "machine-humanized"}

	t.Run("orders by descending score", func(t *testing.T) {
		result := rank(labels, []float32{0.05, 0.93, 0.02})

		assert.Len(t, result, 3)
		assert.Equal(t, "machine-generated", result[0].Label)
		assert.Equal(t, "human-written", result[1].Label)
		assert.Equal(t, "machine-humanized", result[2].Label)
		assert.InDelta(t, 0.93, result[0].Score, 1e-6)
	})

	t.Run("falls back to positional names for missing labels", func(t *testing.T) {
		result := rank([]string{"human-written"}, []float32{0.1, 0.9})

		assert.Equal(t, "LABEL_1", result[0].Label)
		assert.Equal(t, "human-written", result[1].Label)
	})

	t.Run("is deterministic for equal scores", func(t *testing.T) {
		first := rank(labels, []float32{0.5, 0.5, 0.0})
		second := rank(labels, []float32{0.5, 0.5, 0.0})

		assert.Equal(t, first, second)
	})
}
