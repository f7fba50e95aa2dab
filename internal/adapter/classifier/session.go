package classifier

import (
	"fmt"
	"strings"

	ort "github.com/yalue/onnxruntime_go"
)

// ortSession bundles one ONNX runtime session with its pre-allocated input
// and output tensors. A session is owned by at most one request at a time;
// the Host hands sessions out through a channel.
type ortSession struct {
	session       *ort.AdvancedSession
	inputIDs      *ort.Tensor[int64]
	attentionMask *ort.Tensor[int64]
	tokenTypeIDs  *ort.Tensor[int64]
	output        *ort.Tensor[float32]
}

func newORTSession(modelPath string, seqLen, numLabels int, includeTokenType bool, outputName string) (*ortSession, error) {
	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}
	defer opts.Destroy()

	if err := opts.SetGraphOptimizationLevel(ort.GraphOptimizationLevelEnableAll); err != nil {
		return nil, fmt.Errorf("set graph optimization: %w", err)
	}

	inputShape := ort.NewShape(1, int64(seqLen))
	inputIDs, err := ort.NewEmptyTensor[int64](inputShape)
	if err != nil {
		return nil, fmt.Errorf("allocate input_ids tensor: %w", err)
	}
	attnMask, err := ort.NewEmptyTensor[int64](inputShape)
	if err != nil {
		inputIDs.Destroy()
		return nil, fmt.Errorf("allocate attention_mask tensor: %w", err)
	}
	var tokenType *ort.Tensor[int64]
	if includeTokenType {
		tokenType, err = ort.NewEmptyTensor[int64](inputShape)
		if err != nil {
			inputIDs.Destroy()
			attnMask.Destroy()
			return nil, fmt.Errorf("allocate token_type_ids tensor: %w", err)
		}
	}

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(numLabels)))
	if err != nil {
		inputIDs.Destroy()
		attnMask.Destroy()
		if tokenType != nil {
			tokenType.Destroy()
		}
		return nil, fmt.Errorf("allocate output tensor: %w", err)
	}

	inputNames := []string{"input_ids", "attention_mask"}
	inputValues := []ort.Value{inputIDs, attnMask}
	if tokenType != nil {
		inputNames = append(inputNames, "token_type_ids")
		inputValues = append(inputValues, tokenType)
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		inputNames,
		[]string{outputName},
		inputValues,
		[]ort.Value{output},
		opts,
	)
	if err != nil {
		inputIDs.Destroy()
		attnMask.Destroy()
		if tokenType != nil {
			tokenType.Destroy()
		}
		output.Destroy()
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &ortSession{
		session:       session,
		inputIDs:      inputIDs,
		attentionMask: attnMask,
		tokenTypeIDs:  tokenType,
		output:        output,
	}, nil
}

func (s *ortSession) destroy() {
	if s.session != nil {
		s.session.Destroy()
	}
	s.inputIDs.Destroy()
	s.attentionMask.Destroy()
	if s.tokenTypeIDs != nil {
		s.tokenTypeIDs.Destroy()
	}
	s.output.Destroy()
}

// selectOutputName picks the logits output of the model, preferring the
// conventional name when the graph exposes several outputs.
func selectOutputName(modelPath string) (string, error) {
	_, outputs, err := ort.GetInputOutputInfoWithOptions(modelPath, nil)
	if err != nil {
		return "", err
	}
	if len(outputs) == 0 {
		return "", fmt.Errorf("model has no outputs")
	}
	for _, out := range outputs {
		if strings.EqualFold(out.Name, "logits") {
			return out.Name, nil
		}
	}
	if len(outputs) == 1 {
		return outputs[0].Name, nil
	}
	names := make([]string, 0, len(outputs))
	for _, out := range outputs {
		names = append(names, out.Name)
	}
	return "", fmt.Errorf("multiple model outputs without logits: %v", names)
}
