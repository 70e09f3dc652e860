package translator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/valpere/bedrocktran/internal/prompt"
)

// Runtime is the subset of the Bedrock runtime client used for generation.
// *bedrockruntime.Client satisfies it.
type Runtime interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockService submits templated prompts to Anthropic models on Bedrock.
// Each invocation is exactly one InvokeModel call; nothing is retried.
type BedrockService struct {
	runtime   Runtime
	maxTokens int
	recorders []Recorder
}

// NewBedrockService creates a service on top of runtime. maxTokens <= 0
// selects DefaultMaxTokens.
func NewBedrockService(runtime Runtime, maxTokens int) *BedrockService {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &BedrockService{
		runtime:   runtime,
		maxTokens: maxTokens,
	}
}

// AddRecorder registers r to observe every subsequent invocation.
func (s *BedrockService) AddRecorder(r Recorder) {
	if r != nil {
		s.recorders = append(s.recorders, r)
	}
}

// BuildBody renders the prompt for kind and serializes the request envelope.
func (s *BedrockService) BuildBody(kind prompt.Kind, fields prompt.Fields) ([]byte, error) {
	text, err := prompt.Render(kind, fields)
	if err != nil {
		return nil, err
	}
	body, err := NewInvokeRequest(text, s.maxTokens).Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return body, nil
}

// Invoke renders the template for kind, sends it to modelID and returns the
// first content block of the answer. The returned Result is never nil; on
// failure its Error field mirrors the returned error.
func (s *BedrockService) Invoke(ctx context.Context, kind prompt.Kind, fields prompt.Fields, modelID string) (*Result, error) {
	result := &Result{Kind: kind, ModelID: modelID, Fields: fields}
	start := time.Now()
	defer func() {
		result.Latency = time.Since(start)
		for _, r := range s.recorders {
			if err := r.Record(ctx, result); err != nil {
				slog.Warn("failed to record invocation", "kind", kind, "model", modelID, "error", err)
			}
		}
	}()

	body, err := s.BuildBody(kind, fields)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	out, err := s.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		Accept:      aws.String(contentTypeJSON),
		ContentType: aws.String(contentTypeJSON),
	})
	if err != nil {
		err = fmt.Errorf("invoke model %s: %w", modelID, err)
		result.Error = err.Error()
		return result, err
	}

	text, err := DecodeResponse(out.Body)
	if err != nil {
		err = fmt.Errorf("model %s: %w", modelID, err)
		result.Error = err.Error()
		return result, err
	}

	result.Text = text
	return result, nil
}

// Translate translates text from sourceLang to targetLang.
func (s *BedrockService) Translate(ctx context.Context, text, sourceLang, targetLang, modelID string) (string, error) {
	return s.text(s.Invoke(ctx, prompt.KindTranslate, prompt.Fields{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}, modelID))
}

// Respond answers text in targetLang.
func (s *BedrockService) Respond(ctx context.Context, text, targetLang, modelID string) (string, error) {
	return s.text(s.Invoke(ctx, prompt.KindRespond, prompt.Fields{
		Text:       text,
		TargetLang: targetLang,
	}, modelID))
}

// Analyze reviews the quality of translated against original.
func (s *BedrockService) Analyze(ctx context.Context, original, translated, modelID string) (string, error) {
	return s.text(s.Invoke(ctx, prompt.KindAnalyze, prompt.Fields{
		Text:       original,
		Translated: translated,
	}, modelID))
}

func (s *BedrockService) text(res *Result, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return res.Text, nil
}
