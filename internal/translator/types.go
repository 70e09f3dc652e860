package translator

import (
	"context"
	"time"

	"github.com/valpere/bedrocktran/internal/prompt"
)

// Result describes one completed invocation of the generation endpoint.
type Result struct {
	Kind    prompt.Kind   `json:"kind"`
	ModelID string        `json:"model_id"`
	Fields  prompt.Fields `json:"fields"`
	Text    string        `json:"text"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

// Recorder observes every invocation after it finishes, successful or not.
// Errors returned by a Recorder never affect the invocation result.
type Recorder interface {
	Record(ctx context.Context, res *Result) error
}

// Invoker is the contract shared by the three prompt-invocation operations.
type Invoker interface {
	Invoke(ctx context.Context, kind prompt.Kind, fields prompt.Fields, modelID string) (*Result, error)
	Translate(ctx context.Context, text, sourceLang, targetLang, modelID string) (string, error)
	Respond(ctx context.Context, text, targetLang, modelID string) (string, error)
	Analyze(ctx context.Context, original, translated, modelID string) (string, error)
}
