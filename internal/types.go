package internal

import "time"

// InvocationRecord is one generation call as kept in the history store.
type InvocationRecord struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	ModelID    string    `json:"model_id"`
	SourceLang string    `json:"source_lang,omitempty"`
	TargetLang string    `json:"target_lang,omitempty"`
	InputText  string    `json:"input_text"`
	Translated string    `json:"translated,omitempty"`
	OutputText string    `json:"output_text"`
	LatencyMs  int64     `json:"latency_ms"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
