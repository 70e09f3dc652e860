package server

import "github.com/valpere/bedrocktran/internal/catalog"

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	ModelID    string `json:"model_id"`
	Extract    bool   `json:"extract"`
}

type ChatRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
	ModelID    string `json:"model_id"`
	Extract    bool   `json:"extract"`
}

type AnalyzeRequest struct {
	Text       string `json:"text"`
	Translated string `json:"translated"`
	ModelID    string `json:"model_id"`
	Extract    bool   `json:"extract"`
}

type InvokeResponse struct {
	Kind       string `json:"kind"`
	ModelID    string `json:"model_id"`
	SourceLang string `json:"source_lang,omitempty"`
	TargetLang string `json:"target_lang,omitempty"`
	Text       string `json:"text"`
	LatencyMs  int64  `json:"latency_ms"`
}

type EntriesResponse struct {
	Items []catalog.Entry `json:"items"`
	Total int             `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
