package translator

import "encoding/json"

const (
	// AnthropicVersion is the protocol version expected by Bedrock for the
	// Anthropic messages API.
	AnthropicVersion = "bedrock-2023-05-31"

	// DefaultMaxTokens bounds the length of every generated answer.
	DefaultMaxTokens = 10000

	contentTypeJSON = "application/json"
)

// Fixed sampling configuration shared by every prompt kind.
const (
	samplingTemperature = 0
	samplingTopK        = 250
	samplingTopP        = 0.5
)

// InvokeRequest is the JSON envelope submitted to InvokeModel.
type InvokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	TopK             int       `json:"top_k"`
	TopP             float64   `json:"top_p"`
	StopSequences    []string  `json:"stop_sequences"`
	Messages         []Message `json:"messages"`
}

// Message is a single chat turn.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock is one typed element of a message or response content list.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewInvokeRequest wraps promptText as a single user turn with the fixed
// sampling configuration. maxTokens <= 0 selects DefaultMaxTokens.
func NewInvokeRequest(promptText string, maxTokens int) InvokeRequest {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return InvokeRequest{
		AnthropicVersion: AnthropicVersion,
		MaxTokens:        maxTokens,
		Temperature:      samplingTemperature,
		TopK:             samplingTopK,
		TopP:             samplingTopP,
		StopSequences:    []string{},
		Messages: []Message{
			{
				Role:    "user",
				Content: []ContentBlock{{Type: "text", Text: promptText}},
			},
		},
	}
}

// Marshal serializes the envelope. StopSequences is always emitted as a list.
func (r InvokeRequest) Marshal() ([]byte, error) {
	if r.StopSequences == nil {
		r.StopSequences = []string{}
	}
	return json.Marshal(r)
}
