package translator

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingContent is returned when the response has no content list.
	ErrMissingContent = errors.New("response has no content list")
	// ErrEmptyContent is returned when the content list has no blocks.
	ErrEmptyContent = errors.New("response content list is empty")
	// ErrMissingText is returned when the first content block carries no text.
	ErrMissingText = errors.New("first content block has no text")
)

type invokeResponse struct {
	Content []responseBlock `json:"content"`
}

type responseBlock struct {
	Type string  `json:"type"`
	Text *string `json:"text"`
}

// DecodeResponse extracts the text of the first content block of a
// generation response. Any deviation from that shape is an error.
func DecodeResponse(body []byte) (string, error) {
	var resp invokeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.Content == nil {
		return "", ErrMissingContent
	}
	if len(resp.Content) == 0 {
		return "", ErrEmptyContent
	}
	if resp.Content[0].Text == nil {
		return "", fmt.Errorf("%w (type %q)", ErrMissingText, resp.Content[0].Type)
	}

	return *resp.Content[0].Text, nil
}
