package catalog

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleLanguages lists the languages supported by Google Cloud Translation.
// It is an alternative language source for deployments without Amazon
// Translate access; generation still goes through Bedrock.
type GoogleLanguages struct {
	credentials string
	display     language.Tag
}

// NewGoogleLanguages creates a lister whose display names are in the display
// language. credentials may be empty to use application default credentials.
func NewGoogleLanguages(credentials string, display language.Tag) *GoogleLanguages {
	if display == language.Und {
		display = language.English
	}
	return &GoogleLanguages{credentials: credentials, display: display}
}

func (s *GoogleLanguages) ListLanguages(ctx context.Context) ([]Entry, error) {
	opts := []option.ClientOption{}
	if s.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(s.credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	langs, err := client.SupportedLanguages(ctx, s.display)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(langs))
	for _, l := range langs {
		entries = append(entries, Entry{Code: l.Tag.String(), Name: l.Name})
	}
	return entries, nil
}
