// Package catalog exposes the read-only reference lists used to pick
// translation parameters: supported languages and available models.
//
// Each list is fetched from its remote source at most once per Catalog and
// kept for the Catalog's lifetime. Failed fetches are not cached.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/valpere/bedrocktran/internal/metrics"
)

// Entry is a code/display-name pair taken verbatim from a remote catalog.
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LanguageLister fetches the supported language list from a remote service.
type LanguageLister interface {
	ListLanguages(ctx context.Context) ([]Entry, error)
}

// ModelLister fetches the available generation models from a remote service.
type ModelLister interface {
	ListModels(ctx context.Context) ([]Entry, error)
}

// Catalog memoizes the language and model lists.
type Catalog struct {
	languages LanguageLister
	models    ModelLister

	langMemo  memo
	modelMemo memo
}

// New creates a Catalog. Either source may be nil, in which case the
// corresponding accessor returns an error.
func New(languages LanguageLister, models ModelLister) *Catalog {
	return &Catalog{languages: languages, models: models}
}

// Languages returns the supported languages, fetching them on first use.
func (c *Catalog) Languages(ctx context.Context) ([]Entry, error) {
	return c.langMemo.get(ctx, "languages", func(ctx context.Context) ([]Entry, error) {
		if c.languages == nil {
			return nil, fmt.Errorf("language source not configured")
		}
		return c.languages.ListLanguages(ctx)
	})
}

// Models returns the available models, fetching them on first use.
func (c *Catalog) Models(ctx context.Context) ([]Entry, error) {
	return c.modelMemo.get(ctx, "models", func(ctx context.Context) ([]Entry, error) {
		if c.models == nil {
			return nil, fmt.Errorf("model source not configured")
		}
		return c.models.ListModels(ctx)
	})
}

// Reset drops both cached lists so the next access fetches again.
func (c *Catalog) Reset() {
	c.langMemo.reset()
	c.modelMemo.reset()
}

// LanguageName resolves a language code such as "vi" or "zh-TW" to its
// display name. Codes are compared in canonical BCP 47 form; a value that
// already matches a display name is returned as that name. Unknown values
// are returned unchanged.
func (c *Catalog) LanguageName(ctx context.Context, code string) (string, error) {
	langs, err := c.Languages(ctx)
	if err != nil {
		return code, err
	}

	want := strings.TrimSpace(code)
	wantTag, tagErr := language.Parse(want)

	for _, e := range langs {
		if strings.EqualFold(e.Code, want) || strings.EqualFold(e.Name, want) {
			return e.Name, nil
		}
		if tagErr != nil {
			continue
		}
		if tag, err := language.Parse(e.Code); err == nil && tag == wantTag {
			return e.Name, nil
		}
	}
	return code, nil
}

type memo struct {
	mu     sync.Mutex
	loaded bool
	value  []Entry
}

func (m *memo) get(ctx context.Context, list string, load func(context.Context) ([]Entry, error)) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loaded {
		return slices.Clone(m.value), nil
	}

	value, err := load(ctx)
	metrics.CatalogFetchesTotal.WithLabelValues(list, metrics.Status(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", list, err)
	}

	m.value = value
	m.loaded = true
	return slices.Clone(value), nil
}

func (m *memo) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaded = false
	m.value = nil
}
