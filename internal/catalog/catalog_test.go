package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

type fakeLister struct {
	entries []Entry
	err     error
	calls   int
}

func (f *fakeLister) ListLanguages(ctx context.Context) ([]Entry, error) {
	f.calls++
	return f.entries, f.err
}

func (f *fakeLister) ListModels(ctx context.Context) ([]Entry, error) {
	f.calls++
	return f.entries, f.err
}

var testLanguages = []Entry{
	{Code: "en", Name: "English"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "zh-TW", Name: "Chinese (Traditional)"},
}

func TestCatalog_Languages_Memoized(t *testing.T) {
	src := &fakeLister{entries: testLanguages}
	c := New(src, nil)

	const n = 5
	for i := 0; i < n; i++ {
		got, err := c.Languages(context.Background())
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(got, testLanguages) {
			t.Errorf("call %d: got %v, want %v", i, got, testLanguages)
		}
	}

	if src.calls != 1 {
		t.Errorf("expected 1 remote call, got %d", src.calls)
	}
}

func TestCatalog_Models_Memoized(t *testing.T) {
	models := []Entry{{Code: "anthropic.claude-3-haiku-20240307-v1:0", Name: "Claude 3 Haiku"}}
	src := &fakeLister{entries: models}
	c := New(nil, src)

	for i := 0; i < 3; i++ {
		got, err := c.Models(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, models) {
			t.Errorf("got %v, want %v", got, models)
		}
	}
	if src.calls != 1 {
		t.Errorf("expected 1 remote call, got %d", src.calls)
	}
}

func TestCatalog_ListsAreIndependent(t *testing.T) {
	langs := &fakeLister{entries: testLanguages}
	models := &fakeLister{entries: []Entry{{Code: "m", Name: "M"}}}
	c := New(langs, models)

	c.Languages(context.Background())
	c.Models(context.Background())
	c.Languages(context.Background())
	c.Models(context.Background())

	if langs.calls != 1 || models.calls != 1 {
		t.Errorf("expected one call per list, got languages=%d models=%d", langs.calls, models.calls)
	}
}

func TestCatalog_CallerMutationDoesNotLeak(t *testing.T) {
	src := &fakeLister{entries: []Entry{{Code: "en", Name: "English"}}}
	c := New(src, nil)

	first, _ := c.Languages(context.Background())
	first[0].Name = "changed"

	second, _ := c.Languages(context.Background())
	if second[0].Name != "English" {
		t.Errorf("cached value was mutated: %v", second)
	}
}

func TestCatalog_ErrorNotCached(t *testing.T) {
	src := &fakeLister{err: errors.New("AccessDeniedException")}
	c := New(src, nil)

	if _, err := c.Languages(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	src.err = nil
	src.entries = testLanguages
	got, err := c.Languages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if len(got) != len(testLanguages) {
		t.Errorf("expected %d entries, got %d", len(testLanguages), len(got))
	}
	if src.calls != 2 {
		t.Errorf("expected 2 remote calls, got %d", src.calls)
	}
}

func TestCatalog_Reset(t *testing.T) {
	src := &fakeLister{entries: testLanguages}
	c := New(src, src)

	c.Languages(context.Background())
	c.Models(context.Background())
	c.Reset()
	c.Languages(context.Background())
	c.Models(context.Background())

	if src.calls != 4 {
		t.Errorf("expected 4 remote calls after reset, got %d", src.calls)
	}
}

func TestCatalog_NotConfigured(t *testing.T) {
	c := New(nil, nil)

	if _, err := c.Languages(context.Background()); err == nil {
		t.Error("expected error for missing language source")
	}
	if _, err := c.Models(context.Background()); err == nil {
		t.Error("expected error for missing model source")
	}
}

func TestCatalog_LanguageName(t *testing.T) {
	c := New(&fakeLister{entries: testLanguages}, nil)

	tests := []struct {
		code string
		want string
	}{
		{"vi", "Vietnamese"},
		{"VI", "Vietnamese"},
		{"zh-TW", "Chinese (Traditional)"},
		{"zh-tw", "Chinese (Traditional)"},
		{"Vietnamese", "Vietnamese"},
		{"xx-unknown", "xx-unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := c.LanguageName(context.Background(), tt.code)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestCatalog_LanguageName_Error(t *testing.T) {
	c := New(&fakeLister{err: errors.New("down")}, nil)

	got, err := c.LanguageName(context.Background(), "vi")
	if err == nil {
		t.Error("expected error")
	}
	if got != "vi" {
		t.Errorf("expected code returned unchanged, got %q", got)
	}
}

func TestNewGoogleLanguages_DefaultDisplay(t *testing.T) {
	s := NewGoogleLanguages("", language.Und)
	if s.display != language.English {
		t.Errorf("expected English display language, got %v", s.display)
	}
}

func TestListerInterfaces(t *testing.T) {
	var _ LanguageLister = (*AWSLanguages)(nil)
	var _ LanguageLister = (*GoogleLanguages)(nil)
	var _ ModelLister = (*AWSModels)(nil)
}
