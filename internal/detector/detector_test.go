package detector

import (
	"testing"
	"time"
)

// Models load lazily and stay cached in the detector; share one across tests.
var shared = New()

func TestNew_Lazy(t *testing.T) {
	start := time.Now()
	d := New()
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("New took %v, expected models to load lazily", elapsed)
	}
	if d.Preloaded() {
		t.Error("expected lazy detector by default")
	}

	code, ok := d.DetectCode("Hello, this is a test in English.")
	if !ok || code != "en" {
		t.Errorf("DetectCode = %q, %v, want en, true", code, ok)
	}
}

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLang string
		wantOK   bool
	}{
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			text:   "  \n\t",
			wantOK: false,
		},
		{
			name:     "english text",
			text:     "Amazon S3 provides scalable object storage with high availability.",
			wantLang: "English",
			wantOK:   true,
		},
		{
			name:     "vietnamese text",
			text:     "Amazon S3 cung cấp lưu trữ đối tượng có khả năng mở rộng với tính sẵn sàng cao.",
			wantLang: "Vietnamese",
			wantOK:   true,
		},
		{
			name:     "german text",
			text:     "Hallo, das ist ein Test auf Deutsch.",
			wantLang: "German",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := shared.Detect(tt.text)
			if ok != tt.wantOK {
				t.Errorf("Detect(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
				return
			}
			if tt.wantOK && lang.String() != tt.wantLang {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, lang, tt.wantLang)
			}
		})
	}
}

func TestDetector_DetectCode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCode string
		wantOK   bool
	}{
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:     "english text",
			text:     "Hello, this is a test in English.",
			wantCode: "en",
			wantOK:   true,
		},
		{
			name:     "french text",
			text:     "Bonjour, ceci est un test en français.",
			wantCode: "fr",
			wantOK:   true,
		},
		{
			name:     "russian text",
			text:     "Это тест на русском языке.",
			wantCode: "ru",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := shared.DetectCode(tt.text)
			if ok != tt.wantOK {
				t.Errorf("DetectCode(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
				return
			}
			if tt.wantOK && code != tt.wantCode {
				t.Errorf("DetectCode(%q) = %q, want %q", tt.text, code, tt.wantCode)
			}
		})
	}
}

func TestDetector_ResolveSource(t *testing.T) {
	text := "Hola, esto es una prueba en español."

	if got := shared.ResolveSource(text, "en"); got != "en" {
		t.Errorf("explicit source should be kept, got %q", got)
	}
	if got := shared.ResolveSource(text, "auto"); got != "es" {
		t.Errorf("expected detected 'es', got %q", got)
	}
	if got := shared.ResolveSource(text, ""); got != "es" {
		t.Errorf("expected detected 'es' for empty source, got %q", got)
	}
	if got := shared.ResolveSource("", "AUTO"); got != Undetected {
		t.Errorf("expected %q for empty text, got %q", Undetected, got)
	}
}
