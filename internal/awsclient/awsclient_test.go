package awsclient

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func isolateSharedConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
}

func TestLoadConfig(t *testing.T) {
	isolateSharedConfig(t)

	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := LoadConfig(context.Background(), Options{Region: "us-east-1", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "eu-west-1" {
		t.Errorf("expected SDK default region eu-west-1, got %q", cfg.Region)
	}
	if cfg.Retryer == nil {
		t.Fatal("expected retryer to be set")
	}
	if got := cfg.Retryer().MaxAttempts(); got != 1 {
		t.Errorf("expected a single attempt, got %d", got)
	}
}

func TestLoadConfig_UnknownProfile(t *testing.T) {
	isolateSharedConfig(t)

	if _, err := LoadConfig(context.Background(), Options{Region: "us-east-1", Profile: "does-not-exist"}); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestNew_CatalogRegion(t *testing.T) {
	tests := []struct {
		name          string
		envRegion     string
		catalogRegion string
		wantCatalog   string
	}{
		{
			name:          "explicit catalog region",
			envRegion:     "ap-southeast-1",
			catalogRegion: "us-west-2",
			wantCatalog:   "us-west-2",
		},
		{
			name:        "SDK default region",
			envRegion:   "ap-southeast-1",
			wantCatalog: "ap-southeast-1",
		},
		{
			name:        "no default region falls back to runtime region",
			wantCatalog: "us-east-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateSharedConfig(t)
			t.Setenv("AWS_REGION", tt.envRegion)

			opts := Options{Region: "us-east-1", CatalogRegion: tt.catalogRegion}
			cfg, err := LoadConfig(context.Background(), opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			c := New(cfg, opts)
			if got := c.Runtime.Options().Region; got != "us-east-1" {
				t.Errorf("expected runtime in us-east-1, got %q", got)
			}
			if got := c.Bedrock.Options().Region; got != tt.wantCatalog {
				t.Errorf("expected bedrock in %s, got %q", tt.wantCatalog, got)
			}
			if got := c.Translate.Options().Region; got != tt.wantCatalog {
				t.Errorf("expected translate in %s, got %q", tt.wantCatalog, got)
			}
		})
	}
}
