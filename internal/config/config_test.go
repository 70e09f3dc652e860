package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Region != "us-east-1" {
		t.Errorf("expected default region us-east-1, got %q", cfg.Region)
	}
	if cfg.Timeout != 30000*time.Second {
		t.Errorf("expected default timeout 30000s, got %s", cfg.Timeout)
	}
	if cfg.MaxTokens != 10000 {
		t.Errorf("expected default max_tokens 10000, got %d", cfg.MaxTokens)
	}
	if cfg.LanguageSource != "aws" {
		t.Errorf("expected aws language source, got %q", cfg.LanguageSource)
	}
	if cfg.History {
		t.Error("expected history disabled by default")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "region: eu-central-1\ntimeout: 90s\nmax_tokens: 4096\nmodel: anthropic.claude-3-haiku-20240307-v1:0\nhistory: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	v, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Region != "eu-central-1" {
		t.Errorf("expected eu-central-1, got %q", cfg.Region)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("expected 90s timeout, got %s", cfg.Timeout)
	}
	if cfg.MaxTokens != 4096 {
		t.Errorf("expected 4096 max tokens, got %d", cfg.MaxTokens)
	}
	if cfg.Model != "anthropic.claude-3-haiku-20240307-v1:0" {
		t.Errorf("unexpected model %q", cfg.Model)
	}
	if !cfg.History {
		t.Error("expected history enabled")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BEDROCKTRAN_REGION", "ap-southeast-1")
	t.Setenv("BEDROCKTRAN_LANGUAGE_SOURCE", "google")

	v, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "ap-southeast-1" {
		t.Errorf("expected region from env, got %q", cfg.Region)
	}
	if cfg.LanguageSource != "google" {
		t.Errorf("expected google language source, got %q", cfg.LanguageSource)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Region: "us-east-1", Timeout: time.Second, MaxTokens: 1, LanguageSource: "aws"}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"no region", func(c *Config) { c.Region = "" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"negative max tokens", func(c *Config) { c.MaxTokens = -1 }, true},
		{"bad language source", func(c *Config) { c.LanguageSource = "deepl" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
