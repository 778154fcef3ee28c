package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDefaultsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write defaults file: %v", err)
	}
	return path
}

func TestLoadDefaults_BuiltinFallback(t *testing.T) {
	t.Setenv("ZE_DEFAULTS_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := LoadDefaults()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Search.Documents.K != 5 {
		t.Errorf("expected documents k 5, got %d", cfg.Search.Documents.K)
	}
	if !cfg.Search.Documents.IncludeMetadata {
		t.Error("expected include_metadata default true")
	}
	if cfg.Search.Pages.LatencyMode != "low" {
		t.Errorf("expected latency_mode low, got %q", cfg.Search.Pages.LatencyMode)
	}
	if cfg.Search.Snippets.K != 21 {
		t.Errorf("expected snippets k 21, got %d", cfg.Search.Snippets.K)
	}
	if cfg.Search.Metadata.K != 5 {
		t.Errorf("expected metadata k 5, got %d", cfg.Search.Metadata.K)
	}
	if cfg.Search.Snippets.Reranker != "zerank-1" {
		t.Errorf("expected reranker zerank-1, got %q", cfg.Search.Snippets.Reranker)
	}
	if cfg.Documents.ListLimit != 100 {
		t.Errorf("expected list limit 100, got %d", cfg.Documents.ListLimit)
	}
	if cfg.Rerank.Model != "zerank-1-small" {
		t.Errorf("expected rerank model zerank-1-small, got %q", cfg.Rerank.Model)
	}
}

func TestLoadDefaults_FromFile(t *testing.T) {
	path := writeDefaultsFile(t, `
search:
  documents:
    k: 10
  pages:
    latency_mode: medium
documents:
  list_limit: 50
`)
	t.Setenv("ZE_DEFAULTS_PATH", path)

	cfg, err := LoadDefaults()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Search.Documents.K != 10 {
		t.Errorf("expected documents k 10, got %d", cfg.Search.Documents.K)
	}
	if cfg.Search.Pages.LatencyMode != "medium" {
		t.Errorf("expected latency_mode medium, got %q", cfg.Search.Pages.LatencyMode)
	}
	if cfg.Documents.ListLimit != 50 {
		t.Errorf("expected list limit 50, got %d", cfg.Documents.ListLimit)
	}
	// untouched fields fall back to builtins
	if cfg.Search.Snippets.K != 21 {
		t.Errorf("expected snippets k 21, got %d", cfg.Search.Snippets.K)
	}
	if cfg.Rerank.Model != "zerank-1-small" {
		t.Errorf("expected rerank model zerank-1-small, got %q", cfg.Rerank.Model)
	}
}

func TestLoadDefaults_ExplicitPathMissing(t *testing.T) {
	t.Setenv("ZE_DEFAULTS_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := LoadDefaults(); err == nil {
		t.Fatal("expected error for missing explicit defaults file")
	}
}

func TestLoadDefaults_InvalidYAML(t *testing.T) {
	path := writeDefaultsFile(t, "search: [broken")
	t.Setenv("ZE_DEFAULTS_PATH", path)

	if _, err := LoadDefaults(); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Defaults)
		expectErr string
	}{
		{
			name:   "builtins are valid",
			mutate: func(*Defaults) {},
		},
		{
			name:      "documents k over maximum",
			mutate:    func(d *Defaults) { d.Search.Documents.K = 4096 },
			expectErr: "search.documents.k",
		},
		{
			name:      "pages k over maximum",
			mutate:    func(d *Defaults) { d.Search.Pages.K = 2000 },
			expectErr: "search.pages.k",
		},
		{
			name:      "snippets k over maximum",
			mutate:    func(d *Defaults) { d.Search.Snippets.K = 200 },
			expectErr: "search.snippets.k",
		},
		{
			name:      "metadata k over maximum",
			mutate:    func(d *Defaults) { d.Search.Metadata.K = 200 },
			expectErr: "search.metadata.k",
		},
		{
			name:      "list limit over maximum",
			mutate:    func(d *Defaults) { d.Documents.ListLimit = 2000 },
			expectErr: "documents.list_limit",
		},
		{
			name:      "unknown latency mode",
			mutate:    func(d *Defaults) { d.Search.Pages.LatencyMode = "turbo" },
			expectErr: "latency_mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := builtinDefaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.expectErr) {
				t.Fatalf("expected error containing %q, got %v", tt.expectErr, err)
			}
		})
	}
}
