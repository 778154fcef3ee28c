package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
)

// LoadDefaults reads the tool defaults file. A missing file is not an
// error: the adapter falls back to its built-in defaults so the MCP binary
// works from any working directory.
func LoadDefaults() (*Defaults, error) {
	path := os.Getenv("ZE_DEFAULTS_PATH")
	if path == "" {
		path = "configs/defaults.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && os.Getenv("ZE_DEFAULTS_PATH") == "" {
			cfg := builtinDefaults()
			return &cfg, nil
		}
		return nil, err
	}

	cfg := builtinDefaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func builtinDefaults() Defaults {
	return Defaults{
		Search: SearchDefaults{
			Documents: DocumentSearchDefaults{K: 5, IncludeMetadata: true},
			Pages:     PageSearchDefaults{K: 5, IncludeContent: true, LatencyMode: "low"},
			Snippets:  SnippetSearchDefaults{K: 21, Reranker: "zerank-1", PreciseResponses: true},
			Metadata:  MetadataSearchDefaults{K: 5},
		},
		Documents: DocumentDefaults{ListLimit: 100},
		Rerank:    RerankDefaults{Model: "zerank-1-small"},
		Resources: ResourceDefaults{SearchK: 5},
	}
}

func applyDefaults(cfg *Defaults) {
	builtin := builtinDefaults()
	if cfg.Search.Documents.K == 0 {
		cfg.Search.Documents.K = builtin.Search.Documents.K
	}
	if cfg.Search.Pages.K == 0 {
		cfg.Search.Pages.K = builtin.Search.Pages.K
	}
	if cfg.Search.Pages.LatencyMode == "" {
		cfg.Search.Pages.LatencyMode = builtin.Search.Pages.LatencyMode
	}
	if cfg.Search.Snippets.K == 0 {
		cfg.Search.Snippets.K = builtin.Search.Snippets.K
	}
	if cfg.Search.Snippets.Reranker == "" {
		cfg.Search.Snippets.Reranker = builtin.Search.Snippets.Reranker
	}
	if cfg.Search.Metadata.K == 0 {
		cfg.Search.Metadata.K = builtin.Search.Metadata.K
	}
	if cfg.Documents.ListLimit == 0 {
		cfg.Documents.ListLimit = builtin.Documents.ListLimit
	}
	if cfg.Rerank.Model == "" {
		cfg.Rerank.Model = builtin.Rerank.Model
	}
	if cfg.Resources.SearchK == 0 {
		cfg.Resources.SearchK = builtin.Resources.SearchK
	}
}

func (d *Defaults) Validate() error {
	if d.Search.Documents.K > zeroentropy.MaxTopDocumentsK {
		return fmt.Errorf("search.documents.k %d exceeds maximum %d", d.Search.Documents.K, zeroentropy.MaxTopDocumentsK)
	}
	if d.Search.Pages.K > zeroentropy.MaxTopPagesK {
		return fmt.Errorf("search.pages.k %d exceeds maximum %d", d.Search.Pages.K, zeroentropy.MaxTopPagesK)
	}
	if d.Search.Snippets.K > zeroentropy.MaxTopSnippetsK {
		return fmt.Errorf("search.snippets.k %d exceeds maximum %d", d.Search.Snippets.K, zeroentropy.MaxTopSnippetsK)
	}
	if d.Search.Metadata.K > zeroentropy.MaxTopSnippetsK {
		return fmt.Errorf("search.metadata.k %d exceeds maximum %d", d.Search.Metadata.K, zeroentropy.MaxTopSnippetsK)
	}
	if d.Documents.ListLimit > zeroentropy.MaxDocumentList {
		return fmt.Errorf("documents.list_limit %d exceeds maximum %d", d.Documents.ListLimit, zeroentropy.MaxDocumentList)
	}
	switch d.Search.Pages.LatencyMode {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("search.pages.latency_mode %q is not one of low, medium, high", d.Search.Pages.LatencyMode)
	}
	return nil
}
