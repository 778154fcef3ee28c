package config

// Defaults holds the canonical default parameters for every tool. The
// remote API documents several generations of defaults; the values shipped
// in configs/defaults.yaml are the authoritative ones for this adapter and
// deployments can pin different ones via ZE_DEFAULTS_PATH.
type Defaults struct {
	Search    SearchDefaults   `yaml:"search"`
	Documents DocumentDefaults `yaml:"documents"`
	Rerank    RerankDefaults   `yaml:"rerank"`
	Resources ResourceDefaults `yaml:"resources"`
}

type SearchDefaults struct {
	Documents DocumentSearchDefaults `yaml:"documents"`
	Pages     PageSearchDefaults     `yaml:"pages"`
	Snippets  SnippetSearchDefaults  `yaml:"snippets"`
	Metadata  MetadataSearchDefaults `yaml:"metadata"`
}

type DocumentSearchDefaults struct {
	K               int  `yaml:"k"`
	IncludeMetadata bool `yaml:"include_metadata"`
}

type PageSearchDefaults struct {
	K              int    `yaml:"k"`
	IncludeContent bool   `yaml:"include_content"`
	LatencyMode    string `yaml:"latency_mode"`
}

type SnippetSearchDefaults struct {
	K                int    `yaml:"k"`
	Reranker         string `yaml:"reranker"`
	PreciseResponses bool   `yaml:"precise_responses"`
}

// MetadataSearchDefaults covers the metadata-filter tools, which run as
// snippet queries and are bounded by the snippet maximum regardless of
// the document search default.
type MetadataSearchDefaults struct {
	K int `yaml:"k"`
}

type DocumentDefaults struct {
	ListLimit int `yaml:"list_limit"`
}

type RerankDefaults struct {
	Model string `yaml:"model"`
}

// ResourceDefaults configures the MCP resources that need a collection to
// operate on when the caller cannot pass one (the search:// resource).
type ResourceDefaults struct {
	SearchCollection string `yaml:"search_collection"`
	SearchK          int    `yaml:"search_k"`
}
