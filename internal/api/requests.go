package api

// Request bodies for the REST surface. They mirror the MCP tool inputs;
// collection names ride in the URL path instead of the body.

type CreateCollectionRequest struct {
	CollectionName string `json:"collection_name"`
}

type AddDocumentRequest struct {
	Path        string            `json:"path"`
	ContentType string            `json:"content_type,omitempty" description:"'text' (default), 'auto', or 'text-pages'"`
	Content     string            `json:"content"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Overwrite   bool              `json:"overwrite,omitempty"`
}

type DocumentInfoRequest struct {
	Path           string `json:"path"`
	IncludeContent bool   `json:"include_content,omitempty"`
}

type UpdateMetadataRequest struct {
	Path     string         `json:"path"`
	Metadata map[string]any `json:"metadata"`
}

type DeleteDocumentRequest struct {
	Path string `json:"path"`
}

type SearchDocumentsRequest struct {
	Query           string `json:"query"`
	K               int    `json:"k,omitempty" description:"Max 2048 (default: 5)"`
	IncludeMetadata *bool  `json:"include_metadata,omitempty"`
	Filter          string `json:"filter,omitempty" description:"JSON-encoded metadata filter"`
}

type SearchPagesRequest struct {
	Query          string `json:"query"`
	K              int    `json:"k,omitempty" description:"Max 1024 (default: 5)"`
	IncludeContent *bool  `json:"include_content,omitempty"`
	LatencyMode    string `json:"latency_mode,omitempty" description:"'low', 'medium', or 'high'"`
	Filter         string `json:"filter,omitempty" description:"JSON-encoded metadata filter"`
}

type SearchSnippetsRequest struct {
	Query    string `json:"query"`
	K        int    `json:"k,omitempty" description:"Max 128 (default: 21)"`
	Reranker string `json:"reranker,omitempty"`
	Filter   string `json:"filter,omitempty" description:"JSON-encoded metadata filter"`
}

type MetadataFilterRequest struct {
	Query           string   `json:"query"`
	Author          string   `json:"author,omitempty"`
	Language        string   `json:"language,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	TimestampAfter  string   `json:"timestamp_after,omitempty"`
	TimestampBefore string   `json:"timestamp_before,omitempty"`
	K               int      `json:"k,omitempty"`
}

type AdvancedFilterRequest struct {
	Query      string `json:"query"`
	Filter     string `json:"filter" description:"JSON-encoded metadata filter (required)"`
	K          int    `json:"k,omitempty"`
	SearchType string `json:"search_type,omitempty" description:"'snippets' (default), 'documents', or 'pages'"`
}

type ParseDocumentRequest struct {
	Base64Data string `json:"base64_data"`
}

type RerankRequest struct {
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	Model     string   `json:"model,omitempty"`
	TopN      int      `json:"top_n,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
