package zeroentropy

// DocumentContent is the content payload for document ingestion. Type is one
// of "text", "text-pages", or "auto"; exactly one of the remaining fields is
// set depending on the type.
type DocumentContent struct {
	Type       string   `json:"type"`
	Text       string   `json:"text,omitempty"`
	Pages      []string `json:"pages,omitempty"`
	Base64Data string   `json:"base64_data,omitempty"`
}

const (
	ContentTypeText      = "text"
	ContentTypeTextPages = "text-pages"
	ContentTypeAuto      = "auto"
)

// DocumentInfo describes a document as the API reports it.
type DocumentInfo struct {
	ID             string         `json:"id"`
	CollectionName string         `json:"collection_name"`
	Path           string         `json:"path"`
	Metadata       map[string]any `json:"metadata"`
	IndexStatus    string         `json:"index_status"`
	NumPages       *int           `json:"num_pages"`
	Content        *string        `json:"content,omitempty"`
}

// Status reports document counts and indexing progress. When CollectionName
// was empty in the request the counts cover the whole account.
type Status struct {
	NumDocuments         int `json:"num_documents"`
	NumParsingDocuments  int `json:"num_parsing_documents"`
	NumIndexingDocuments int `json:"num_indexing_documents"`
	NumIndexedDocuments  int `json:"num_indexed_documents"`
	NumFailedDocuments   int `json:"num_failed_documents"`
}

type AddDocumentRequest struct {
	CollectionName string          `json:"collection_name"`
	Path           string          `json:"path"`
	Content        DocumentContent `json:"content"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	Overwrite      bool            `json:"overwrite,omitempty"`
}

type GetDocumentInfoRequest struct {
	CollectionName string `json:"collection_name"`
	Path           string `json:"path"`
	IncludeContent bool   `json:"include_content"`
}

type GetDocumentInfoListRequest struct {
	CollectionName string `json:"collection_name"`
	Limit          int    `json:"limit,omitempty"`
	PathGt         string `json:"path_gt,omitempty"`
}

type UpdateDocumentRequest struct {
	CollectionName string         `json:"collection_name"`
	Path           string         `json:"path"`
	Metadata       map[string]any `json:"metadata"`
}

// UpdateDocumentResult carries the document IDs before and after a metadata
// update (the API re-identifies documents on update).
type UpdateDocumentResult struct {
	PreviousID string `json:"previous_id"`
	NewID      string `json:"new_id"`
}

type TopDocumentsRequest struct {
	CollectionName  string         `json:"collection_name"`
	Query           string         `json:"query"`
	K               int            `json:"k"`
	Filter          map[string]any `json:"filter,omitempty"`
	IncludeMetadata bool           `json:"include_metadata,omitempty"`
	LatencyMode     string         `json:"latency_mode,omitempty"`
	Reranker        string         `json:"reranker,omitempty"`
}

type TopPagesRequest struct {
	CollectionName string         `json:"collection_name"`
	Query          string         `json:"query"`
	K              int            `json:"k"`
	Filter         map[string]any `json:"filter,omitempty"`
	IncludeContent bool           `json:"include_content,omitempty"`
	LatencyMode    string         `json:"latency_mode,omitempty"`
}

type TopSnippetsRequest struct {
	CollectionName   string         `json:"collection_name"`
	Query            string         `json:"query"`
	K                int            `json:"k"`
	Filter           map[string]any `json:"filter,omitempty"`
	PreciseResponses bool           `json:"precise_responses,omitempty"`
	Reranker         string         `json:"reranker,omitempty"`
}

// DocumentResult is a single ranked document from a top-documents query.
// Ordering and scores come from the remote service unmodified.
type DocumentResult struct {
	Path     string         `json:"path"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata,omitempty"`
	FileURL  string         `json:"file_url,omitempty"`
}

type PageResult struct {
	Path      string  `json:"path"`
	PageIndex int     `json:"page_index"`
	Score     float64 `json:"score"`
	Content   *string `json:"content,omitempty"`
}

type SnippetResult struct {
	Path       string  `json:"path"`
	StartIndex int     `json:"start_index"`
	EndIndex   int     `json:"end_index"`
	PageSpan   []int   `json:"page_span,omitempty"`
	Content    string  `json:"content,omitempty"`
	Score      float64 `json:"score"`
}

type RerankRequest struct {
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	Model     string   `json:"model"`
	TopN      int      `json:"top_n,omitempty"`
}

// RerankResult refers back to the input documents by index.
type RerankResult struct {
	Index          int     `json:"index"`
	RelevanceScore float64 `json:"relevance_score"`
}
