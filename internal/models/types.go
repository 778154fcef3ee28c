package models

import (
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Envelope is the uniform response shape every tool returns, on success
// and on failure alike.
type Envelope struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(message string, data any) Envelope {
	return Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

func Error(message string) Envelope {
	return Envelope{
		Status:  StatusError,
		Message: message,
	}
}

// Tool-facing data shapes carried in Envelope.Data.

type CollectionList struct {
	Collections []string `json:"collections"`
	Count       int      `json:"count"`
}

type CollectionStatus struct {
	Collection           string `json:"collection,omitempty"`
	NumDocuments         int    `json:"num_documents"`
	NumParsingDocuments  int    `json:"num_parsing_documents"`
	NumIndexingDocuments int    `json:"num_indexing_documents"`
	NumIndexedDocuments  int    `json:"num_indexed_documents"`
	NumFailedDocuments   int    `json:"num_failed_documents"`
}

type DocumentList struct {
	Documents []zeroentropy.DocumentInfo `json:"documents"`
	Count     int                        `json:"count"`
	// NextPathGt is the cursor for the next page: the last path returned,
	// to be passed as path_gt on the following call. Empty when the page
	// was not full.
	NextPathGt string `json:"next_path_gt,omitempty"`
}

type DocumentSearchResults struct {
	Results []zeroentropy.DocumentResult `json:"results"`
	Count   int                          `json:"count"`
}

type PageSearchResults struct {
	Results []zeroentropy.PageResult `json:"results"`
	Count   int                      `json:"count"`
}

type SnippetSearchResults struct {
	Results []zeroentropy.SnippetResult `json:"results"`
	Count   int                         `json:"count"`
}

type MetadataUpdate struct {
	PreviousID string `json:"previous_id"`
	NewID      string `json:"new_id"`
}

type ParsedDocument struct {
	Pages    []string `json:"pages"`
	NumPages int      `json:"num_pages"`
}

// RerankedDocument pairs a rerank result with the original document text
// so callers do not have to join by index themselves.
type RerankedDocument struct {
	Index          int     `json:"index"`
	RelevanceScore float64 `json:"relevance_score"`
	Document       string  `json:"document"`
}

type RerankResults struct {
	Reranked []RerankedDocument `json:"reranked"`
}
