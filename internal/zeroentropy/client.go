package zeroentropy

import (
	"context"
)

// Client is the surface of the ZeroEntropy API this adapter consumes.
// One method per remote operation, so tool handlers stay single-call
// pass-throughs and tests can mock the remote side.
type Client interface {
	AddCollection(ctx context.Context, collectionName string) error
	DeleteCollection(ctx context.Context, collectionName string) error
	GetCollectionList(ctx context.Context) ([]string, error)
	GetStatus(ctx context.Context, collectionName string) (*Status, error)

	AddDocument(ctx context.Context, req AddDocumentRequest) error
	GetDocumentInfo(ctx context.Context, req GetDocumentInfoRequest) (*DocumentInfo, error)
	GetDocumentInfoList(ctx context.Context, req GetDocumentInfoListRequest) ([]DocumentInfo, error)
	UpdateDocument(ctx context.Context, req UpdateDocumentRequest) (*UpdateDocumentResult, error)
	DeleteDocument(ctx context.Context, collectionName string, path string) error

	TopDocuments(ctx context.Context, req TopDocumentsRequest) ([]DocumentResult, error)
	TopPages(ctx context.Context, req TopPagesRequest) ([]PageResult, error)
	TopSnippets(ctx context.Context, req TopSnippetsRequest) ([]SnippetResult, error)

	ParseDocument(ctx context.Context, base64Data string) ([]string, error)
	Rerank(ctx context.Context, req RerankRequest) ([]RerankResult, error)
}
