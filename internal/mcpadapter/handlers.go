package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/service"
)

// Tool handlers are thin: each maps its typed input to the matching
// service method and returns the envelope. Failures are reported inside
// the envelope, never as MCP protocol errors, so the response shape stays
// uniform.

type CreateCollectionInput struct {
	CollectionName string `json:"collection_name" jsonschema:"name of the collection to create"`
}

type DeleteCollectionInput struct {
	CollectionName string `json:"collection_name" jsonschema:"name of the collection to delete"`
}

type ListCollectionsInput struct{}

type CollectionStatusInput struct {
	CollectionName string `json:"collection_name,omitempty" jsonschema:"collection name; omit for account-wide status"`
}

type AddDocumentInput struct {
	CollectionName string            `json:"collection_name" jsonschema:"target collection name"`
	Path           string            `json:"path" jsonschema:"document path/identifier"`
	ContentType    string            `json:"content_type,omitempty" jsonschema:"content type: 'text' (default), 'auto' (base64 binary), or 'text-pages'"`
	Content        string            `json:"content" jsonschema:"document content; pages separated by \\n---\\n for 'text-pages', base64 data for 'auto'"`
	Metadata       map[string]string `json:"metadata,omitempty" jsonschema:"optional metadata key/value pairs"`
	Overwrite      bool              `json:"overwrite,omitempty" jsonschema:"overwrite an existing document at the same path"`
}

type GetDocumentInfoInput struct {
	CollectionName string `json:"collection_name" jsonschema:"collection name"`
	Path           string `json:"path" jsonschema:"document path/identifier"`
	IncludeContent bool   `json:"include_content,omitempty" jsonschema:"include the document content (default false)"`
}

type ListDocumentsInput struct {
	CollectionName string `json:"collection_name" jsonschema:"collection name"`
	Limit          int    `json:"limit,omitempty" jsonschema:"maximum number of documents to return (max 1024, default 100)"`
	PathGt         string `json:"path_gt,omitempty" jsonschema:"pagination cursor: return documents with path greater than this"`
}

type UpdateMetadataInput struct {
	CollectionName string         `json:"collection_name" jsonschema:"collection name"`
	Path           string         `json:"path" jsonschema:"document path/identifier"`
	Metadata       map[string]any `json:"metadata" jsonschema:"new metadata to set"`
}

type DeleteDocumentInput struct {
	CollectionName string `json:"collection_name" jsonschema:"collection name"`
	Path           string `json:"path" jsonschema:"document path/identifier to delete"`
}

type SearchDocumentsInput struct {
	CollectionName  string `json:"collection_name" jsonschema:"collection to search"`
	Query           string `json:"query" jsonschema:"search query"`
	K               int    `json:"k,omitempty" jsonschema:"number of results (max 2048, default 5)"`
	IncludeMetadata *bool  `json:"include_metadata,omitempty" jsonschema:"include document metadata (default true)"`
	Filter          string `json:"filter,omitempty" jsonschema:"JSON-encoded metadata filter expression"`
}

type SearchPagesInput struct {
	CollectionName string `json:"collection_name" jsonschema:"collection to search"`
	Query          string `json:"query" jsonschema:"search query"`
	K              int    `json:"k,omitempty" jsonschema:"number of results (max 1024, default 5)"`
	IncludeContent *bool  `json:"include_content,omitempty" jsonschema:"include page content (default true)"`
	LatencyMode    string `json:"latency_mode,omitempty" jsonschema:"latency mode: 'low' (default), 'medium', or 'high'"`
	Filter         string `json:"filter,omitempty" jsonschema:"JSON-encoded metadata filter expression"`
}

type SearchCollectionInput struct {
	CollectionName string `json:"collection_name" jsonschema:"collection to search"`
	Query          string `json:"query" jsonschema:"search query"`
	K              int    `json:"k,omitempty" jsonschema:"number of results (max 128, default 21)"`
	Reranker       string `json:"reranker,omitempty" jsonschema:"reranker model (default zerank-1)"`
	Filter         string `json:"filter,omitempty" jsonschema:"JSON-encoded metadata filter expression"`
}

type MetadataFilterInput struct {
	CollectionName  string   `json:"collection_name" jsonschema:"collection to search"`
	Query           string   `json:"query" jsonschema:"search query"`
	Author          string   `json:"author,omitempty" jsonschema:"filter by author"`
	Language        string   `json:"language,omitempty" jsonschema:"filter by language"`
	Tags            []string `json:"tags,omitempty" jsonschema:"filter by tags (any match)"`
	TimestampAfter  string   `json:"timestamp_after,omitempty" jsonschema:"filter by timestamp after (ISO format)"`
	TimestampBefore string   `json:"timestamp_before,omitempty" jsonschema:"filter by timestamp before (ISO format)"`
	K               int      `json:"k,omitempty" jsonschema:"number of results (max 128, default 5)"`
}

type AdvancedFilterInput struct {
	CollectionName string `json:"collection_name" jsonschema:"collection to search"`
	Query          string `json:"query" jsonschema:"search query"`
	Filter         string `json:"filter" jsonschema:"JSON-encoded metadata filter expression"`
	K              int    `json:"k,omitempty" jsonschema:"number of results (default 5; max depends on search_type)"`
	SearchType     string `json:"search_type,omitempty" jsonschema:"search granularity: 'snippets' (default), 'documents', or 'pages'"`
}

type ParseDocumentInput struct {
	Base64Data string `json:"base64_data" jsonschema:"base64-encoded document data"`
}

type RerankDocumentsInput struct {
	Query     string   `json:"query" jsonschema:"query to rank against"`
	Documents []string `json:"documents" jsonschema:"list of document texts to rerank"`
	Model     string   `json:"model,omitempty" jsonschema:"reranking model (default zerank-1-small)"`
	TopN      int      `json:"top_n,omitempty" jsonschema:"number of top results (default: all documents)"`
}

type toolHandler[In any] = mcp.ToolHandlerFor[In, models.Envelope]

func NewCreateCollectionHandler(svc *service.Service) toolHandler[CreateCollectionInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateCollectionInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.CreateCollection(ctx, input.CollectionName), nil
	}
}

func NewDeleteCollectionHandler(svc *service.Service) toolHandler[DeleteCollectionInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteCollectionInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.DeleteCollection(ctx, input.CollectionName), nil
	}
}

func NewListCollectionsHandler(svc *service.Service) toolHandler[ListCollectionsInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListCollectionsInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.ListCollections(ctx), nil
	}
}

func NewCollectionStatusHandler(svc *service.Service) toolHandler[CollectionStatusInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CollectionStatusInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.GetCollectionStatus(ctx, input.CollectionName), nil
	}
}

func NewAddDocumentHandler(svc *service.Service) toolHandler[AddDocumentInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddDocumentInput) (*mcp.CallToolResult, models.Envelope, error) {
		metadata := make(map[string]any, len(input.Metadata))
		for k, v := range input.Metadata {
			metadata[k] = v
		}
		return nil, svc.AddDocument(ctx, service.AddDocumentParams{
			CollectionName: input.CollectionName,
			Path:           input.Path,
			ContentType:    input.ContentType,
			Content:        input.Content,
			Metadata:       metadata,
			Overwrite:      input.Overwrite,
		}), nil
	}
}

func NewGetDocumentInfoHandler(svc *service.Service) toolHandler[GetDocumentInfoInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetDocumentInfoInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.GetDocumentInfo(ctx, input.CollectionName, input.Path, input.IncludeContent), nil
	}
}

func NewListDocumentsHandler(svc *service.Service) toolHandler[ListDocumentsInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListDocumentsInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.ListDocuments(ctx, input.CollectionName, input.Limit, input.PathGt), nil
	}
}

func NewUpdateMetadataHandler(svc *service.Service) toolHandler[UpdateMetadataInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input UpdateMetadataInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.UpdateDocumentMetadata(ctx, input.CollectionName, input.Path, input.Metadata), nil
	}
}

func NewDeleteDocumentHandler(svc *service.Service) toolHandler[DeleteDocumentInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteDocumentInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.DeleteDocument(ctx, input.CollectionName, input.Path), nil
	}
}

func NewSearchDocumentsHandler(svc *service.Service) toolHandler[SearchDocumentsInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchDocumentsInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.SearchDocuments(ctx, service.SearchDocumentsParams{
			CollectionName:  input.CollectionName,
			Query:           input.Query,
			K:               input.K,
			IncludeMetadata: input.IncludeMetadata,
			FilterJSON:      input.Filter,
		}), nil
	}
}

func NewSearchPagesHandler(svc *service.Service) toolHandler[SearchPagesInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchPagesInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.SearchPages(ctx, service.SearchPagesParams{
			CollectionName: input.CollectionName,
			Query:          input.Query,
			K:              input.K,
			IncludeContent: input.IncludeContent,
			LatencyMode:    input.LatencyMode,
			FilterJSON:     input.Filter,
		}), nil
	}
}

func NewSearchCollectionHandler(svc *service.Service) toolHandler[SearchCollectionInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchCollectionInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.SearchCollection(ctx, service.SearchCollectionParams{
			CollectionName: input.CollectionName,
			Query:          input.Query,
			K:              input.K,
			Reranker:       input.Reranker,
			FilterJSON:     input.Filter,
		}), nil
	}
}

func NewMetadataFilterHandler(svc *service.Service) toolHandler[MetadataFilterInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MetadataFilterInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.FilterDocumentsByMetadata(ctx, service.MetadataFilterParams{
			CollectionName:  input.CollectionName,
			Query:           input.Query,
			Author:          input.Author,
			Language:        input.Language,
			Tags:            input.Tags,
			TimestampAfter:  input.TimestampAfter,
			TimestampBefore: input.TimestampBefore,
			K:               input.K,
		}), nil
	}
}

func NewAdvancedFilterHandler(svc *service.Service) toolHandler[AdvancedFilterInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AdvancedFilterInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.AdvancedMetadataFilter(ctx, service.AdvancedFilterParams{
			CollectionName: input.CollectionName,
			Query:          input.Query,
			FilterJSON:     input.Filter,
			K:              input.K,
			SearchType:     input.SearchType,
		}), nil
	}
}

func NewParseDocumentHandler(svc *service.Service) toolHandler[ParseDocumentInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ParseDocumentInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.ParseDocument(ctx, input.Base64Data), nil
	}
}

func NewRerankDocumentsHandler(svc *service.Service) toolHandler[RerankDocumentsInput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RerankDocumentsInput) (*mcp.CallToolResult, models.Envelope, error) {
		return nil, svc.RerankDocuments(ctx, service.RerankParams{
			Query:     input.Query,
			Documents: input.Documents,
			Model:     input.Model,
			TopN:      input.TopN,
		}), nil
	}
}
