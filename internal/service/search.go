package service

import (
	"context"
	"fmt"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/filter"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
)

type SearchDocumentsParams struct {
	CollectionName  string
	Query           string
	K               int
	IncludeMetadata *bool
	FilterJSON      string
}

func (s *Service) SearchDocuments(ctx context.Context, p SearchDocumentsParams) models.Envelope {
	if p.CollectionName == "" {
		return models.Error("collection_name is required")
	}
	if p.Query == "" {
		return models.Error("query is required")
	}

	k := p.K
	if k == 0 {
		k = s.defaults.Search.Documents.K
	}
	if k < 0 || k > zeroentropy.MaxTopDocumentsK {
		return models.Error(fmt.Sprintf("k %d is out of range (1-%d) for document search", k, zeroentropy.MaxTopDocumentsK))
	}

	expr, err := filter.ParseJSON(p.FilterJSON)
	if err != nil {
		return models.Error(fmt.Sprintf("Invalid filter: %v", err))
	}

	includeMetadata := s.defaults.Search.Documents.IncludeMetadata
	if p.IncludeMetadata != nil {
		includeMetadata = *p.IncludeMetadata
	}

	results, err := s.client.TopDocuments(ctx, zeroentropy.TopDocumentsRequest{
		CollectionName:  p.CollectionName,
		Query:           p.Query,
		K:               k,
		Filter:          expr,
		IncludeMetadata: includeMetadata,
	})
	if err != nil {
		return s.remoteError("searching documents", err)
	}

	data := models.DocumentSearchResults{Results: results, Count: len(results)}
	return models.Success(fmt.Sprintf("Found %d documents", data.Count), data)
}

type SearchPagesParams struct {
	CollectionName string
	Query          string
	K              int
	IncludeContent *bool
	LatencyMode    string
	FilterJSON     string
}

func (s *Service) SearchPages(ctx context.Context, p SearchPagesParams) models.Envelope {
	if p.CollectionName == "" {
		return models.Error("collection_name is required")
	}
	if p.Query == "" {
		return models.Error("query is required")
	}

	k := p.K
	if k == 0 {
		k = s.defaults.Search.Pages.K
	}
	if k < 0 || k > zeroentropy.MaxTopPagesK {
		return models.Error(fmt.Sprintf("k %d is out of range (1-%d) for page search", k, zeroentropy.MaxTopPagesK))
	}

	latencyMode := p.LatencyMode
	if latencyMode == "" {
		latencyMode = s.defaults.Search.Pages.LatencyMode
	}
	switch latencyMode {
	case "low", "medium", "high":
	default:
		return models.Error(fmt.Sprintf("latency_mode %q is not one of 'low', 'medium', 'high'", latencyMode))
	}

	expr, err := filter.ParseJSON(p.FilterJSON)
	if err != nil {
		return models.Error(fmt.Sprintf("Invalid filter: %v", err))
	}

	includeContent := s.defaults.Search.Pages.IncludeContent
	if p.IncludeContent != nil {
		includeContent = *p.IncludeContent
	}

	results, err := s.client.TopPages(ctx, zeroentropy.TopPagesRequest{
		CollectionName: p.CollectionName,
		Query:          p.Query,
		K:              k,
		Filter:         expr,
		IncludeContent: includeContent,
		LatencyMode:    latencyMode,
	})
	if err != nil {
		return s.remoteError("searching pages", err)
	}

	data := models.PageSearchResults{Results: results, Count: len(results)}
	return models.Success(fmt.Sprintf("Found %d pages", data.Count), data)
}

type SearchCollectionParams struct {
	CollectionName string
	Query          string
	K              int
	Reranker       string
	FilterJSON     string
}

// SearchCollection is the snippet-granularity search with reranking, the
// finest of the three search kinds.
func (s *Service) SearchCollection(ctx context.Context, p SearchCollectionParams) models.Envelope {
	if p.CollectionName == "" {
		return models.Error("collection_name is required")
	}
	if p.Query == "" {
		return models.Error("query is required")
	}

	k := p.K
	if k == 0 {
		k = s.defaults.Search.Snippets.K
	}
	if k < 0 || k > zeroentropy.MaxTopSnippetsK {
		return models.Error(fmt.Sprintf("k %d is out of range (1-%d) for snippet search", k, zeroentropy.MaxTopSnippetsK))
	}

	reranker := p.Reranker
	if reranker == "" {
		reranker = s.defaults.Search.Snippets.Reranker
	}

	expr, err := filter.ParseJSON(p.FilterJSON)
	if err != nil {
		return models.Error(fmt.Sprintf("Invalid filter: %v", err))
	}

	results, err := s.client.TopSnippets(ctx, zeroentropy.TopSnippetsRequest{
		CollectionName:   p.CollectionName,
		Query:            p.Query,
		K:                k,
		Filter:           expr,
		PreciseResponses: s.defaults.Search.Snippets.PreciseResponses,
		Reranker:         reranker,
	})
	if err != nil {
		return s.remoteError("searching collection", err)
	}

	data := models.SnippetSearchResults{Results: results, Count: len(results)}
	return models.Success(fmt.Sprintf("Found %d snippets", data.Count), data)
}

type MetadataFilterParams struct {
	CollectionName  string
	Query           string
	Author          string
	Language        string
	Tags            []string
	TimestampAfter  string
	TimestampBefore string
	K               int
}

// FilterDocumentsByMetadata assembles a filter expression from discrete
// named fields and delegates to the snippet search path.
func (s *Service) FilterDocumentsByMetadata(ctx context.Context, p MetadataFilterParams) models.Envelope {
	if p.CollectionName == "" {
		return models.Error("collection_name is required")
	}
	if p.Query == "" {
		return models.Error("query is required")
	}

	k := p.K
	if k == 0 {
		k = s.defaults.Search.Metadata.K
	}
	if k < 0 || k > zeroentropy.MaxTopSnippetsK {
		return models.Error(fmt.Sprintf("k %d is out of range (1-%d) for snippet search", k, zeroentropy.MaxTopSnippetsK))
	}

	expr := filter.NewBuilder().
		Author(p.Author).
		Language(p.Language).
		Tags(p.Tags).
		TimestampAfter(p.TimestampAfter).
		TimestampBefore(p.TimestampBefore).
		Build()

	results, err := s.client.TopSnippets(ctx, zeroentropy.TopSnippetsRequest{
		CollectionName:   p.CollectionName,
		Query:            p.Query,
		K:                k,
		Filter:           expr,
		PreciseResponses: s.defaults.Search.Snippets.PreciseResponses,
	})
	if err != nil {
		return s.remoteError("filtering documents", err)
	}

	data := models.SnippetSearchResults{Results: results, Count: len(results)}
	return models.Success(fmt.Sprintf("Found %d snippets", data.Count), data)
}

type AdvancedFilterParams struct {
	CollectionName string
	Query          string
	FilterJSON     string
	K              int
	SearchType     string
}

// AdvancedMetadataFilter runs a custom filter expression against the
// chosen search granularity. The filter is required here, unlike on the
// plain search paths.
func (s *Service) AdvancedMetadataFilter(ctx context.Context, p AdvancedFilterParams) models.Envelope {
	if p.CollectionName == "" {
		return models.Error("collection_name is required")
	}
	if p.Query == "" {
		return models.Error("query is required")
	}
	if p.FilterJSON == "" {
		return models.Error("filter is required")
	}

	expr, err := filter.ParseJSON(p.FilterJSON)
	if err != nil {
		return models.Error(fmt.Sprintf("Invalid filter: %v", err))
	}

	searchType := p.SearchType
	if searchType == "" {
		searchType = "snippets"
	}

	switch searchType {
	case "documents":
		includeMetadata := true
		return s.SearchDocuments(ctx, SearchDocumentsParams{
			CollectionName:  p.CollectionName,
			Query:           p.Query,
			K:               p.K,
			IncludeMetadata: &includeMetadata,
			FilterJSON:      p.FilterJSON,
		})
	case "pages":
		return s.SearchPages(ctx, SearchPagesParams{
			CollectionName: p.CollectionName,
			Query:          p.Query,
			K:              p.K,
			FilterJSON:     p.FilterJSON,
		})
	case "snippets":
		k := p.K
		if k == 0 {
			k = s.defaults.Search.Metadata.K
		}
		if k < 0 || k > zeroentropy.MaxTopSnippetsK {
			return models.Error(fmt.Sprintf("k %d is out of range (1-%d) for snippet search", k, zeroentropy.MaxTopSnippetsK))
		}

		results, err := s.client.TopSnippets(ctx, zeroentropy.TopSnippetsRequest{
			CollectionName:   p.CollectionName,
			Query:            p.Query,
			K:                k,
			Filter:           expr,
			PreciseResponses: s.defaults.Search.Snippets.PreciseResponses,
		})
		if err != nil {
			return s.remoteError("applying advanced filter", err)
		}

		data := models.SnippetSearchResults{Results: results, Count: len(results)}
		return models.Success(fmt.Sprintf("Found %d snippets", data.Count), data)
	default:
		return models.Error(fmt.Sprintf("search_type %q is not one of 'snippets', 'documents', 'pages'", searchType))
	}
}
