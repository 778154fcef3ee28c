package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/service"
)

// AddResources registers the read-only resources mirroring the most
// common lookups: the collection list, per-collection status, and a quick
// snippet search against the configured resource collection.
func AddResources(server *mcp.Server, svc *service.Service) {
	server.AddResource(&mcp.Resource{
		URI:         "collections://list",
		Name:        "collections_list",
		Description: "List of all available collections",
		MIMEType:    "application/json",
	}, newCollectionsListResource(svc))

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "collection://{collection_name}/status",
		Name:        "collection_status",
		Description: "Status for a specific collection",
		MIMEType:    "application/json",
	}, newCollectionStatusResource(svc))

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "search://{query}",
		Name:        "search_results",
		Description: "Snippet search results for a query against the configured resource collection",
		MIMEType:    "application/json",
	}, newSearchResource(svc))
}

func newCollectionsListResource(svc *service.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return envelopeResource(req.Params.URI, svc.ListCollections(ctx))
	}
}

func newCollectionStatusResource(svc *service.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		name, err := url.PathUnescape(strings.TrimSuffix(strings.TrimPrefix(req.Params.URI, "collection://"), "/status"))
		if err != nil {
			return nil, fmt.Errorf("resource URI %q has a malformed collection name: %w", req.Params.URI, err)
		}
		if name == "" {
			return nil, fmt.Errorf("resource URI %q has no collection name", req.Params.URI)
		}
		return envelopeResource(req.Params.URI, svc.GetCollectionStatus(ctx, name))
	}
}

func newSearchResource(svc *service.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		collection := svc.Defaults().Resources.SearchCollection
		if collection == "" {
			return nil, fmt.Errorf("no resource search collection configured (set resources.search_collection)")
		}

		query, err := url.PathUnescape(strings.TrimPrefix(req.Params.URI, "search://"))
		if err != nil {
			return nil, fmt.Errorf("resource URI %q has a malformed query: %w", req.Params.URI, err)
		}
		if query == "" {
			return nil, fmt.Errorf("resource URI %q has no query", req.Params.URI)
		}

		env := svc.SearchCollection(ctx, service.SearchCollectionParams{
			CollectionName: collection,
			Query:          query,
			K:              svc.Defaults().Resources.SearchK,
		})
		return envelopeResource(req.Params.URI, env)
	}
}

func envelopeResource(uri string, env models.Envelope) (*mcp.ReadResourceResult, error) {
	text, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource content: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(text),
			},
		},
	}, nil
}
