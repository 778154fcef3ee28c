package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/service"
)

// AddTools registers the full tool catalog on the server.
func AddTools(server *mcp.Server, svc *service.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_collection",
		Description: CreateCollectionDescription,
	}, NewCreateCollectionHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_collection",
		Description: DeleteCollectionDescription,
	}, NewDeleteCollectionHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_collections",
		Description: ListCollectionsDescription,
	}, NewListCollectionsHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_collection_status",
		Description: CollectionStatusDescription,
	}, NewCollectionStatusHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_document",
		Description: AddDocumentDescription,
	}, NewAddDocumentHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_document_info",
		Description: GetDocumentInfoDescription,
	}, NewGetDocumentInfoHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_documents",
		Description: ListDocumentsDescription,
	}, NewListDocumentsHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_document_metadata",
		Description: UpdateMetadataDescription,
	}, NewUpdateMetadataHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_document",
		Description: DeleteDocumentDescription,
	}, NewDeleteDocumentHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_documents",
		Description: SearchDocumentsDescription,
	}, NewSearchDocumentsHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_pages",
		Description: SearchPagesDescription,
	}, NewSearchPagesHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_collection",
		Description: SearchCollectionDescription,
	}, NewSearchCollectionHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter_documents_by_metadata",
		Description: MetadataFilterDescription,
	}, NewMetadataFilterHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "advanced_metadata_filter",
		Description: AdvancedFilterDescription,
	}, NewAdvancedFilterHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_document",
		Description: ParseDocumentDescription,
	}, NewParseDocumentHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rerank_documents",
		Description: RerankDocumentsDescription,
	}, NewRerankDocumentsHandler(svc))
}
