package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/api/middleware"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/collections").
			To(handler.ListCollections).
			Doc("List all collections").
			Metadata(restfulspec.KeyOpenAPITags, []string{"collections"}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}))

	ws.
		Route(ws.POST("/collections").
			To(handler.CreateCollection).
			Doc("Create a collection").
			Metadata(restfulspec.KeyOpenAPITags, []string{"collections"}).
			Reads(CreateCollectionRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.DELETE("/collections/{collection_name}").
			To(handler.DeleteCollection).
			Doc("Delete a collection and all its documents").
			Metadata(restfulspec.KeyOpenAPITags, []string{"collections"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}))

	ws.
		Route(ws.GET("/status").
			To(handler.CollectionStatus).
			Doc("Account-wide indexing status").
			Metadata(restfulspec.KeyOpenAPITags, []string{"collections"}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}))

	ws.
		Route(ws.GET("/collections/{collection_name}/status").
			To(handler.CollectionStatus).
			Doc("Indexing status for a collection").
			Metadata(restfulspec.KeyOpenAPITags, []string{"collections"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}))

	ws.
		Route(ws.POST("/collections/{collection_name}/documents").
			To(handler.AddDocument).
			Doc("Add a document to a collection").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Reads(AddDocumentRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/collections/{collection_name}/documents").
			To(handler.ListDocuments).
			Doc("List documents with pagination").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Param(ws.QueryParameter("limit", "Maximum documents to return (max 1024, default 100)").DataType("integer").Required(false)).
			Param(ws.QueryParameter("path_gt", "Pagination cursor").DataType("string").Required(false)).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}))

	ws.
		Route(ws.POST("/collections/{collection_name}/documents/info").
			To(handler.GetDocumentInfo).
			Doc("Get document info").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Reads(DocumentInfoRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.PUT("/collections/{collection_name}/documents/metadata").
			To(handler.UpdateDocumentMetadata).
			Doc("Update document metadata").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Reads(UpdateMetadataRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/collections/{collection_name}/documents/delete").
			To(handler.DeleteDocument).
			Doc("Delete a document").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Reads(DeleteDocumentRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/collections/{collection_name}/search/documents").
			To(handler.SearchDocuments).
			Doc("Search documents (document granularity, k max 2048)").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Reads(SearchDocumentsRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/collections/{collection_name}/search/pages").
			To(handler.SearchPages).
			Doc("Search pages (page granularity, k max 1024)").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Reads(SearchPagesRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/collections/{collection_name}/search/snippets").
			To(handler.SearchSnippets).
			Doc("Search snippets with reranking (snippet granularity, k max 128)").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Reads(SearchSnippetsRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/collections/{collection_name}/search/metadata").
			To(handler.FilterByMetadata).
			Doc("Search with a filter assembled from discrete metadata fields").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Reads(MetadataFilterRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/collections/{collection_name}/search/advanced").
			To(handler.AdvancedFilter).
			Doc("Search with a custom metadata filter expression").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Param(ws.PathParameter("collection_name", "Collection name").DataType("string")).
			Reads(AdvancedFilterRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/parse").
			To(handler.ParseDocument).
			Doc("Parse a document into page texts without indexing").
			Metadata(restfulspec.KeyOpenAPITags, []string{"parse"}).
			Reads(ParseDocumentRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/rerank").
			To(handler.RerankDocuments).
			Doc("Rerank document texts by relevance to a query").
			Metadata(restfulspec.KeyOpenAPITags, []string{"rerank"}).
			Reads(RerankRequest{}).
			Writes(models.Envelope{}).
			Returns(200, "OK", models.Envelope{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	container.Add(ws)
}
