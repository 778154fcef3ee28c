package api

import (
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/api/middleware"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/service"
)

type Handler struct {
	service *service.Service
	logger  *zerolog.Logger
}

func NewHandler(svc *service.Service, logger *zerolog.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger,
	}
}

// Every operation writes the uniform envelope with HTTP 200; success or
// failure is carried in the envelope's status field, matching the MCP
// surface exactly.

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

// GET /api/v1/collections
func (h *Handler) ListCollections(req *restful.Request, resp *restful.Response) {
	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.ListCollections(ctx))
}

// POST /api/v1/collections
func (h *Handler) CreateCollection(req *restful.Request, resp *restful.Response) {
	var body CreateCollectionRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.CreateCollection(ctx, body.CollectionName))
}

// DELETE /api/v1/collections/{collection_name}
func (h *Handler) DeleteCollection(req *restful.Request, resp *restful.Response) {
	collection := req.PathParameter("collection_name")
	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.DeleteCollection(ctx, collection))
}

// GET /api/v1/status and GET /api/v1/collections/{collection_name}/status
func (h *Handler) CollectionStatus(req *restful.Request, resp *restful.Response) {
	collection := req.PathParameter("collection_name")
	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.GetCollectionStatus(ctx, collection))
}

// POST /api/v1/collections/{collection_name}/documents
func (h *Handler) AddDocument(req *restful.Request, resp *restful.Response) {
	var body AddDocumentRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	metadata := make(map[string]any, len(body.Metadata))
	for k, v := range body.Metadata {
		metadata[k] = v
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.AddDocument(ctx, service.AddDocumentParams{
		CollectionName: req.PathParameter("collection_name"),
		Path:           body.Path,
		ContentType:    body.ContentType,
		Content:        body.Content,
		Metadata:       metadata,
		Overwrite:      body.Overwrite,
	}))
}

// POST /api/v1/collections/{collection_name}/documents/info
func (h *Handler) GetDocumentInfo(req *restful.Request, resp *restful.Response) {
	var body DocumentInfoRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.GetDocumentInfo(
		ctx, req.PathParameter("collection_name"), body.Path, body.IncludeContent))
}

// GET /api/v1/collections/{collection_name}/documents
func (h *Handler) ListDocuments(req *restful.Request, resp *restful.Response) {
	limit := 0
	if limitStr := req.QueryParameter("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.ListDocuments(
		ctx, req.PathParameter("collection_name"), limit, req.QueryParameter("path_gt")))
}

// PUT /api/v1/collections/{collection_name}/documents/metadata
func (h *Handler) UpdateDocumentMetadata(req *restful.Request, resp *restful.Response) {
	var body UpdateMetadataRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.UpdateDocumentMetadata(
		ctx, req.PathParameter("collection_name"), body.Path, body.Metadata))
}

// POST /api/v1/collections/{collection_name}/documents/delete
func (h *Handler) DeleteDocument(req *restful.Request, resp *restful.Response) {
	var body DeleteDocumentRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.DeleteDocument(
		ctx, req.PathParameter("collection_name"), body.Path))
}

// POST /api/v1/collections/{collection_name}/search/documents
func (h *Handler) SearchDocuments(req *restful.Request, resp *restful.Response) {
	var body SearchDocumentsRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("collection", req.PathParameter("collection_name")).
		Str("query", body.Query).
		Int("k", body.K).
		Msg("Document search")

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.SearchDocuments(ctx, service.SearchDocumentsParams{
		CollectionName:  req.PathParameter("collection_name"),
		Query:           body.Query,
		K:               body.K,
		IncludeMetadata: body.IncludeMetadata,
		FilterJSON:      body.Filter,
	}))
}

// POST /api/v1/collections/{collection_name}/search/pages
func (h *Handler) SearchPages(req *restful.Request, resp *restful.Response) {
	var body SearchPagesRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.SearchPages(ctx, service.SearchPagesParams{
		CollectionName: req.PathParameter("collection_name"),
		Query:          body.Query,
		K:              body.K,
		IncludeContent: body.IncludeContent,
		LatencyMode:    body.LatencyMode,
		FilterJSON:     body.Filter,
	}))
}

// POST /api/v1/collections/{collection_name}/search/snippets
func (h *Handler) SearchSnippets(req *restful.Request, resp *restful.Response) {
	var body SearchSnippetsRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.SearchCollection(ctx, service.SearchCollectionParams{
		CollectionName: req.PathParameter("collection_name"),
		Query:          body.Query,
		K:              body.K,
		Reranker:       body.Reranker,
		FilterJSON:     body.Filter,
	}))
}

// POST /api/v1/collections/{collection_name}/search/metadata
func (h *Handler) FilterByMetadata(req *restful.Request, resp *restful.Response) {
	var body MetadataFilterRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.FilterDocumentsByMetadata(ctx, service.MetadataFilterParams{
		CollectionName:  req.PathParameter("collection_name"),
		Query:           body.Query,
		Author:          body.Author,
		Language:        body.Language,
		Tags:            body.Tags,
		TimestampAfter:  body.TimestampAfter,
		TimestampBefore: body.TimestampBefore,
		K:               body.K,
	}))
}

// POST /api/v1/collections/{collection_name}/search/advanced
func (h *Handler) AdvancedFilter(req *restful.Request, resp *restful.Response) {
	var body AdvancedFilterRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.AdvancedMetadataFilter(ctx, service.AdvancedFilterParams{
		CollectionName: req.PathParameter("collection_name"),
		Query:          body.Query,
		FilterJSON:     body.Filter,
		K:              body.K,
		SearchType:     body.SearchType,
	}))
}

// POST /api/v1/parse
func (h *Handler) ParseDocument(req *restful.Request, resp *restful.Response) {
	var body ParseDocumentRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.ParseDocument(ctx, body.Base64Data))
}

// POST /api/v1/rerank
func (h *Handler) RerankDocuments(req *restful.Request, resp *restful.Response) {
	var body RerankRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.RerankDocuments(ctx, service.RerankParams{
		Query:     body.Query,
		Documents: body.Documents,
		Model:     body.Model,
		TopN:      body.TopN,
	}))
}
