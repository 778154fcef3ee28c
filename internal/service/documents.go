package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
)

// PageSeparator splits a text-pages content string into its ordered pages.
const PageSeparator = "\n---\n"

type AddDocumentParams struct {
	CollectionName string
	Path           string
	ContentType    string
	Content        string
	Metadata       map[string]any
	Overwrite      bool
}

func (s *Service) AddDocument(ctx context.Context, p AddDocumentParams) models.Envelope {
	if p.CollectionName == "" {
		return models.Error("collection_name is required")
	}
	if p.Path == "" {
		return models.Error("path is required")
	}
	if p.Content == "" {
		return models.Error("content is required")
	}

	content, err := buildContent(p.ContentType, p.Content)
	if err != nil {
		return models.Error(err.Error())
	}

	req := zeroentropy.AddDocumentRequest{
		CollectionName: p.CollectionName,
		Path:           p.Path,
		Content:        content,
		Metadata:       p.Metadata,
		Overwrite:      p.Overwrite,
	}
	if err := s.client.AddDocument(ctx, req); err != nil {
		if zeroentropy.IsConflict(err) {
			return models.Error(fmt.Sprintf("Document '%s' already exists in collection '%s'", p.Path, p.CollectionName))
		}
		return s.remoteError("adding document", err)
	}

	s.logger.Info().
		Str("collection", p.CollectionName).
		Str("path", p.Path).
		Str("content_type", content.Type).
		Msg("Document added")
	return models.Success(fmt.Sprintf("Document '%s' added to collection '%s'", p.Path, p.CollectionName), nil)
}

func buildContent(contentType string, content string) (zeroentropy.DocumentContent, error) {
	switch contentType {
	case "", zeroentropy.ContentTypeText:
		return zeroentropy.DocumentContent{
			Type: zeroentropy.ContentTypeText,
			Text: content,
		}, nil
	case zeroentropy.ContentTypeTextPages:
		return zeroentropy.DocumentContent{
			Type:  zeroentropy.ContentTypeTextPages,
			Pages: strings.Split(content, PageSeparator),
		}, nil
	case zeroentropy.ContentTypeAuto:
		if _, err := base64.StdEncoding.DecodeString(content); err != nil {
			return zeroentropy.DocumentContent{}, fmt.Errorf("content_type 'auto' requires valid base64 content: %v", err)
		}
		return zeroentropy.DocumentContent{
			Type:       zeroentropy.ContentTypeAuto,
			Base64Data: content,
		}, nil
	default:
		return zeroentropy.DocumentContent{}, fmt.Errorf("content_type %q is not one of 'text', 'auto', 'text-pages'", contentType)
	}
}

func (s *Service) GetDocumentInfo(ctx context.Context, collectionName string, path string, includeContent bool) models.Envelope {
	if collectionName == "" {
		return models.Error("collection_name is required")
	}
	if path == "" {
		return models.Error("path is required")
	}

	doc, err := s.client.GetDocumentInfo(ctx, zeroentropy.GetDocumentInfoRequest{
		CollectionName: collectionName,
		Path:           path,
		IncludeContent: includeContent,
	})
	if err != nil {
		return s.remoteError("getting document info", err)
	}

	return models.Success("Document info retrieved", doc)
}

func (s *Service) ListDocuments(ctx context.Context, collectionName string, limit int, pathGt string) models.Envelope {
	if collectionName == "" {
		return models.Error("collection_name is required")
	}
	if limit == 0 {
		limit = s.defaults.Documents.ListLimit
	}
	if limit < 0 || limit > zeroentropy.MaxDocumentList {
		return models.Error(fmt.Sprintf("limit %d is out of range (1-%d)", limit, zeroentropy.MaxDocumentList))
	}

	docs, err := s.client.GetDocumentInfoList(ctx, zeroentropy.GetDocumentInfoListRequest{
		CollectionName: collectionName,
		Limit:          limit,
		PathGt:         pathGt,
	})
	if err != nil {
		return s.remoteError("listing documents", err)
	}

	data := models.DocumentList{
		Documents: docs,
		Count:     len(docs),
	}
	if len(docs) == limit && len(docs) > 0 {
		data.NextPathGt = docs[len(docs)-1].Path
	}
	return models.Success(fmt.Sprintf("Found %d documents", data.Count), data)
}

func (s *Service) UpdateDocumentMetadata(ctx context.Context, collectionName string, path string, metadata map[string]any) models.Envelope {
	if collectionName == "" {
		return models.Error("collection_name is required")
	}
	if path == "" {
		return models.Error("path is required")
	}
	if len(metadata) == 0 {
		return models.Error("metadata is required")
	}

	result, err := s.client.UpdateDocument(ctx, zeroentropy.UpdateDocumentRequest{
		CollectionName: collectionName,
		Path:           path,
		Metadata:       metadata,
	})
	if err != nil {
		return s.remoteError("updating metadata", err)
	}

	data := models.MetadataUpdate{
		PreviousID: result.PreviousID,
		NewID:      result.NewID,
	}
	return models.Success(fmt.Sprintf("Metadata updated for document '%s'", path), data)
}

func (s *Service) DeleteDocument(ctx context.Context, collectionName string, path string) models.Envelope {
	if collectionName == "" {
		return models.Error("collection_name is required")
	}
	if path == "" {
		return models.Error("path is required")
	}

	if err := s.client.DeleteDocument(ctx, collectionName, path); err != nil {
		return s.remoteError("deleting document", err)
	}

	s.logger.Info().Str("collection", collectionName).Str("path", path).Msg("Document deleted")
	return models.Success(fmt.Sprintf("Document '%s' deleted from collection '%s'", path, collectionName), nil)
}
