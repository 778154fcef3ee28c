package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
)

func TestAddDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("text content by default", func(t *testing.T) {
		svc, client := newTestService(t)
		client.EXPECT().
			AddDocument(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req zeroentropy.AddDocumentRequest) error {
				if req.Content.Type != zeroentropy.ContentTypeText {
					t.Errorf("expected text content, got %q", req.Content.Type)
				}
				if req.Content.Text != "hello world" {
					t.Errorf("unexpected text %q", req.Content.Text)
				}
				return nil
			})

		env := svc.AddDocument(ctx, AddDocumentParams{
			CollectionName: "docs",
			Path:           "a.txt",
			Content:        "hello world",
		})

		if env.Status != models.StatusSuccess {
			t.Fatalf("expected success, got %s: %s", env.Status, env.Message)
		}
	})

	t.Run("text-pages splits on separator", func(t *testing.T) {
		svc, client := newTestService(t)
		client.EXPECT().
			AddDocument(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req zeroentropy.AddDocumentRequest) error {
				if req.Content.Type != zeroentropy.ContentTypeTextPages {
					t.Errorf("expected text-pages content, got %q", req.Content.Type)
				}
				if len(req.Content.Pages) != 3 {
					t.Errorf("expected 3 pages, got %d: %v", len(req.Content.Pages), req.Content.Pages)
				}
				return nil
			})

		env := svc.AddDocument(ctx, AddDocumentParams{
			CollectionName: "docs",
			Path:           "b.txt",
			ContentType:    "text-pages",
			Content:        "page one\n---\npage two\n---\npage three",
		})

		if env.Status != models.StatusSuccess {
			t.Fatalf("expected success, got %s: %s", env.Status, env.Message)
		}
	})

	t.Run("auto requires valid base64", func(t *testing.T) {
		svc, _ := newTestService(t)

		env := svc.AddDocument(ctx, AddDocumentParams{
			CollectionName: "docs",
			Path:           "c.pdf",
			ContentType:    "auto",
			Content:        "not base64!!!",
		})

		if env.Status != models.StatusError {
			t.Fatal("expected error envelope")
		}
		if !strings.Contains(env.Message, "valid base64") {
			t.Errorf("unexpected message %q", env.Message)
		}
	})

	t.Run("auto forwards base64 payload", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))

		svc, client := newTestService(t)
		client.EXPECT().
			AddDocument(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req zeroentropy.AddDocumentRequest) error {
				if req.Content.Type != zeroentropy.ContentTypeAuto {
					t.Errorf("expected auto content, got %q", req.Content.Type)
				}
				if req.Content.Base64Data != payload {
					t.Error("base64 payload must pass through unmodified")
				}
				return nil
			})

		env := svc.AddDocument(ctx, AddDocumentParams{
			CollectionName: "docs",
			Path:           "c.pdf",
			ContentType:    "auto",
			Content:        payload,
		})

		if env.Status != models.StatusSuccess {
			t.Fatalf("expected success, got %s: %s", env.Status, env.Message)
		}
	})

	t.Run("unknown content type never calls remote", func(t *testing.T) {
		svc, _ := newTestService(t)

		env := svc.AddDocument(ctx, AddDocumentParams{
			CollectionName: "docs",
			Path:           "d.txt",
			ContentType:    "markdown",
			Content:        "x",
		})

		if env.Status != models.StatusError {
			t.Fatal("expected error envelope")
		}
		if !strings.Contains(env.Message, "content_type") {
			t.Errorf("unexpected message %q", env.Message)
		}
	})

	t.Run("required fields", func(t *testing.T) {
		svc, _ := newTestService(t)

		for _, p := range []AddDocumentParams{
			{Path: "a.txt", Content: "x"},
			{CollectionName: "docs", Content: "x"},
			{CollectionName: "docs", Path: "a.txt"},
		} {
			if env := svc.AddDocument(ctx, p); env.Status != models.StatusError {
				t.Errorf("expected error envelope for params %+v", p)
			}
		}
	})

	t.Run("conflict without overwrite", func(t *testing.T) {
		svc, client := newTestService(t)
		client.EXPECT().AddDocument(ctx, gomock.Any()).
			Return(&zeroentropy.APIError{StatusCode: http.StatusConflict, Message: "conflict"})

		env := svc.AddDocument(ctx, AddDocumentParams{
			CollectionName: "docs",
			Path:           "a.txt",
			Content:        "hello",
		})

		if env.Status != models.StatusError {
			t.Fatal("expected error envelope")
		}
		if !strings.Contains(env.Message, "already exists") {
			t.Errorf("unexpected message %q", env.Message)
		}
	})
}

func TestListDocuments(t *testing.T) {
	ctx := context.Background()

	makeDocs := func(n int) []zeroentropy.DocumentInfo {
		docs := make([]zeroentropy.DocumentInfo, n)
		for i := range docs {
			docs[i] = zeroentropy.DocumentInfo{Path: fmt.Sprintf("doc-%03d.txt", i)}
		}
		return docs
	}

	t.Run("uses configured default limit", func(t *testing.T) {
		svc, client := newTestService(t)
		client.EXPECT().
			GetDocumentInfoList(ctx, zeroentropy.GetDocumentInfoListRequest{
				CollectionName: "docs",
				Limit:          100,
			}).
			Return(makeDocs(3), nil)

		env := svc.ListDocuments(ctx, "docs", 0, "")

		if env.Status != models.StatusSuccess {
			t.Fatalf("expected success, got %s: %s", env.Status, env.Message)
		}
		data := env.Data.(models.DocumentList)
		if data.Count != 3 || data.NextPathGt != "" {
			t.Errorf("unexpected data count=%d next=%q", data.Count, data.NextPathGt)
		}
	})

	t.Run("full page yields cursor", func(t *testing.T) {
		svc, client := newTestService(t)
		client.EXPECT().
			GetDocumentInfoList(ctx, zeroentropy.GetDocumentInfoListRequest{
				CollectionName: "docs",
				Limit:          2,
				PathGt:         "doc-000.txt",
			}).
			Return(makeDocs(2), nil)

		env := svc.ListDocuments(ctx, "docs", 2, "doc-000.txt")

		data := env.Data.(models.DocumentList)
		if data.NextPathGt != "doc-001.txt" {
			t.Errorf("expected cursor doc-001.txt, got %q", data.NextPathGt)
		}
	})

	t.Run("limit over maximum rejected before dispatch", func(t *testing.T) {
		svc, _ := newTestService(t)

		env := svc.ListDocuments(ctx, "docs", zeroentropy.MaxDocumentList+1, "")

		if env.Status != models.StatusError {
			t.Fatal("expected error envelope")
		}
		if !strings.Contains(env.Message, "out of range") {
			t.Errorf("unexpected message %q", env.Message)
		}
	})
}

func TestGetDocumentInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("passes include_content through", func(t *testing.T) {
		content := "full text"
		svc, client := newTestService(t)
		client.EXPECT().
			GetDocumentInfo(ctx, zeroentropy.GetDocumentInfoRequest{
				CollectionName: "docs",
				Path:           "a.txt",
				IncludeContent: true,
			}).
			Return(&zeroentropy.DocumentInfo{Path: "a.txt", IndexStatus: "indexed", Content: &content}, nil)

		env := svc.GetDocumentInfo(ctx, "docs", "a.txt", true)

		if env.Status != models.StatusSuccess {
			t.Fatalf("expected success, got %s: %s", env.Status, env.Message)
		}
		doc := env.Data.(*zeroentropy.DocumentInfo)
		if doc.Content == nil || *doc.Content != "full text" {
			t.Errorf("expected content passthrough, got %+v", doc)
		}
	})

	t.Run("not found surfaces detail", func(t *testing.T) {
		svc, client := newTestService(t)
		client.EXPECT().GetDocumentInfo(ctx, gomock.Any()).
			Return(nil, &zeroentropy.APIError{StatusCode: http.StatusNotFound, Message: "Document not found"})

		env := svc.GetDocumentInfo(ctx, "docs", "missing.txt", false)

		if env.Status != models.StatusError {
			t.Fatal("expected error envelope")
		}
		if !strings.Contains(env.Message, "Document not found") {
			t.Errorf("unexpected message %q", env.Message)
		}
	})
}

func TestUpdateDocumentMetadata(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns id change", func(t *testing.T) {
		svc, client := newTestService(t)
		client.EXPECT().
			UpdateDocument(ctx, zeroentropy.UpdateDocumentRequest{
				CollectionName: "docs",
				Path:           "a.txt",
				Metadata:       map[string]any{"author": "Jane"},
			}).
			Return(&zeroentropy.UpdateDocumentResult{PreviousID: "id-1", NewID: "id-2"}, nil)

		env := svc.UpdateDocumentMetadata(ctx, "docs", "a.txt", map[string]any{"author": "Jane"})

		if env.Status != models.StatusSuccess {
			t.Fatalf("expected success, got %s: %s", env.Status, env.Message)
		}
		data := env.Data.(models.MetadataUpdate)
		if data.PreviousID != "id-1" || data.NewID != "id-2" {
			t.Errorf("unexpected data %+v", data)
		}
	})

	t.Run("empty metadata never calls remote", func(t *testing.T) {
		svc, _ := newTestService(t)

		env := svc.UpdateDocumentMetadata(ctx, "docs", "a.txt", nil)

		if env.Status != models.StatusError {
			t.Fatal("expected error envelope")
		}
	})
}

func TestDeleteDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, client := newTestService(t)
		client.EXPECT().DeleteDocument(ctx, "docs", "a.txt").Return(nil)

		env := svc.DeleteDocument(ctx, "docs", "a.txt")

		if env.Status != models.StatusSuccess {
			t.Fatalf("expected success, got %s: %s", env.Status, env.Message)
		}
	})

	t.Run("missing path never calls remote", func(t *testing.T) {
		svc, _ := newTestService(t)

		env := svc.DeleteDocument(ctx, "docs", "")

		if env.Status != models.StatusError {
			t.Fatal("expected error envelope")
		}
	})
}
