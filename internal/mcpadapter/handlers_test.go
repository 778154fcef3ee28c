package mcpadapter

import (
	"context"
	"net/http"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/config"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/service"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy/mocks"
)

func newTestService(t *testing.T) (*service.Service, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	defaults, err := config.LoadDefaults()
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}

	logger := zerolog.Nop()
	return service.NewService(client, defaults, &logger), client
}

func TestAddTools_RegistersCatalog(t *testing.T) {
	svc, _ := newTestService(t)

	server := mcp.NewServer(&mcp.Implementation{Name: "zeroentropy", Version: "test"}, nil)
	AddTools(server, svc)
	AddResources(server, svc)
	AddPrompts(server)
}

func TestHandlers_EnvelopeOnSuccess(t *testing.T) {
	ctx := context.Background()
	svc, client := newTestService(t)
	client.EXPECT().AddCollection(ctx, "docs").Return(nil)

	handler := NewCreateCollectionHandler(svc)
	result, env, err := handler(ctx, nil, CreateCollectionInput{CollectionName: "docs"})

	if err != nil {
		t.Fatalf("handler must not return a protocol error, got %v", err)
	}
	if result != nil {
		t.Errorf("expected nil CallToolResult, got %v", result)
	}
	if env.Status != models.StatusSuccess {
		t.Errorf("expected success envelope, got %s: %s", env.Status, env.Message)
	}
}

func TestHandlers_FailuresStayInEnvelope(t *testing.T) {
	ctx := context.Background()

	t.Run("remote failure", func(t *testing.T) {
		svc, client := newTestService(t)
		client.EXPECT().AddCollection(ctx, "docs").
			Return(&zeroentropy.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid API key"})

		handler := NewCreateCollectionHandler(svc)
		_, env, err := handler(ctx, nil, CreateCollectionInput{CollectionName: "docs"})

		if err != nil {
			t.Fatalf("remote failures must ride in the envelope, got protocol error %v", err)
		}
		if env.Status != models.StatusError {
			t.Errorf("expected error envelope, got %s", env.Status)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		svc, _ := newTestService(t)

		handler := NewSearchDocumentsHandler(svc)
		_, env, err := handler(ctx, nil, SearchDocumentsInput{})

		if err != nil {
			t.Fatalf("validation failures must ride in the envelope, got protocol error %v", err)
		}
		if env.Status != models.StatusError {
			t.Errorf("expected error envelope, got %s", env.Status)
		}
	})
}

func TestSearchDocumentsHandler_PassesParamsThrough(t *testing.T) {
	ctx := context.Background()
	svc, client := newTestService(t)
	client.EXPECT().
		TopDocuments(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req zeroentropy.TopDocumentsRequest) ([]zeroentropy.DocumentResult, error) {
			if req.CollectionName != "docs" || req.Query != "entropy" || req.K != 3 {
				t.Errorf("unexpected request %+v", req)
			}
			return []zeroentropy.DocumentResult{{Path: "a.txt", Score: 0.9}}, nil
		})

	handler := NewSearchDocumentsHandler(svc)
	_, env, err := handler(ctx, nil, SearchDocumentsInput{
		CollectionName: "docs",
		Query:          "entropy",
		K:              3,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Status != models.StatusSuccess {
		t.Fatalf("expected success envelope, got %s: %s", env.Status, env.Message)
	}
}
