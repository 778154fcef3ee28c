package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/api"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/api/middleware"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/config"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/service"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy/mocks"
)

func setupTestAPI(t *testing.T) (*restful.Container, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	defaults, err := config.LoadDefaults()
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}

	logger := zerolog.Nop()
	svc := service.NewService(client, defaults, &logger)
	handler := api.NewHandler(svc, &logger)

	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	return container, client
}

func doJSON(t *testing.T, container *restful.Container, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) models.Envelope {
	t.Helper()

	var env models.Envelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse envelope: %v (body: %s)", err, recorder.Body.String())
	}
	return env
}

func TestAPI_Health(t *testing.T) {
	container, _ := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/health", nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", response.Status)
	}
}

func TestAPI_CreateCollection(t *testing.T) {
	container, client := setupTestAPI(t)
	client.EXPECT().AddCollection(gomock.Any(), "docs").Return(nil)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/collections",
		api.CreateCollectionRequest{CollectionName: "docs"})

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	env := decodeEnvelope(t, recorder)
	if env.Status != models.StatusSuccess {
		t.Errorf("expected success envelope, got %s: %s", env.Status, env.Message)
	}
}

func TestAPI_CreateCollection_Conflict(t *testing.T) {
	container, client := setupTestAPI(t)
	client.EXPECT().AddCollection(gomock.Any(), "docs").
		Return(&zeroentropy.APIError{StatusCode: http.StatusConflict, Message: "conflict"})

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/collections",
		api.CreateCollectionRequest{CollectionName: "docs"})

	// Failures ride inside the envelope, the HTTP layer stays 200.
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	env := decodeEnvelope(t, recorder)
	if env.Status != models.StatusError {
		t.Errorf("expected error envelope, got %s", env.Status)
	}
}

func TestAPI_ListCollections(t *testing.T) {
	container, client := setupTestAPI(t)
	client.EXPECT().GetCollectionList(gomock.Any()).Return([]string{"docs"}, nil)

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/collections", nil)

	env := decodeEnvelope(t, recorder)
	if env.Status != models.StatusSuccess {
		t.Fatalf("expected success envelope, got %s: %s", env.Status, env.Message)
	}
}

func TestAPI_DeleteCollection(t *testing.T) {
	container, client := setupTestAPI(t)
	client.EXPECT().DeleteCollection(gomock.Any(), "docs").Return(nil)

	recorder := doJSON(t, container, http.MethodDelete, "/api/v1/collections/docs", nil)

	env := decodeEnvelope(t, recorder)
	if env.Status != models.StatusSuccess {
		t.Fatalf("expected success envelope, got %s: %s", env.Status, env.Message)
	}
}

func TestAPI_AddDocument(t *testing.T) {
	container, client := setupTestAPI(t)
	client.EXPECT().AddDocument(gomock.Any(), gomock.Any()).Return(nil)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/collections/docs/documents",
		api.AddDocumentRequest{Path: "a.txt", Content: "hello"})

	env := decodeEnvelope(t, recorder)
	if env.Status != models.StatusSuccess {
		t.Fatalf("expected success envelope, got %s: %s", env.Status, env.Message)
	}
}

func TestAPI_SearchDocuments(t *testing.T) {
	container, client := setupTestAPI(t)
	client.EXPECT().
		TopDocuments(gomock.Any(), gomock.Any()).
		Return([]zeroentropy.DocumentResult{{Path: "a.txt", Score: 0.9}}, nil)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/collections/docs/search/documents",
		api.SearchDocumentsRequest{Query: "entropy"})

	env := decodeEnvelope(t, recorder)
	if env.Status != models.StatusSuccess {
		t.Fatalf("expected success envelope, got %s: %s", env.Status, env.Message)
	}
}

func TestAPI_SearchDocuments_KOutOfRange(t *testing.T) {
	container, _ := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/collections/docs/search/documents",
		api.SearchDocumentsRequest{Query: "entropy", K: 5000})

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	env := decodeEnvelope(t, recorder)
	if env.Status != models.StatusError {
		t.Errorf("expected error envelope, got %s", env.Status)
	}
}

func TestAPI_Rerank(t *testing.T) {
	container, client := setupTestAPI(t)
	client.EXPECT().
		Rerank(gomock.Any(), gomock.Any()).
		Return([]zeroentropy.RerankResult{{Index: 0, RelevanceScore: 0.9}}, nil)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/rerank",
		api.RerankRequest{Query: "entropy", Documents: []string{"entropy measures disorder"}})

	env := decodeEnvelope(t, recorder)
	if env.Status != models.StatusSuccess {
		t.Fatalf("expected success envelope, got %s: %s", env.Status, env.Message)
	}
}

func TestAPI_MalformedBody(t *testing.T) {
	container, _ := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/collections", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for malformed body, got %d", recorder.Code)
	}
}
