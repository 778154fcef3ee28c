package zeroentropy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.zeroentropy.dev/v1"

// HTTPClient talks to the ZeroEntropy REST API. Every operation is a JSON
// POST; cancellation and timeouts come from the request context and the
// underlying http.Client.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(apiKey string, baseURL string, timeout time.Duration) (*HTTPClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ZeroEntropy API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, reqBody any, out any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to encode request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) AddCollection(ctx context.Context, collectionName string) error {
	req := struct {
		CollectionName string `json:"collection_name"`
	}{collectionName}
	return c.post(ctx, "/collections/add-collection", req, nil)
}

func (c *HTTPClient) DeleteCollection(ctx context.Context, collectionName string) error {
	req := struct {
		CollectionName string `json:"collection_name"`
	}{collectionName}
	return c.post(ctx, "/collections/delete-collection", req, nil)
}

func (c *HTTPClient) GetCollectionList(ctx context.Context) ([]string, error) {
	var out struct {
		CollectionNames []string `json:"collection_names"`
	}
	if err := c.post(ctx, "/collections/get-collection-list", struct{}{}, &out); err != nil {
		return nil, err
	}
	return out.CollectionNames, nil
}

func (c *HTTPClient) GetStatus(ctx context.Context, collectionName string) (*Status, error) {
	req := struct {
		CollectionName string `json:"collection_name,omitempty"`
	}{collectionName}
	var out Status
	if err := c.post(ctx, "/status/get-status", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AddDocument(ctx context.Context, req AddDocumentRequest) error {
	return c.post(ctx, "/documents/add-document", req, nil)
}

func (c *HTTPClient) GetDocumentInfo(ctx context.Context, req GetDocumentInfoRequest) (*DocumentInfo, error) {
	var out struct {
		Document DocumentInfo `json:"document"`
	}
	if err := c.post(ctx, "/documents/get-document-info", req, &out); err != nil {
		return nil, err
	}
	return &out.Document, nil
}

func (c *HTTPClient) GetDocumentInfoList(ctx context.Context, req GetDocumentInfoListRequest) ([]DocumentInfo, error) {
	var out struct {
		Documents []DocumentInfo `json:"documents"`
	}
	if err := c.post(ctx, "/documents/get-document-info-list", req, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

func (c *HTTPClient) UpdateDocument(ctx context.Context, req UpdateDocumentRequest) (*UpdateDocumentResult, error) {
	var out UpdateDocumentResult
	if err := c.post(ctx, "/documents/update-document", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, collectionName string, path string) error {
	req := struct {
		CollectionName string `json:"collection_name"`
		Path           string `json:"path"`
	}{collectionName, path}
	return c.post(ctx, "/documents/delete-document", req, nil)
}

func (c *HTTPClient) TopDocuments(ctx context.Context, req TopDocumentsRequest) ([]DocumentResult, error) {
	var out struct {
		Results []DocumentResult `json:"results"`
	}
	if err := c.post(ctx, "/queries/top-documents", req, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *HTTPClient) TopPages(ctx context.Context, req TopPagesRequest) ([]PageResult, error) {
	var out struct {
		Results []PageResult `json:"results"`
	}
	if err := c.post(ctx, "/queries/top-pages", req, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *HTTPClient) TopSnippets(ctx context.Context, req TopSnippetsRequest) ([]SnippetResult, error) {
	var out struct {
		Results []SnippetResult `json:"results"`
	}
	if err := c.post(ctx, "/queries/top-snippets", req, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *HTTPClient) ParseDocument(ctx context.Context, base64Data string) ([]string, error) {
	req := struct {
		Base64Data string `json:"base64_data"`
	}{base64Data}
	var out struct {
		Pages []string `json:"pages"`
	}
	if err := c.post(ctx, "/parsers/parse-document", req, &out); err != nil {
		return nil, err
	}
	return out.Pages, nil
}

func (c *HTTPClient) Rerank(ctx context.Context, req RerankRequest) ([]RerankResult, error) {
	var out struct {
		Results []RerankResult `json:"results"`
	}
	if err := c.post(ctx, "/models/rerank", req, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}
