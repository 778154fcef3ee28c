package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
)

// ParseDocument extracts page texts from a binary document without
// indexing it anywhere: the remote parser is stateless and no collection
// is touched.
func (s *Service) ParseDocument(ctx context.Context, base64Data string) models.Envelope {
	if base64Data == "" {
		return models.Error("base64_data is required")
	}
	if _, err := base64.StdEncoding.DecodeString(base64Data); err != nil {
		return models.Error(fmt.Sprintf("base64_data is not valid base64: %v", err))
	}

	pages, err := s.client.ParseDocument(ctx, base64Data)
	if err != nil {
		return s.remoteError("parsing document", err)
	}

	data := models.ParsedDocument{
		Pages:    pages,
		NumPages: len(pages),
	}
	return models.Success(fmt.Sprintf("Parsed %d pages", data.NumPages), data)
}
