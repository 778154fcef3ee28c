package service

import (
	"context"
	"fmt"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
)

type RerankParams struct {
	Query     string
	Documents []string
	Model     string
	TopN      int
}

// RerankDocuments forwards raw texts to the remote reranking model and
// returns them reordered with relevance scores. No local ranking happens.
func (s *Service) RerankDocuments(ctx context.Context, p RerankParams) models.Envelope {
	if p.Query == "" {
		return models.Error("query is required")
	}
	if len(p.Documents) == 0 {
		return models.Error("documents is required")
	}
	if p.TopN < 0 || p.TopN > len(p.Documents) {
		return models.Error(fmt.Sprintf("top_n %d is out of range (1-%d)", p.TopN, len(p.Documents)))
	}

	model := p.Model
	if model == "" {
		model = s.defaults.Rerank.Model
	}

	topN := p.TopN
	if topN == 0 {
		topN = len(p.Documents)
	}

	results, err := s.client.Rerank(ctx, zeroentropy.RerankRequest{
		Query:     p.Query,
		Documents: p.Documents,
		Model:     model,
		TopN:      topN,
	})
	if err != nil {
		return s.remoteError("reranking documents", err)
	}

	reranked := make([]models.RerankedDocument, 0, len(results))
	for _, r := range results {
		doc := ""
		if r.Index >= 0 && r.Index < len(p.Documents) {
			doc = p.Documents[r.Index]
		}
		reranked = append(reranked, models.RerankedDocument{
			Index:          r.Index,
			RelevanceScore: r.RelevanceScore,
			Document:       doc,
		})
	}

	data := models.RerankResults{Reranked: reranked}
	return models.Success(fmt.Sprintf("Reranked %d documents", len(reranked)), data)
}
