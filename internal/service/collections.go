package service

import (
	"context"
	"fmt"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
)

func (s *Service) CreateCollection(ctx context.Context, collectionName string) models.Envelope {
	if collectionName == "" {
		return models.Error("collection_name is required")
	}

	if err := s.client.AddCollection(ctx, collectionName); err != nil {
		if zeroentropy.IsConflict(err) {
			return models.Error(fmt.Sprintf("Collection '%s' already exists", collectionName))
		}
		return s.remoteError("creating collection", err)
	}

	s.logger.Info().Str("collection", collectionName).Msg("Collection created")
	return models.Success(fmt.Sprintf("Collection '%s' created successfully", collectionName), nil)
}

func (s *Service) DeleteCollection(ctx context.Context, collectionName string) models.Envelope {
	if collectionName == "" {
		return models.Error("collection_name is required")
	}

	if err := s.client.DeleteCollection(ctx, collectionName); err != nil {
		return s.remoteError("deleting collection", err)
	}

	s.logger.Info().Str("collection", collectionName).Msg("Collection deleted")
	return models.Success(fmt.Sprintf("Collection '%s' deleted successfully", collectionName), nil)
}

func (s *Service) ListCollections(ctx context.Context) models.Envelope {
	names, err := s.client.GetCollectionList(ctx)
	if err != nil {
		return s.remoteError("listing collections", err)
	}

	data := models.CollectionList{
		Collections: names,
		Count:       len(names),
	}
	return models.Success(fmt.Sprintf("Found %d collections", data.Count), data)
}

// GetCollectionStatus reports indexing progress. An empty collection name
// asks the remote service for account-wide counts.
func (s *Service) GetCollectionStatus(ctx context.Context, collectionName string) models.Envelope {
	status, err := s.client.GetStatus(ctx, collectionName)
	if err != nil {
		return s.remoteError("getting status", err)
	}

	data := models.CollectionStatus{
		Collection:           collectionName,
		NumDocuments:         status.NumDocuments,
		NumParsingDocuments:  status.NumParsingDocuments,
		NumIndexingDocuments: status.NumIndexingDocuments,
		NumIndexedDocuments:  status.NumIndexedDocuments,
		NumFailedDocuments:   status.NumFailedDocuments,
	}
	return models.Success("Status retrieved", data)
}
