// Package service is the tool dispatch layer: one method per exposed tool.
// Every method validates its parameters in full, performs at most one
// remote call, and always returns an envelope, on success and failure
// alike. No state is held between calls beyond the client handle.
package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/config"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/models"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
)

type Service struct {
	client   zeroentropy.Client
	defaults *config.Defaults
	logger   *zerolog.Logger
}

func NewService(client zeroentropy.Client, defaults *config.Defaults, logger *zerolog.Logger) *Service {
	return &Service{
		client:   client,
		defaults: defaults,
		logger:   logger,
	}
}

// Defaults exposes the loaded tool defaults to the adapters (the MCP
// resources need the configured resource collection).
func (s *Service) Defaults() *config.Defaults {
	return s.defaults
}

// remoteError converts a failed remote call into an error envelope,
// surfacing the remote message verbatim. No retries, no recovery.
func (s *Service) remoteError(action string, err error) models.Envelope {
	s.logger.Error().Err(err).Str("action", action).Msg("Remote call failed")

	var apiErr *zeroentropy.APIError
	if errors.As(err, &apiErr) {
		return models.Error(fmt.Sprintf("Error %s: %s", action, apiErr.Message))
	}
	return models.Error(fmt.Sprintf("Error %s: %v", action, err))
}
