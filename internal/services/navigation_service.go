package services

import (
	"context"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

type navigationService struct {
	resolver RoleResolverService
	logger   utils.Logger
}

// NewNavigationService creates the session/navigation gate.
func NewNavigationService(resolver RoleResolverService, logger utils.Logger) NavigationService {
	return &navigationService{
		resolver: resolver,
		logger:   logger,
	}
}

// Route decides where an authenticated identity lands. The decision is
// computed fresh from role-table membership on every call; nothing about a
// previous session or the identity's display role tag is consulted.
//
// A resolution failure propagates as an error so the client can retry; the
// gate never downgrades "unknown" to "unregistered".
func (s *navigationService) Route(ctx context.Context, identityID string) (*RouteDecision, error) {
	resolution, err := s.resolver.Resolve(ctx, identityID)
	if err != nil {
		return nil, err
	}

	switch resolution.Kind {
	case models.ResolutionNone:
		return &RouteDecision{Destination: RouteProfileCompletion}, nil

	case models.ResolutionMultiple:
		return &RouteDecision{
			Destination: RouteRoleConflict,
			Roles:       resolution.Roles,
		}, nil

	default:
		return &RouteDecision{
			Destination: RouteDashboard,
			Role:        resolution.Role(),
			Record:      resolution.Record,
		}, nil
	}
}
