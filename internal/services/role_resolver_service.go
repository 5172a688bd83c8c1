package services

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

type roleResolverService struct {
	repo   repositories.Repository
	logger utils.Logger
}

// NewRoleResolverService creates the role resolver.
func NewRoleResolverService(repo repositories.Repository, logger utils.Logger) RoleResolverService {
	return &roleResolverService{
		repo:   repo,
		logger: logger,
	}
}

// Resolve queries every role table for the identity and classifies the
// outcome. Each table is consulted; repositories.ErrNotFound means "not a
// member" while any other failure aborts the whole resolution. A partial
// answer is never returned: reporting NONE because one table was unreachable
// would route a registered user back into profile completion.
func (s *roleResolverService) Resolve(ctx context.Context, identityID string) (*models.RoleResolution, error) {
	var (
		roles   []models.Role
		records = map[models.Role]any{}
	)

	for _, role := range models.AllRoles {
		record, err := s.lookup(ctx, role, identityID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, &ResolutionError{Role: role, Err: err}
		}
		roles = append(roles, role)
		records[role] = record
	}

	switch len(roles) {
	case 0:
		return &models.RoleResolution{Kind: models.ResolutionNone}, nil
	case 1:
		return &models.RoleResolution{
			Kind:   models.ResolutionSingle,
			Roles:  roles,
			Record: records[roles[0]],
		}, nil
	default:
		s.logger.Warn("identity present in multiple role tables",
			"identity_id", identityID,
			"roles", roles,
		)
		return &models.RoleResolution{Kind: models.ResolutionMultiple, Roles: roles}, nil
	}
}

func (s *roleResolverService) lookup(ctx context.Context, role models.Role, identityID string) (any, error) {
	switch role {
	case models.RoleStudent:
		return s.repo.Student().GetByID(ctx, identityID)
	case models.RoleTeacher:
		return s.repo.Teacher().GetByID(ctx, identityID)
	case models.RoleHOD:
		return s.repo.HOD().GetByID(ctx, identityID)
	case models.RoleAdmin:
		return s.repo.Admin().GetByID(ctx, identityID)
	}
	return nil, ErrInvalidRole
}
