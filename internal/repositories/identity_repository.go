package repositories

import (
	"context"

	"github.com/SAP-F-2025/school-management-service/internal/models"
)

// IdentityRepository reads identities from the external identity provider.
// The service is not the owner of identity data; writes are limited to the
// denormalized role tag used for display.
type IdentityRepository interface {
	GetByID(ctx context.Context, id string) (*models.Identity, error)
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
	ExistsByID(ctx context.Context, id string) (bool, error)

	// SetRoleTag writes the display-only role hint onto the identity profile.
	// Failures here must not fail profile completion.
	SetRoleTag(ctx context.Context, id string, role models.Role) error
}
