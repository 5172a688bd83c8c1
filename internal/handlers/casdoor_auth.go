package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/school-management-service/internal/config"
	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/services"
)

// CasdoorAuthMiddleware provides authentication using the Casdoor SDK.
// Authentication only establishes WHO the caller is; WHAT they are (their
// role) always comes from role-table membership, never from token claims or
// the identity's display role tag.
type CasdoorAuthMiddleware struct {
	client       *casdoorsdk.Client
	identityRepo repositories.IdentityRepository
	resolver     services.RoleResolverService
	config       config.CasdoorConfig
}

// NewCasdoorAuthMiddleware creates a new Casdoor authentication middleware.
func NewCasdoorAuthMiddleware(
	cfg config.CasdoorConfig,
	identityRepo repositories.IdentityRepository,
	resolver services.RoleResolverService,
) *CasdoorAuthMiddleware {
	client := casdoorsdk.NewClient(
		cfg.Endpoint,
		cfg.ClientID,
		cfg.ClientSecret,
		cfg.Cert,
		cfg.Application,
		cfg.Organization,
	)

	return &CasdoorAuthMiddleware{
		client:       client,
		identityRepo: identityRepo,
		resolver:     resolver,
		config:       cfg,
	}
}

// AuthMiddleware validates the bearer token and attaches the identity to the
// request context.
func (cam *CasdoorAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "authorization header missing",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := cam.client.ParseJwtToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": fmt.Sprintf("invalid token: %v", err),
			})
			c.Abort()
			return
		}

		identity, err := cam.identityFromClaims(c.Request.Context(), claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "failed to resolve identity",
			})
			c.Abort()
			return
		}

		c.Set("identity_id", identity.ID)
		c.Set("identity", identity)
		c.Set("identity_email", identity.Email)

		c.Next()
	}
}

// RequireRoleMiddleware gates a route group by role-table membership. This is
// advisory routing only; services re-check authorization against the tables
// themselves.
func (cam *CasdoorAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identityID := c.GetString("identity_id")
		if identityID == "" {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "identity not found in context",
			})
			c.Abort()
			return
		}

		resolution, err := cam.resolver.Resolve(c.Request.Context(), identityID)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "unavailable",
				"message": "unable to determine account role, please retry",
			})
			c.Abort()
			return
		}

		role := resolution.Role()
		for _, required := range requiredRoles {
			if role == required {
				c.Set("resolved_role", role)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": fmt.Sprintf("insufficient permissions, required role: %v", requiredRoles),
		})
		c.Abort()
	}
}

// identityFromClaims loads the identity from the repository, falling back to
// the claims themselves when the provider lookup fails.
func (cam *CasdoorAuthMiddleware) identityFromClaims(ctx context.Context, claims *casdoorsdk.Claims) (*models.Identity, error) {
	identityID := claims.Id
	if identityID == "" {
		return nil, fmt.Errorf("token carries no identity id")
	}

	identity, err := cam.identityRepo.GetByID(ctx, identityID)
	if err == nil {
		return identity, nil
	}

	identity = &models.Identity{
		ID:            identityID,
		FullName:      claims.DisplayName,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}
	if claims.Avatar != "" {
		avatar := claims.Avatar
		identity.AvatarURL = &avatar
	}
	return identity, nil
}
