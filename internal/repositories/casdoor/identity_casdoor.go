package casdoor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/redis/go-redis/v9"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
)

// roleTagProperty is the Casdoor profile property carrying the denormalized
// role hint. Display only; table membership stays authoritative.
const roleTagProperty = "school_role"

// CasdoorConfig holds the configuration for the Casdoor connection.
type CasdoorConfig struct {
	Endpoint         string
	ClientID         string
	ClientSecret     string
	Certificate      string
	OrganizationName string
	ApplicationName  string
}

type IdentityCasdoor struct {
	client *casdoorsdk.Client
	redis  *redis.Client
	config CasdoorConfig

	// Cache settings
	cachePrefix string
	cacheTTL    time.Duration
}

func NewIdentityCasdoor(config CasdoorConfig, redisClient *redis.Client) repositories.IdentityRepository {
	client := casdoorsdk.NewClient(
		config.Endpoint,
		config.ClientID,
		config.ClientSecret,
		config.Certificate,
		config.OrganizationName,
		config.ApplicationName,
	)

	return &IdentityCasdoor{
		client:      client,
		redis:       redisClient,
		config:      config,
		cachePrefix: "identity:",
		cacheTTL:    15 * time.Minute,
	}
}

// ===== CACHE METHODS =====

func (r *IdentityCasdoor) getCacheKey(key string) string {
	return fmt.Sprintf("%s%s", r.cachePrefix, key)
}

func (r *IdentityCasdoor) getIdentityFromCache(ctx context.Context, key string) (*models.Identity, error) {
	if r.redis == nil {
		return nil, nil // Cache not available
	}

	data, err := r.redis.Get(ctx, r.getCacheKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Not found in cache
		}
		return nil, fmt.Errorf("failed to get from cache: %w", err)
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached identity: %w", err)
	}

	return &identity, nil
}

func (r *IdentityCasdoor) setIdentityCache(ctx context.Context, key string, identity *models.Identity) error {
	if r.redis == nil {
		return nil
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity for cache: %w", err)
	}

	return r.redis.Set(ctx, r.getCacheKey(key), data, r.cacheTTL).Err()
}

func (r *IdentityCasdoor) invalidateIdentityCache(ctx context.Context, identity *models.Identity) {
	if r.redis == nil || identity == nil {
		return
	}
	r.redis.Del(ctx,
		r.getCacheKey(fmt.Sprintf("id:%s", identity.ID)),
		r.getCacheKey(fmt.Sprintf("email:%s", identity.Email)),
	)
}

// ===== CONVERSION =====

func (r *IdentityCasdoor) convertCasdoorUser(casdoorUser *casdoorsdk.User) *models.Identity {
	if casdoorUser == nil {
		return nil
	}

	var createdAt, updatedAt time.Time
	if casdoorUser.CreatedTime != "" {
		createdAt, _ = time.Parse(time.RFC3339, casdoorUser.CreatedTime)
	}
	if casdoorUser.UpdatedTime != "" {
		updatedAt, _ = time.Parse(time.RFC3339, casdoorUser.UpdatedTime)
	}

	roleTag := ""
	if casdoorUser.Properties != nil {
		roleTag = casdoorUser.Properties[roleTagProperty]
	}

	return &models.Identity{
		ID:            casdoorUser.Id,
		FullName:      casdoorUser.DisplayName,
		Email:         casdoorUser.Email,
		AvatarURL:     &casdoorUser.Avatar,
		EmailVerified: casdoorUser.EmailVerified,
		RoleTag:       roleTag,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

// ===== READ OPERATIONS =====

func (r *IdentityCasdoor) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	cacheKey := fmt.Sprintf("id:%s", id)
	if cached, err := r.getIdentityFromCache(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	casdoorUser, err := r.client.GetUserByUserId(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get identity from Casdoor: %w", err)
	}
	if casdoorUser == nil {
		return nil, fmt.Errorf("identity not found with ID %s: %w", id, repositories.ErrNotFound)
	}

	identity := r.convertCasdoorUser(casdoorUser)

	r.setIdentityCache(ctx, cacheKey, identity)
	r.setIdentityCache(ctx, fmt.Sprintf("email:%s", identity.Email), identity)

	return identity, nil
}

func (r *IdentityCasdoor) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	cacheKey := fmt.Sprintf("email:%s", email)
	if cached, err := r.getIdentityFromCache(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	casdoorUser, err := r.client.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get identity by email from Casdoor: %w", err)
	}
	if casdoorUser == nil {
		return nil, fmt.Errorf("identity not found with email %s: %w", email, repositories.ErrNotFound)
	}

	identity := r.convertCasdoorUser(casdoorUser)

	r.setIdentityCache(ctx, cacheKey, identity)
	r.setIdentityCache(ctx, fmt.Sprintf("id:%s", identity.ID), identity)

	return identity, nil
}

func (r *IdentityCasdoor) ExistsByID(ctx context.Context, id string) (bool, error) {
	cacheKey := fmt.Sprintf("exists:id:%s", id)
	if r.redis != nil {
		exists, err := r.redis.Get(ctx, r.getCacheKey(cacheKey)).Result()
		if err == nil {
			return exists == "true", nil
		}
	}

	casdoorUser, err := r.client.GetUserByUserId(id)
	if err != nil {
		return false, fmt.Errorf("failed to check identity existence: %w", err)
	}

	exists := casdoorUser != nil
	if r.redis != nil {
		r.redis.Set(ctx, r.getCacheKey(cacheKey), fmt.Sprintf("%t", exists), 1*time.Minute)
	}

	return exists, nil
}

// ===== WRITE OPERATIONS =====

// SetRoleTag writes the display-only role hint to the Casdoor profile and
// invalidates cached copies.
func (r *IdentityCasdoor) SetRoleTag(ctx context.Context, id string, role models.Role) error {
	casdoorUser, err := r.client.GetUserByUserId(id)
	if err != nil {
		return fmt.Errorf("failed to get identity for role tag update: %w", err)
	}
	if casdoorUser == nil {
		return fmt.Errorf("identity not found with ID %s: %w", id, repositories.ErrNotFound)
	}

	if casdoorUser.Properties == nil {
		casdoorUser.Properties = make(map[string]string)
	}
	casdoorUser.Properties[roleTagProperty] = string(role)

	if _, err := r.client.UpdateUser(casdoorUser); err != nil {
		return fmt.Errorf("failed to update role tag in Casdoor: %w", err)
	}

	r.invalidateIdentityCache(ctx, r.convertCasdoorUser(casdoorUser))

	return nil
}
