package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateIdentityCache drops cached identity data after a profile change.
func InvalidateIdentityCache(ctx context.Context, cm *CacheManager, identityID, email string) {
	SafeDelete(ctx, cm.Identity,
		fmt.Sprintf("id:%s", identityID),
		fmt.Sprintf("email:%s", email))
	SafeDelete(ctx, cm.Exists, fmt.Sprintf("id:%s", identityID))
}

// InvalidateDashboardCache drops cached dashboard stats after a registration
// or an approval decision changes the aggregates.
func InvalidateDashboardCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Stats, "dashboard:*")
}
