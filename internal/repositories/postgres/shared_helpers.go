package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/repositories"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// handleDBError maps driver errors onto the repository error taxonomy.
// Duplicate-key violations stay distinguishable so callers can treat them as
// the expected concurrent-loser outcome rather than a generic failure.
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s failed: %w", operation, repositories.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s failed: %w", operation, repositories.ErrDuplicateKey)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s failed: %w", operation, repositories.ErrDuplicateKey)
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}

// getDB prefers an open transaction over the pooled handle.
func getDB(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

// applyListFilters applies shared roster filters to a query.
func applyListFilters(query *gorm.DB, filters repositories.ListFilters) *gorm.DB {
	if filters.Query != "" {
		like := "%" + filters.Query + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}
	return query
}

// applyPagination applies limit/offset with sane bounds.
func applyPagination(query *gorm.DB, filters repositories.ListFilters) *gorm.DB {
	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}
	return query.Limit(limit).Offset(offset)
}
