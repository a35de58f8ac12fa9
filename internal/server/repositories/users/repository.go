// Package users provides the persistence boundary for account records.
package users

import (
	"context"

	"github.com/noflow/engine/internal/server/models"
)

// Repository is the store contract the credential service depends on.
// Implementations must return common.ErrNotFound from GetByUsername when no
// record matches, and common.ErrAlreadyExists from Create when the username
// uniqueness constraint is violated.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
