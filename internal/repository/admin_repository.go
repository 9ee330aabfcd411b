package repository

import (
	"context"

	"github.com/estateline/estateline-api/internal/models"
)

// AdminRepositoryInterface defines the interface for admin account data access operations.
type AdminRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByUUID(ctx context.Context, adminUUID string) (*models.AdminUser, error)
}

// AdminRepository handles admin account data access
type AdminRepository struct {
	store AdminStore
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(store AdminStore) AdminRepositoryInterface {
	return &AdminRepository{store: store}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return r.store.GetAdminByEmail(ctx, email)
}

func (r *AdminRepository) GetByUUID(ctx context.Context, adminUUID string) (*models.AdminUser, error) {
	return r.store.GetAdminByUUID(ctx, adminUUID)
}
