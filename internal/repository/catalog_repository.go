package repository

import (
	"context"

	"github.com/estateline/estateline-api/internal/models"
)

// CatalogRepositoryInterface defines the interface for developer, category
// and testimonial data access operations.
type CatalogRepositoryInterface interface {
	ListDevelopers(ctx context.Context) ([]*models.Developer, error)
	CreateDeveloper(ctx context.Context, req *models.UpsertDeveloperRequest) (int, error)
	UpdateDeveloper(ctx context.Context, id int, req *models.UpsertDeveloperRequest) error
	DeleteDeveloper(ctx context.Context, id int) error

	ListCategories(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (int, error)
	UpdateCategory(ctx context.Context, id int, req *models.UpsertCategoryRequest) error
	DeleteCategory(ctx context.Context, id int) error

	ListTestimonials(ctx context.Context, onlyVisible bool) ([]*models.Testimonial, error)
	CreateTestimonial(ctx context.Context, req *models.UpsertTestimonialRequest) (int, error)
	UpdateTestimonial(ctx context.Context, id int, req *models.UpsertTestimonialRequest) error
	DeleteTestimonial(ctx context.Context, id int) error
}

// CatalogRepository handles catalog data access
type CatalogRepository struct {
	store CatalogStore
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(store CatalogStore) CatalogRepositoryInterface {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) ListDevelopers(ctx context.Context) ([]*models.Developer, error) {
	return r.store.GetDevelopers(ctx)
}

func (r *CatalogRepository) CreateDeveloper(ctx context.Context, req *models.UpsertDeveloperRequest) (int, error) {
	return r.store.CreateDeveloper(ctx, req)
}

func (r *CatalogRepository) UpdateDeveloper(ctx context.Context, id int, req *models.UpsertDeveloperRequest) error {
	return r.store.UpdateDeveloper(ctx, id, req)
}

func (r *CatalogRepository) DeleteDeveloper(ctx context.Context, id int) error {
	return r.store.DeleteDeveloper(ctx, id)
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return r.store.GetCategories(ctx)
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (int, error) {
	return r.store.CreateCategory(ctx, req)
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, id int, req *models.UpsertCategoryRequest) error {
	return r.store.UpdateCategory(ctx, id, req)
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id int) error {
	return r.store.DeleteCategory(ctx, id)
}

func (r *CatalogRepository) ListTestimonials(ctx context.Context, onlyVisible bool) ([]*models.Testimonial, error) {
	return r.store.GetTestimonials(ctx, onlyVisible)
}

func (r *CatalogRepository) CreateTestimonial(ctx context.Context, req *models.UpsertTestimonialRequest) (int, error) {
	return r.store.CreateTestimonial(ctx, req)
}

func (r *CatalogRepository) UpdateTestimonial(ctx context.Context, id int, req *models.UpsertTestimonialRequest) error {
	return r.store.UpdateTestimonial(ctx, id, req)
}

func (r *CatalogRepository) DeleteTestimonial(ctx context.Context, id int) error {
	return r.store.DeleteTestimonial(ctx, id)
}
