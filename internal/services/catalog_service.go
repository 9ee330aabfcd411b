package services

import (
	"context"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/repository"
)

// CatalogService handles developers, categories and testimonials
type CatalogService struct {
	catalogRepo repository.CatalogRepositoryInterface
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo repository.CatalogRepositoryInterface) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) ListDevelopers(ctx context.Context) ([]*models.Developer, error) {
	return s.catalogRepo.ListDevelopers(ctx)
}

func (s *CatalogService) CreateDeveloper(ctx context.Context, req *models.UpsertDeveloperRequest) (int, error) {
	return s.catalogRepo.CreateDeveloper(ctx, req)
}

func (s *CatalogService) UpdateDeveloper(ctx context.Context, id int, req *models.UpsertDeveloperRequest) error {
	return s.catalogRepo.UpdateDeveloper(ctx, id, req)
}

func (s *CatalogService) DeleteDeveloper(ctx context.Context, id int) error {
	return s.catalogRepo.DeleteDeveloper(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.catalogRepo.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (int, error) {
	return s.catalogRepo.CreateCategory(ctx, req)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int, req *models.UpsertCategoryRequest) error {
	return s.catalogRepo.UpdateCategory(ctx, id, req)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	return s.catalogRepo.DeleteCategory(ctx, id)
}

// ListTestimonials returns testimonials; public callers only see visible ones
func (s *CatalogService) ListTestimonials(ctx context.Context, includeHidden bool) ([]*models.Testimonial, error) {
	return s.catalogRepo.ListTestimonials(ctx, !includeHidden)
}

func (s *CatalogService) CreateTestimonial(ctx context.Context, req *models.UpsertTestimonialRequest) (int, error) {
	return s.catalogRepo.CreateTestimonial(ctx, req)
}

func (s *CatalogService) UpdateTestimonial(ctx context.Context, id int, req *models.UpsertTestimonialRequest) error {
	return s.catalogRepo.UpdateTestimonial(ctx, id, req)
}

func (s *CatalogService) DeleteTestimonial(ctx context.Context, id int) error {
	return s.catalogRepo.DeleteTestimonial(ctx, id)
}
