package services_test

import (
	"context"
	"testing"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCatalogService_ListDevelopers(t *testing.T) {
	mockCatalogRepo := new(MockCatalogRepository)
	service := services.NewCatalogService(mockCatalogRepo)
	ctx := context.Background()

	developers := []*models.Developer{
		{ID: 1, Name: "Skyline Estates", Website: "https://skyline.example.com"},
		{ID: 2, Name: "Urban Nest"},
	}

	mockCatalogRepo.On("ListDevelopers", ctx).Return(developers, nil).Once()

	result, err := service.ListDevelopers(ctx)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Skyline Estates", result[0].Name)

	mockCatalogRepo.AssertExpectations(t)
}

func TestCatalogService_CreateDeveloper(t *testing.T) {
	mockCatalogRepo := new(MockCatalogRepository)
	service := services.NewCatalogService(mockCatalogRepo)
	ctx := context.Background()

	req := &models.UpsertDeveloperRequest{
		Name:        "Skyline Estates",
		Description: "Premium residential projects",
		Website:     "https://skyline.example.com",
	}

	mockCatalogRepo.On("CreateDeveloper", ctx, req).Return(7, nil).Once()

	id, err := service.CreateDeveloper(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, 7, id)

	mockCatalogRepo.AssertExpectations(t)
}

func TestCatalogService_ListCategories(t *testing.T) {
	mockCatalogRepo := new(MockCatalogRepository)
	service := services.NewCatalogService(mockCatalogRepo)
	ctx := context.Background()

	categories := []*models.Category{
		{ID: 1, Name: "Ready To Move", Slug: "ready-to-move", SortOrder: 1},
		{ID: 2, Name: "Luxury", Slug: "luxury", SortOrder: 2},
	}

	mockCatalogRepo.On("ListCategories", ctx).Return(categories, nil).Once()

	result, err := service.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "ready-to-move", result[0].Slug)

	mockCatalogRepo.AssertExpectations(t)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	mockCatalogRepo := new(MockCatalogRepository)
	service := services.NewCatalogService(mockCatalogRepo)
	ctx := context.Background()

	req := &models.UpsertCategoryRequest{Name: "Ready To Move", SortOrder: 3}

	mockCatalogRepo.On("CreateCategory", ctx, req).Return(4, nil).Once()

	id, err := service.CreateCategory(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, 4, id)

	mockCatalogRepo.AssertExpectations(t)
}

func TestCatalogService_ListTestimonials_PublicOnlyVisible(t *testing.T) {
	mockCatalogRepo := new(MockCatalogRepository)
	service := services.NewCatalogService(mockCatalogRepo)
	ctx := context.Background()

	testimonials := []*models.Testimonial{
		{ID: 1, AuthorName: "Priya Sharma", AuthorTitle: "Homeowner", Quote: "Smooth experience", Rating: 5, IsVisible: true},
	}

	mockCatalogRepo.On("ListTestimonials", ctx, true).Return(testimonials, nil).Once()

	result, err := service.ListTestimonials(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Priya Sharma", result[0].AuthorName)
	assert.Equal(t, "Homeowner", result[0].AuthorTitle)

	mockCatalogRepo.AssertExpectations(t)
}

func TestCatalogService_ListTestimonials_AdminIncludesHidden(t *testing.T) {
	mockCatalogRepo := new(MockCatalogRepository)
	service := services.NewCatalogService(mockCatalogRepo)
	ctx := context.Background()

	testimonials := []*models.Testimonial{
		{ID: 1, AuthorName: "Priya Sharma", IsVisible: true},
		{ID: 2, AuthorName: "Rahul Mehta", IsVisible: false},
	}

	mockCatalogRepo.On("ListTestimonials", ctx, false).Return(testimonials, nil).Once()

	result, err := service.ListTestimonials(ctx, true)
	assert.NoError(t, err)
	assert.Len(t, result, 2)

	mockCatalogRepo.AssertExpectations(t)
}

func TestCatalogService_CreateTestimonial(t *testing.T) {
	mockCatalogRepo := new(MockCatalogRepository)
	service := services.NewCatalogService(mockCatalogRepo)
	ctx := context.Background()

	req := &models.UpsertTestimonialRequest{
		AuthorName:  "Priya Sharma",
		AuthorTitle: "Homeowner",
		Quote:       "Smooth experience from booking to possession",
		Rating:      5,
		IsVisible:   true,
	}

	mockCatalogRepo.On("CreateTestimonial", ctx, req).Return(11, nil).Once()

	id, err := service.CreateTestimonial(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, 11, id)

	mockCatalogRepo.AssertExpectations(t)
}

func TestCatalogService_UpdateTestimonial_RepoError(t *testing.T) {
	mockCatalogRepo := new(MockCatalogRepository)
	service := services.NewCatalogService(mockCatalogRepo)
	ctx := context.Background()

	req := &models.UpsertTestimonialRequest{AuthorName: "Priya Sharma", Quote: "Great"}

	mockCatalogRepo.On("UpdateTestimonial", ctx, 11, req).Return(assert.AnError).Once()

	err := service.UpdateTestimonial(ctx, 11, req)
	assert.Error(t, err)

	mockCatalogRepo.AssertExpectations(t)
}
