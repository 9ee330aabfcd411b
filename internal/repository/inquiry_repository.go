package repository

import (
	"context"

	"github.com/estateline/estateline-api/internal/models"
)

// InquiryRepositoryInterface defines the interface for inquiry data access operations.
type InquiryRepositoryInterface interface {
	Create(ctx context.Context, inquiry *models.Inquiry) (int, bool, error)
	List(ctx context.Context, filter models.InquiryListFilter) ([]*models.Inquiry, error)
	GetByID(ctx context.Context, id int) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id int, status models.InquiryStatus) error
}

// InquiryRepository handles inquiry data access
type InquiryRepository struct {
	store InquiryStore
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(store InquiryStore) InquiryRepositoryInterface {
	return &InquiryRepository{store: store}
}

// Create persists an inquiry. The bool result reports whether a new row was
// written; false means the request_id was already recorded.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) (int, bool, error) {
	return r.store.CreateInquiry(ctx, inquiry)
}

// List retrieves inquiries matching the filter, newest first
func (r *InquiryRepository) List(ctx context.Context, filter models.InquiryListFilter) ([]*models.Inquiry, error) {
	return r.store.GetInquiries(ctx, filter)
}

// GetByID retrieves a single inquiry
func (r *InquiryRepository) GetByID(ctx context.Context, id int) (*models.Inquiry, error) {
	return r.store.GetInquiryByID(ctx, id)
}

// UpdateStatus moves an inquiry through the triage lifecycle
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id int, status models.InquiryStatus) error {
	return r.store.UpdateInquiryStatus(ctx, id, status)
}
