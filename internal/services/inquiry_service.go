package services

import (
	"context"
	"strconv"
	"time"

	"github.com/estateline/estateline-api/config"
	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/repository"
	"github.com/estateline/estateline-api/internal/schedule"
	"github.com/estateline/estateline-api/pkg/circuitbreaker"
	"github.com/estateline/estateline-api/pkg/httpclient"
	"github.com/estateline/estateline-api/pkg/logger"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/estateline/estateline-api/pkg/trigger"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Fixed user-facing messages for the two submission flows
const (
	TourSuccessMessage    = "Tour request submitted successfully!"
	ContactSuccessMessage = "Enquiry submitted successfully!"
)

// Tour validation messages, reported together in this order
const (
	msgTourName = "Please enter your name"
	msgTourMail = "Please enter your email"
	msgTourDate = "Please select a tour date"
	msgTourTime = "Please select a tour time"
	msgTourType = "Please select at least one tour type"
)

// InquiryService handles enquiry and tour-request submissions plus the admin
// triage feed.
type InquiryService struct {
	inquiryRepo      repository.InquiryRepositoryInterface
	propertyRepo     repository.PropertyRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	config           *config.Config
	httpClient       httpclient.Client
	triggerBreaker   *gobreaker.CircuitBreaker
}

// NewInquiryService creates a new inquiry service instance
func NewInquiryService(
	inquiryRepo repository.InquiryRepositoryInterface,
	propertyRepo repository.PropertyRepositoryInterface,
	notificationRepo repository.NotificationRepositoryInterface,
	cfg *config.Config,
	httpClient httpclient.Client,
) *InquiryService {
	return &InquiryService{
		inquiryRepo:      inquiryRepo,
		propertyRepo:     propertyRepo,
		notificationRepo: notificationRepo,
		config:           cfg,
		httpClient:       httpClient,
		triggerBreaker:   circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("inquiry-trigger")),
	}
}

// ValidateTourRequest runs the exhaustive tour-form checks. All failing rules
// are reported together, in a fixed order, not fail-fast.
func ValidateTourRequest(req *models.CreateInquiryRequest) []string {
	details := make([]string, 0, 5)

	if req.Name == "" {
		details = append(details, msgTourName)
	}
	if req.Email == "" {
		details = append(details, msgTourMail)
	}
	if !isValidTourDate(req.TourDate) {
		details = append(details, msgTourDate)
	}
	if !schedule.IsValidTimeSlot(req.TourTime) {
		details = append(details, msgTourTime)
	}
	if !req.SiteVisit && !req.VideoChat {
		details = append(details, msgTourType)
	}

	return details
}

func isValidTourDate(date string) bool {
	if date == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// SubmitInquiry accepts a contact enquiry or a tour request. Exactly one row
// is written per accepted submission; a resubmitted request_id is answered as
// success without a second insert.
func (s *InquiryService) SubmitInquiry(ctx context.Context, req *models.CreateInquiryRequest) (*models.CreateInquiryResponse, error) {
	inquiryType := models.InquiryType(req.InquiryType)

	if inquiryType == models.InquiryTypeTour {
		if details := ValidateTourRequest(req); len(details) > 0 {
			metrics.InquirySubmissions.WithLabelValues(req.InquiryType, "validation_failed").Inc()
			return &models.CreateInquiryResponse{
				Success: false,
				Error:   "Validation failed",
				Details: details,
			}, nil
		}
	}

	property, err := s.propertyRepo.GetByID(ctx, req.PropertyID, models.FilterOptions{})
	if err != nil {
		metrics.InquirySubmissions.WithLabelValues(req.InquiryType, "property_not_found").Inc()
		logger.Warn("Inquiry for unknown property",
			zap.Int("property_id", req.PropertyID),
			zap.Error(err))
		return &models.CreateInquiryResponse{
			Success: false,
			Error:   "Property not found",
		}, nil
	}

	inquiry := &models.Inquiry{
		RequestID:        req.RequestID,
		InquiryType:      inquiryType,
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Message:          req.Message,
		PropertyID:       property.ID,
		PropertyName:     property.Name,
		PropertyLocation: property.Location,
		Configurations:   models.NormalizeConfigurationLabels(req.PropertyConfigurations),
		TourDate:         req.TourDate,
		TourTime:         req.TourTime,
		TourTypes:        req.TourTypes(),
		Status:           models.InquiryStatusNew,
	}

	id, created, err := s.inquiryRepo.Create(ctx, inquiry)
	if err != nil {
		metrics.InquirySubmissions.WithLabelValues(req.InquiryType, "error").Inc()
		logger.Error("Failed to create inquiry", zap.Error(err))
		return &models.CreateInquiryResponse{
			Success: false,
			Error:   "Failed to save enquiry",
		}, nil
	}

	if created {
		metrics.InquirySubmissions.WithLabelValues(req.InquiryType, "success").Inc()

		if s.config.EventTriggers.InquiryCreatedTriggerURL != "" {
			trigger.CallAsync(
				s.config.EventTriggers.InquiryCreatedTriggerURL,
				strconv.Itoa(id),
				s.httpClient,
				s.triggerBreaker,
			)
		}

		s.createNotification(ctx, inquiry, id)
	} else {
		// Duplicate request_id: the first submission already did the work
		metrics.InquirySubmissions.WithLabelValues(req.InquiryType, "duplicate").Inc()
		logger.Info("Duplicate inquiry submission",
			zap.String("request_id", req.RequestID),
			zap.Int("inquiry_id", id))
	}

	message := ContactSuccessMessage
	if inquiryType == models.InquiryTypeTour {
		message = TourSuccessMessage
	}

	return &models.CreateInquiryResponse{
		Success:     true,
		Message:     message,
		ReferenceID: strconv.Itoa(id),
	}, nil
}

func (s *InquiryService) createNotification(ctx context.Context, inquiry *models.Inquiry, id int) {
	title := "New enquiry for " + inquiry.PropertyName
	if inquiry.InquiryType == models.InquiryTypeTour {
		title = "New tour request for " + inquiry.PropertyName
	}

	n := &models.Notification{
		Kind:  models.NotificationInquiryCreated,
		Title: title,
		Body:  inquiry.Name + " <" + inquiry.Email + ">",
		RefID: id,
	}

	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		// Notifications are best-effort, the inquiry itself is saved
		logger.Error("Failed to create inquiry notification",
			zap.Int("inquiry_id", id),
			zap.Error(err))
	}
}

// ListInquiries returns the admin triage feed
func (s *InquiryService) ListInquiries(ctx context.Context, filter models.InquiryListFilter) ([]*models.Inquiry, error) {
	return s.inquiryRepo.List(ctx, filter)
}

// GetInquiry returns a single inquiry for the admin detail view
func (s *InquiryService) GetInquiry(ctx context.Context, id int) (*models.Inquiry, error) {
	return s.inquiryRepo.GetByID(ctx, id)
}

// UpdateInquiryStatus moves an inquiry through the triage lifecycle. Unknown
// status names are rejected.
func (s *InquiryService) UpdateInquiryStatus(ctx context.Context, id int, status string) (*models.Inquiry, error) {
	newStatus := models.InquiryStatus(status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidInquiryStatus
	}

	if err := s.inquiryRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	return s.inquiryRepo.GetByID(ctx, id)
}
