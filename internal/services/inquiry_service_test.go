package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/estateline/estateline-api/config"
	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newInquiryService(inquiryRepo *MockInquiryRepository, propertyRepo *MockPropertyRepository, notificationRepo *MockNotificationRepository) *services.InquiryService {
	cfg := &config.Config{
		Server: config.ServerConfig{
			AppEnv: "development",
		},
	}
	return services.NewInquiryService(inquiryRepo, propertyRepo, notificationRepo, cfg, nil)
}

func validTourRequest() *models.CreateInquiryRequest {
	return &models.CreateInquiryRequest{
		RequestID:              "7f6c0c2e-8f1a-4a3b-9a67-1a2b3c4d5e6f",
		InquiryType:            "tour",
		Name:                   "Asha Rao",
		Email:                  "asha@example.com",
		Phone:                  "+91 98765 43210",
		PropertyID:             7,
		PropertyConfigurations: []string{"2BHK-0", "3BHK-1"},
		TourDate:               "2026-09-14",
		TourTime:               "10:00 AM",
		SiteVisit:              true,
		VideoChat:              false,
	}
}

func TestValidateTourRequest_AllMissing(t *testing.T) {
	details := services.ValidateTourRequest(&models.CreateInquiryRequest{InquiryType: "tour"})

	assert.Equal(t, []string{
		"Please enter your name",
		"Please enter your email",
		"Please select a tour date",
		"Please select a tour time",
		"Please select at least one tour type",
	}, details)
}

func TestValidateTourRequest_OnlyTourTypeMissing(t *testing.T) {
	req := validTourRequest()
	req.SiteVisit = false
	req.VideoChat = false

	details := services.ValidateTourRequest(req)

	assert.Equal(t, []string{"Please select at least one tour type"}, details)
}

func TestValidateTourRequest_BadDateAndTime(t *testing.T) {
	req := validTourRequest()
	req.TourDate = "14/09/2026"
	req.TourTime = "9:30 AM"

	details := services.ValidateTourRequest(req)

	assert.Equal(t, []string{
		"Please select a tour date",
		"Please select a tour time",
	}, details)
}

func TestInquiryService_SubmitTour(t *testing.T) {
	mockInquiryRepo := new(MockInquiryRepository)
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newInquiryService(mockInquiryRepo, mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	req := validTourRequest()
	property := &models.Property{
		ID:       7,
		Slug:     "sunrise-heights-7",
		Name:     "Sunrise Heights",
		Location: "Baner, Pune",
	}

	expectedInquiry := &models.Inquiry{
		RequestID:        req.RequestID,
		InquiryType:      models.InquiryTypeTour,
		Name:             "Asha Rao",
		Email:            "asha@example.com",
		Phone:            "+91 98765 43210",
		PropertyID:       7,
		PropertyName:     "Sunrise Heights",
		PropertyLocation: "Baner, Pune",
		Configurations:   []string{"2BHK", "3BHK"},
		TourDate:         "2026-09-14",
		TourTime:         "10:00 AM",
		TourTypes:        []string{"Site Visit"},
		Status:           models.InquiryStatusNew,
	}

	mockPropertyRepo.On("GetByID", ctx, 7, models.FilterOptions{}).Return(property, nil).Once()
	mockInquiryRepo.On("Create", ctx, expectedInquiry).Return(42, true, nil).Once()
	mockNotificationRepo.On("Create", ctx, mock.AnythingOfType("*models.Notification")).Return(1, nil).Once()

	resp, err := service.SubmitInquiry(ctx, req)
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Tour request submitted successfully!", resp.Message)
	assert.Equal(t, "42", resp.ReferenceID)
	assert.Empty(t, resp.Details)

	mockInquiryRepo.AssertExpectations(t)
	mockPropertyRepo.AssertExpectations(t)
	mockNotificationRepo.AssertExpectations(t)
}

func TestInquiryService_SubmitContact(t *testing.T) {
	mockInquiryRepo := new(MockInquiryRepository)
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newInquiryService(mockInquiryRepo, mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	// A contact enquiry skips the tour checks entirely, even with an empty name
	req := &models.CreateInquiryRequest{
		RequestID:   "3d1a9b7e-2c4f-4d8e-b1a0-9f8e7d6c5b4a",
		InquiryType: "contact",
		Email:       "lead@example.com",
		Message:     "Interested in the 3BHK units",
		PropertyID:  7,
	}
	property := &models.Property{
		ID:       7,
		Name:     "Sunrise Heights",
		Location: "Baner, Pune",
	}

	mockPropertyRepo.On("GetByID", ctx, 7, models.FilterOptions{}).Return(property, nil).Once()
	mockInquiryRepo.On("Create", ctx, mock.AnythingOfType("*models.Inquiry")).Return(43, true, nil).Once()
	mockNotificationRepo.On("Create", ctx, mock.AnythingOfType("*models.Notification")).Return(2, nil).Once()

	resp, err := service.SubmitInquiry(ctx, req)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Enquiry submitted successfully!", resp.Message)
	assert.Equal(t, "43", resp.ReferenceID)

	mockInquiryRepo.AssertExpectations(t)
	mockNotificationRepo.AssertExpectations(t)
}

func TestInquiryService_SubmitTour_ValidationFailed(t *testing.T) {
	mockInquiryRepo := new(MockInquiryRepository)
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newInquiryService(mockInquiryRepo, mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	req := validTourRequest()
	req.Name = ""
	req.TourTime = ""

	resp, err := service.SubmitInquiry(ctx, req)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Equal(t, []string{
		"Please enter your name",
		"Please select a tour time",
	}, resp.Details)

	mockPropertyRepo.AssertNotCalled(t, "GetByID")
	mockInquiryRepo.AssertNotCalled(t, "Create")
}

func TestInquiryService_SubmitInquiry_PropertyNotFound(t *testing.T) {
	mockInquiryRepo := new(MockInquiryRepository)
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newInquiryService(mockInquiryRepo, mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	req := validTourRequest()
	req.PropertyID = 9999

	mockPropertyRepo.On("GetByID", ctx, 9999, models.FilterOptions{}).
		Return(nil, errors.New("property with ID 9999 not found")).Once()

	resp, err := service.SubmitInquiry(ctx, req)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Property not found", resp.Error)

	mockPropertyRepo.AssertExpectations(t)
	mockInquiryRepo.AssertNotCalled(t, "Create")
}

func TestInquiryService_SubmitInquiry_Duplicate(t *testing.T) {
	mockInquiryRepo := new(MockInquiryRepository)
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newInquiryService(mockInquiryRepo, mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	req := validTourRequest()
	property := &models.Property{ID: 7, Name: "Sunrise Heights", Location: "Baner, Pune"}

	mockPropertyRepo.On("GetByID", ctx, 7, models.FilterOptions{}).Return(property, nil).Once()
	// created=false means the request_id was already recorded
	mockInquiryRepo.On("Create", ctx, mock.AnythingOfType("*models.Inquiry")).Return(42, false, nil).Once()

	resp, err := service.SubmitInquiry(ctx, req)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Tour request submitted successfully!", resp.Message)
	assert.Equal(t, "42", resp.ReferenceID)

	mockInquiryRepo.AssertExpectations(t)
	mockNotificationRepo.AssertNotCalled(t, "Create")
}

func TestInquiryService_SubmitInquiry_CreateError(t *testing.T) {
	mockInquiryRepo := new(MockInquiryRepository)
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newInquiryService(mockInquiryRepo, mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	req := validTourRequest()
	property := &models.Property{ID: 7, Name: "Sunrise Heights", Location: "Baner, Pune"}

	mockPropertyRepo.On("GetByID", ctx, 7, models.FilterOptions{}).Return(property, nil).Once()
	mockInquiryRepo.On("Create", ctx, mock.AnythingOfType("*models.Inquiry")).
		Return(0, false, errors.New("connection refused")).Once()

	resp, err := service.SubmitInquiry(ctx, req)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to save enquiry", resp.Error)

	mockInquiryRepo.AssertExpectations(t)
	mockNotificationRepo.AssertNotCalled(t, "Create")
}

func TestInquiryService_UpdateInquiryStatus(t *testing.T) {
	mockInquiryRepo := new(MockInquiryRepository)
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newInquiryService(mockInquiryRepo, mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	updated := &models.Inquiry{ID: 42, Status: models.InquiryStatusContacted}

	mockInquiryRepo.On("UpdateStatus", ctx, 42, models.InquiryStatusContacted).Return(nil).Once()
	mockInquiryRepo.On("GetByID", ctx, 42).Return(updated, nil).Once()

	inquiry, err := service.UpdateInquiryStatus(ctx, 42, "contacted")
	assert.NoError(t, err)
	assert.Equal(t, models.InquiryStatusContacted, inquiry.Status)

	mockInquiryRepo.AssertExpectations(t)
}

func TestInquiryService_UpdateInquiryStatus_Unknown(t *testing.T) {
	mockInquiryRepo := new(MockInquiryRepository)
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newInquiryService(mockInquiryRepo, mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	inquiry, err := service.UpdateInquiryStatus(ctx, 42, "archived")
	assert.ErrorIs(t, err, services.ErrInvalidInquiryStatus)
	assert.Nil(t, inquiry)

	mockInquiryRepo.AssertNotCalled(t, "UpdateStatus")
}
