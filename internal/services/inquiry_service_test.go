package services_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"zenithmed/internal/models"
	"zenithmed/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInquiryPublisher is a mock implementation of services.InquiryPublisher
type MockInquiryPublisher struct {
	mock.Mock
}

func (m *MockInquiryPublisher) PublishInquiry(body []byte) error {
	args := m.Called(body)
	return args.Error(0)
}

func TestInquiryService_SubmitPublishesJSON(t *testing.T) {
	publisher := new(MockInquiryPublisher)
	service := services.NewInquiryService(publisher)

	inquiry := &models.Inquiry{
		Name:        "Asha Rao",
		Email:       "asha@example.com",
		Phone:       "+91 98765 43210",
		ProductName: "Herceptin 440",
		Message:     "Do you ship to Pune?",
	}

	publisher.On("PublishInquiry", mock.MatchedBy(func(body []byte) bool {
		var decoded models.Inquiry
		if err := json.Unmarshal(body, &decoded); err != nil {
			return false
		}
		return decoded == *inquiry
	})).Return(nil).Once()

	require.NoError(t, service.Submit(inquiry))
	publisher.AssertExpectations(t)
}

func TestInquiryService_SubmitQueueFailure(t *testing.T) {
	publisher := new(MockInquiryPublisher)
	service := services.NewInquiryService(publisher)

	publisher.On("PublishInquiry", mock.Anything).
		Return(fmt.Errorf("broker unavailable")).Once()

	err := service.Submit(&models.Inquiry{
		Name: "Asha Rao", Email: "asha@example.com",
		ProductName: "Herceptin 440", Message: "Availability?",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to queue inquiry")
	publisher.AssertExpectations(t)
}
