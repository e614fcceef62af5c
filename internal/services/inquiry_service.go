package services

import (
	"encoding/json"
	"fmt"

	"zenithmed/internal/models"
)

// InquiryPublisher abstracts the queue used for fire-and-forget inquiry
// delivery. The production implementation is pkg/rabbitmq.Client.
type InquiryPublisher interface {
	PublishInquiry(body []byte) error
}

// InquiryService accepts customer inquiries and hands them to the mail
// pipeline. Inquiries are never persisted; once queued they are the mail
// worker's problem.
type InquiryService struct {
	publisher InquiryPublisher
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(publisher InquiryPublisher) *InquiryService {
	return &InquiryService{
		publisher: publisher,
	}
}

// Submit queues the inquiry for delivery. The caller only learns whether the
// inquiry was accepted onto the queue, not whether the email ultimately
// sends.
func (s *InquiryService) Submit(inquiry *models.Inquiry) error {
	body, err := json.Marshal(inquiry)
	if err != nil {
		return fmt.Errorf("failed to encode inquiry: %w", err)
	}
	if err := s.publisher.PublishInquiry(body); err != nil {
		return fmt.Errorf("failed to queue inquiry: %w", err)
	}
	return nil
}
