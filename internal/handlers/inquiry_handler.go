package handlers

import (
	"log"

	"zenithmed/internal/models"
	"zenithmed/internal/services"

	"github.com/gofiber/fiber/v2"
)

// InquiryHandler handles HTTP requests for product inquiries.
type InquiryHandler struct {
	service  *services.InquiryService
	validate *models.Validation
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(service *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		service:  service,
		validate: models.NewValidation(),
	}
}

// RegisterRoutes registers the inquiry routes with the Fiber app.
func (h *InquiryHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/inquiries", h.HandleSubmitInquiry)
}

// HandleSubmitInquiry accepts an inquiry and queues it for email delivery.
// Queue failures surface as a generic 500; provider detail stays in the
// logs.
func (h *InquiryHandler) HandleSubmitInquiry(c *fiber.Ctx) error {
	var inquiry models.Inquiry
	if err := c.BodyParser(&inquiry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if fieldErrors := h.validate.Validate(inquiry); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
	}

	if err := h.service.Submit(&inquiry); err != nil {
		log.Printf("Error submitting inquiry for %s: %v", inquiry.ProductName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Inquiry could not be sent. Please try again later.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Inquiry sent successfully!",
	})
}
