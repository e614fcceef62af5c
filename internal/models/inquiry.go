package models

// Inquiry is a customer question about a product. Inquiries are not stored;
// they are published to the inquiry queue and delivered by the mail worker,
// fire-and-forget.
type Inquiry struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	ProductName string `json:"productName" validate:"required,max=100"`
	Message     string `json:"message" validate:"required,max=2000"`
}
