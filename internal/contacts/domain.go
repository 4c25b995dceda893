package contacts

import "time"

// Message is a customer inquiry submitted through the contact form.
type Message struct {
	Reference string    `json:"contactId"`
	Name      string    `json:"contactName"`
	Email     string    `json:"contactEmail"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmitRequest is the validated contact form payload.
type SubmitRequest struct {
	Name    string `json:"contactName" validate:"required,min=2,max=100"`
	Email   string `json:"contactEmail" validate:"required,email,max=100"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Body    string `json:"message" validate:"required,min=10,max=2000"`
}
