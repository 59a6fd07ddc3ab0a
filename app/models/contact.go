package models

// ContactMessage is a submission from the about page contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactReceipt acknowledges a contact message locally.
type ContactReceipt struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}
