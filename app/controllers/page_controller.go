package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"taskflow/app/content"
	"taskflow/app/models"
	"taskflow/app/services"
	"taskflow/app/views"
)

// PageController serves the health check, about page, and contact form.
type PageController struct {
	Contact *services.ContactService
	now     func() time.Time
}

// NewPageController creates a new PageController.
func NewPageController(contact *services.ContactService) *PageController {
	return &PageController{Contact: contact, now: time.Now}
}

// Health handles GET /health.
func (c *PageController) Health(w http.ResponseWriter, r *http.Request) {
	views.WriteJSON(w, http.StatusOK, views.HealthResponse{Message: "ok", Timestamp: c.now().UTC()})
}

// About handles GET /api/about.
func (c *PageController) About(w http.ResponseWriter, r *http.Request) {
	views.SendSuccess(w, http.StatusOK, content.AboutPage())
}

// SubmitContact handles POST /api/contact.
func (c *PageController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		views.SendError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	receipt, err := c.Contact.Submit(r.Context(), msg)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			views.SendFieldErrors(w, "Please check the highlighted fields", http.StatusUnprocessableEntity, ve.Fields)
			return
		}
		views.SendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	views.SendMessage(w, http.StatusOK, receipt, receipt.Message)
}
