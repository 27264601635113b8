package handlers

import (
	"net/http"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	service services.ContactServiceInterface
}

func NewContactHandler(service services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit stores a contact form message. Field checks live in the service so
// the messages match what the site shows.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, services.MsgContactFieldsRequired, err)
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, resourceMessage, err)
		return
	}
	respondOK(c, http.StatusOK, "Message sent successfully", msg)
}
