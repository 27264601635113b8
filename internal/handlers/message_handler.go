package handlers

import (
	"net/http"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

const resourceMessage = "message"

type MessageHandler struct {
	service services.MessageServiceInterface
}

func NewMessageHandler(service services.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) List(c *gin.Context) {
	read, err := boolQuery(c, "read")
	if err != nil {
		respondServiceError(c, resourceMessage, err)
		return
	}

	messages, err := h.service.List(c.Request.Context(), models.MessageFilter{Read: read})
	if err != nil {
		respondServiceError(c, resourceMessage, err)
		return
	}
	respondList(c, "Messages retrieved", messages, len(messages))
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	msg, err := h.service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceMessage, err)
		return
	}
	respondOK(c, http.StatusOK, "Message marked as read", msg)
}

func (h *MessageHandler) ToggleRead(c *gin.Context) {
	msg, err := h.service.ToggleRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceMessage, err)
		return
	}
	respondOK(c, http.StatusOK, "Message read status updated", msg)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, resourceMessage, err)
		return
	}
	respondOK(c, http.StatusOK, "Message deleted successfully", nil)
}
