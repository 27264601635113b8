package handlers

import (
	"net/http"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

const resourceSkill = "skill"

type SkillHandler struct {
	service services.SkillServiceInterface
}

func NewSkillHandler(service services.SkillServiceInterface) *SkillHandler {
	return &SkillHandler{service: service}
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, resourceSkill, err)
		return
	}
	respondOK(c, http.StatusOK, "Skills retrieved", skills)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req models.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	skill, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, resourceSkill, err)
		return
	}
	respondOK(c, http.StatusCreated, "Skill created successfully", skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	var req models.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	skill, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, resourceSkill, err)
		return
	}
	respondOK(c, http.StatusOK, "Skill updated successfully", skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, resourceSkill, err)
		return
	}
	respondOK(c, http.StatusOK, "Skill deleted successfully", nil)
}

func (h *SkillHandler) ToggleActive(c *gin.Context) {
	skill, err := h.service.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, resourceSkill, err)
		return
	}
	respondOK(c, http.StatusOK, "Skill status updated", skill)
}

// Icons lists the icon catalog accepted for skills
func (h *SkillHandler) Icons(c *gin.Context) {
	respondOK(c, http.StatusOK, "Icon catalog retrieved", models.IconCatalog())
}
