package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sefinote/sefinote/internal/rbac"
	"github.com/sefinote/sefinote/internal/service"
)

// TemplateHandler handles template endpoints, including the legacy
// unversioned routes kept for contract compatibility.
type TemplateHandler struct {
	svc *service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(svc *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// CreateTemplateRequest is the payload for creating a template.
type CreateTemplateRequest struct {
	Name        string                `json:"name" binding:"required"`
	Description *string               `json:"description"`
	Nodes       []TemplateNodeRequest `json:"nodes"`
}

// TemplateNodeRequest is one seeded node slot of a new template.
type TemplateNodeRequest struct {
	Position           int     `json:"position" binding:"required"`
	Title              string  `json:"title"`
	DetailsPlaceholder *string `json:"details_placeholder"`
}

// ListTemplates godoc
// @Summary List all templates with their ordered nodes
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Template
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.svc.ListWithNodes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, templates)
}

// CreateTemplate godoc
// @Summary Create a template (admin only)
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param template body CreateTemplateRequest true "Template details"
// @Success 201 {object} models.Template
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	nodes := make([]service.TemplateNodeSpec, len(req.Nodes))
	for i, n := range req.Nodes {
		nodes[i] = service.TemplateNodeSpec{
			Position:           n.Position,
			Title:              n.Title,
			DetailsPlaceholder: n.DetailsPlaceholder,
		}
	}

	tpl, err := h.svc.Create(service.CreateTemplateRequest{
		Name:        req.Name,
		Description: req.Description,
		Nodes:       nodes,
	}, getUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tpl)
}

// DeleteTemplate godoc
// @Summary Delete a template (admin only)
// @Tags templates
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	if err := h.svc.Delete(c.Param("id"), getUserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LegacyListTemplates serves GET /api/templates: an ordered array of
// template rows, newest first, or 500 with {error} on store failure.
func (h *TemplateHandler) LegacyListTemplates(c *gin.Context) {
	templates, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, templates)
}

// LegacyDeleteTemplate serves DELETE /api/templates/:id with the
// original contract: 204 with {message} on success, 404 with {error}
// when no row matched, 400 when the id is missing.
func (h *TemplateHandler) LegacyDeleteTemplate(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template ID is required"})
		return
	}

	if err := h.svc.Delete(id, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The original answered 204 with a body; kept for compatibility.
	c.JSON(http.StatusNoContent, gin.H{"message": "Template deleted successfully"})
}

// requireAdmin aborts with 403 unless the caller holds the admin role.
func requireAdmin(c *gin.Context) bool {
	isAdmin, err := rbac.IsAdmin(getUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to check admin status"})
		return false
	}
	if !isAdmin {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "admin role required"})
		return false
	}
	return true
}
