package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sefinote/sefinote/internal/service"
)

// TreeHandler handles tree and node endpoints.
type TreeHandler struct {
	svc *service.TreeService
}

// NewTreeHandler creates a new TreeHandler.
func NewTreeHandler(svc *service.TreeService) *TreeHandler {
	return &TreeHandler{svc: svc}
}

// CreateTreeRequest is the payload for creating a tree.
type CreateTreeRequest struct {
	Title      string     `json:"title" binding:"required"`
	TemplateID *uuid.UUID `json:"template_id"`
}

// UpdateTreeRequest is the payload for renaming a tree.
type UpdateTreeRequest struct {
	Title string `json:"title"`
}

// UpdateNodeRequest is the payload for editing a node. Both fields are
// written unconditionally; empty strings are allowed.
type UpdateNodeRequest struct {
	Title   string  `json:"title"`
	Details *string `json:"details"`
}

// CreateChildTreeRequest optionally carries pending node edits to
// persist before spawning the child tree.
type CreateChildTreeRequest struct {
	Title   *string `json:"title"`
	Details *string `json:"details"`
}

// ListTrees godoc
// @Summary List trees owned by the current user
// @Tags trees
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Tree
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /trees [get]
func (h *TreeHandler) ListTrees(c *gin.Context) {
	trees, err := h.svc.List(getUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trees)
}

// CreateTree godoc
// @Summary Create a tree with its ten blank nodes
// @Tags trees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param tree body CreateTreeRequest true "Tree details"
// @Success 201 {object} models.Tree
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /trees [post]
func (h *TreeHandler) CreateTree(c *gin.Context) {
	var req CreateTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	tree, err := h.svc.Create(service.CreateTreeRequest{
		Title:      req.Title,
		TemplateID: req.TemplateID,
	}, getUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tree)
}

// GetTree godoc
// @Summary Get a tree with its nodes and linked template
// @Tags trees
// @Security BearerAuth
// @Produce json
// @Param id path string true "Tree ID"
// @Success 200 {object} models.Tree
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trees/{id} [get]
func (h *TreeHandler) GetTree(c *gin.Context) {
	tree, err := h.svc.Get(c.Param("id"), getUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tree)
}

// UpdateTree godoc
// @Summary Update a tree's title
// @Tags trees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tree ID"
// @Param tree body UpdateTreeRequest true "New title"
// @Success 200 {object} models.Tree
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trees/{id} [put]
func (h *TreeHandler) UpdateTree(c *gin.Context) {
	var req UpdateTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	tree, err := h.svc.UpdateTitle(c.Param("id"), getUserID(c), req.Title)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tree)
}

// DeleteTree godoc
// @Summary Delete a tree and its nodes
// @Tags trees
// @Security BearerAuth
// @Param id path string true "Tree ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trees/{id} [delete]
func (h *TreeHandler) DeleteTree(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id"), getUserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateNode godoc
// @Summary Update a node's title and details
// @Tags trees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Node ID"
// @Param node body UpdateNodeRequest true "New content"
// @Success 200 {object} models.Node
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /nodes/{id} [put]
func (h *TreeHandler) UpdateNode(c *gin.Context) {
	var req UpdateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	node, err := h.svc.UpdateNode(c.Param("id"), getUserID(c), req.Title, req.Details)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, node)
}

// CreateChildTree godoc
// @Summary Spawn a child tree from a node
// @Description Persists any pending node edits, then creates a new tree
// whose parent_node_id is this node, titled after the node's effective
// title, with ten blank nodes.
// @Tags trees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Node ID"
// @Param edits body CreateChildTreeRequest false "Pending node edits"
// @Success 201 {object} models.Tree
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /nodes/{id}/trees [post]
func (h *TreeHandler) CreateChildTree(c *gin.Context) {
	var req CreateChildTreeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	var pending *service.NodeEdit
	if req.Title != nil || req.Details != nil {
		pending = &service.NodeEdit{Title: req.Title, Details: req.Details}
	}

	tree, err := h.svc.CreateChildTree(c.Param("id"), getUserID(c), pending)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tree)
}
