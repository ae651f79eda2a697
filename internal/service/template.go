package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sefinote/sefinote/internal/audit"
	"github.com/sefinote/sefinote/internal/models"
	"gorm.io/gorm"
)

// TemplateService contains the business logic for template operations.
// Templates are global: listing has no owner filter, and create/delete
// are gated on the admin role at the handler layer.
type TemplateService struct {
	db *gorm.DB
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

// List returns all templates, newest first, without their nodes.
func (s *TemplateService) List() ([]models.Template, error) {
	var templates []models.Template
	if err := s.db.Order("created_at DESC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// ListWithNodes returns all templates, newest first, each with its
// template nodes ordered by position. Feeds the tree-creation selector.
func (s *TemplateService) ListWithNodes() ([]models.Template, error) {
	var templates []models.Template
	err := s.db.
		Preload("TemplateNodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// Create validates and creates a template with its ordered nodes in one
// transaction.
func (s *TemplateService) Create(req CreateTemplateRequest, userID uuid.UUID) (*models.Template, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if len(req.Nodes) > models.NodeCount {
		return nil, &ValidationError{Message: fmt.Sprintf("a template holds at most %d nodes", models.NodeCount)}
	}
	seen := map[int]bool{}
	for _, n := range req.Nodes {
		if n.Position < 1 || n.Position > models.NodeCount {
			return nil, &ValidationError{Message: fmt.Sprintf("position must be between 1 and %d", models.NodeCount)}
		}
		if seen[n.Position] {
			return nil, &ValidationError{Message: fmt.Sprintf("duplicate position %d", n.Position)}
		}
		seen[n.Position] = true
	}

	tpl := models.Template{
		Name:        req.Name,
		Description: req.Description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tpl).Error; err != nil {
			return fmt.Errorf("create template: %w", err)
		}
		for _, n := range req.Nodes {
			node := models.TemplateNode{
				TemplateID:         tpl.ID,
				Position:           n.Position,
				Title:              n.Title,
				DetailsPlaceholder: n.DetailsPlaceholder,
			}
			if err := tx.Create(&node).Error; err != nil {
				return fmt.Errorf("create template node: %w", err)
			}
			tpl.TemplateNodes = append(tpl.TemplateNodes, node)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	audit.LogAction(s.db, userID, audit.ActionCreateTemplate, fmt.Sprintf("template:%s", tpl.ID), map[string]interface{}{
		"name": tpl.Name,
	})

	return &tpl, nil
}

// Delete removes a template and its nodes. Reports not found when no
// row matches so the legacy route can answer 404.
func (s *TemplateService) Delete(id string, userID uuid.UUID) error {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", id).Delete(&models.TemplateNode{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Template{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}

	audit.LogAction(s.db, userID, audit.ActionDeleteTemplate, fmt.Sprintf("template:%s", id), nil)
	return nil
}
