package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sefinote/sefinote/internal/audit"
	"github.com/sefinote/sefinote/internal/layout"
	"github.com/sefinote/sefinote/internal/models"
	"gorm.io/gorm"
)

// TreeService contains the business logic for tree and node operations.
type TreeService struct {
	db *gorm.DB
}

// NewTreeService creates a new TreeService.
func NewTreeService(db *gorm.DB) *TreeService {
	return &TreeService{db: db}
}

// List returns the trees owned by the given user, newest first.
func (s *TreeService) List(userID uuid.UUID) ([]models.Tree, error) {
	var trees []models.Tree
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&trees).Error; err != nil {
		return nil, err
	}
	return trees, nil
}

// Get returns a tree with its nodes sorted by position and, when linked,
// its template with ordered template nodes. A tree owned by another user
// is reported as not found.
func (s *TreeService) Get(id string, userID uuid.UUID) (*models.Tree, error) {
	var tree models.Tree
	err := s.db.
		Preload("Nodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Template.TemplateNodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).First(&tree).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if tree.UserID != userID {
		return nil, ErrNotFound
	}
	return &tree, nil
}

// Create validates and creates a new tree together with its ten blank
// nodes in a single transaction, so a failed node insert never leaves an
// orphaned tree row.
func (s *TreeService) Create(req CreateTreeRequest, userID uuid.UUID) (*models.Tree, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Message: "title is required"}
	}

	if req.TemplateID != nil {
		var tpl models.Template
		if err := s.db.Where("id = ?", req.TemplateID).First(&tpl).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ValidationError{Message: "template not found"}
			}
			return nil, err
		}
	}

	tree := models.Tree{
		Title:      req.Title,
		UserID:     userID,
		TemplateID: req.TemplateID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tree).Error; err != nil {
			return fmt.Errorf("create tree: %w", err)
		}
		return createBlankNodes(tx, tree.ID)
	})
	if err != nil {
		return nil, err
	}

	audit.LogAction(s.db, userID, audit.ActionCreateTree, fmt.Sprintf("tree:%s", tree.ID), map[string]interface{}{
		"title":       tree.Title,
		"template_id": req.TemplateID,
	})

	return &tree, nil
}

// UpdateTitle updates a tree's title.
func (s *TreeService) UpdateTitle(id string, userID uuid.UUID, title string) (*models.Tree, error) {
	var tree models.Tree
	if err := s.db.Where("id = ?", id).First(&tree).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if tree.UserID != userID {
		return nil, ErrNotFound
	}

	if err := s.db.Model(&tree).Update("title", title).Error; err != nil {
		return nil, err
	}
	tree.Title = title
	return &tree, nil
}

// Delete removes a tree and all of its nodes transactionally. The
// owner-filtered tree delete runs first: when it matches no row the
// transaction rolls back with ErrNotFound, so node rows are never
// touched for a missing or foreign tree.
func (s *TreeService) Delete(id string, userID uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Tree{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("tree_id = ?", id).Delete(&models.Node{}).Error
	})
	if err != nil {
		return err
	}

	audit.LogAction(s.db, userID, audit.ActionDeleteTree, fmt.Sprintf("tree:%s", id), nil)
	return nil
}

// UpdateNode updates a node's title and details unconditionally (empty
// values allowed). Ownership is checked through the node's tree.
func (s *TreeService) UpdateNode(nodeID string, userID uuid.UUID, title string, details *string) (*models.Node, error) {
	node, err := s.loadOwnedNode(nodeID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(node).Updates(map[string]interface{}{
		"title":   title,
		"details": details,
	}).Error; err != nil {
		return nil, err
	}
	node.Title = title
	node.Details = details
	return node, nil
}

// CreateChildTree persists any pending edits on the node, then creates a
// new tree spawned from it: parent_node_id points back at the node and
// the title defaults to the node's effective title (its own title, the
// linked template's placeholder for that position, or the default slot
// name). The node update, tree insert and blank-node inserts share one
// transaction.
func (s *TreeService) CreateChildTree(nodeID string, userID uuid.UUID, pending *NodeEdit) (*models.Tree, error) {
	node, err := s.loadOwnedNode(nodeID, userID)
	if err != nil {
		return nil, err
	}

	var parent models.Tree
	if err := s.db.
		Preload("Template.TemplateNodes").
		Where("id = ?", node.TreeID).First(&parent).Error; err != nil {
		return nil, err
	}

	var child models.Tree
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if pending != nil {
			updates := map[string]interface{}{}
			if pending.Title != nil {
				updates["title"] = *pending.Title
				node.Title = *pending.Title
			}
			if pending.Details != nil {
				updates["details"] = pending.Details
				node.Details = pending.Details
			}
			if len(updates) > 0 {
				if err := tx.Model(node).Updates(updates).Error; err != nil {
					return fmt.Errorf("persist node edits: %w", err)
				}
			}
		}

		parentNodeID := node.ID
		child = models.Tree{
			Title:        effectiveNodeTitle(node, parent.Template),
			UserID:       userID,
			ParentNodeID: &parentNodeID,
		}
		if err := tx.Create(&child).Error; err != nil {
			return fmt.Errorf("create child tree: %w", err)
		}
		return createBlankNodes(tx, child.ID)
	})
	if err != nil {
		return nil, err
	}

	audit.LogAction(s.db, userID, audit.ActionCreateChild, fmt.Sprintf("tree:%s", child.ID), map[string]interface{}{
		"parent_node_id": node.ID,
		"title":          child.Title,
	})

	return &child, nil
}

// loadOwnedNode fetches a node and verifies the caller owns its tree.
func (s *TreeService) loadOwnedNode(nodeID string, userID uuid.UUID) (*models.Node, error) {
	var node models.Node
	if err := s.db.Where("id = ?", nodeID).First(&node).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var tree models.Tree
	if err := s.db.Select("id", "user_id").Where("id = ?", node.TreeID).First(&tree).Error; err != nil {
		return nil, err
	}
	if tree.UserID != userID {
		return nil, ErrNotFound
	}
	return &node, nil
}

// createBlankNodes inserts the ten blank nodes of a fresh tree. Titles
// are always empty; placeholders are resolved at render time.
func createBlankNodes(tx *gorm.DB, treeID uuid.UUID) error {
	nodes := make([]models.Node, models.NodeCount)
	for i := range nodes {
		nodes[i] = models.Node{
			TreeID:   treeID,
			Position: i + 1,
			Title:    "",
		}
	}
	if err := tx.Create(&nodes).Error; err != nil {
		return fmt.Errorf("create nodes: %w", err)
	}
	return nil
}

// effectiveNodeTitle resolves the title shown for a node: its own title,
// else the template placeholder for its position, else the default slot
// name.
func effectiveNodeTitle(node *models.Node, tpl *models.Template) string {
	if strings.TrimSpace(node.Title) != "" {
		return node.Title
	}
	if tpl != nil {
		for _, tn := range tpl.TemplateNodes {
			if tn.Position == node.Position && strings.TrimSpace(tn.Title) != "" {
				return tn.Title
			}
		}
	}
	return layout.DefaultTitle(node.Position)
}
