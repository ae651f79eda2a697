package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NodeCount is the fixed number of nodes in every tree.
const NodeCount = 10

// Node is one of the ten fixed slots in a tree. Position is immutable
// after creation; only Title and Details are user-editable.
type Node struct {
	ID        uuid.UUID `gorm:"type:text;primary_key" json:"id"`
	TreeID    uuid.UUID `gorm:"type:text;not null;index;uniqueIndex:idx_nodes_tree_position" json:"tree_id"`
	Position  int       `gorm:"not null;uniqueIndex:idx_nodes_tree_position" json:"position"`
	Title     string    `json:"title"`
	Details   *string   `json:"details"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook to generate UUID
func (n *Node) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
