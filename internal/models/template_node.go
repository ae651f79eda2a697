package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateNode seeds the node slot with the matching position when a tree
// is instantiated from its template.
type TemplateNode struct {
	ID                 uuid.UUID `gorm:"type:text;primary_key" json:"id"`
	TemplateID         uuid.UUID `gorm:"type:text;not null;index;uniqueIndex:idx_template_nodes_position" json:"template_id"`
	Position           int       `gorm:"not null;uniqueIndex:idx_template_nodes_position" json:"position"`
	Title              string    `json:"title"`
	DetailsPlaceholder *string   `json:"details_placeholder"`
}

// BeforeCreate hook to generate UUID
func (n *TemplateNode) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
