package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tree is a user-owned note diagram with exactly ten positioned nodes.
// ParentNodeID links back to the node this tree was spawned from and is
// set once at creation, never mutated.
type Tree struct {
	ID           uuid.UUID  `gorm:"type:text;primary_key" json:"id"`
	Title        string     `json:"title"`
	UserID       uuid.UUID  `gorm:"type:text;not null;index" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID" json:"-"`
	ParentNodeID *uuid.UUID `gorm:"type:text" json:"parent_node_id"`
	TemplateID   *uuid.UUID `gorm:"type:text" json:"template_id"`
	Template     *Template  `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
	Nodes        []Node     `gorm:"foreignKey:TreeID;constraint:OnDelete:CASCADE" json:"nodes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName ensures GORM uses the "trees" table
func (Tree) TableName() string {
	return "trees"
}

// BeforeCreate hook to generate UUID
func (t *Tree) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
