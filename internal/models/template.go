package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Template is a named, reusable seed pattern of up to ten template nodes
// used to pre-fill a new tree's node placeholders. Templates are global
// and are never updated in place, only created and deleted.
type Template struct {
	ID            uuid.UUID      `gorm:"type:text;primary_key" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   *string        `json:"description"`
	TemplateNodes []TemplateNode `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"template_nodes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// TableName ensures GORM uses the "templates" table
func (Template) TableName() string {
	return "templates"
}

// BeforeCreate hook to generate UUID
func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
