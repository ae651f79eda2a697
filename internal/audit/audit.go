package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sefinote/sefinote/internal/models"
	"gorm.io/gorm"
)

// LogAction records an audit log entry
func LogAction(db *gorm.DB, userID uuid.UUID, action, resource string, details interface{}) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	log := models.AuditLog{
		UserID:      userID,
		Action:      action,
		Resource:    resource,
		DetailsJSON: string(detailsJSON),
		Timestamp:   time.Now(),
	}

	return db.Create(&log).Error
}

// Audit actions constants
const (
	ActionSignup         = "signup"
	ActionLogin          = "login"
	ActionUpdateUser     = "update_user"
	ActionCreateTree     = "create_tree"
	ActionDeleteTree     = "delete_tree"
	ActionCreateChild    = "create_child_tree"
	ActionCreateTemplate = "create_template"
	ActionDeleteTemplate = "delete_template"
)
