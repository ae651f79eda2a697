package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sefinote/sefinote/internal/models"
	"github.com/sefinote/sefinote/internal/rbac"
	"github.com/sefinote/sefinote/internal/service"
)

func TestCreateTemplate_RequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupHandlerTestDB(t)
	user := createHandlerTestUser(t, db, "user@test.com")
	handler := NewTemplateHandler(service.NewTemplateService(db))

	c, w := newAuthedContext(t, user, http.MethodPost, "/api/v1/templates", gin.H{"name": "nope"})
	handler.CreateTemplate(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestCreateTemplate_AdminSucceeds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupHandlerTestDB(t)
	admin := createHandlerTestUser(t, db, "admin@test.com")
	if err := rbac.MakeAdmin(admin.ID); err != nil {
		t.Fatalf("make admin: %v", err)
	}
	handler := NewTemplateHandler(service.NewTemplateService(db))

	c, w := newAuthedContext(t, admin, http.MethodPost, "/api/v1/templates", gin.H{
		"name": "Review",
		"nodes": []gin.H{
			{"position": 1, "title": "Goal"},
		},
	})
	handler.CreateTemplate(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var tpl models.Template
	if err := json.Unmarshal(w.Body.Bytes(), &tpl); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tpl.Name != "Review" || len(tpl.TemplateNodes) != 1 {
		t.Errorf("unexpected template payload: %+v", tpl)
	}
}

func TestDeleteTemplate_RequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupHandlerTestDB(t)
	user := createHandlerTestUser(t, db, "user@test.com")
	handler := NewTemplateHandler(service.NewTemplateService(db))

	c, w := newAuthedContext(t, user, http.MethodDelete, "/api/v1/templates/some-id", nil)
	c.Params = gin.Params{{Key: "id", Value: "some-id"}}
	handler.DeleteTemplate(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestLegacyListTemplates_ReturnsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupHandlerTestDB(t)
	admin := createHandlerTestUser(t, db, "admin@test.com")
	svc := service.NewTemplateService(db)
	handler := NewTemplateHandler(svc)

	if _, err := svc.Create(service.CreateTemplateRequest{Name: "one"}, admin.ID); err != nil {
		t.Fatalf("create template: %v", err)
	}

	c, w := newAuthedContext(t, admin, http.MethodGet, "/api/templates", nil)
	handler.LegacyListTemplates(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var templates []models.Template
	if err := json.Unmarshal(w.Body.Bytes(), &templates); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(templates) != 1 || templates[0].Name != "one" {
		t.Errorf("unexpected list payload: %+v", templates)
	}
}

func TestLegacyDeleteTemplate_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupHandlerTestDB(t)
	admin := createHandlerTestUser(t, db, "admin@test.com")
	if err := rbac.MakeAdmin(admin.ID); err != nil {
		t.Fatalf("make admin: %v", err)
	}
	handler := NewTemplateHandler(service.NewTemplateService(db))

	c, w := newAuthedContext(t, admin, http.MethodDelete, "/api/templates/3f6f5e86-0000-0000-0000-000000000000", nil)
	c.Params = gin.Params{{Key: "id", Value: "3f6f5e86-0000-0000-0000-000000000000"}}
	handler.LegacyDeleteTemplate(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["error"] != "Template not found" {
		t.Errorf("expected legacy error message, got %q", resp["error"])
	}
}

func TestLegacyDeleteTemplate_MissingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupHandlerTestDB(t)
	admin := createHandlerTestUser(t, db, "admin@test.com")
	if err := rbac.MakeAdmin(admin.ID); err != nil {
		t.Fatalf("make admin: %v", err)
	}
	handler := NewTemplateHandler(service.NewTemplateService(db))

	c, w := newAuthedContext(t, admin, http.MethodDelete, "/api/templates/", nil)
	handler.LegacyDeleteTemplate(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestLegacyDeleteTemplate_Succeeds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupHandlerTestDB(t)
	admin := createHandlerTestUser(t, db, "admin@test.com")
	if err := rbac.MakeAdmin(admin.ID); err != nil {
		t.Fatalf("make admin: %v", err)
	}
	svc := service.NewTemplateService(db)
	handler := NewTemplateHandler(svc)

	tpl, err := svc.Create(service.CreateTemplateRequest{Name: "doomed"}, admin.ID)
	if err != nil {
		t.Fatalf("create template: %v", err)
	}

	c, w := newAuthedContext(t, admin, http.MethodDelete, "/api/templates/"+tpl.ID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: tpl.ID.String()}}
	handler.LegacyDeleteTemplate(c)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
}

func TestLegacyDeleteTemplate_NonAdminForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupHandlerTestDB(t)
	user := createHandlerTestUser(t, db, "user@test.com")
	handler := NewTemplateHandler(service.NewTemplateService(db))

	c, w := newAuthedContext(t, user, http.MethodDelete, "/api/templates/some-id", nil)
	c.Params = gin.Params{{Key: "id", Value: "some-id"}}
	handler.LegacyDeleteTemplate(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}
