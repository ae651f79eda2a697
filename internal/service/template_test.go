package service

import (
	"errors"
	"testing"

	"github.com/sefinote/sefinote/internal/models"
)

func TestTemplateCreate_WithOrderedNodes(t *testing.T) {
	_, svc, db := testSetup(t)
	userID := createTestUser(t, db, "admin@test.com")

	tpl, err := svc.Create(CreateTemplateRequest{
		Name:        "Project Review",
		Description: strPtr("Quarterly review structure"),
		Nodes: []TemplateNodeSpec{
			{Position: 3, Title: "Risks"},
			{Position: 1, Title: "Goal", DetailsPlaceholder: strPtr("What are we aiming for?")},
		},
	}, userID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	templates, err := svc.ListWithNodes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(templates))
	}
	nodes := templates[0].TemplateNodes
	if len(nodes) != 2 {
		t.Fatalf("expected 2 template nodes, got %d", len(nodes))
	}
	if nodes[0].Position != 1 || nodes[1].Position != 3 {
		t.Errorf("expected nodes ordered by position, got %d then %d", nodes[0].Position, nodes[1].Position)
	}
	if nodes[0].DetailsPlaceholder == nil || *nodes[0].DetailsPlaceholder != "What are we aiming for?" {
		t.Errorf("placeholder lost: %+v", nodes[0])
	}
	_ = tpl
}

func TestTemplateCreate_Validation(t *testing.T) {
	_, svc, db := testSetup(t)
	userID := createTestUser(t, db, "admin@test.com")

	cases := []struct {
		name string
		req  CreateTemplateRequest
	}{
		{"empty name", CreateTemplateRequest{Name: "  "}},
		{"position zero", CreateTemplateRequest{Name: "t", Nodes: []TemplateNodeSpec{{Position: 0, Title: "x"}}}},
		{"position eleven", CreateTemplateRequest{Name: "t", Nodes: []TemplateNodeSpec{{Position: 11, Title: "x"}}}},
		{"duplicate position", CreateTemplateRequest{Name: "t", Nodes: []TemplateNodeSpec{
			{Position: 2, Title: "a"}, {Position: 2, Title: "b"},
		}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.req, userID)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestTemplateCreate_TooManyNodes(t *testing.T) {
	_, svc, db := testSetup(t)
	userID := createTestUser(t, db, "admin@test.com")

	nodes := make([]TemplateNodeSpec, models.NodeCount+1)
	for i := range nodes {
		nodes[i] = TemplateNodeSpec{Position: i + 1, Title: "n"}
	}

	_, err := svc.Create(CreateTemplateRequest{Name: "overfull", Nodes: nodes}, userID)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestTemplateList_Global(t *testing.T) {
	_, svc, db := testSetup(t)
	alice := createTestUser(t, db, "alice@test.com")
	_ = createTestUser(t, db, "bob@test.com")

	if _, err := svc.Create(CreateTemplateRequest{Name: "shared"}, alice); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Templates are global: no owner filter on listing.
	templates, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("expected 1 template visible to everyone, got %d", len(templates))
	}
}

func TestTemplateDelete_RemovesNodes(t *testing.T) {
	_, svc, db := testSetup(t)
	userID := createTestUser(t, db, "admin@test.com")

	tpl, err := svc.Create(CreateTemplateRequest{
		Name:  "doomed",
		Nodes: []TemplateNodeSpec{{Position: 1, Title: "x"}},
	}, userID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(tpl.ID.String(), userID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	db.Model(&models.TemplateNode{}).Where("template_id = ?", tpl.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 remaining template nodes, got %d", count)
	}
}

func TestTemplateDelete_Missing(t *testing.T) {
	_, svc, db := testSetup(t)
	userID := createTestUser(t, db, "admin@test.com")

	err := svc.Delete("3f6f5e86-0000-0000-0000-000000000000", userID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
