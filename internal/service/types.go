package service

import "github.com/google/uuid"

// CreateTreeRequest holds parameters for creating a tree.
type CreateTreeRequest struct {
	Title      string
	TemplateID *uuid.UUID
}

// NodeEdit carries pending title/details edits for a node. Nil fields
// are left untouched.
type NodeEdit struct {
	Title   *string
	Details *string
}

// CreateTemplateRequest holds parameters for creating a template with
// its ordered template nodes.
type CreateTemplateRequest struct {
	Name        string
	Description *string
	Nodes       []TemplateNodeSpec
}

// TemplateNodeSpec is one seeded node slot of a new template.
type TemplateNodeSpec struct {
	Position           int
	Title              string
	DetailsPlaceholder *string
}
