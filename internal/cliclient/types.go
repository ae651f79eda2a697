package cliclient

import "time"

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login response.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User represents a user.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tree represents a tree, optionally with its nodes.
type Tree struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ParentNodeID *string   `json:"parent_node_id"`
	TemplateID   *string   `json:"template_id"`
	Nodes        []Node    `json:"nodes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Node represents one of the ten slots of a tree.
type Node struct {
	ID       string  `json:"id"`
	TreeID   string  `json:"tree_id"`
	Position int     `json:"position"`
	Title    string  `json:"title"`
	Details  *string `json:"details"`
}

// CreateTreeRequest represents a request to create a tree.
type CreateTreeRequest struct {
	Title      string  `json:"title"`
	TemplateID *string `json:"template_id,omitempty"`
}

// UpdateNodeRequest represents a node edit.
type UpdateNodeRequest struct {
	Title   string  `json:"title"`
	Details *string `json:"details"`
}

// Template represents a template with its ordered nodes.
type Template struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   *string        `json:"description"`
	TemplateNodes []TemplateNode `json:"template_nodes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// TemplateNode seeds one node slot of a tree created from its template.
type TemplateNode struct {
	ID                 string  `json:"id"`
	TemplateID         string  `json:"template_id"`
	Position           int     `json:"position"`
	Title              string  `json:"title"`
	DetailsPlaceholder *string `json:"details_placeholder"`
}
