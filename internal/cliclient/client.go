// Package cliclient provides a lightweight HTTP client for the Sefinote API.
package cliclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a lightweight HTTP client for the Sefinote API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL + "/api/v1",
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewWithoutAuth creates a new API client without authentication (for login).
func NewWithoutAuth(baseURL string) *Client {
	return &Client{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

// request performs an HTTP request and decodes the JSON response.
func (c *Client) request(ctx context.Context, method, path string, body, result interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return resp, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return resp, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp, nil
}

// Login authenticates and returns the session token and user.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	_, err := c.request(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTrees returns the caller's trees.
func (c *Client) ListTrees(ctx context.Context) ([]Tree, error) {
	var trees []Tree
	if _, err := c.request(ctx, http.MethodGet, "/trees", nil, &trees); err != nil {
		return nil, err
	}
	return trees, nil
}

// GetTree returns one tree with its nodes.
func (c *Client) GetTree(ctx context.Context, id string) (*Tree, error) {
	var tree Tree
	if _, err := c.request(ctx, http.MethodGet, "/trees/"+id, nil, &tree); err != nil {
		return nil, err
	}
	return &tree, nil
}

// CreateTree creates a tree, optionally seeded from a template.
func (c *Client) CreateTree(ctx context.Context, title, templateID string) (*Tree, error) {
	req := CreateTreeRequest{Title: title}
	if templateID != "" {
		req.TemplateID = &templateID
	}
	var tree Tree
	if _, err := c.request(ctx, http.MethodPost, "/trees", req, &tree); err != nil {
		return nil, err
	}
	return &tree, nil
}

// DeleteTree deletes a tree and its nodes.
func (c *Client) DeleteTree(ctx context.Context, id string) error {
	_, err := c.request(ctx, http.MethodDelete, "/trees/"+id, nil, nil)
	return err
}

// UpdateNode updates a node's title and details.
func (c *Client) UpdateNode(ctx context.Context, id, title string, details *string) (*Node, error) {
	var node Node
	req := UpdateNodeRequest{Title: title, Details: details}
	if _, err := c.request(ctx, http.MethodPut, "/nodes/"+id, req, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// ListTemplates returns all templates with their nodes.
func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	var templates []Template
	if _, err := c.request(ctx, http.MethodGet, "/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// DeleteTemplate deletes a template (admin only).
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	_, err := c.request(ctx, http.MethodDelete, "/templates/"+id, nil, nil)
	return err
}
