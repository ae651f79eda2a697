package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sefinote/sefinote/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailTaken         = errors.New("email already registered")
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest carries an email and/or password change. Empty fields
// are left untouched.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login or signup response
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Authenticator is an interface for authentication providers
type Authenticator interface {
	// Login authenticates a user and returns a JWT token
	Login(email, password string) (*LoginResponse, error)

	// Signup registers a new user and returns a JWT token
	Signup(email, password string) (*LoginResponse, error)

	// UpdateUser changes the user's email and/or password
	UpdateUser(user *models.User, req UpdateUserRequest) error

	// Middleware returns a Gin middleware for authentication
	Middleware() gin.HandlerFunc

	// GetUserFromContext extracts the authenticated user from the Gin context
	GetUserFromContext(c *gin.Context) (*models.User, error)
}
