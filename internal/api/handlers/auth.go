package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sefinote/sefinote/internal/audit"
	"github.com/sefinote/sefinote/internal/auth"
	"gorm.io/gorm"
)

// AuthHandler handles signup, login and account updates.
type AuthHandler struct {
	authenticator auth.Authenticator
	db            *gorm.DB
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authenticator auth.Authenticator, db *gorm.DB) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, db: db}
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.LoginRequest true "Login credentials"
// @Success 200 {object} auth.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.authenticator.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	audit.LogAction(h.db, resp.User.ID, audit.ActionLogin, "user:"+resp.User.ID.String(), nil)
	setSessionCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.SignupRequest true "Signup credentials"
// @Success 201 {object} auth.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.authenticator.Signup(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	audit.LogAction(h.db, resp.User.ID, audit.ActionSignup, "user:"+resp.User.ID.String(), nil)
	setSessionCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// GetCurrentUser godoc
// @Summary Get current user
// @Description Get the currently authenticated user's information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.authenticator.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateCurrentUser godoc
// @Summary Update current user's email and/or password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param update body auth.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/me [put]
func (h *AuthHandler) UpdateCurrentUser(c *gin.Context) {
	user := getUser(c)

	var req auth.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Email == "" && req.Password == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "nothing to update"})
		return
	}

	if err := h.authenticator.UpdateUser(user, req); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	audit.LogAction(h.db, user.ID, audit.ActionUpdateUser, "user:"+user.ID.String(), map[string]interface{}{
		"email_changed":    req.Email != "",
		"password_changed": req.Password != "",
	})

	c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("sefinote_session", "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// setSessionCookie mirrors the token into a cookie for the web UI.
func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie("sefinote_session", token, int(auth.TokenDuration.Seconds()), "/", "", false, true)
}
