package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sefinote/sefinote/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*BasicAuthenticator, *gorm.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewBasicAuthenticator(db, "test-secret"), db
}

func TestSignupAndLogin(t *testing.T) {
	a, _ := setupAuthTest(t)

	resp, err := a.Signup("alice@test.com", "s3cret-pw")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token on signup")
	}
	if resp.User.Email != "alice@test.com" {
		t.Errorf("unexpected user: %+v", resp.User)
	}

	login, err := a.Login("alice@test.com", "s3cret-pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Error("login returned a different user")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	a, _ := setupAuthTest(t)

	if _, err := a.Signup("alice@test.com", "pw1"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, err := a.Signup("alice@test.com", "pw2")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	a, _ := setupAuthTest(t)

	if _, err := a.Signup("alice@test.com", "right"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := a.Login("alice@test.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := a.Login("nobody@test.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUpdateUser_PasswordChange(t *testing.T) {
	a, _ := setupAuthTest(t)

	resp, err := a.Signup("alice@test.com", "old-pw")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if err := a.UpdateUser(resp.User, UpdateUserRequest{Password: "new-pw"}); err != nil {
		t.Fatalf("update user: %v", err)
	}

	if _, err := a.Login("alice@test.com", "old-pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password should no longer work")
	}
	if _, err := a.Login("alice@test.com", "new-pw"); err != nil {
		t.Errorf("new password should work: %v", err)
	}
}

func TestUpdateUser_EmailTaken(t *testing.T) {
	a, _ := setupAuthTest(t)

	if _, err := a.Signup("bob@test.com", "pw"); err != nil {
		t.Fatalf("signup bob: %v", err)
	}
	resp, err := a.Signup("alice@test.com", "pw")
	if err != nil {
		t.Fatalf("signup alice: %v", err)
	}

	err = a.UpdateUser(resp.User, UpdateUserRequest{Email: "bob@test.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// middlewareProbe runs the auth middleware against a request and reports
// the response plus whether the inner handler saw a user.
func middlewareProbe(t *testing.T, a *BasicAuthenticator, configure func(*http.Request)) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var sawUser bool
	router := gin.New()
	router.GET("/probe", a.Middleware(), func(c *gin.Context) {
		_, err := a.GetUserFromContext(c)
		sawUser = err == nil
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	configure(req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, sawUser
}

func TestMiddleware_BearerToken(t *testing.T) {
	a, _ := setupAuthTest(t)
	resp, err := a.Signup("alice@test.com", "pw")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	w, sawUser := middlewareProbe(t, a, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+resp.Token)
	})
	if w.Code != http.StatusOK || !sawUser {
		t.Errorf("expected authenticated request, got status %d", w.Code)
	}
}

func TestMiddleware_SessionCookie(t *testing.T) {
	a, _ := setupAuthTest(t)
	resp, err := a.Signup("alice@test.com", "pw")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	w, sawUser := middlewareProbe(t, a, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "sefinote_session", Value: resp.Token})
	})
	if w.Code != http.StatusOK || !sawUser {
		t.Errorf("expected cookie auth to pass, got status %d", w.Code)
	}
}

func TestMiddleware_Rejections(t *testing.T) {
	a, _ := setupAuthTest(t)

	cases := []struct {
		name      string
		configure func(*http.Request)
	}{
		{"no credentials", func(req *http.Request) {}},
		{"malformed header", func(req *http.Request) { req.Header.Set("Authorization", "Basic abc") }},
		{"garbage token", func(req *http.Request) { req.Header.Set("Authorization", "Bearer not-a-jwt") }},
		{"wrong signature", func(req *http.Request) {
			other := NewBasicAuthenticator(a.db, "other-secret")
			resp, err := other.Signup("eve@test.com", "pw")
			if err != nil {
				t.Fatalf("signup: %v", err)
			}
			req.Header.Set("Authorization", "Bearer "+resp.Token)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, sawUser := middlewareProbe(t, a, tc.configure)
			if w.Code != http.StatusUnauthorized || sawUser {
				t.Errorf("expected 401, got status %d", w.Code)
			}
		})
	}
}

func TestMiddleware_DeletedUser(t *testing.T) {
	a, db := setupAuthTest(t)
	resp, err := a.Signup("alice@test.com", "pw")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	// A valid token for a since-deleted account must not authenticate.
	if err := db.Delete(resp.User).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	w, sawUser := middlewareProbe(t, a, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+resp.Token)
	})
	if w.Code != http.StatusUnauthorized || sawUser {
		t.Errorf("expected 401 for deleted user, got status %d", w.Code)
	}
}
