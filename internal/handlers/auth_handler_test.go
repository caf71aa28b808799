package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-manager/internal/config"
	"github.com/clinicdesk/clinic-manager/internal/middleware"
	"github.com/clinicdesk/clinic-manager/internal/models"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := setupHandlerDB(t, "auth")
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate users: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Name:         "Front Desk",
		Email:        "desk@clinic.test",
		PasswordHash: string(hashed),
		Role:         "receptionist",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return db
}

func TestLogin(t *testing.T) {
	db := setupAuthDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}
	h := NewAuthHandler(db, cfg)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/login/", h.Login)

	// A protected probe route proves the issued token is usable.
	secured := r.Group("/api", middleware.AuthMiddleware(cfg))
	secured.GET("/whoami/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.MustGet(middleware.ContextUserID),
			"role": c.MustGet(middleware.ContextUserRole),
		})
	})

	w := postJSON(t, r, http.MethodPost, "/api/login/", gin.H{
		"email":    "Desk@clinic.test",
		"password": "letmein",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Role  string `json:"role"`
		Token string `json:"token"`
		Name  string `json:"name"`
		ID    uint   `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Role != "receptionist" || resp.Name != "Front Desk" || resp.Token == "" {
		t.Errorf("unexpected login response: %+v", resp)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/whoami/", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	probe := httptest.NewRecorder()
	r.ServeHTTP(probe, req)
	if probe.Code != http.StatusOK {
		t.Errorf("expected token to pass auth, got %d: %s", probe.Code, probe.Body.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupAuthDB(t)
	h := NewAuthHandler(db, &config.Config{JWTSecret: "test-secret"})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/login/", h.Login)

	tests := []struct {
		name string
		body gin.H
	}{
		{"wrong password", gin.H{"email": "desk@clinic.test", "password": "nope"}},
		{"unknown email", gin.H{"email": "ghost@clinic.test", "password": "letmein"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, http.MethodPost, "/api/login/", tt.body)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/patients/", middleware.AuthMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/patients/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}
