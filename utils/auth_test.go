package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGenerateToken_RequiresSecret(t *testing.T) {
	if _, err := GenerateToken("", "admin", time.Hour); err == nil {
		t.Error("expected an error without a secret")
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "test-secret"

	valid, err := GenerateToken(secret, "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := GenerateToken(secret, "admin", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	otherKey, err := GenerateToken("another-secret", "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	notAdmin, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "someone", "role": "client", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.GET("/admin/api/dashboard", AuthMiddleware(secret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("adminUser"))
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"valid bearer", "Bearer " + valid, http.StatusOK},
		{"valid without prefix", valid, http.StatusOK},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + otherKey, http.StatusUnauthorized},
		{"wrong role", "Bearer " + notAdmin, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin/api/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusOK && w.Body.String() != "admin" {
				t.Errorf("adminUser = %q, want admin", w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_EmptySecretRefusesEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)

	emptyKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(""))
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.GET("/admin/api/bookings", AuthMiddleware(""), func(c *gin.Context) {
		c.String(http.StatusOK, "bookings")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+emptyKey)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	if strings.Contains(w.Body.String(), "bookings") {
		t.Errorf("handler ran: %s", w.Body)
	}
}
