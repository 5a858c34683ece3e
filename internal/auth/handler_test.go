package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := NewInMemoryPlayerRepository()
	service := NewService(repo)
	handler := NewHandler(service)

	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	r := setupAuthRouter()

	w := postJSON(t, r, "/auth/register", gin.H{
		"display_name": "Test Player",
		"email":        "test@example.com",
		"password":     "Password@123",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["id"] == "" {
		t.Fatalf("response missing id: %v", resp)
	}
	if resp["display_name"] != "Test Player" {
		t.Fatalf("display_name = %q", resp["display_name"])
	}
}

func TestRegisterMissingFields(t *testing.T) {
	r := setupAuthRouter()

	w := postJSON(t, r, "/auth/register", gin.H{
		"email": "test@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupAuthRouter()

	body := gin.H{
		"display_name": "Test Player",
		"email":        "test@example.com",
		"password":     "Password@123",
	}

	if w := postJSON(t, r, "/auth/register", body); w.Code != http.StatusCreated {
		t.Fatalf("first register: status = %d", w.Code)
	}
	if w := postJSON(t, r, "/auth/register", body); w.Code != http.StatusConflict {
		t.Fatalf("second register: status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupAuthRouter()

	postJSON(t, r, "/auth/register", gin.H{
		"display_name": "Test Player",
		"email":        "test@example.com",
		"password":     "Password@123",
	})

	w := postJSON(t, r, "/auth/login", gin.H{
		"email":    "test@example.com",
		"password": "Password@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["token"] == "" {
		t.Fatalf("response missing token: %v", resp)
	}
	if resp["display_name"] != "Test Player" {
		t.Fatalf("display_name = %q", resp["display_name"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupAuthRouter()

	postJSON(t, r, "/auth/register", gin.H{
		"display_name": "Test Player",
		"email":        "test@example.com",
		"password":     "Password@123",
	})

	w := postJSON(t, r, "/auth/login", gin.H{
		"email":    "test@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
