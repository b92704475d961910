package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/simfut/league-api/internal/api"
	"github.com/simfut/league-api/internal/api/handler"
	"github.com/simfut/league-api/internal/core/domain"
	"github.com/simfut/league-api/internal/core/ports"
)

type stubAuthService struct {
	registerResult *ports.AuthResult
	registerErr    error
	loginResult    *ports.AuthResult
	loginErr       error
}

func (s *stubAuthService) Register(context.Context, string, string, domain.Role) (*ports.AuthResult, error) {
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(context.Context, string, string) (*ports.AuthResult, error) {
	return s.loginResult, s.loginErr
}

func newAuthTestServer(svc ports.AuthService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	h := handler.NewAuthHandler(svc)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	return e
}

func postJSON(e *echo.Echo, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{
		registerResult: &ports.AuthResult{Token: "tok", Username: "alice", Role: domain.RoleUser},
	}
	e := newAuthTestServer(svc)

	rec := postJSON(e, "/auth/register", `{"username":"alice","password":"secret1"}`, "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body)
	}

	var result ports.AuthResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Token != "tok" || result.Username != "alice" || result.Role != domain.RoleUser {
		t.Fatalf("unexpected body: %+v", result)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{})

	for _, body := range []string{
		`{}`,
		`{"username":"alice"}`,
		`{"password":"secret1"}`,
		`{"username":"al","password":"secret1"}`,
		`{"username":"alice","password":"short"}`,
		`{"username":"alice","password":"secret1","role":"ROOT"}`,
	} {
		rec := postJSON(e, "/auth/register", body, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{registerErr: domain.ErrUserExists})

	rec := postJSON(e, "/auth/register", `{"username":"alice","password":"secret1"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_OK(t *testing.T) {
	svc := &stubAuthService{
		loginResult: &ports.AuthResult{Token: "tok", Username: "alice", Role: domain.RoleAdmin},
	}
	e := newAuthTestServer(svc)

	rec := postJSON(e, "/auth/login", `{"username":"alice","password":"secret1"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body)
	}
}

func TestAuthHandler_Login_UniformUnauthorized(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	// Unknown user and wrong password both arrive here as the same error
	// value, so the response can never distinguish them.
	rec := postJSON(e, "/auth/login", `{"username":"whoever","password":"whatever"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Fatalf("expected uniform failure message, got %s", rec.Body)
	}
}

func TestAuthHandler_Login_BadPayload(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{})

	rec := postJSON(e, "/auth/login", `{"username":`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
