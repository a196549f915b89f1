package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/fullstack-app/catalog-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, login, password string) error
	loginFn    func(ctx context.Context, login, password string) (string, error)
	validateFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, login, password string) error {
	return s.registerFn(ctx, login, password)
}

func (s *stubAuthService) Login(ctx context.Context, login, password string) (string, error) {
	return s.loginFn(ctx, login, password)
}

func (s *stubAuthService) Validate(ctx context.Context, userID string) (*domain.User, error) {
	return s.validateFn(ctx, userID)
}

// newAuthTestServer wires the handler behind a real echo instance so the
// validator, body cap and central error handler all run, as in production.
func newAuthTestServer(stub *stubAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = testErrorHandler()
	e.Use(echomiddleware.BodyLimit("1M"))
	h := NewAuthHandler(stub)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/auth/validate", func(c echo.Context) error {
		c.Set("user_id", c.Request().Header.Get("X-Test-User"))
		return h.Validate(c)
	})
	return e
}

// testErrorHandler mirrors the production mapping without importing the api
// package (which would create an import cycle).
func testErrorHandler() echo.HTTPErrorHandler {
	log := zerolog.Nop()
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "internal server error"
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code, msg = he.Code, fmt.Sprintf("%v", he.Message)
		case errors.Is(err, domain.ErrInvalidCredentials):
			code, msg = http.StatusUnauthorized, "Invalid credentials"
		case errors.Is(err, domain.ErrUserExists):
			code, msg = http.StatusConflict, "User with this login already exists"
		default:
			log.Error().Err(err).Msg("unhandled")
		}
		_ = c.JSON(code, map[string]string{"error": msg})
	}
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, login, password string) error {
			if login != "alice1" || password != "Passw0rd" {
				t.Fatalf("unexpected args: %s %s", login, password)
			}
			return nil
		},
	}
	rec := postJSON(newAuthTestServer(stub), "/auth/register", `{"login":"alice1","password":"Passw0rd"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestAuthHandler_Register_TrimsLogin(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, login, password string) error {
			if login != "alice1" {
				t.Fatalf("expected trimmed login, got %q", login)
			}
			return nil
		},
	}
	rec := postJSON(newAuthTestServer(stub), "/auth/register", `{"login":"  alice1  ","password":"Passw0rd"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, login, password string) error {
			return domain.ErrUserExists
		},
	}
	rec := postJSON(newAuthTestServer(stub), "/auth/register", `{"login":"alice1","password":"Passw0rd"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, login, password string) error {
			t.Fatalf("service must not be called on invalid input")
			return nil
		},
	}
	e := newAuthTestServer(stub)

	cases := []struct {
		name string
		body string
	}{
		{"login too short", `{"login":"ab","password":"Passw0rd"}`},
		{"login too long", fmt.Sprintf(`{"login":%q,"password":"Passw0rd"}`, strings.Repeat("a", 31))},
		{"login bad characters", `{"login":"alice-1!","password":"Passw0rd"}`},
		{"password too short", `{"login":"alice1","password":"Pw0rd"}`},
		{"password no uppercase", `{"login":"alice1","password":"passw0rd"}`},
		{"password no digit", `{"login":"alice1","password":"Password"}`},
		{"missing fields", `{}`},
		{"not json", `not-json`},
	}

	for _, tc := range cases {
		rec := postJSON(e, "/auth/register", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d (%s)", tc.name, rec.Code, rec.Body.String())
		}
	}
}

func TestAuthHandler_Register_OversizedBody(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, login, password string) error {
			t.Fatalf("service must not be called for an oversized body")
			return nil
		},
	}
	e := newAuthTestServer(stub)

	body := fmt.Sprintf(`{"login":"alice1","password":%q}`, strings.Repeat("a", 2<<20))
	rec := postJSON(e, "/auth/register", body)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, error) {
			if login != "alice1" || password != "Passw0rd" {
				t.Fatalf("unexpected args: %s %s", login, password)
			}
			return "token123", nil
		},
	}
	rec := postJSON(newAuthTestServer(stub), "/auth/login", `{"login":"alice1","password":"Passw0rd"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("expected access_token, got %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	rec := postJSON(newAuthTestServer(stub), "/auth/login", `{"login":"alice1","password":"Wrong1pw"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Invalid credentials" {
		t.Fatalf("expected generic message, got %q", resp["error"])
	}
}

func TestAuthHandler_Validate_Success(t *testing.T) {
	stub := &stubAuthService{
		validateFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &domain.User{ID: "user-1", Login: "alice1"}, nil
		},
	}
	e := newAuthTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
	req.Header.Set("X-Test-User", "user-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "user-1" || resp["login"] != "alice1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Validate_StaleUser(t *testing.T) {
	stub := &stubAuthService{
		validateFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	e := newAuthTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
	req.Header.Set("X-Test-User", "gone-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Validate_MissingClaims(t *testing.T) {
	stub := &stubAuthService{
		validateFn: func(ctx context.Context, userID string) (*domain.User, error) {
			t.Fatalf("service must not be called without claims")
			return nil, nil
		},
	}
	e := newAuthTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
