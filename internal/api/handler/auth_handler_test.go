package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/directoryhq/user-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, name, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, name, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, name, password)
}

func (s *stubAuthService) AuthenticateAdmin(ctx context.Context, name, password string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) AuthenticateAny(ctx context.Context, name, password string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func newAuthTestContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			if name != "alice" || email != "a@x.com" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.User{ID: 1, Name: name, Email: email, Role: domain.RoleClient}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/register", `{"name":"alice","email":"a@x.com","password":"pw1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "alice" || resp["role"] != domain.RoleClient {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/register", `{"name":"alice","email":"a@x.com","password":"pw2"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/register", "not-json")
	_ = h.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	c, rec = newAuthTestContext(t, "/auth/register", `{"name":"alice","email":"not-an-email","password":"pw"}`)
	_ = h.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, name, password string) (string, *domain.User, error) {
			if name != "root" || password != "rootpass" {
				t.Fatalf("unexpected args: %s %s", name, password)
			}
			return "token123", &domain.User{ID: 1, Name: "root", Role: domain.RoleAdmin, Admin: true}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/token", `{"username":"root","password":"rootpass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.AccessToken != "token123" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", domain.ErrUserNotFound, http.StatusUnauthorized},
		{"non-admin", domain.ErrForbidden, http.StatusForbidden},
		{"bad password", domain.ErrInvalidCredentials, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAuthService{
				loginFn: func(ctx context.Context, name, password string) (string, *domain.User, error) {
					return "", nil, tc.err
				},
			}
			h := NewAuthHandler(stub)

			c, rec := newAuthTestContext(t, "/auth/token", `{"username":"bob","password":"pw"}`)
			_ = h.Login(c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}
