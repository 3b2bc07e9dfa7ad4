package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
	"github.com/cleanvillage/sanitation-system/internal/core/ports"
)

type stubIdentityService struct {
	registerFn    func(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error)
	authFn        func(ctx context.Context, username, password, role string) (*domain.User, error)
	currentFn     func(ctx context.Context) (*domain.User, error)
	started       []*domain.User
	endedSessions int
}

func (s *stubIdentityService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubIdentityService) Authenticate(ctx context.Context, username, password, role string) (*domain.User, error) {
	return s.authFn(ctx, username, password, role)
}

func (s *stubIdentityService) CurrentSession(ctx context.Context) (*domain.User, error) {
	return s.currentFn(ctx)
}

func (s *stubIdentityService) StartSession(_ context.Context, user *domain.User) error {
	s.started = append(s.started, user)
	return nil
}

func (s *stubIdentityService) EndSession(_ context.Context) error {
	s.endedSessions++
	return nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubIdentityService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
			if input.Username != "alice" || input.Role != "citizen" || input.Village != "Warangal Rural" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.RegisterResult{
				User:    &domain.User{ID: "user_1714501223000", Username: input.Username, Role: input.Role},
				Message: "Account created successfully! You can now log in.",
			}, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	body := `{"username":"alice","password":"secret123","email":"alice@example.com","fullName":"Alice","phoneNumber":"+91 9000000000","role":"citizen","village":"Warangal Rural"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/register", body)

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
	if resp["message"] != "Account created successfully! You can now log in." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	stub := &stubIdentityService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.RegisterResult, error) {
			return nil, domain.ErrDuplicateUsername
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	body := `{"username":"bob","password":"secret123","email":"bob@example.com","fullName":"Bob","phoneNumber":"+91 9000000001","role":"citizen"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", body)

	if err := h.Register(c); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthHandler_Register_RejectsUnknownRole(t *testing.T) {
	stub := &stubIdentityService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.RegisterResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	body := `{"username":"bob","password":"secret123","email":"bob@example.com","fullName":"Bob","phoneNumber":"+91 9000000001","role":"admin"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", body)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubIdentityService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.RegisterResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", "not-json")

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubIdentityService{
		authFn: func(_ context.Context, username, password, role string) (*domain.User, error) {
			if username != "john_user" || role != "citizen" {
				t.Fatalf("unexpected args: %s %s", username, role)
			}
			return &domain.User{ID: "1", Username: username, Role: role}, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	body := `{"username":"john_user","password":"whatever","role":"citizen"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(stub.started) != 1 || stub.started[0].Username != "john_user" {
		t.Fatalf("session not started: %+v", stub.started)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	tokenStr, _ := resp["token"].(string)
	if tokenStr == "" {
		t.Fatalf("expected token in response")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "john_user" || claims["role"] != "citizen" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubIdentityService{
		authFn: func(_ context.Context, _, _, _ string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	body := `{"username":"ghost","password":"pw","role":"citizen"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/login", body)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(stub.started) != 0 {
		t.Fatalf("session started despite failed login")
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	stub := &stubIdentityService{}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.endedSessions != 1 {
		t.Fatalf("session not ended")
	}
}

func TestAuthHandler_Me_NoSession(t *testing.T) {
	stub := &stubIdentityService{
		currentFn: func(context.Context) (*domain.User, error) {
			return nil, domain.ErrNoSession
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, _ := newTestContext(t, http.MethodGet, "/auth/me", "")

	if err := h.Me(c); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestAuthHandler_Me_Active(t *testing.T) {
	stub := &stubIdentityService{
		currentFn: func(context.Context) (*domain.User, error) {
			return &domain.User{ID: "2", Username: "official_kumar", Role: "official"}, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodGet, "/auth/me", "")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["username"] != "official_kumar" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
