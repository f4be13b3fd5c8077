package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

type stubRegister struct {
	fn func(ctx context.Context, in ports.RegisterInput) (domain.AccountSummary, error)
}

func (s *stubRegister) Register(ctx context.Context, in ports.RegisterInput) (domain.AccountSummary, error) {
	return s.fn(ctx, in)
}

type stubLogin struct {
	fn func(ctx context.Context, in ports.LoginInput) (string, error)
}

func (s *stubLogin) Login(ctx context.Context, in ports.LoginInput) (string, error) {
	return s.fn(ctx, in)
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func neverRegister(t *testing.T) *stubRegister {
	return &stubRegister{fn: func(context.Context, ports.RegisterInput) (domain.AccountSummary, error) {
		t.Fatalf("should not be called")
		return domain.AccountSummary{}, nil
	}}
}

func neverLogin(t *testing.T) *stubLogin {
	return &stubLogin{fn: func(context.Context, ports.LoginInput) (string, error) {
		t.Fatalf("should not be called")
		return "", nil
	}}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	reg := &stubRegister{fn: func(_ context.Context, in ports.RegisterInput) (domain.AccountSummary, error) {
		if in.Email != "a@x.com" || in.Password != "secret1" {
			t.Fatalf("unexpected args: %+v", in)
		}
		return domain.AccountSummary{ID: "acc-1", Email: in.Email, Role: domain.RoleUser}, nil
	}}
	handler := NewAuthHandler(reg, neverLogin(t))

	c, rec := newJSONContext(http.MethodPost, "/api/v1/auth/register", `{"email":"a@x.com","password":"secret1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	if resp.Status != http.StatusCreated || resp.Error != nil {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected account in data")
	}
	if data["id"] != "acc-1" || data["email"] != "a@x.com" || data["role"] != "USER" {
		t.Fatalf("unexpected account payload: %+v", data)
	}
	if _, leaked := data["password_hash"]; leaked {
		t.Fatalf("password hash leaked")
	}
}

func TestAuthHandler_Register_EmailInUse(t *testing.T) {
	reg := &stubRegister{fn: func(context.Context, ports.RegisterInput) (domain.AccountSummary, error) {
		return domain.AccountSummary{}, domain.ErrEmailAlreadyInUse
	}}
	handler := NewAuthHandler(reg, neverLogin(t))

	c, _ := newJSONContext(http.MethodPost, "/api/v1/auth/register", `{"email":"a@x.com","password":"secret1"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrEmailAlreadyInUse) {
		t.Fatalf("expected ErrEmailAlreadyInUse, got %v", err)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	cases := map[string]string{
		"not json":       "not-json",
		"missing email":  `{"password":"secret1"}`,
		"bad email":      `{"email":"nope","password":"secret1"}`,
		"short password": `{"email":"a@x.com","password":"abc"}`,
		"long password":  `{"email":"a@x.com","password":"abcdefghijklmnopqrstu"}`,
		"bad charset":    `{"email":"a@x.com","password":"secret 1"}`,
		"email too long": `{"email":"` + strings.Repeat("a", 45) + `@x.com","password":"secret1"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			handler := NewAuthHandler(neverRegister(t), neverLogin(t))
			c, _ := newJSONContext(http.MethodPost, "/api/v1/auth/register", body)

			err := handler.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	login := &stubLogin{fn: func(_ context.Context, in ports.LoginInput) (string, error) {
		if in.Email != "alice@example.com" || in.Password != "S3cret!" {
			t.Fatalf("unexpected args: %+v", in)
		}
		return "token123", nil
	}}
	handler := NewAuthHandler(neverRegister(t), login)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com","password":"S3cret!"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	if resp.Data != "token123" {
		t.Fatalf("expected token, got %v", resp.Data)
	}
}

func TestAuthHandler_Login_PropagatesDomainErrors(t *testing.T) {
	for _, want := range []error{
		domain.ErrEmailNotFound,
		domain.ErrAccountNotActive,
		domain.ErrInvalidCredentials,
	} {
		login := &stubLogin{fn: func(context.Context, ports.LoginInput) (string, error) {
			return "", want
		}}
		handler := NewAuthHandler(neverRegister(t), login)

		c, _ := newJSONContext(http.MethodPost, "/api/v1/auth/login", `{"email":"a@x.com","password":"secret1"}`)
		if err := handler.Login(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	handler := NewAuthHandler(neverRegister(t), neverLogin(t))

	c, _ := newJSONContext(http.MethodPost, "/api/v1/auth/login", "{")
	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
