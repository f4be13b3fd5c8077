package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/require"

	"github.com/springcrm/crm-api/internal/api/handler"
	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
	"github.com/springcrm/crm-api/internal/infrastructure/security"
)

type fakeAuth struct{}

func (fakeAuth) Register(_ context.Context, in ports.RegisterInput) (domain.AccountSummary, error) {
	if in.Email == "taken@x.com" {
		return domain.AccountSummary{}, domain.ErrEmailAlreadyInUse
	}
	return domain.AccountSummary{ID: "acc-1", Email: in.Email, Role: domain.RoleUser}, nil
}

func (fakeAuth) Login(_ context.Context, in ports.LoginInput) (string, error) {
	return "", domain.ErrEmailNotFound
}

type fakeProfiles struct{}

func (fakeProfiles) Profile(_ context.Context, id string) (domain.ProfileSummary, error) {
	return domain.ProfileSummary{ID: id, Email: id + "@x.com", Role: domain.RoleUser, Active: true}, nil
}

type fakeAccounts struct{ ports.AccountAdminService }

func (fakeAccounts) FindAll(context.Context, int, int) ([]domain.AccountSummary, error) {
	return []domain.AccountSummary{{ID: "acc-1", Email: "a@x.com", Role: domain.RoleUser}}, nil
}

type fakeOrgs struct{ ports.OrganizationService }

func (fakeOrgs) List(_ context.Context, who domain.Identity) ([]*domain.Organization, error) {
	return []*domain.Organization{{ID: "org-1", OwnerID: who.SubjectID, Name: "Acme"}}, nil
}

type fakeClients struct{ ports.ClientService }

func (fakeClients) List(_ context.Context, who domain.Identity, orgID string, _ ports.Page) ([]*domain.Client, error) {
	if who.SubjectID != "alice" {
		return nil, domain.ErrForbidden
	}
	return []*domain.Client{}, nil
}

type fakeTxs struct{ ports.TransactionService }

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type routerFixture struct {
	handler http.Handler
	user    string
	admin   string
	bob     string
	forged  string
}

func newRouterFixture(t *testing.T, readiness map[string]handler.Pinger) routerFixture {
	t.Helper()
	codec, err := security.NewTokenCodec(security.TokenConfig{Secret: "router-test-secret"}, nil)
	require.NoError(t, err)
	forger, err := security.NewTokenCodec(security.TokenConfig{Secret: "someone-else"}, nil)
	require.NoError(t, err)

	issue := func(c *security.TokenCodec, sub string, role domain.Role) string {
		tok, err := c.Issue(sub, role)
		require.NoError(t, err)
		return "Bearer " + tok
	}

	e := NewRouter(Deps{
		Log:       zerolog.Nop(),
		Tokens:    codec,
		Register:  fakeAuth{},
		Login:     fakeAuth{},
		Profiles:  fakeProfiles{},
		Accounts:  fakeAccounts{},
		Orgs:      fakeOrgs{},
		Clients:   fakeClients{},
		Txs:       fakeTxs{},
		Readiness: readiness,
	})

	return routerFixture{
		handler: e,
		user:    issue(codec, "alice", domain.RoleUser),
		admin:   issue(codec, "root", domain.RoleAdmin),
		bob:     issue(codec, "bob", domain.RoleUser),
		forged:  issue(forger, "root", domain.RoleAdmin),
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t, nil)

	apitest.New().
		Handler(f.handler).
		Post("/api/v1/auth/register").
		JSON(`{"email":"a@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusCreated).
		Body(`{"status":201,"error":null,"data":{"id":"acc-1","email":"a@x.com","role":"USER"}}`).
		End()

	apitest.New().
		Handler(f.handler).
		Post("/api/v1/auth/register").
		JSON(`{"email":"taken@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusConflict).
		Body(`{"status":409,"error":"email already in use","data":null}`).
		End()

	apitest.New().
		Handler(f.handler).
		Post("/api/v1/auth/login").
		JSON(`{"email":"ghost@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusNotFound).
		End()

	apitest.New().
		Handler(f.handler).
		Get("/health").
		Expect(t).
		Status(http.StatusOK).
		Body(`{"status":"ok"}`).
		End()
}

func TestRouter_AuthenticatedRoutes(t *testing.T) {
	f := newRouterFixture(t, nil)

	apitest.New().
		Handler(f.handler).
		Get("/api/v1/user/me").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"status":401,"error":"authentication required","data":null}`).
		End()

	apitest.New().
		Handler(f.handler).
		Get("/api/v1/user/me").
		Header("Authorization", f.forged).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	apitest.New().
		Handler(f.handler).
		Get("/api/v1/user/me").
		Header("Authorization", f.user).
		Expect(t).
		Status(http.StatusOK).
		Body(`{"status":200,"error":null,"data":{"id":"alice","email":"alice@x.com","role":"USER","active":true}}`).
		End()

	apitest.New().
		Handler(f.handler).
		Get("/api/v1/organization").
		Header("Authorization", f.user).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.New().
		Handler(f.handler).
		Get("/api/v1/organization/org-1/client").
		Header("Authorization", f.bob).
		Expect(t).
		Status(http.StatusForbidden).
		End()

	apitest.New().
		Handler(f.handler).
		Get("/api/v1/organization/org-1/client").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestRouter_AdminRoutes(t *testing.T) {
	f := newRouterFixture(t, nil)

	apitest.New().
		Handler(f.handler).
		Get("/api/v1/admin/find/all").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	apitest.New().
		Handler(f.handler).
		Get("/api/v1/admin/find/all").
		Header("Authorization", f.user).
		Expect(t).
		Status(http.StatusForbidden).
		Body(`{"status":403,"error":"access forbidden","data":null}`).
		End()

	apitest.New().
		Handler(f.handler).
		Get("/api/v1/admin/find/all").
		Header("Authorization", f.forged).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	apitest.New().
		Handler(f.handler).
		Get("/api/v1/admin/find/all").
		Header("Authorization", f.admin).
		Expect(t).
		Status(http.StatusOK).
		End()
}

func TestRouter_Readiness(t *testing.T) {
	f := newRouterFixture(t, map[string]handler.Pinger{
		"mongodb": pingerFunc(func(context.Context) error { return nil }),
		"redis":   pingerFunc(func(context.Context) error { return errors.New("connection refused") }),
	})

	apitest.New().
		Handler(f.handler).
		Get("/health/ready").
		Expect(t).
		Status(http.StatusServiceUnavailable).
		Body(`{"status":"degraded","dependencies":{"mongodb":{"status":"ok"},"redis":{"status":"unhealthy","error":"connection refused"}}}`).
		End()
}
