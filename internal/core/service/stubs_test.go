package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub account repository
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Account
	findErr   error // if set, lookups return this error
	creates   int
	createErr error // if set, Create returns this error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byID: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	c := *a
	return &c
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	// mirrors the unique email index
	for _, existing := range r.byID {
		if existing.Email == a.Email {
			return domain.ErrEmailAlreadyInUse
		}
	}
	r.creates++
	r.byID[a.ID] = cloneAccount(a)
	return nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.byID {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) List(_ context.Context, page, size int) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*domain.Account, 0, len(r.byID))
	for _, a := range r.byID {
		all = append(all, cloneAccount(a))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Email < all[j].Email })
	start := page * size
	if start >= len(all) {
		return nil, nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *stubAccountRepo) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Active = active
	return nil
}

func (r *stubAccountRepo) SetRole(_ context.Context, id string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Role = role
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Collaborator stubs
// ---------------------------------------------------------------------------

// countingVerifier stores "hash:" + plaintext and counts Verify calls.
type countingVerifier struct {
	verifyCalls int
}

func (v *countingVerifier) Hash(plaintext string) (string, error) {
	return "hash:" + plaintext, nil
}

func (v *countingVerifier) Verify(plaintext, hash string) bool {
	v.verifyCalls++
	return hash == "hash:"+plaintext
}

type failingIssuer struct{}

func (failingIssuer) Issue(string, domain.Role) (string, error) {
	return "", errors.Join(domain.ErrTokenCreation, errors.New("bad key"))
}

type recordingAudit struct {
	events []domain.AuthEvent
}

func (a *recordingAudit) Record(e domain.AuthEvent) {
	a.events = append(a.events, e)
}

func (a *recordingAudit) outcomes() []string {
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Outcome)
	}
	return out
}

type stubProfileCache struct {
	entries     map[string]domain.ProfileSummary
	invalidated []string
	getErr      error
}

func newStubProfileCache() *stubProfileCache {
	return &stubProfileCache{entries: make(map[string]domain.ProfileSummary)}
}

func (c *stubProfileCache) Get(_ context.Context, id string) (domain.ProfileSummary, bool, error) {
	if c.getErr != nil {
		return domain.ProfileSummary{}, false, c.getErr
	}
	p, ok := c.entries[id]
	return p, ok, nil
}

func (c *stubProfileCache) Set(_ context.Context, p domain.ProfileSummary) error {
	c.entries[p.ID] = p
	return nil
}

func (c *stubProfileCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	delete(c.entries, id)
	return nil
}

// ---------------------------------------------------------------------------
// Owned resource stubs
// ---------------------------------------------------------------------------

type stubOrgRepo struct {
	byID map[string]*domain.Organization
}

func newStubOrgRepo() *stubOrgRepo {
	return &stubOrgRepo{byID: make(map[string]*domain.Organization)}
}

func (r *stubOrgRepo) Create(_ context.Context, o *domain.Organization) error {
	c := *o
	r.byID[o.ID] = &c
	return nil
}

func (r *stubOrgRepo) FindByID(_ context.Context, id string) (*domain.Organization, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrganizationNotFound
	}
	c := *o
	return &c, nil
}

func (r *stubOrgRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Organization, error) {
	var out []*domain.Organization
	for _, o := range r.byID {
		if o.OwnerID == ownerID {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *stubOrgRepo) Update(_ context.Context, o *domain.Organization) error {
	if _, ok := r.byID[o.ID]; !ok {
		return domain.ErrOrganizationNotFound
	}
	c := *o
	r.byID[o.ID] = &c
	return nil
}

func (r *stubOrgRepo) Delete(_ context.Context, id, ownerID string) error {
	o, ok := r.byID[id]
	if !ok || o.OwnerID != ownerID {
		return domain.ErrOrganizationNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubClientRepo struct {
	byID      map[string]*domain.Client
	lastPage  ports.Page
	deleteErr error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[string]*domain.Client)}
}

func inScope(owner, org string, scope domain.OwnerScope) bool {
	return owner == scope.OwnerID && org == scope.OrganizationID
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *stubClientRepo) Find(_ context.Context, id string, scope domain.OwnerScope) (*domain.Client, error) {
	c, ok := r.byID[id]
	if !ok || !inScope(c.OwnerID, c.OrganizationID, scope) {
		return nil, domain.ErrClientNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubClientRepo) List(_ context.Context, scope domain.OwnerScope, page ports.Page) ([]*domain.Client, error) {
	r.lastPage = page
	var out []*domain.Client
	for _, c := range r.byID {
		if inScope(c.OwnerID, c.OrganizationID, scope) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string, scope domain.OwnerScope) error {
	c, ok := r.byID[id]
	if !ok || !inScope(c.OwnerID, c.OrganizationID, scope) {
		return domain.ErrClientNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubTxRepo struct {
	byID      map[string]*domain.Transaction
	deleteErr error
}

func newStubTxRepo() *stubTxRepo {
	return &stubTxRepo{byID: make(map[string]*domain.Transaction)}
}

func (r *stubClientRepo) DeleteScope(_ context.Context, scope domain.OwnerScope) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	var n int64
	for id, c := range r.byID {
		if inScope(c.OwnerID, c.OrganizationID, scope) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

func (r *stubTxRepo) Create(_ context.Context, tx *domain.Transaction) error {
	cp := *tx
	r.byID[tx.ID] = &cp
	return nil
}

func (r *stubTxRepo) Find(_ context.Context, id string, scope domain.OwnerScope) (*domain.Transaction, error) {
	tx, ok := r.byID[id]
	if !ok || !inScope(tx.OwnerID, tx.OrganizationID, scope) {
		return nil, domain.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (r *stubTxRepo) List(_ context.Context, scope domain.OwnerScope, _ ports.Page) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, tx := range r.byID {
		if inScope(tx.OwnerID, tx.OrganizationID, scope) {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubTxRepo) Update(_ context.Context, tx *domain.Transaction) error {
	cp := *tx
	r.byID[tx.ID] = &cp
	return nil
}

func (r *stubTxRepo) Delete(_ context.Context, id string, scope domain.OwnerScope) error {
	tx, ok := r.byID[id]
	if !ok || !inScope(tx.OwnerID, tx.OrganizationID, scope) {
		return domain.ErrTransactionNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubTxRepo) DeleteScope(_ context.Context, scope domain.OwnerScope) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	var n int64
	for id, tx := range r.byID {
		if inScope(tx.OwnerID, tx.OrganizationID, scope) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}
