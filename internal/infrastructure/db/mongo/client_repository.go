package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

const clientCollection = "clients"

type ClientRepository struct {
	store scopedCollection[domain.Client]
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{store: scopedCollection[domain.Client]{
		coll:     db.Collection(clientCollection),
		notFound: domain.ErrClientNotFound,
		kind:     "client",
	}}
}

var _ ports.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	return r.store.ensureIndexes(ctx)
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	return r.store.insert(ctx, client)
}

func (r *ClientRepository) Find(ctx context.Context, id string, scope domain.OwnerScope) (*domain.Client, error) {
	return r.store.find(ctx, id, scope)
}

func (r *ClientRepository) List(ctx context.Context, scope domain.OwnerScope, page ports.Page) ([]*domain.Client, error) {
	return r.store.list(ctx, scope, page)
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	scope := domain.OwnerScope{OwnerID: client.OwnerID, OrganizationID: client.OrganizationID}
	return r.store.replace(ctx, client.ID, scope, client)
}

func (r *ClientRepository) Delete(ctx context.Context, id string, scope domain.OwnerScope) error {
	return r.store.delete(ctx, id, scope)
}

func (r *ClientRepository) DeleteScope(ctx context.Context, scope domain.OwnerScope) (int64, error) {
	return r.store.deleteScope(ctx, scope)
}
