package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

const transactionCollection = "transactions"

type TransactionRepository struct {
	store scopedCollection[domain.Transaction]
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{store: scopedCollection[domain.Transaction]{
		coll:     db.Collection(transactionCollection),
		notFound: domain.ErrTransactionNotFound,
		kind:     "transaction",
	}}
}

var _ ports.TransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	return r.store.ensureIndexes(ctx)
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return r.store.insert(ctx, tx)
}

func (r *TransactionRepository) Find(ctx context.Context, id string, scope domain.OwnerScope) (*domain.Transaction, error) {
	return r.store.find(ctx, id, scope)
}

func (r *TransactionRepository) List(ctx context.Context, scope domain.OwnerScope, page ports.Page) ([]*domain.Transaction, error) {
	return r.store.list(ctx, scope, page)
}

func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	scope := domain.OwnerScope{OwnerID: tx.OwnerID, OrganizationID: tx.OrganizationID}
	return r.store.replace(ctx, tx.ID, scope, tx)
}

func (r *TransactionRepository) Delete(ctx context.Context, id string, scope domain.OwnerScope) error {
	return r.store.delete(ctx, id, scope)
}

func (r *TransactionRepository) DeleteScope(ctx context.Context, scope domain.OwnerScope) (int64, error) {
	return r.store.deleteScope(ctx, scope)
}
