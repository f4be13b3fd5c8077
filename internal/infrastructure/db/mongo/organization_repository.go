package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

const organizationCollection = "organizations"

type OrganizationRepository struct {
	coll *mongo.Collection
}

func NewOrganizationRepository(db *mongo.Database) *OrganizationRepository {
	return &OrganizationRepository{coll: db.Collection(organizationCollection)}
}

var _ ports.OrganizationRepository = (*OrganizationRepository)(nil)

func (r *OrganizationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}},
		Options: options.Index().SetName("by_owner"),
	})
	if err != nil {
		return fmt.Errorf("create organization indexes: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	if _, err := r.coll.InsertOne(ctx, org); err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*domain.Organization, error) {
	var org domain.Organization
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&org); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Organization, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer cursor.Close(ctx)

	orgs := []*domain.Organization{}
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, fmt.Errorf("decode organizations: %w", err)
	}
	return orgs, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	filter := bson.M{"_id": org.ID, "owner_id": org.OwnerID}
	update := bson.M{"$set": bson.M{"name": org.Name, "updated_at": org.UpdatedAt}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id, ownerID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}
