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

// scopedCollection stores documents that belong to one owner and one
// organization. Every read and write filters on both, so a document is only
// reachable through the scope it was created under.
type scopedCollection[T any] struct {
	coll     *mongo.Collection
	notFound error
	kind     string
}

func scopeFilter(id string, scope domain.OwnerScope) bson.M {
	f := bson.M{
		"owner_id":        scope.OwnerID,
		"organization_id": scope.OrganizationID,
	}
	if id != "" {
		f["_id"] = id
	}
	return f
}

func (c scopedCollection[T]) ensureIndexes(ctx context.Context) error {
	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner_id", Value: 1},
			{Key: "organization_id", Value: 1},
			{Key: "created_at", Value: 1},
		},
		Options: options.Index().SetName("by_scope"),
	})
	if err != nil {
		return fmt.Errorf("create %s indexes: %w", c.kind, err)
	}
	return nil
}

func (c scopedCollection[T]) insert(ctx context.Context, doc *T) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", c.kind, err)
	}
	return nil
}

func (c scopedCollection[T]) find(ctx context.Context, id string, scope domain.OwnerScope) (*T, error) {
	var doc T
	if err := c.coll.FindOne(ctx, scopeFilter(id, scope)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("find %s: %w", c.kind, err)
	}
	return &doc, nil
}

func (c scopedCollection[T]) list(ctx context.Context, scope domain.OwnerScope, page ports.Page) ([]*T, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(page.Number * page.Size)).
		SetLimit(int64(page.Size))

	cursor, err := c.coll.Find(ctx, scopeFilter("", scope), opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.kind, err)
	}
	defer cursor.Close(ctx)

	docs := []*T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.kind, err)
	}
	return docs, nil
}

func (c scopedCollection[T]) replace(ctx context.Context, id string, scope domain.OwnerScope, doc *T) error {
	res, err := c.coll.ReplaceOne(ctx, scopeFilter(id, scope), doc)
	if err != nil {
		return fmt.Errorf("update %s: %w", c.kind, err)
	}
	if res.MatchedCount == 0 {
		return c.notFound
	}
	return nil
}

func (c scopedCollection[T]) deleteScope(ctx context.Context, scope domain.OwnerScope) (int64, error) {
	res, err := c.coll.DeleteMany(ctx, scopeFilter("", scope))
	if err != nil {
		return 0, fmt.Errorf("delete %s scope: %w", c.kind, err)
	}
	return res.DeletedCount, nil
}

func (c scopedCollection[T]) delete(ctx context.Context, id string, scope domain.OwnerScope) error {
	res, err := c.coll.DeleteOne(ctx, scopeFilter(id, scope))
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.kind, err)
	}
	if res.DeletedCount == 0 {
		return c.notFound
	}
	return nil
}
