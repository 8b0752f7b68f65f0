package contacts

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item Contact) error
	GetByID(ctx context.Context, id string) (Contact, error)
	SetRead(ctx context.Context, id string, now time.Time) (Contact, error)
	SetStatus(ctx context.Context, id, status string, now time.Time) (Contact, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Contact, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item Contact) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Contact, error) {
	var item Contact
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return Contact{}, err
	}
	return item, nil
}

func (r *MongoRepository) SetRead(ctx context.Context, id string, now time.Time) (Contact, error) {
	return r.findOneAndSet(ctx, id, bson.M{"is_read": true, "updated_at": now})
}

func (r *MongoRepository) SetStatus(ctx context.Context, id, status string, now time.Time) (Contact, error) {
	return r.findOneAndSet(ctx, id, bson.M{"status": status, "is_read": true, "updated_at": now})
}

func (r *MongoRepository) findOneAndSet(ctx context.Context, id string, set bson.M) (Contact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Contact
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return Contact{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Contact, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit).SetSkip(offset)
	}

	cursor, err := r.col.Find(ctx, listQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Contact, 0)
	for cursor.Next(ctx) {
		var item Contact
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, listQuery(filter))
}

func listQuery(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	return query
}
