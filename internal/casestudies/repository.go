package casestudies

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item CaseStudy) error
	GetByID(ctx context.Context, id string) (CaseStudy, error)
	GetByTitle(ctx context.Context, title string) (CaseStudy, error)
	Replace(ctx context.Context, id string, set bson.M) (CaseStudy, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListFilter, limit, offset int64) ([]CaseStudy, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item CaseStudy) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (CaseStudy, error) {
	var item CaseStudy
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return CaseStudy{}, err
	}
	return item, nil
}

func (r *MongoRepository) GetByTitle(ctx context.Context, title string) (CaseStudy, error) {
	var item CaseStudy
	if err := r.col.FindOne(ctx, bson.M{"title": title}).Decode(&item); err != nil {
		return CaseStudy{}, err
	}
	return item, nil
}

func (r *MongoRepository) Replace(ctx context.Context, id string, set bson.M) (CaseStudy, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated CaseStudy
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return CaseStudy{}, err
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

func (r *MongoRepository) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]CaseStudy, error) {
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

	items := make([]CaseStudy, 0)
	for cursor.Next(ctx) {
		var item CaseStudy
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
	if !filter.IncludeUnpublished {
		query["is_published"] = true
	}
	return query
}
