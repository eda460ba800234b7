package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shoestore_be/model"
)

const orphanImageCollection = "orphaned_images"

// OrphanImageRepository stores images whose deletion failed so they can be
// reclaimed later.
type OrphanImageRepository struct {
	col *mongo.Collection
}

func NewOrphanImageRepository(db *mongo.Database) *OrphanImageRepository {
	return &OrphanImageRepository{col: db.Collection(orphanImageCollection)}
}

func (r *OrphanImageRepository) Record(ctx context.Context, img model.OrphanImage) error {
	if _, err := r.col.InsertOne(ctx, img); err != nil {
		return fmt.Errorf("record orphan image: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first.
func (r *OrphanImageRepository) Recent(ctx context.Context, limit int64) ([]model.OrphanImage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}}).SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orphan images: %w", err)
	}
	out := []model.OrphanImage{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode orphan images: %w", err)
	}
	return out, nil
}
