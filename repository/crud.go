package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func findByID[T any](ctx context.Context, db *gorm.DB, op string, id uuid.UUID, preloads ...string) (*T, error) {
	var out T
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(op, err)
	}
	return &out, nil
}

func listOrdered[T any](ctx context.Context, db *gorm.DB, op, order string) ([]T, error) {
	out := []T{}
	if err := db.WithContext(ctx).Order(order).Find(&out).Error; err != nil {
		return nil, translate(op, err)
	}
	return out, nil
}

func updateByID[T any](ctx context.Context, db *gorm.DB, op string, id uuid.UUID, fields map[string]interface{}) error {
	res := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	return affected(op, res)
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, op string, id uuid.UUID) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	return affected(op, res)
}

func count[T any](ctx context.Context, db *gorm.DB, op string) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, translate(op, err)
	}
	return n, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
