package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shoestore_be/model"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	return listOrdered[model.Category](ctx, r.db, "list categories", "created_at")
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return findByID[model.Category](ctx, r.db, "find category", id)
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	return translate("create category", r.db.WithContext(ctx).Create(category).Error)
}

func (r *CategoryRepository) Update(ctx context.Context, id uuid.UUID, in model.CategoryInput) (*model.Category, error) {
	err := updateByID[model.Category](ctx, r.db, "update category", id, map[string]interface{}{
		"name": in.Name,
		"icon": in.Icon,
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.Category](ctx, r.db, "delete category", id)
}

func (r *CategoryRepository) Options(ctx context.Context) ([]model.Option, error) {
	out := []model.Option{}
	err := r.db.WithContext(ctx).Model(&model.Category{}).Select("id", "name").Order("name").Scan(&out).Error
	return out, translate("category options", err)
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	return count[model.Category](ctx, r.db, "count categories")
}
