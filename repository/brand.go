package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shoestore_be/model"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) List(ctx context.Context) ([]model.Brand, error) {
	return listOrdered[model.Brand](ctx, r.db, "list brands", "created_at")
}

func (r *BrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Brand, error) {
	return findByID[model.Brand](ctx, r.db, "find brand", id)
}

func (r *BrandRepository) Create(ctx context.Context, brand *model.Brand) error {
	return translate("create brand", r.db.WithContext(ctx).Create(brand).Error)
}

func (r *BrandRepository) Update(ctx context.Context, id uuid.UUID, in model.BrandInput) (*model.Brand, error) {
	err := updateByID[model.Brand](ctx, r.db, "update brand", id, map[string]interface{}{
		"name": in.Name,
		"logo": in.Logo,
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.Brand](ctx, r.db, "delete brand", id)
}

func (r *BrandRepository) Options(ctx context.Context) ([]model.Option, error) {
	out := []model.Option{}
	err := r.db.WithContext(ctx).Model(&model.Brand{}).Select("id", "name").Order("name").Scan(&out).Error
	return out, translate("brand options", err)
}

func (r *BrandRepository) Count(ctx context.Context) (int64, error) {
	return count[model.Brand](ctx, r.db, "count brands")
}
