package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shoestore_be/model"
)

type PromoCodeRepository struct {
	db *gorm.DB
}

func NewPromoCodeRepository(db *gorm.DB) *PromoCodeRepository {
	return &PromoCodeRepository{db: db}
}

func (r *PromoCodeRepository) List(ctx context.Context) ([]model.PromoCode, error) {
	return listOrdered[model.PromoCode](ctx, r.db, "list promo codes", "code")
}

func (r *PromoCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PromoCode, error) {
	return findByID[model.PromoCode](ctx, r.db, "find promo code", id)
}

// FindByCode returns nil, nil when no row carries code.
func (r *PromoCodeRepository) FindByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	var promo model.PromoCode
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&promo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("find promo code by code", err)
	}
	return &promo, nil
}

func (r *PromoCodeRepository) Create(ctx context.Context, promo *model.PromoCode) error {
	return translate("create promo code", r.db.WithContext(ctx).Create(promo).Error)
}

func (r *PromoCodeRepository) Update(ctx context.Context, id uuid.UUID, in model.PromoCodeInput) (*model.PromoCode, error) {
	err := updateByID[model.PromoCode](ctx, r.db, "update promo code", id, map[string]interface{}{
		"code":            in.Code,
		"discount_amount": in.DiscountAmount,
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *PromoCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.PromoCode](ctx, r.db, "delete promo code", id)
}

func (r *PromoCodeRepository) Options(ctx context.Context) ([]model.PromoCodeOption, error) {
	out := []model.PromoCodeOption{}
	err := r.db.WithContext(ctx).Model(&model.PromoCode{}).
		Select("id", "code", "discount_amount").
		Order("code DESC").
		Scan(&out).Error
	return out, translate("promo code options", err)
}

func (r *PromoCodeRepository) Count(ctx context.Context) (int64, error) {
	return count[model.PromoCode](ctx, r.db, "count promo codes")
}
