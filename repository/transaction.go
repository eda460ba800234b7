package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shoestore_be/model"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// List returns transactions newest booking id first. A non-empty search
// matches name, booking id and email case-insensitively, and phone as typed.
func (r *TransactionRepository) List(ctx context.Context, search string) ([]model.ProductTransaction, error) {
	q := r.db.WithContext(ctx).
		Preload("Shoe").
		Preload("PromoCode").
		Order("booking_trx_id DESC")

	if search != "" {
		lower := containsPattern(strings.ToLower(search))
		raw := containsPattern(search)
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(booking_trx_id) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			lower, lower, lower, raw,
		)
	}

	out := []model.ProductTransaction{}
	if err := q.Find(&out).Error; err != nil {
		return nil, translate("list transactions", err)
	}
	return out, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ProductTransaction, error) {
	return findByID[model.ProductTransaction](ctx, r.db, "find transaction", id, "Shoe", "PromoCode")
}

func (r *TransactionRepository) ExistsBookingTrxID(ctx context.Context, bookingTrxID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProductTransaction{}).
		Where("booking_trx_id = ?", bookingTrxID).
		Count(&n).Error
	if err != nil {
		return false, translate("check booking id", err)
	}
	return n > 0, nil
}

func (r *TransactionRepository) Create(ctx context.Context, trx *model.ProductTransaction) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(trx).Error
	return translate("create transaction", err)
}

// Update overwrites every editable column. The booking id never changes.
func (r *TransactionRepository) Update(ctx context.Context, trx *model.ProductTransaction) error {
	return updateByID[model.ProductTransaction](ctx, r.db, "update transaction", trx.ID, map[string]interface{}{
		"shoe_id":            trx.ShoeID,
		"promo_code_id":      trx.PromoCodeID,
		"shoe_size":          trx.ShoeSize,
		"quantity":           trx.Quantity,
		"price":              trx.Price,
		"sub_total_amount":   trx.SubTotalAmount,
		"discount_amount":    trx.DiscountAmount,
		"grand_total_amount": trx.GrandTotalAmount,
		"name":               trx.Name,
		"phone":              trx.Phone,
		"email":              trx.Email,
		"address":            trx.Address,
		"city":               trx.City,
		"post_code":          trx.PostCode,
		"is_paid":            trx.IsPaid,
		"proof":              trx.Proof,
	})
}

// MarkPaid sets is_paid. Postgres counts matched rows, so a second call on
// a paid row still reports one affected row.
func (r *TransactionRepository) MarkPaid(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.ProductTransaction{}).
		Where("id = ?", id).
		Update("is_paid", true)
	return affected("approve transaction", res)
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.ProductTransaction](ctx, r.db, "delete transaction", id)
}

func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	return count[model.ProductTransaction](ctx, r.db, "count transactions")
}

func (r *TransactionRepository) CountPaid(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProductTransaction{}).Where("is_paid = ?", true).Count(&n).Error
	return n, translate("count paid transactions", err)
}

// SumPaidGrandTotal sums grand totals of paid transactions. SUM over a
// bigint column is numeric in Postgres, so it is read as a decimal.
func (r *TransactionRepository) SumPaidGrandTotal(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	row := r.db.WithContext(ctx).Model(&model.ProductTransaction{}).
		Select("COALESCE(SUM(grand_total_amount), 0)").
		Where("is_paid = ?", true).
		Row()
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, translate("sum paid transactions", err)
	}
	return sum, nil
}
