package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"shoestore_be/model"
)

const msgPromoDuplicate = "Promo code already exists"

type PromoCodeStore interface {
	List(ctx context.Context) ([]model.PromoCode, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.PromoCode, error)
	FindByCode(ctx context.Context, code string) (*model.PromoCode, error)
	Create(ctx context.Context, promo *model.PromoCode) error
	Update(ctx context.Context, id uuid.UUID, in model.PromoCodeInput) (*model.PromoCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Options(ctx context.Context) ([]model.PromoCodeOption, error)
}

type PromoCodeService struct {
	store PromoCodeStore
}

func NewPromoCodeService(store PromoCodeStore) *PromoCodeService {
	return &PromoCodeService{store: store}
}

func (s *PromoCodeService) List(ctx context.Context) model.Result[[]model.PromoCode] {
	promos, err := s.store.List(ctx)
	if err != nil {
		log.Println("[ERROR] Failed to fetch promo codes:", err)
		return model.Fail[[]model.PromoCode](model.KindInternal, "Failed to fetch promo codes")
	}
	return model.Ok(promos)
}

func (s *PromoCodeService) Get(ctx context.Context, id uuid.UUID) model.Result[*model.PromoCode] {
	promo, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.PromoCode](model.KindNotFound, "Promo code not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch promo code:", err)
		return model.Fail[*model.PromoCode](model.KindInternal, "Failed to fetch promo code")
	}
	return model.Ok(promo)
}

// normalizePromo upper-cases the code, so uniqueness is case-insensitive.
func normalizePromo(in model.PromoCodeInput) (model.PromoCodeInput, *fieldErrors) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	var errs fieldErrors
	switch {
	case in.Code == "":
		errs.add("code", "Code is required")
	case utf8.RuneCountInString(in.Code) > 255:
		errs.add("code", "Code must be at most 255 characters")
	case !promoCodePattern.MatchString(in.Code):
		errs.add("code", "Code can only contain letters and numbers")
	}
	if in.DiscountAmount <= 0 {
		errs.add("discountAmount", "Discount must be greater than 0")
	}
	return in, &errs
}

// checkDuplicate reports whether another promo code already uses code.
// self is the id being updated, uuid.Nil on create.
func (s *PromoCodeService) checkDuplicate(ctx context.Context, code string, self uuid.UUID) (bool, error) {
	existing, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.ID != self, nil
}

func (s *PromoCodeService) Create(ctx context.Context, in model.PromoCodeInput) model.Result[*model.PromoCode] {
	in, errs := normalizePromo(in)
	if !errs.empty() {
		return model.Invalid[*model.PromoCode](errs.first(), errs.fields())
	}

	dup, err := s.checkDuplicate(ctx, in.Code, uuid.Nil)
	if err != nil {
		log.Println("[ERROR] Failed to check promo code:", err)
		return model.Fail[*model.PromoCode](model.KindInternal, "Failed to create promo code")
	}
	if dup {
		return model.Invalid[*model.PromoCode](msgPromoDuplicate, map[string]string{"code": msgPromoDuplicate})
	}

	promo := &model.PromoCode{Code: in.Code, DiscountAmount: in.DiscountAmount}
	err = s.store.Create(ctx, promo)
	if errors.Is(err, model.ErrDuplicate) {
		return model.Invalid[*model.PromoCode](msgPromoDuplicate, map[string]string{"code": msgPromoDuplicate})
	}
	if err != nil {
		log.Println("[ERROR] Failed to create promo code:", err)
		return model.Fail[*model.PromoCode](model.KindInternal, "Failed to create promo code")
	}
	log.Println("[INFO] Promo code created:", promo.Code)
	return model.Ok(promo)
}

func (s *PromoCodeService) Update(ctx context.Context, id uuid.UUID, in model.PromoCodeInput) model.Result[*model.PromoCode] {
	in, errs := normalizePromo(in)
	if !errs.empty() {
		return model.Invalid[*model.PromoCode](errs.first(), errs.fields())
	}

	dup, err := s.checkDuplicate(ctx, in.Code, id)
	if err != nil {
		log.Println("[ERROR] Failed to check promo code:", err)
		return model.Fail[*model.PromoCode](model.KindInternal, "Failed to update promo code")
	}
	if dup {
		return model.Invalid[*model.PromoCode](msgPromoDuplicate, map[string]string{"code": msgPromoDuplicate})
	}

	promo, err := s.store.Update(ctx, id, in)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Fail[*model.PromoCode](model.KindNotFound, "Promo code not found")
	case errors.Is(err, model.ErrDuplicate):
		return model.Invalid[*model.PromoCode](msgPromoDuplicate, map[string]string{"code": msgPromoDuplicate})
	case err != nil:
		log.Println("[ERROR] Failed to update promo code:", err)
		return model.Fail[*model.PromoCode](model.KindInternal, "Failed to update promo code")
	}
	return model.Ok(promo)
}

func (s *PromoCodeService) Delete(ctx context.Context, id uuid.UUID) model.Status {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Failure(model.KindNotFound, "Promo code not found")
		}
		log.Println("[ERROR] Failed to fetch promo code:", err)
		return model.Failure(model.KindInternal, "Failed to delete promo code")
	}

	err := s.store.Delete(ctx, id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Failure(model.KindNotFound, "Promo code not found")
	case errors.Is(err, model.ErrReference):
		return model.InvalidStatus("Promo code is still used by transactions", nil)
	case err != nil:
		log.Println("[ERROR] Failed to delete promo code:", err)
		return model.Failure(model.KindInternal, "Failed to delete promo code")
	}
	return model.Succeeded()
}

func (s *PromoCodeService) Options(ctx context.Context) model.Result[[]model.PromoCodeOption] {
	opts, err := s.store.Options(ctx)
	if err != nil {
		log.Println("[ERROR] Failed to fetch promo codes:", err)
		return model.Fail[[]model.PromoCodeOption](model.KindInternal, "Failed to fetch promo codes")
	}
	return model.Ok(opts)
}
