package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shoestore_be/helper/googleauth"
	"shoestore_be/model"
)

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

type MockOrphanRecorder struct {
	mock.Mock
}

func (m *MockOrphanRecorder) Record(ctx context.Context, img model.OrphanImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

type MockBrandStore struct {
	mock.Mock
}

func (m *MockBrandStore) List(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Brand), args.Error(1)
}

func (m *MockBrandStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Brand), args.Error(1)
}

func (m *MockBrandStore) Create(ctx context.Context, brand *model.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandStore) Update(ctx context.Context, id uuid.UUID, in model.BrandInput) (*model.Brand, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Brand), args.Error(1)
}

func (m *MockBrandStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBrandStore) Options(ctx context.Context) ([]model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Option), args.Error(1)
}

type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryStore) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryStore) Update(ctx context.Context, id uuid.UUID, in model.CategoryInput) (*model.Category, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryStore) Options(ctx context.Context) ([]model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Option), args.Error(1)
}

type MockPromoCodeStore struct {
	mock.Mock
}

func (m *MockPromoCodeStore) List(ctx context.Context) ([]model.PromoCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PromoCode), args.Error(1)
}

func (m *MockPromoCodeStore) FindByID(ctx context.Context, id uuid.UUID) (*model.PromoCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PromoCode), args.Error(1)
}

func (m *MockPromoCodeStore) FindByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PromoCode), args.Error(1)
}

func (m *MockPromoCodeStore) Create(ctx context.Context, promo *model.PromoCode) error {
	args := m.Called(ctx, promo)
	return args.Error(0)
}

func (m *MockPromoCodeStore) Update(ctx context.Context, id uuid.UUID, in model.PromoCodeInput) (*model.PromoCode, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PromoCode), args.Error(1)
}

func (m *MockPromoCodeStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPromoCodeStore) Options(ctx context.Context) ([]model.PromoCodeOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PromoCodeOption), args.Error(1)
}

type MockShoeStore struct {
	mock.Mock
}

func (m *MockShoeStore) List(ctx context.Context) ([]model.Shoe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shoe), args.Error(1)
}

func (m *MockShoeStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Shoe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shoe), args.Error(1)
}

func (m *MockShoeStore) Create(ctx context.Context, shoe *model.Shoe, photos, sizes []string) error {
	args := m.Called(ctx, shoe, photos, sizes)
	return args.Error(0)
}

func (m *MockShoeStore) Update(ctx context.Context, id uuid.UUID, in model.ShoeUpdateInput) (*model.Shoe, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shoe), args.Error(1)
}

func (m *MockShoeStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShoeStore) Options(ctx context.Context) ([]model.ShoeOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShoeOption), args.Error(1)
}

type MockTransactionStore struct {
	mock.Mock
}

func (m *MockTransactionStore) List(ctx context.Context, search string) ([]model.ProductTransaction, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductTransaction), args.Error(1)
}

func (m *MockTransactionStore) FindByID(ctx context.Context, id uuid.UUID) (*model.ProductTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductTransaction), args.Error(1)
}

func (m *MockTransactionStore) ExistsBookingTrxID(ctx context.Context, bookingTrxID string) (bool, error) {
	args := m.Called(ctx, bookingTrxID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionStore) Create(ctx context.Context, trx *model.ProductTransaction) error {
	args := m.Called(ctx, trx)
	return args.Error(0)
}

func (m *MockTransactionStore) Update(ctx context.Context, trx *model.ProductTransaction) error {
	args := m.Called(ctx, trx)
	return args.Error(0)
}

func (m *MockTransactionStore) MarkPaid(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt model.TransactionEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, idToken string) (googleauth.Identity, error) {
	args := m.Called(ctx, idToken)
	return args.Get(0).(googleauth.Identity), args.Error(1)
}

type fixedBookingIDs struct {
	ids []string
	n   int
}

func (f *fixedBookingIDs) Next() string {
	id := f.ids[f.n%len(f.ids)]
	f.n++
	return id
}
