package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"shoestore_be/helper/format"
	"shoestore_be/model"
)

const bookingIDAttempts = 5

var errBookingIDExhausted = errors.New("no free booking id")

type TransactionStore interface {
	List(ctx context.Context, search string) ([]model.ProductTransaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProductTransaction, error)
	ExistsBookingTrxID(ctx context.Context, bookingTrxID string) (bool, error)
	Create(ctx context.Context, trx *model.ProductTransaction) error
	Update(ctx context.Context, trx *model.ProductTransaction) error
	MarkPaid(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ShoeFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Shoe, error)
}

type PromoCodeFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.PromoCode, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, evt model.TransactionEvent) error
}

type BookingIDs interface {
	Next() string
}

type TransactionService struct {
	store   TransactionStore
	shoes   ShoeFinder
	promos  PromoCodeFinder
	events  EventPublisher
	booking BookingIDs
	images  imageJanitor
	now     func() time.Time
}

func NewTransactionService(store TransactionStore, shoes ShoeFinder, promos PromoCodeFinder, events EventPublisher, images ImageStore, ledger OrphanRecorder) *TransactionService {
	return &TransactionService{
		store:   store,
		shoes:   shoes,
		promos:  promos,
		events:  events,
		booking: NewBookingIDGenerator(),
		images:  newImageJanitor(images, ledger),
		now:     time.Now,
	}
}

func (s *TransactionService) List(ctx context.Context, search string) model.Result[[]model.ProductTransaction] {
	trxs, err := s.store.List(ctx, strings.TrimSpace(search))
	if err != nil {
		log.Println("[ERROR] Failed to fetch transactions:", err)
		return model.Fail[[]model.ProductTransaction](model.KindInternal, "Failed to fetch transactions")
	}
	return model.Ok(trxs)
}

// Get returns the transaction with its amounts rendered as Rupiah.
func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) model.Result[*model.TransactionDetail] {
	trx, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.TransactionDetail](model.KindNotFound, "Transaction not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch transaction:", err)
		return model.Fail[*model.TransactionDetail](model.KindInternal, "Failed to fetch transaction")
	}
	return model.Ok(&model.TransactionDetail{
		ProductTransaction: *trx,
		PriceText:          format.FormatRupiah(trx.Price),
		SubTotalText:       format.FormatRupiah(trx.SubTotalAmount),
		DiscountText:       format.FormatRupiah(trx.DiscountAmount),
		GrandTotalText:     format.FormatRupiah(trx.GrandTotalAmount),
	})
}

// formFor replays the input through the form reducers using the live shoe
// price and promo discount. A non-empty fields map means the referenced
// shoe or promo code is gone.
func (s *TransactionService) formFor(ctx context.Context, in model.TransactionInput) (TransactionForm, map[string]string, error) {
	form := NewTransactionForm()

	if in.ShoeID != uuid.Nil {
		shoe, err := s.shoes.FindByID(ctx, in.ShoeID)
		if errors.Is(err, model.ErrNotFound) {
			return form, map[string]string{"shoeId": "Selected product does not exist"}, nil
		}
		if err != nil {
			return form, nil, err
		}
		form = SelectShoe(form, model.ShoeOption{ID: shoe.ID, Name: shoe.Name, Price: shoe.Price})
	}
	form = SelectSize(form, in.ShoeSize)
	form = SetQuantity(form, strconv.Itoa(in.Quantity))

	promo, fields, err := s.resolvePromo(ctx, in.PromoCodeID)
	if fields != nil || err != nil {
		return form, fields, err
	}
	form = SelectPromo(form, promo)

	form = SetCustomer(form, Customer{
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		Address:  in.Address,
		City:     in.City,
		PostCode: in.PostCode,
	})
	form = SetPayment(form, in.IsPaid, in.Proof)
	return form, nil, nil
}

func (s *TransactionService) resolvePromo(ctx context.Context, id *uuid.UUID) (*model.PromoCodeOption, map[string]string, error) {
	if id == nil || *id == uuid.Nil {
		return nil, nil, nil
	}
	promo, err := s.promos.FindByID(ctx, *id)
	if errors.Is(err, model.ErrNotFound) {
		return nil, map[string]string{"promoCodeId": "Selected promo code does not exist"}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &model.PromoCodeOption{ID: promo.ID, Code: promo.Code, DiscountAmount: promo.DiscountAmount}, nil, nil
}

func applyForm(trx *model.ProductTransaction, f TransactionForm) {
	trx.ShoeID = f.ShoeID
	trx.ShoeSize = f.ShoeSize
	trx.Quantity = f.Quantity
	trx.PromoCodeID = f.PromoCodeID
	trx.Price = f.Price
	trx.SubTotalAmount = f.SubTotalAmount
	trx.DiscountAmount = f.DiscountAmount
	trx.GrandTotalAmount = f.GrandTotalAmount
	trx.Name = f.Customer.Name
	trx.Phone = f.Customer.Phone
	trx.Email = f.Customer.Email
	trx.Address = f.Customer.Address
	trx.City = f.Customer.City
	trx.PostCode = f.Customer.PostCode
	trx.IsPaid = f.IsPaid
	trx.Proof = f.Proof
}

// Create validates the whole form, snapshots the amounts and stores the
// order under a fresh booking id.
func (s *TransactionService) Create(ctx context.Context, in model.TransactionInput) model.Result[*model.ProductTransaction] {
	form, fields, err := s.formFor(ctx, in)
	if err != nil {
		log.Println("[ERROR] Failed to resolve transaction references:", err)
		return model.Fail[*model.ProductTransaction](model.KindInternal, "Failed to create transaction")
	}
	if fields == nil {
		fields = Validate(form)
	}
	if fields != nil {
		return model.Invalid[*model.ProductTransaction](firstError(fields), fields)
	}

	trx := &model.ProductTransaction{}
	applyForm(trx, form)

	err = s.insertWithBookingID(ctx, trx)
	switch {
	case errors.Is(err, model.ErrReference):
		return model.Invalid[*model.ProductTransaction]("Selected product or promo code does not exist", nil)
	case err != nil:
		log.Println("[ERROR] Failed to create transaction:", err)
		return model.Fail[*model.ProductTransaction](model.KindInternal, "Failed to create transaction")
	}

	log.Println("[INFO] Transaction created:", trx.BookingTrxID)
	s.publish(ctx, model.EventTransactionCreated, trx)
	return model.Ok(trx)
}

// insertWithBookingID draws booking ids until one is free. The unique
// index catches a race between the check and the insert.
func (s *TransactionService) insertWithBookingID(ctx context.Context, trx *model.ProductTransaction) error {
	for attempt := 0; attempt < bookingIDAttempts; attempt++ {
		candidate := s.booking.Next()
		taken, err := s.store.ExistsBookingTrxID(ctx, candidate)
		if err != nil {
			return err
		}
		if taken {
			log.Println("[WARN] Booking id collision, regenerating:", candidate)
			continue
		}

		trx.BookingTrxID = candidate
		err = s.store.Create(ctx, trx)
		if errors.Is(err, model.ErrDuplicate) {
			log.Println("[WARN] Booking id collision on insert, regenerating:", candidate)
			trx.ID = uuid.Nil
			continue
		}
		return err
	}
	return errBookingIDExhausted
}

// Update recomputes the snapshot from the live price. The booking id is
// kept, and a replaced or removed proof image is deleted after the save.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, in model.TransactionInput) model.Result[*model.ProductTransaction] {
	current, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.ProductTransaction](model.KindNotFound, "Transaction not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch transaction:", err)
		return model.Fail[*model.ProductTransaction](model.KindInternal, "Failed to update transaction")
	}

	form, fields, err := s.formFor(ctx, in)
	if err != nil {
		log.Println("[ERROR] Failed to resolve transaction references:", err)
		return model.Fail[*model.ProductTransaction](model.KindInternal, "Failed to update transaction")
	}
	if fields == nil {
		fields = Validate(form)
	}
	if fields != nil {
		return model.Invalid[*model.ProductTransaction](firstError(fields), fields)
	}

	trx := &model.ProductTransaction{ID: current.ID, BookingTrxID: current.BookingTrxID}
	applyForm(trx, form)

	err = s.store.Update(ctx, trx)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Fail[*model.ProductTransaction](model.KindNotFound, "Transaction not found")
	case errors.Is(err, model.ErrReference):
		return model.Invalid[*model.ProductTransaction]("Selected product or promo code does not exist", nil)
	case err != nil:
		log.Println("[ERROR] Failed to update transaction:", err)
		return model.Fail[*model.ProductTransaction](model.KindInternal, "Failed to update transaction")
	}

	if current.Proof != nil && (trx.Proof == nil || *trx.Proof != *current.Proof) {
		s.images.cleanup(ctx, "transaction.update", *current.Proof)
	}
	s.publish(ctx, model.EventTransactionUpdated, trx)
	return model.Ok(trx)
}

// Approve moves a pending transaction to paid and is a no-op on one that is
// already paid. It does not mark paid unconditionally: a transaction with no
// payment proof on file is refused, so a paid row always carries a proof.
func (s *TransactionService) Approve(ctx context.Context, id uuid.UUID) model.Status {
	trx, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Failure(model.KindNotFound, "Transaction not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch transaction:", err)
		return model.Failure(model.KindInternal, "Failed to approve transaction")
	}
	if trx.IsPaid {
		return model.Succeeded()
	}
	form := SetPayment(FormFromTransaction(trx), true, trx.Proof)
	if fields := ValidateStep(form, StepPayment); fields != nil {
		return model.InvalidStatus(firstError(fields), fields)
	}

	err = s.store.MarkPaid(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Failure(model.KindNotFound, "Transaction not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to approve transaction:", err)
		return model.Failure(model.KindInternal, "Failed to approve transaction")
	}

	trx.IsPaid = true
	log.Println("[INFO] Transaction approved:", trx.BookingTrxID)
	s.publish(ctx, model.EventTransactionApproved, trx)
	return model.Succeeded()
}

func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) model.Status {
	trx, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Failure(model.KindNotFound, "Transaction not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch transaction:", err)
		return model.Failure(model.KindInternal, "Failed to delete transaction")
	}

	err = s.store.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Failure(model.KindNotFound, "Transaction not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to delete transaction:", err)
		return model.Failure(model.KindInternal, "Failed to delete transaction")
	}

	if trx.Proof != nil {
		s.images.cleanup(ctx, "transaction.delete", *trx.Proof)
	}
	s.publish(ctx, model.EventTransactionDeleted, trx)
	return model.Succeeded()
}

// Quote previews the amounts for a shoe, raw quantity text and optional
// promo code without storing anything.
func (s *TransactionService) Quote(ctx context.Context, req model.QuoteRequest) model.Result[model.Prices] {
	if req.ShoeID == uuid.Nil {
		msg := "Please select a product"
		return model.Invalid[model.Prices](msg, map[string]string{"shoeId": msg})
	}
	shoe, err := s.shoes.FindByID(ctx, req.ShoeID)
	if errors.Is(err, model.ErrNotFound) {
		msg := "Selected product does not exist"
		return model.Invalid[model.Prices](msg, map[string]string{"shoeId": msg})
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch shoe:", err)
		return model.Fail[model.Prices](model.KindInternal, "Failed to calculate price")
	}

	promo, fields, err := s.resolvePromo(ctx, req.PromoCodeID)
	if err != nil {
		log.Println("[ERROR] Failed to fetch promo code:", err)
		return model.Fail[model.Prices](model.KindInternal, "Failed to calculate price")
	}
	if fields != nil {
		return model.Invalid[model.Prices](firstError(fields), fields)
	}

	form := SelectShoe(NewTransactionForm(), model.ShoeOption{ID: shoe.ID, Price: shoe.Price})
	form = SetQuantity(form, req.Quantity)
	form = SelectPromo(form, promo)

	var errs fieldErrors
	validateQuantity(&errs, form)
	if !errs.empty() {
		return model.Invalid[model.Prices](errs.first(), errs.fields())
	}
	return model.Ok(form.Prices())
}

func (s *TransactionService) publish(ctx context.Context, eventType string, trx *model.ProductTransaction) {
	if s.events == nil {
		return
	}
	evt := model.TransactionEvent{
		Type:             eventType,
		TransactionID:    trx.ID.String(),
		BookingTrxID:     trx.BookingTrxID,
		IsPaid:           trx.IsPaid,
		GrandTotalAmount: trx.GrandTotalAmount,
		OccurredAt:       s.now(),
	}
	if err := s.events.Publish(context.WithoutCancel(ctx), evt); err != nil {
		log.Printf("[WARN] failed to publish %s for %s: %v", eventType, trx.BookingTrxID, err)
	}
}
