package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"shoestore_be/model"
)

const (
	StepProduct  = 1
	StepCustomer = 2
	StepPayment  = 3
)

// TransactionForm is the state of the three-step order form. Every reducer
// takes a form and returns a new one; amounts are recomputed on each change
// that affects them.
type TransactionForm struct {
	ShoeID           uuid.UUID
	ShoeSize         string
	Quantity         int
	PromoCodeID      *uuid.UUID
	Price            int64
	SubTotalAmount   int64
	DiscountAmount   int64
	GrandTotalAmount int64
	Customer         Customer
	IsPaid           bool
	Proof            *string

	// priceErr is set when the current shoe and quantity overflow the
	// amount columns.
	priceErr error
}

type Customer struct {
	Name     string
	Phone    string
	Email    string
	Address  string
	City     string
	PostCode string
}

func NewTransactionForm() TransactionForm {
	return TransactionForm{Quantity: 1}
}

// FormFromTransaction starts an edit from a stored order.
func FormFromTransaction(t *model.ProductTransaction) TransactionForm {
	return TransactionForm{
		ShoeID:           t.ShoeID,
		ShoeSize:         t.ShoeSize,
		Quantity:         t.Quantity,
		PromoCodeID:      t.PromoCodeID,
		Price:            t.Price,
		SubTotalAmount:   t.SubTotalAmount,
		DiscountAmount:   t.DiscountAmount,
		GrandTotalAmount: t.GrandTotalAmount,
		Customer: Customer{
			Name:     t.Name,
			Phone:    t.Phone,
			Email:    t.Email,
			Address:  t.Address,
			City:     t.City,
			PostCode: t.PostCode,
		},
		IsPaid: t.IsPaid,
		Proof:  t.Proof,
	}
}

func (f TransactionForm) recompute() TransactionForm {
	p, err := ComputePrices(f.Price, f.Quantity, f.DiscountAmount)
	f.priceErr = err
	f.Quantity = p.Quantity
	f.SubTotalAmount = p.SubTotalAmount
	f.DiscountAmount = p.DiscountAmount
	f.GrandTotalAmount = p.GrandTotalAmount
	return f
}

// Prices returns the amounts currently shown by the form.
func (f TransactionForm) Prices() model.Prices {
	return model.Prices{
		Price:            f.Price,
		Quantity:         f.Quantity,
		SubTotalAmount:   f.SubTotalAmount,
		DiscountAmount:   f.DiscountAmount,
		GrandTotalAmount: f.GrandTotalAmount,
	}
}

// SelectShoe takes the shoe's current price. Switching to another shoe
// clears the chosen size.
func SelectShoe(f TransactionForm, shoe model.ShoeOption) TransactionForm {
	if f.ShoeID != shoe.ID {
		f.ShoeSize = ""
	}
	f.ShoeID = shoe.ID
	f.Price = shoe.Price
	return f.recompute()
}

func SelectSize(f TransactionForm, size string) TransactionForm {
	f.ShoeSize = strings.TrimSpace(size)
	return f
}

// SetQuantity accepts raw form text.
func SetQuantity(f TransactionForm, raw string) TransactionForm {
	f.Quantity = CoerceQuantity(raw)
	return f.recompute()
}

// SelectPromo applies a promo code; nil means "no promo code".
func SelectPromo(f TransactionForm, promo *model.PromoCodeOption) TransactionForm {
	if promo == nil {
		f.PromoCodeID = nil
		f.DiscountAmount = 0
		return f.recompute()
	}
	id := promo.ID
	f.PromoCodeID = &id
	f.DiscountAmount = promo.DiscountAmount
	return f.recompute()
}

func SetCustomer(f TransactionForm, c Customer) TransactionForm {
	f.Customer = Customer{
		Name:     strings.TrimSpace(c.Name),
		Phone:    strings.TrimSpace(c.Phone),
		Email:    strings.TrimSpace(c.Email),
		Address:  strings.TrimSpace(c.Address),
		City:     strings.TrimSpace(c.City),
		PostCode: strings.TrimSpace(c.PostCode),
	}
	return f
}

// SetPayment stores the paid flag and proof. An empty proof is no proof.
func SetPayment(f TransactionForm, isPaid bool, proof *string) TransactionForm {
	f.IsPaid = isPaid
	f.Proof = nil
	if proof != nil && strings.TrimSpace(*proof) != "" {
		p := strings.TrimSpace(*proof)
		f.Proof = &p
	}
	return f
}

// ValidateStep returns the field errors of one step, nil when it passes.
func ValidateStep(f TransactionForm, step int) map[string]string {
	var errs fieldErrors
	validateStep(&errs, f, step)
	if errs.empty() {
		return nil
	}
	return errs.fields()
}

// Validate checks every step, which is what a final submit needs.
func Validate(f TransactionForm) map[string]string {
	var errs fieldErrors
	for step := StepProduct; step <= StepPayment; step++ {
		validateStep(&errs, f, step)
	}
	if errs.empty() {
		return nil
	}
	return errs.fields()
}

func validateStep(errs *fieldErrors, f TransactionForm, step int) {
	switch step {
	case StepProduct:
		if f.ShoeID == uuid.Nil {
			errs.add("shoeId", "Please select a product")
		}
		if f.ShoeSize == "" {
			errs.add("shoeSize", "Please select a size")
		}
		validateQuantity(errs, f)
	case StepCustomer:
		c := f.Customer
		if strings.TrimSpace(c.Name) == "" {
			errs.add("name", "Name is required")
		}
		if strings.TrimSpace(c.Phone) == "" {
			errs.add("phone", "Phone is required")
		}
		if strings.TrimSpace(c.Email) == "" {
			errs.add("email", "Email is required")
		} else if !emailPattern.MatchString(c.Email) {
			errs.add("email", "Invalid email format")
		}
		if strings.TrimSpace(c.Address) == "" {
			errs.add("address", "Address is required")
		}
		if strings.TrimSpace(c.City) == "" {
			errs.add("city", "City is required")
		}
		if strings.TrimSpace(c.PostCode) == "" {
			errs.add("postCode", "Post code is required")
		}
	case StepPayment:
		if f.IsPaid && f.Proof == nil {
			errs.add("proof", "Payment proof is required when marked as paid")
		}
	}
}

func validateQuantity(errs *fieldErrors, f TransactionForm) {
	switch {
	case f.Quantity < 1:
		errs.add("quantity", "Quantity must be at least 1")
	case f.Quantity > MaxQuantity:
		errs.add("quantity", fmt.Sprintf("Quantity must be at most %d", MaxQuantity))
	case f.priceErr != nil:
		errs.add("quantity", "Order total is too large")
	}
}

// firstError picks the message of the earliest failing field in form order.
func firstError(fields map[string]string) string {
	for _, key := range []string{"shoeId", "shoeSize", "quantity", "name", "phone", "email", "address", "city", "postCode", "proof"} {
		if msg, ok := fields[key]; ok {
			return msg
		}
	}
	for _, msg := range fields {
		return msg
	}
	return ""
}
