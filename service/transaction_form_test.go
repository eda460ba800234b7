package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"shoestore_be/model"
)

func TestTransactionForm_PromoSelection(t *testing.T) {
	shoe := model.ShoeOption{ID: uuid.New(), Price: 200000}
	promo := &model.PromoCodeOption{ID: uuid.New(), Code: "HEMAT", DiscountAmount: 50000}

	f := SelectShoe(NewTransactionForm(), shoe)
	f = SetQuantity(f, "3")
	f = SelectPromo(f, promo)
	assert.Equal(t, int64(550000), f.GrandTotalAmount)
	assert.Equal(t, promo.ID, *f.PromoCodeID)

	f = SelectPromo(f, nil)
	assert.Nil(t, f.PromoCodeID)
	assert.Equal(t, int64(0), f.DiscountAmount)
	assert.Equal(t, f.SubTotalAmount, f.GrandTotalAmount)
}

func TestTransactionForm_ReducersDoNotMutateInput(t *testing.T) {
	f := SelectShoe(NewTransactionForm(), model.ShoeOption{ID: uuid.New(), Price: 1000})
	g := SetQuantity(f, "5")

	assert.Equal(t, 1, f.Quantity)
	assert.Equal(t, 5, g.Quantity)
	assert.Equal(t, int64(5000), g.SubTotalAmount)
}

func TestTransactionForm_ChangingShoeClearsSize(t *testing.T) {
	a := model.ShoeOption{ID: uuid.New(), Price: 1000}
	b := model.ShoeOption{ID: uuid.New(), Price: 2000}

	f := SelectSize(SelectShoe(NewTransactionForm(), a), "42")
	assert.Equal(t, "42", SelectShoe(f, a).ShoeSize)

	f = SelectShoe(f, b)
	assert.Empty(t, f.ShoeSize)
	assert.Equal(t, int64(2000), f.GrandTotalAmount)
}

func TestTransactionForm_QuantityCoercion(t *testing.T) {
	f := SelectShoe(NewTransactionForm(), model.ShoeOption{ID: uuid.New(), Price: 1000})
	for _, raw := range []string{"0", "abc", "-3", ""} {
		g := SetQuantity(f, raw)
		assert.Equal(t, 1, g.Quantity, raw)
		assert.Equal(t, int64(1000), g.GrandTotalAmount, raw)
	}
}

func TestTransactionForm_QuantityUpperBound(t *testing.T) {
	shoe := model.ShoeOption{ID: uuid.New(), Price: 200000}
	base := SelectSize(SelectShoe(NewTransactionForm(), shoe), "42")

	testCases := []struct {
		name string
		raw  string
		msg  string
	}{
		{"at the limit", "2147483647", ""},
		{"above the limit", "2147483648", "Quantity must be at most 2147483647"},
		{"wraps int64 when multiplied", "46116860184273880", "Quantity must be at most 2147483647"},
		{"too large to parse", "99999999999999999999999", "Quantity must be at most 2147483647"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := SetQuantity(base, tc.raw)
			assert.Equal(t, tc.msg, ValidateStep(f, StepProduct)["quantity"])
		})
	}
}

func TestTransactionForm_TotalTooLarge(t *testing.T) {
	shoe := model.ShoeOption{ID: uuid.New(), Price: 1 << 40}
	f := SetQuantity(SelectSize(SelectShoe(NewTransactionForm(), shoe), "42"), "10000000")

	assert.Equal(t, map[string]string{"quantity": "Order total is too large"}, ValidateStep(f, StepProduct))
	assert.Zero(t, f.GrandTotalAmount)
}

func TestTransactionForm_ValidateStep(t *testing.T) {
	f := NewTransactionForm()
	assert.Equal(t, map[string]string{
		"shoeId":   "Please select a product",
		"shoeSize": "Please select a size",
	}, ValidateStep(f, StepProduct))

	f = SetCustomer(f, Customer{Name: "A", Phone: "1", Email: "a@b", Address: "x", City: "y", PostCode: "z"})
	assert.Equal(t, map[string]string{"email": "Invalid email format"}, ValidateStep(f, StepCustomer))

	f = SetCustomer(f, Customer{Name: "A", Phone: "1", Email: "a@b.co", Address: "x", City: "y", PostCode: "z"})
	assert.Nil(t, ValidateStep(f, StepCustomer))

	f = SetPayment(f, true, nil)
	assert.Equal(t, "Payment proof is required when marked as paid", ValidateStep(f, StepPayment)["proof"])

	proof := "https://cdn/proofs/p.png"
	f = SetPayment(f, true, &proof)
	assert.Nil(t, ValidateStep(f, StepPayment))
}

func TestTransactionForm_FromTransaction(t *testing.T) {
	proof := "p"
	trx := &model.ProductTransaction{
		ShoeID: uuid.New(), ShoeSize: "41", Quantity: 2, Price: 100, SubTotalAmount: 200,
		GrandTotalAmount: 200, Name: "N", Phone: "P", Email: "e@x.io", Address: "A", City: "C", PostCode: "1",
		IsPaid: true, Proof: &proof,
	}

	f := FormFromTransaction(trx)

	assert.Nil(t, Validate(f))
	assert.Equal(t, model.Prices{Price: 100, Quantity: 2, SubTotalAmount: 200, GrandTotalAmount: 200}, f.Prices())
}
