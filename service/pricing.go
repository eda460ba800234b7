package service

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"shoestore_be/model"
)

// MaxQuantity is the largest quantity one order line accepts.
const MaxQuantity = math.MaxInt32

var ErrAmountOverflow = errors.New("order amount is out of range")

// ComputePrices derives the order amounts. Quantity below 1 counts as 1 and
// a negative discount counts as none, so the grand total is never negative.
// It fails with ErrAmountOverflow when price times quantity does not fit in
// an int64.
func ComputePrices(unitPrice int64, quantity int, discount int64) (model.Prices, error) {
	if quantity < 1 {
		quantity = 1
	}
	if discount < 0 {
		discount = 0
	}
	subTotal, ok := mulAmount(unitPrice, int64(quantity))
	if !ok {
		return model.Prices{Price: unitPrice, Quantity: quantity, DiscountAmount: discount}, ErrAmountOverflow
	}
	return model.Prices{
		Price:            unitPrice,
		Quantity:         quantity,
		SubTotalAmount:   subTotal,
		DiscountAmount:   discount,
		GrandTotalAmount: max(0, subTotal-discount),
	}, nil
}

// mulAmount multiplies two non-negative amounts, reporting overflow.
func mulAmount(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a != 0 && b > math.MaxInt64/a {
		return 0, false
	}
	return a * b, true
}

// CoerceQuantity reads a quantity typed into a form. Leading digits are
// used, anything unparsable or below 1 becomes 1. A positive number too large
// for an int saturates at math.MaxInt so validation can reject it.
func CoerceQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 1
	}
	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) && s[0] != '-' {
		return math.MaxInt
	}
	if err != nil || n < 1 {
		return 1
	}
	return n
}
