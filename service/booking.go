package service

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	bookingPrefix       = "TRX"
	bookingRandomLength = 4
	base36Digits        = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// BookingIDGenerator builds "TRX" + base36(unix millis) + 4 random base36
// characters, all upper case.
type BookingIDGenerator struct {
	Now  func() time.Time
	IntN func(n int) int
}

func NewBookingIDGenerator() BookingIDGenerator {
	return BookingIDGenerator{Now: time.Now, IntN: rand.IntN}
}

func (g BookingIDGenerator) Next() string {
	var b strings.Builder
	b.WriteString(bookingPrefix)
	b.WriteString(strings.ToUpper(strconv.FormatInt(g.Now().UnixMilli(), 36)))
	for i := 0; i < bookingRandomLength; i++ {
		b.WriteByte(base36Digits[g.IntN(len(base36Digits))])
	}
	return b.String()
}
