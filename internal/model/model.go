package model

import (
	"fmt"
	"math"
	"time"
)

// MaxQuantity bounds a single line's quantity (the 32-bit int range).
const MaxQuantity = math.MaxInt32

// DateLayout is the MM/DD/YYYY form used for appointment dates.
const DateLayout = "01/02/2006"

// Money is an amount in cents.
type Money int64

// Dollars returns whole dollars as Money.
func Dollars(d int64) Money { return Money(d * 100) }

// Times returns m multiplied by qty.
func (m Money) Times(qty int64) Money { return m * Money(qty) }

// String formats m with two decimal places and no currency sign.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// LineItem is one priced product entry of an order, keyed by Name.
type LineItem struct {
	Name      string `json:"name"`
	UnitPrice Money  `json:"unitPrice"`
	Qty       int64  `json:"qty"`
}

// Total is the unit price times the quantity.
func (li LineItem) Total() Money { return li.UnitPrice.Times(li.Qty) }

// Appointment is a scheduled service slot.
type Appointment struct {
	Date time.Time
	Time string
}

// DateString renders the date as MM/DD/YYYY.
func (a Appointment) DateString() string { return a.Date.Format(DateLayout) }
