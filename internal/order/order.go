package order

import (
	"errors"
	"fmt"

	"autozone/internal/model"
	"autozone/internal/state"
)

var (
	ErrBadQuantity      = errors.New("quantity must be at least 1")
	ErrQuantityOverflow = errors.New("quantity would exceed the per-line limit")
)

// Order holds the line items and the optional appointment of one customer.
type Order struct {
	items state.Store
	appt  *model.Appointment
}

// New returns an empty order whose line items live in st.
func New(st state.Store) *Order {
	return &Order{items: st}
}

// AddItem merges qty units of name into the order. An existing line keeps
// its unit price.
func (o *Order) AddItem(name string, unitPrice model.Money, qty int64) (model.LineItem, error) {
	if qty < 1 {
		return model.LineItem{}, fmt.Errorf("%w: got %d", ErrBadQuantity, qty)
	}
	if prev, ok := o.items.Get(name); ok && prev.Qty > model.MaxQuantity-qty {
		return prev, fmt.Errorf("%w: %s has %d, adding %d", ErrQuantityOverflow, name, prev.Qty, qty)
	}
	li, err := o.items.Merge(model.LineItem{Name: name, UnitPrice: unitPrice, Qty: qty})
	if err != nil {
		return model.LineItem{}, fmt.Errorf("add %s: %w", name, err)
	}
	return li, nil
}

// SetAppointment replaces any earlier appointment.
func (o *Order) SetAppointment(a model.Appointment) {
	o.appt = &a
}

func (o *Order) Appointment() (model.Appointment, bool) {
	if o.appt == nil {
		return model.Appointment{}, false
	}
	return *o.appt, true
}

func (o *Order) HasItems() bool       { return o.items.Len() > 0 }
func (o *Order) HasAppointment() bool { return o.appt != nil }
func (o *Order) IsEmpty() bool        { return !o.HasItems() && !o.HasAppointment() }

// Items returns the line items in name order.
func (o *Order) Items() ([]model.LineItem, error) {
	var out []model.LineItem
	if err := o.items.Range(func(li model.LineItem) error {
		out = append(out, li)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return out, nil
}

// Totals is the sum over all line items.
type Totals struct {
	Quantity int64
	Price    model.Money
}

// Sum totals items in integer cents.
func Sum(items []model.LineItem) Totals {
	var t Totals
	for _, li := range items {
		t.Quantity += li.Qty
		t.Price += li.Total()
	}
	return t
}

func (o *Order) Totals() (Totals, error) {
	items, err := o.Items()
	if err != nil {
		return Totals{}, err
	}
	return Sum(items), nil
}
