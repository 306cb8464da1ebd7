// Package render turns an order into the text summary shown on screen and
// written at exit.
package render

import (
	"fmt"
	"strings"

	"autozone/internal/model"
	"autozone/internal/order"
)

// PriceColumn selects what the per-line Price column shows.
type PriceColumn int

const (
	// UnitPrice shows the catalog price of one unit (on-screen summary).
	UnitPrice PriceColumn = iota
	// LineTotal shows unit price times quantity (summary file).
	LineTotal
)

// EmptyMessage is the whole report for an order with nothing in it.
const EmptyMessage = "No products or appointment set."

// Rule separates the header, body and totals.
var Rule = strings.Repeat("-", 66)

// Report is a point-in-time copy of an order. Rendering the same Report
// twice lists the items in the same order.
type Report struct {
	Items       []model.LineItem
	Appointment *model.Appointment
}

// Snapshot copies o into a Report.
func Snapshot(o *order.Order) (Report, error) {
	items, err := o.Items()
	if err != nil {
		return Report{}, err
	}
	r := Report{Items: items}
	if a, ok := o.Appointment(); ok {
		r.Appointment = &a
	}
	return r, nil
}

func (r Report) Empty() bool { return len(r.Items) == 0 && r.Appointment == nil }

func (r Report) Totals() order.Totals { return order.Sum(r.Items) }

// Text renders the report. Every line, the last included, ends in "\n".
func (r Report) Text(col PriceColumn) string {
	var b strings.Builder
	if r.Empty() {
		b.WriteString(EmptyMessage + "\n")
		return b.String()
	}
	b.WriteString("Order Summary:\n")
	fmt.Fprintf(&b, "%-35s %-10s %5s\n", "Product", "Price", "Quantity")
	b.WriteString(Rule + "\n")
	for _, li := range r.Items {
		price := li.UnitPrice
		if col == LineTotal {
			price = li.Total()
		}
		fmt.Fprintf(&b, "%-35s $%7s %5d\n", li.Name, price, li.Qty)
	}
	if a := r.Appointment; a != nil {
		b.WriteString("Appointment Details:\n")
		fmt.Fprintf(&b, "Date: %s\n", a.DateString())
		fmt.Fprintf(&b, "Time: %s\n", a.Time)
	}
	tot := r.Totals()
	b.WriteString(Rule + "\n")
	fmt.Fprintf(&b, "%-42s %5d\n", "Total Products:", tot.Quantity)
	fmt.Fprintf(&b, "%-42s $%s\n", "Total Price:", tot.Price)
	return b.String()
}

// Render snapshots o and renders it in one step.
func Render(o *order.Order, col PriceColumn) (string, error) {
	r, err := Snapshot(o)
	if err != nil {
		return "", err
	}
	return r.Text(col), nil
}
