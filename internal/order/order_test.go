package order

import (
	"errors"
	"testing"
	"time"

	"autozone/internal/model"
	"autozone/internal/state"
)

func TestAddItem_MergesByName(t *testing.T) {
	o := New(state.NewInMemoryStore())
	if _, err := o.AddItem("Oil Change", 5000, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	li, err := o.AddItem("Oil Change", 5000, 4)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if li.Qty != 7 {
		t.Fatalf("merged qty: got=%d want=7", li.Qty)
	}
	items, err := o.Items()
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("duplicate lines: %+v", items)
	}
	tot, err := o.Totals()
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if tot.Quantity != 7 || tot.Price != 35000 {
		t.Fatalf("totals: %+v", tot)
	}
}

func TestAddItem_RepeatedEqualsSingle(t *testing.T) {
	a := New(state.NewInMemoryStore())
	b := New(state.NewInMemoryStore())
	for _, q := range []int64{1, 5, 2, 9} {
		if _, err := a.AddItem("Car Wash", 2500, q); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, err := b.AddItem("Car Wash", 2500, 17); err != nil {
		t.Fatalf("add: %v", err)
	}
	ia, _ := a.Items()
	ib, _ := b.Items()
	if len(ia) != 1 || len(ib) != 1 || ia[0] != ib[0] {
		t.Fatalf("not equivalent: %+v vs %+v", ia, ib)
	}
}

func TestAddItem_KeepsFirstPrice(t *testing.T) {
	o := New(state.NewInMemoryStore())
	_, _ = o.AddItem("Alignment", 8000, 1)
	li, err := o.AddItem("Alignment", 1, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if li.UnitPrice != 8000 {
		t.Fatalf("unit price changed: %+v", li)
	}
}

func TestAddItem_RejectsBadQuantity(t *testing.T) {
	o := New(state.NewInMemoryStore())
	for _, q := range []int64{0, -3} {
		if _, err := o.AddItem("Car Wash", 2500, q); !errors.Is(err, ErrBadQuantity) {
			t.Fatalf("qty %d: want ErrBadQuantity, got %v", q, err)
		}
	}
	if o.HasItems() {
		t.Fatalf("rejected add must not create a line")
	}
}

func TestAddItem_Overflow(t *testing.T) {
	o := New(state.NewInMemoryStore())
	if _, err := o.AddItem("Car Wash", 2500, model.MaxQuantity); err != nil {
		t.Fatalf("add max: %v", err)
	}
	if _, err := o.AddItem("Car Wash", 2500, 1); !errors.Is(err, ErrQuantityOverflow) {
		t.Fatalf("want ErrQuantityOverflow, got %v", err)
	}
	items, _ := o.Items()
	if items[0].Qty != model.MaxQuantity {
		t.Fatalf("qty changed after overflow: %+v", items[0])
	}
}

func TestTotals_MixedCatalog(t *testing.T) {
	o := New(state.NewInMemoryStore())
	_, _ = o.AddItem("Car Wash", 2500, 1)
	_, _ = o.AddItem("Brake Service", 10000, 2)
	tot, err := o.Totals()
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if tot.Quantity != 3 || tot.Price != 22500 {
		t.Fatalf("totals: %+v", tot)
	}
}

func TestSetAppointment_Replaces(t *testing.T) {
	o := New(state.NewInMemoryStore())
	first := model.Appointment{Date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), Time: "10:00 AM"}
	second := model.Appointment{Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), Time: "1:30 PM"}
	o.SetAppointment(first)
	o.SetAppointment(second)
	got, ok := o.Appointment()
	if !ok || got != second {
		t.Fatalf("appointment: got=%+v ok=%v want=%+v", got, ok, second)
	}
}

func TestProbes(t *testing.T) {
	o := New(state.NewInMemoryStore())
	if !o.IsEmpty() || o.HasItems() || o.HasAppointment() {
		t.Fatalf("new order should be empty")
	}
	o.SetAppointment(model.Appointment{Date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), Time: "10:00 AM"})
	if o.IsEmpty() || o.HasItems() || !o.HasAppointment() {
		t.Fatalf("appointment only: empty=%v items=%v appt=%v", o.IsEmpty(), o.HasItems(), o.HasAppointment())
	}
	_, _ = o.AddItem("Car Wash", 2500, 1)
	if o.IsEmpty() || !o.HasItems() {
		t.Fatalf("items should be set")
	}
}
