package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the counters of one order desk session.
type Registry struct {
	reg                *prometheus.Registry
	ItemsAdded         prometheus.Counter
	AppointmentsSet    prometheus.Counter
	InvalidInput       *prometheus.CounterVec
	ExitBlocked        *prometheus.CounterVec
	SummariesWritten   prometheus.Counter
	SummaryWriteErrors prometheus.Counter
	OrderValue         prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	itemsAdded := prometheus.NewCounter(prometheus.CounterOpts{Name: "autozone_items_added_total", Help: "Units added to the order across all lines."})
	apptSet := prometheus.NewCounter(prometheus.CounterOpts{Name: "autozone_appointments_set_total", Help: "Confirmed appointments, replacements included."})
	invalid := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "autozone_invalid_input_total", Help: "Rejected answers by prompt."}, []string{"field"})
	blocked := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "autozone_exit_blocked_total", Help: "Exit attempts refused by the exit gate."}, []string{"reason"})
	written := prometheus.NewCounter(prometheus.CounterOpts{Name: "autozone_summaries_written_total", Help: "Summary files written."})
	writeErrs := prometheus.NewCounter(prometheus.CounterOpts{Name: "autozone_summary_write_errors_total", Help: "Failed summary writes."})
	value := prometheus.NewGauge(prometheus.GaugeOpts{Name: "autozone_order_value_dollars", Help: "Total price of the last written order."})

	r.MustRegister(itemsAdded, apptSet, invalid, blocked, written, writeErrs, value)
	return &Registry{
		reg:                r,
		ItemsAdded:         itemsAdded,
		AppointmentsSet:    apptSet,
		InvalidInput:       invalid,
		ExitBlocked:        blocked,
		SummariesWritten:   written,
		SummaryWriteErrors: writeErrs,
		OrderValue:         value,
	}
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile dumps all metrics in the node-exporter textfile format.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
