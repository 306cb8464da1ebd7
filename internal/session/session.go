// Package session runs the interactive order desk: the menu loop and the
// add-product, set-appointment and exit flows.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"autozone/internal/catalog"
	"autozone/internal/metrics"
	"autozone/internal/model"
	"autozone/internal/order"
	"autozone/internal/render"
	"autozone/internal/summary"
	"autozone/internal/validate"
)

// ErrInputClosed ends a session whose input ran out before a summary was
// written.
var ErrInputClosed = errors.New("input closed before the order was completed")

// Config carries the collaborators of a session. Nil fields get defaults.
type Config struct {
	Catalog *catalog.Catalog
	Order   *order.Order
	Sink    summary.Writer
	Metrics *metrics.Registry
	Logger  zerolog.Logger
}

type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog *catalog.Catalog
	order   *order.Order
	sink    summary.Writer
	metrics *metrics.Registry
	log     zerolog.Logger
}

func New(in io.Reader, out io.Writer, cfg Config) *Session {
	s := &Session{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: cfg.Catalog,
		order:   cfg.Order,
		sink:    cfg.Sink,
		metrics: cfg.Metrics,
		log:     cfg.Logger,
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.metrics == nil {
		s.metrics = metrics.NewRegistry()
	}
	if s.sink == nil {
		s.sink = summary.NewTextFileWriter(summary.DefaultPath)
	}
	return s
}

func (s *Session) println(a ...any)               { fmt.Fprintln(s.out, a...) }
func (s *Session) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

// prompt prints text without a newline and reads the answer.
func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	return s.readLine()
}

func (s *Session) rejected(field, input string, err error) {
	s.metrics.InvalidInput.WithLabelValues(field).Inc()
	s.log.Debug().Str("field", field).Str("input", input).Err(err).Msg("rejected input")
}

// Run drives the menu until the summary is written (nil) or input ends.
func (s *Session) Run() error {
	s.println("Welcome to AutoZone!")
	for {
		s.println()
		s.println("Menu:")
		s.println("1. Add Product")
		s.println("2. Set Appointment")
		s.println("3. Exit")
		line, err := s.prompt("Choose an option: ")
		if err != nil {
			return err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			s.rejected("menu", line, err)
			s.println("Invalid input. Please enter a number.")
			continue
		}
		switch choice {
		case 1:
			err = s.addProducts()
		case 2:
			err = s.setAppointment()
		case 3:
			var done bool
			done, err = s.exit()
			if err == nil && done {
				return nil
			}
		default:
			s.rejected("menu", line, nil)
			s.println("Invalid choice. Please choose a valid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) printCatalog() {
	s.println("Available Products:")
	s.printf("%-5s %-35s %-10s\n", "No.", "Product", "Price")
	s.println(render.Rule)
	for _, e := range s.catalog.Entries() {
		s.printf("%-5d %-35s $%s\n", e.Index, e.Name, e.UnitPrice)
	}
}

func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func (s *Session) readProduct() (catalog.Entry, error) {
	for {
		line, err := s.prompt("Enter product number: ")
		if err != nil {
			return catalog.Entry{}, err
		}
		n, err := validate.ParsePositiveInt(line)
		if err != nil {
			s.rejected("product", line, err)
			if isInteger(line) {
				s.println("Invalid product number. Please try again.")
			} else {
				s.println("Invalid input. Please enter a number.")
			}
			continue
		}
		e, err := s.catalog.Get(n)
		if err != nil {
			s.rejected("product", line, err)
			s.println("Invalid product number. Please try again.")
			continue
		}
		return e, nil
	}
}

// addToOrder reads a quantity for e until one is accepted by the order.
func (s *Session) addToOrder(e catalog.Entry) error {
	for {
		line, err := s.prompt("Enter quantity: ")
		if err != nil {
			return err
		}
		qty, err := validate.ParsePositiveInt(line)
		if err != nil {
			s.rejected("quantity", line, err)
			if isInteger(line) {
				s.println("Invalid quantity. Please enter a quantity of at least 1.")
			} else {
				s.println("Invalid input. Please enter a number.")
			}
			continue
		}
		li, err := s.order.AddItem(e.Name, e.UnitPrice, int64(qty))
		if errors.Is(err, order.ErrQuantityOverflow) {
			s.rejected("quantity", line, err)
			s.printf("Quantity too large: %s already has %d. Please enter a smaller quantity.\n", e.Name, li.Qty)
			continue
		}
		if err != nil {
			return err
		}
		s.metrics.ItemsAdded.Add(float64(qty))
		s.log.Info().Str("product", e.Name).Int("qty", qty).Int64("lineQty", li.Qty).Msg("item added")
		s.println("Product added successfully!")
		return nil
	}
}

// askYesNo repeats question until the answer is yes or no.
func (s *Session) askYesNo(field, question string) (bool, error) {
	for {
		line, err := s.prompt(question)
		if err != nil {
			return false, err
		}
		yes, err := validate.ParseYesNo(line)
		if err == nil {
			return yes, nil
		}
		s.rejected(field, line, err)
		s.println("Invalid input. Please enter 'yes' or 'no'.")
	}
}

func (s *Session) addProducts() error {
	for {
		s.printCatalog()
		e, err := s.readProduct()
		if err != nil {
			return err
		}
		if err := s.addToOrder(e); err != nil {
			return err
		}
		another, err := s.askYesNo("another", "Add another product? (yes/no): ")
		if err != nil {
			return err
		}
		if !another {
			return nil
		}
	}
}

func (s *Session) readTime() (string, error) {
	for {
		s.println("Enter appointment time in HH:mm AM/PM format (e.g., 10:00 AM):")
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		t, err := validate.ParseTime(line)
		if err == nil {
			return t, nil
		}
		s.rejected("time", line, err)
		s.println("Invalid time format. Please enter time in HH:mm AM/PM format (e.g., 10:00 AM).")
	}
}

// setAppointment loops until an appointment is confirmed. Declining the
// confirmation starts over from the date.
func (s *Session) setAppointment() error {
	for {
		s.println("Enter appointment date in MM/dd/yyyy format (e.g., 12/31/2022):")
		line, err := s.readLine()
		if err != nil {
			return err
		}
		date, err := validate.ParseDate(line)
		if err != nil {
			s.rejected("date", line, err)
			s.println("Invalid date format. Please enter date in MM/dd/yyyy format.")
			continue
		}
		t, err := s.readTime()
		if err != nil {
			return err
		}
		appt := model.Appointment{Date: date, Time: t}
		s.println("Appointment Date: " + appt.DateString())
		s.println("Appointment Time: " + appt.Time)
		ok, err := s.askYesNo("confirm", "Confirm appointment? (yes/no): ")
		if err != nil {
			return err
		}
		if !ok {
			s.log.Debug().Str("date", appt.DateString()).Str("time", appt.Time).Msg("appointment declined")
			continue
		}
		s.order.SetAppointment(appt)
		s.metrics.AppointmentsSet.Inc()
		s.log.Info().Str("date", appt.DateString()).Str("time", appt.Time).Msg("appointment set")
		s.println("Appointment set successfully!")
		return nil
	}
}

// exit applies the exit gate. It reports true once the summary is written.
func (s *Session) exit() (bool, error) {
	switch {
	case s.order.IsEmpty():
		s.metrics.ExitBlocked.WithLabelValues("empty").Inc()
		s.println("No products or appointment set. Please add products or set an appointment before exiting.")
		return false, nil
	case !s.order.HasItems():
		s.metrics.ExitBlocked.WithLabelValues("no_items").Inc()
		s.println("No products set. Please add products before exiting.")
		return false, nil
	case !s.order.HasAppointment():
		s.metrics.ExitBlocked.WithLabelValues("no_appointment").Inc()
		s.println("No appointment set. Please set an appointment before exiting.")
		return false, nil
	}

	r, err := render.Snapshot(s.order)
	if err != nil {
		return false, err
	}
	fmt.Fprint(s.out, r.Text(render.UnitPrice))

	paths, err := s.sink.WriteSummary(r)
	for _, p := range paths {
		s.printf("Order summary written to %s.\n", p)
	}
	if err != nil {
		s.metrics.SummaryWriteErrors.Inc()
		s.log.Error().Err(err).Msg("summary write failed")
		s.printf("Error writing to file: %v\n", err)
		return false, nil
	}
	tot := r.Totals()
	s.metrics.SummariesWritten.Add(float64(len(paths)))
	s.metrics.OrderValue.Set(float64(tot.Price) / 100)
	s.log.Info().Strs("paths", paths).Int64("qty", tot.Quantity).Str("total", tot.Price.String()).Msg("summary written")
	return true, nil
}
