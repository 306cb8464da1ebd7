package summary

import (
	"fmt"

	"github.com/tealeg/xlsx"

	"autozone/internal/model"
	"autozone/internal/render"
)

// XLSXWriter writes the order as a one-sheet workbook. Unlike the text
// summary it carries both the unit price and the line total.
type XLSXWriter struct {
	path    string
	session string
}

func NewXLSXWriter(path, session string) *XLSXWriter {
	return &XLSXWriter{path: path, session: session}
}

func moneyCell(row *xlsx.Row, m model.Money) {
	row.AddCell().SetFloatWithFormat(float64(m)/100, "0.00")
}

func (x *XLSXWriter) WriteSummary(r render.Report) ([]string, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Order Summary")
	if err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range []string{"Product", "Unit Price", "Quantity", "Line Total"} {
		header.AddCell().SetValue(h)
	}
	for _, li := range r.Items {
		row := sheet.AddRow()
		row.AddCell().SetValue(li.Name)
		moneyCell(row, li.UnitPrice)
		row.AddCell().SetValue(li.Qty)
		moneyCell(row, li.Total())
	}

	sheet.AddRow()
	if a := r.Appointment; a != nil {
		row := sheet.AddRow()
		row.AddCell().SetValue("Appointment Date")
		row.AddCell().SetValue(a.DateString())
		row = sheet.AddRow()
		row.AddCell().SetValue("Appointment Time")
		row.AddCell().SetValue(a.Time)
	}

	tot := r.Totals()
	row := sheet.AddRow()
	row.AddCell().SetValue("Total Products")
	row.AddCell().SetValue(tot.Quantity)
	row = sheet.AddRow()
	row.AddCell().SetValue("Total Price")
	moneyCell(row, tot.Price)

	if x.session != "" {
		row = sheet.AddRow()
		row.AddCell().SetValue("Session")
		row.AddCell().SetValue(x.session)
	}

	if err := file.Save(x.path); err != nil {
		return nil, fmt.Errorf("save workbook: %w", err)
	}
	return []string{x.path}, nil
}
