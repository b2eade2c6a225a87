package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jvaldeza/cleaninvoice/internal/models"
)

// WriteCSV renders the invoice as CSV: a short preamble with the payee and
// recipient details, then the item table and a total row.
func WriteCSV(w io.Writer, invoice models.Invoice) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	employee := invoice.Employee
	company := invoice.Company

	preamble := [][]string{
		{"Invoice", fmt.Sprintf("%d", invoice.InvoiceNumber)},
		{"Name", fmt.Sprintf("%s %s", employee.Name, employee.Lastname)},
		{"ABN", employee.ABN},
		{"BSB", employee.BSB},
		{"ACC", employee.ACC},
		{"Address", employee.Address},
		{"Period", fmt.Sprintf("%s to %s", invoice.StartDate, invoice.EndDate)},
		{"Bill To", company.Name, company.Address, company.City, company.StateA, company.Postcode},
		{},
	}
	for _, record := range preamble {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV preamble: %w", err)
		}
	}

	if err := writer.Write([]string{"Date", "Room", "Description", "Time", "Amount"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, item := range invoice.Items {
		record := []string{
			item.Date,
			item.Room,
			item.Description,
			item.Time,
			fmt.Sprintf("%.2f", float64(item.Amount)),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	total := []string{"", "", "", "Total", fmt.Sprintf("%.2f", float64(invoice.TotalAmount))}
	if err := writer.Write(total); err != nil {
		return fmt.Errorf("failed to write CSV total: %w", err)
	}

	return nil
}
