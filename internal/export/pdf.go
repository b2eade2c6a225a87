package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/jvaldeza/cleaninvoice/internal/models"
)

// WritePDF renders the invoice as an A4 PDF with the same field set as the
// spreadsheet layout.
func WritePDF(path string, invoice models.Invoice) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	employee := invoice.Employee
	company := invoice.Company

	// Header
	pdf.Cell(40, 10, fmt.Sprintf("Tax Invoice %d", invoice.InvoiceNumber))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(95, 6, fmt.Sprintf("Name: %s %s", employee.Name, employee.Lastname))
	pdf.Ln(6)
	pdf.Cell(95, 6, fmt.Sprintf("ABN: %s", employee.ABN))
	pdf.Ln(6)
	pdf.Cell(95, 6, fmt.Sprintf("Address: %s", employee.Address))
	pdf.Ln(10)

	// Recipient block
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "Bill To:")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	if company.Name != "" {
		pdf.Cell(95, 6, company.Name)
		pdf.Ln(6)
	}
	if company.Address != "" {
		pdf.Cell(95, 6, company.Address)
		pdf.Ln(6)
	}

	addressLine := company.City
	if company.StateA != "" {
		if addressLine != "" {
			addressLine += ", "
		}
		addressLine += company.StateA
	}
	if company.Postcode != "" {
		if addressLine != "" {
			addressLine += " "
		}
		addressLine += company.Postcode
	}
	if addressLine != "" {
		pdf.Cell(95, 6, addressLine)
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 10, fmt.Sprintf("Date Range: %s to %s", invoice.StartDate, invoice.EndDate))
	pdf.Ln(12)

	// Table headers - adjusted widths to fit A4 (total ~190mm)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(28, 8, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(68, 8, "Room", "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 8, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Time", "1", 0, "C", false, 0, "")
	pdf.CellFormat(26, 8, "Amount", "1", 1, "R", false, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 8)
	for _, item := range invoice.Items {
		pdf.CellFormat(28, 6, item.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(68, 6, item.Room, "1", 0, "L", false, 0, "")
		pdf.CellFormat(48, 6, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, item.Time, "1", 0, "C", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("$%.2f", float64(item.Amount)), "1", 1, "R", false, 0, "")
	}

	// Total
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(164, 10, "Total:")
	pdf.CellFormat(26, 10, fmt.Sprintf("$%.2f", float64(invoice.TotalAmount)), "", 1, "R", false, 0, "")

	// Payment Details
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "Payment Details:")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 6, fmt.Sprintf("BSB: %s", employee.BSB))
	pdf.Ln(6)
	pdf.Cell(40, 6, fmt.Sprintf("Account Number: %s", employee.ACC))
	pdf.Ln(6)

	return pdf.OutputFileAndClose(path)
}
