package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jvaldeza/cleaninvoice/internal/models"
)

// Fixed row positions of the spreadsheet layout.
const (
	companyBlockRow = 10
	tableHeaderRow  = 16
	tableBodyRow    = 17
)

// WriteXLSX renders the invoice as a spreadsheet: employee header block with
// the invoice number and period top-right, recipient block, fixed table
// header, one row per item and a trailing total row.
func WriteXLSX(path string, invoice models.Invoice) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Invoice %d", invoice.InvoiceNumber)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	employee := invoice.Employee
	company := invoice.Company

	cells := map[string]any{
		"A1": fmt.Sprintf("Name: %s %s", employee.Name, employee.Lastname),
		"H1": fmt.Sprintf("Invoice: %d", invoice.InvoiceNumber),
		"A2": fmt.Sprintf("ABN: %s", employee.ABN),
		"H2": fmt.Sprintf("Date: %s to %s", invoice.StartDate, invoice.EndDate),
		"A3": fmt.Sprintf("BSB: %s", employee.BSB),
		"A4": fmt.Sprintf("ACC: %s", employee.ACC),
		"A5": fmt.Sprintf("Address: %s", employee.Address),
		"F6": "Tax Invoice",
	}

	cells[cell("A", companyBlockRow)] = company.Name
	cells[cell("G", companyBlockRow)] = company.Address
	cells[cell("A", companyBlockRow+1)] = company.Address
	cells[cell("A", companyBlockRow+2)] = company.City
	cells[cell("A", companyBlockRow+3)] = company.StateA

	cells[cell("A", tableHeaderRow-1)] = "Unilodge"
	cells[cell("G", tableHeaderRow-1)] = company.Address

	cells[cell("A", tableHeaderRow)] = "DATE"
	cells[cell("C", tableHeaderRow)] = "ROOM NUMBER AND TYPE"
	cells[cell("H", tableHeaderRow)] = "DESCRIPTION"
	cells[cell("L", tableHeaderRow)] = "TIME"
	cells[cell("M", tableHeaderRow)] = "AMOUNT"

	for i, item := range invoice.Items {
		row := tableBodyRow + i
		cells[cell("A", row)] = item.Date
		cells[cell("C", row)] = item.Room
		cells[cell("H", row)] = item.Description
		cells[cell("L", row)] = item.Time
		cells[cell("M", row)] = float64(item.Amount)
	}

	totalRow := tableBodyRow + len(invoice.Items)
	cells[cell("L", totalRow)] = "Total"
	cells[cell("M", totalRow)] = float64(invoice.TotalAmount)

	for ref, value := range cells {
		if err := f.SetCellValue(sheet, ref, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", ref, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

func cell(column string, row int) string {
	return fmt.Sprintf("%s%d", column, row)
}
