package service

import (
	"fmt"

	"github.com/jvaldeza/cleaninvoice/internal/models"
	"github.com/jvaldeza/cleaninvoice/internal/schedule"
)

// DisplayItem prints a single line item.
func (s *InvoiceService) DisplayItem(item models.InvoiceItem) {
	line := itemLabel(item)
	if item.Time != "" {
		line += fmt.Sprintf(" | %s", item.Time)
	}
	fmt.Printf("%s | %s\n", line, s.FormatItemAmount(item.Amount))
}

// DisplayDraft prints the working draft with its items and running total.
func (s *InvoiceService) DisplayDraft(d models.InvoiceDraft) {
	if len(d.Items) == 0 && d.StartDate == "" {
		fmt.Println("Draft is empty.")
		return
	}

	fmt.Printf("Invoice #%d | %s to %s\n", d.InvoiceNumber, d.StartDate, d.EndDate)
	for _, item := range d.Items {
		s.DisplayItem(item)
	}
	fmt.Printf("Total: %s (%d items)\n", s.FormatAmount(d.TotalAmount), len(d.Items))
}

// DisplayInvoice prints a saved invoice. Verbose output includes every line
// item; the summary line alone otherwise.
func (s *InvoiceService) DisplayInvoice(invoice models.Invoice, verbose bool) {
	fmt.Printf("%s | #%d | %s - %s | %d items | %s | created %s\n",
		invoice.ID,
		invoice.InvoiceNumber,
		schedule.FormatDisplayDate(invoice.StartDate),
		schedule.FormatDisplayDate(invoice.EndDate),
		len(invoice.Items),
		s.FormatAmount(invoice.TotalAmount),
		schedule.FormatDisplayDate(invoice.CreatedAt))

	if !verbose {
		return
	}
	for _, item := range invoice.Items {
		s.DisplayItem(item)
	}
}
