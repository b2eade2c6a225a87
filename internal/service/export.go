package service

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/jvaldeza/cleaninvoice/internal/export"
	"github.com/jvaldeza/cleaninvoice/internal/models"
)

// ExportInvoice renders the working draft (empty id) or a saved invoice to a
// file in the requested format. The file name defaults to the invoice title.
// Exporting never mutates any state.
func (s *InvoiceService) ExportInvoice(ctx context.Context, id string, format export.Format, output string) (string, error) {
	var invoice models.Invoice

	if id == "" {
		employee, err := s.db.GetEmployee(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load employee data: %w", err)
		}
		company, err := s.db.GetCompany(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load company data: %w", err)
		}
		d, err := s.db.GetDraft(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load draft: %w", err)
		}
		if len(d.Items) == 0 {
			return "", fmt.Errorf("no items to export")
		}

		// A transient snapshot for rendering only; nothing is persisted.
		invoice = models.Invoice{
			InvoiceNumber: d.InvoiceNumber,
			Employee:      employee,
			Company:       company,
			StartDate:     d.StartDate,
			EndDate:       d.EndDate,
			Items:         d.Items,
			TotalAmount:   d.TotalAmount,
		}
	} else {
		var err error
		invoice, err = s.GetInvoice(ctx, id)
		if err != nil {
			return "", err
		}
	}

	if output == "" {
		title := s.DraftTitle(invoice.Employee, models.InvoiceDraft{
			StartDate: invoice.StartDate,
			EndDate:   invoice.EndDate,
		})
		if title == "" {
			title = fmt.Sprintf("Invoice %d", invoice.InvoiceNumber)
		}
		output = export.FileName(title, format)
	}

	switch format {
	case export.FormatXLSX:
		if err := export.WriteXLSX(output, invoice); err != nil {
			return "", err
		}
	case export.FormatPDF:
		if err := export.WritePDF(output, invoice); err != nil {
			return "", err
		}
	case export.FormatCSV:
		file, err := os.Create(output)
		if err != nil {
			return "", fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		if err := export.WriteCSV(file, invoice); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown export format '%s'", format)
	}

	log.Debug().Str("file", output).Str("format", string(format)).Msg("exported invoice")
	return output, nil
}
