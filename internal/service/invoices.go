package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jvaldeza/cleaninvoice/internal/draft"
	"github.com/jvaldeza/cleaninvoice/internal/models"
	"github.com/jvaldeza/cleaninvoice/internal/schedule"
)

// assemble snapshots the live profiles and draft into an immutable invoice
// record. Everything is deep-copied: later edits to the draft or settings
// must never reach back into a saved record. Persisting and clearing are the
// caller's steps, sequenced separately.
func (s *InvoiceService) assemble(employee models.Employee, company models.Company, d models.InvoiceDraft) models.Invoice {
	return models.Invoice{
		ID:            models.NewInvoiceID(d.InvoiceNumber),
		InvoiceNumber: d.InvoiceNumber,
		Employee:      employee,
		Company:       company.Clone(),
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Items:         models.CloneItems(d.Items),
		TotalAmount:   d.TotalAmount,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}
}

// SaveInvoice snapshots the current draft into the saved collection and then
// resets the draft. The title defaults to one derived from the employee name
// and billing period when not supplied. A failure after the snapshot has been
// persisted is reported without undoing the persisted snapshot.
func (s *InvoiceService) SaveInvoice(ctx context.Context, title string) (models.Invoice, string, error) {
	var invoice models.Invoice

	employee, err := s.db.GetEmployee(ctx)
	if err != nil {
		return invoice, "", fmt.Errorf("failed to load employee data: %w", err)
	}
	company, err := s.db.GetCompany(ctx)
	if err != nil {
		return invoice, "", fmt.Errorf("failed to load company data: %w", err)
	}
	d, err := s.db.GetDraft(ctx)
	if err != nil {
		return invoice, "", fmt.Errorf("failed to load draft: %w", err)
	}

	if len(d.Items) == 0 {
		return invoice, "", fmt.Errorf("no items to save")
	}

	if title == "" {
		title = s.DraftTitle(employee, d)
	}
	if title == "" {
		return invoice, "", fmt.Errorf("invoice title is required")
	}

	invoices, err := s.db.GetInvoices(ctx)
	if err != nil {
		return invoice, "", fmt.Errorf("failed to load saved invoices: %w", err)
	}

	invoice = s.assemble(employee, company, d)
	invoices = append(invoices, invoice)

	if err := s.db.SetInvoices(ctx, invoices); err != nil {
		return invoice, title, fmt.Errorf("failed to persist saved invoices: %w", err)
	}

	log.Debug().Str("id", invoice.ID).Int("items", len(invoice.Items)).Msg("saved invoice")

	draft.Reset(&d)
	if err := s.db.SetDraft(ctx, d); err != nil {
		// The snapshot is already saved; only the draft reset is lost.
		return invoice, title, fmt.Errorf("invoice saved but draft could not be cleared: %w", err)
	}

	return invoice, title, nil
}

// DraftTitle derives the default invoice title from the employee identity and
// the draft's billing period, or "" when either is incomplete.
func (s *InvoiceService) DraftTitle(employee models.Employee, d models.InvoiceDraft) string {
	if employee.Name == "" || employee.Lastname == "" {
		return ""
	}
	start, err := schedule.ParseDate(d.StartDate)
	if err != nil {
		return ""
	}
	end, err := schedule.ParseDate(d.EndDate)
	if err != nil {
		return ""
	}
	return schedule.InvoiceTitle(employee.Name, employee.Lastname, start, end)
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.db.GetInvoices(ctx)
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (models.Invoice, error) {
	invoices, err := s.db.GetInvoices(ctx)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to load saved invoices: %w", err)
	}
	for _, invoice := range invoices {
		if invoice.ID == id {
			return invoice, nil
		}
	}
	return models.Invoice{}, fmt.Errorf("invoice '%s' not found", id)
}

// DeleteInvoice removes a saved invoice from history. Saved records are never
// edited in place; delete-and-recreate is the only mutation.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	invoices, err := s.db.GetInvoices(ctx)
	if err != nil {
		return fmt.Errorf("failed to load saved invoices: %w", err)
	}

	kept := invoices[:0]
	for _, invoice := range invoices {
		if invoice.ID != id {
			kept = append(kept, invoice)
		}
	}
	if len(kept) == len(invoices) {
		return fmt.Errorf("invoice '%s' not found", id)
	}

	if err := s.db.SetInvoices(ctx, kept); err != nil {
		return fmt.Errorf("failed to persist saved invoices: %w", err)
	}
	return nil
}

// StorageInfo summarizes what is currently stored, mirroring the settings
// overview panel.
type StorageInfo struct {
	DraftItems    int
	SavedInvoices int
	TotalValue    models.Amount
	EmployeeName  string
	CompanyName   string
}

func (s *InvoiceService) GetStorageInfo(ctx context.Context) (StorageInfo, error) {
	var info StorageInfo

	d, err := s.db.GetDraft(ctx)
	if err != nil {
		return info, fmt.Errorf("failed to load draft: %w", err)
	}
	invoices, err := s.db.GetInvoices(ctx)
	if err != nil {
		return info, fmt.Errorf("failed to load saved invoices: %w", err)
	}
	employee, err := s.db.GetEmployee(ctx)
	if err != nil {
		return info, fmt.Errorf("failed to load employee data: %w", err)
	}
	company, err := s.db.GetCompany(ctx)
	if err != nil {
		return info, fmt.Errorf("failed to load company data: %w", err)
	}

	total := decimal.Zero
	for _, invoice := range invoices {
		total = total.Add(decimal.NewFromFloat(float64(invoice.TotalAmount)))
	}

	info.DraftItems = len(d.Items)
	info.SavedInvoices = len(invoices)
	info.TotalValue = models.Amount(total.InexactFloat64())
	info.EmployeeName = fmt.Sprintf("%s %s", employee.Name, employee.Lastname)
	info.CompanyName = company.Name

	return info, nil
}
