package database

import (
	"context"

	"github.com/jvaldeza/cleaninvoice/internal/models"
)

// Store is the durable key-value gateway for the app's records: the employee
// and company profiles, the saved-invoice collection, the cleaning-type
// selections, and the working draft carried between invocations. Reads of a
// missing or unreadable record return the record's documented default.
type Store interface {
	Close() error

	GetEmployee(ctx context.Context) (models.Employee, error)
	SetEmployee(ctx context.Context, employee models.Employee) error

	GetCompany(ctx context.Context) (models.Company, error)
	SetCompany(ctx context.Context, company models.Company) error

	GetInvoices(ctx context.Context) ([]models.Invoice, error)
	SetInvoices(ctx context.Context, invoices []models.Invoice) error

	GetSelections(ctx context.Context) (models.CleaningSelections, error)
	SetSelections(ctx context.Context, selections models.CleaningSelections) error

	GetDraft(ctx context.Context) (models.InvoiceDraft, error)
	SetDraft(ctx context.Context, d models.InvoiceDraft) error

	Wipe(ctx context.Context) error
}
