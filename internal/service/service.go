package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jvaldeza/cleaninvoice/internal/config"
	"github.com/jvaldeza/cleaninvoice/internal/database"
	"github.com/jvaldeza/cleaninvoice/internal/models"
)

// InvoiceService owns every state transition of the app: seeding and editing
// the working draft, saving immutable snapshots, and the settings records.
type InvoiceService struct {
	db  database.Store
	cfg *config.Config
}

func NewInvoiceService(db database.Store, cfg *config.Config) *InvoiceService {
	return &InvoiceService{db: db, cfg: cfg}
}

// FormatAmount renders a currency value for display. Amounts coerced from
// malformed records render as $0.00 rather than erroring.
func (s *InvoiceService) FormatAmount(amount models.Amount) string {
	return "$" + decimal.NewFromFloat(float64(amount)).StringFixed(2)
}

func (s *InvoiceService) FormatItemAmount(amount models.Amount) string {
	if amount <= 0 {
		return "$0.00"
	}
	return s.FormatAmount(amount)
}

func itemLabel(item models.InvoiceItem) string {
	id := "-"
	if item.ID != nil {
		id = fmt.Sprintf("%d", *item.ID)
	}
	return fmt.Sprintf("[%s] %s | %s | %s", id, item.Date, item.Room, item.Description)
}
