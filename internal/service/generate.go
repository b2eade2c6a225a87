package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jvaldeza/cleaninvoice/internal/draft"
	"github.com/jvaldeza/cleaninvoice/internal/models"
	"github.com/jvaldeza/cleaninvoice/internal/schedule"
)

// GenerateDraft sets the billing period on the working draft and reseeds its
// auto-generated line items from the enabled cleaning types. Previously
// generated rows are cleared first; manually entered rows are left alone. The
// invoice number is derived from the start date. Validation happens before
// any state is touched.
func (s *InvoiceService) GenerateDraft(ctx context.Context, startDate, endDate string) (models.InvoiceDraft, error) {
	var d models.InvoiceDraft

	start, err := schedule.ParseDate(startDate)
	if err != nil {
		return d, err
	}
	end, err := schedule.ParseDate(endDate)
	if err != nil {
		return d, err
	}
	if !start.Before(end) {
		return d, fmt.Errorf("start date must be before end date")
	}

	selections, err := s.db.GetSelections(ctx)
	if err != nil {
		return d, fmt.Errorf("failed to load cleaning selections: %w", err)
	}
	if !selections.Kitchen && !selections.Night {
		return d, fmt.Errorf("select at least one cleaning type")
	}

	d, err = s.db.GetDraft(ctx)
	if err != nil {
		return d, fmt.Errorf("failed to load draft: %w", err)
	}

	draft.SetPeriod(&d, start.Format("2006-01-02"), end.Format("2006-01-02"))
	draft.SetInvoiceNumber(&d, schedule.InvoiceNumberFor(start))
	draft.RemoveByType(&d, models.ItemTypeGenerated)

	if selections.Kitchen {
		s.seedEntries(&d, schedule.RecurringItems(schedule.KindKitchen, start, end))
	}
	if selections.Night {
		s.seedEntries(&d, schedule.RecurringItems(schedule.KindNight, start, end))
	}

	draft.RecomputeTotal(&d)

	log.Debug().
		Int("invoice_number", d.InvoiceNumber).
		Int("items", len(d.Items)).
		Float64("total", float64(d.TotalAmount)).
		Msg("regenerated draft")

	if err := s.db.SetDraft(ctx, d); err != nil {
		return d, fmt.Errorf("failed to persist draft: %w", err)
	}

	return d, nil
}

func (s *InvoiceService) seedEntries(d *models.InvoiceDraft, entries []schedule.ServiceEntry) {
	for _, entry := range entries {
		draft.Upsert(d, models.InvoiceItem{
			Date:        entry.Date,
			Room:        entry.Room,
			Type:        models.ItemTypeGenerated,
			Description: entry.Description,
			Amount:      models.Amount(entry.Amount),
		})
	}
}
