package service

import (
	"context"
	"fmt"

	"github.com/jvaldeza/cleaninvoice/internal/draft"
	"github.com/jvaldeza/cleaninvoice/internal/models"
	"github.com/jvaldeza/cleaninvoice/internal/schedule"
)

// UpsertItem adds a line item to the draft (nil id) or updates the matching
// one, then recomputes the total and persists the draft.
func (s *InvoiceService) UpsertItem(ctx context.Context, item models.InvoiceItem) (models.InvoiceItem, error) {
	if item.Date == "" || item.Description == "" {
		return item, fmt.Errorf("item date and description are required")
	}
	if _, err := schedule.ParseDate(item.Date); err != nil {
		return item, err
	}
	if item.Type == "" {
		item.Type = models.ItemTypeManual
	}

	d, err := s.db.GetDraft(ctx)
	if err != nil {
		return item, fmt.Errorf("failed to load draft: %w", err)
	}

	stored := draft.Upsert(&d, item)
	draft.RecomputeTotal(&d)

	if err := s.db.SetDraft(ctx, d); err != nil {
		return stored, fmt.Errorf("failed to persist draft: %w", err)
	}

	return stored, nil
}

// RemoveItem deletes the item with the given id, a no-op when absent.
func (s *InvoiceService) RemoveItem(ctx context.Context, id int) error {
	d, err := s.db.GetDraft(ctx)
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}

	draft.Remove(&d, id)
	draft.RecomputeTotal(&d)

	if err := s.db.SetDraft(ctx, d); err != nil {
		return fmt.Errorf("failed to persist draft: %w", err)
	}
	return nil
}

func (s *InvoiceService) GetDraft(ctx context.Context) (models.InvoiceDraft, error) {
	return s.db.GetDraft(ctx)
}

// ClearDraft resets the working draft to its pristine state, item id counter
// included.
func (s *InvoiceService) ClearDraft(ctx context.Context) error {
	d, err := s.db.GetDraft(ctx)
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}

	draft.Reset(&d)

	if err := s.db.SetDraft(ctx, d); err != nil {
		return fmt.Errorf("failed to persist draft: %w", err)
	}
	return nil
}
