// Package draft holds the mutation operations for the working invoice draft.
// All changes to the draft go through these functions; the total is only
// refreshed by an explicit RecomputeTotal call after a batch of mutations.
package draft

import (
	"github.com/shopspring/decimal"

	"github.com/jvaldeza/cleaninvoice/internal/models"
)

// Upsert adds or replaces a line item. A nil id means "new": the draft's id
// counter is advanced and, should the counter somehow collide with an
// existing item, re-probed until it is unique. A non-nil id replaces the
// matching item in place, or appends with that id when nothing matches.
// The stored item shares no pointers with the argument.
func Upsert(d *models.InvoiceDraft, item models.InvoiceItem) models.InvoiceItem {
	item = item.Clone()

	if item.ID == nil {
		d.LastID++
		for hasID(d.Items, d.LastID) {
			d.LastID++
		}
		id := d.LastID
		item.ID = &id
		d.Items = append(d.Items, item)
		return item
	}

	for i := range d.Items {
		if d.Items[i].ID != nil && *d.Items[i].ID == *item.ID {
			d.Items[i] = item
			return item
		}
	}

	d.Items = append(d.Items, item)
	return item
}

// Remove deletes the item with the given id, a no-op when absent.
func Remove(d *models.InvoiceDraft, id int) {
	for i := range d.Items {
		if d.Items[i].ID != nil && *d.Items[i].ID == id {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

// RemoveByType deletes every item carrying the given type tag. Regeneration
// uses this to clear previously generated rows while manual entries survive.
func RemoveByType(d *models.InvoiceDraft, itemType string) {
	kept := d.Items[:0]
	for _, item := range d.Items {
		if item.Type != itemType {
			kept = append(kept, item)
		}
	}
	d.Items = kept
}

// RecomputeTotal sets the draft total to the sum of current item amounts.
// Amounts decoded from malformed records are already coerced to zero, so the
// sum never fails. Decimal arithmetic keeps repeated sums drift-free.
func RecomputeTotal(d *models.InvoiceDraft) {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(decimal.NewFromFloat(float64(item.Amount)))
	}
	d.TotalAmount = models.Amount(total.InexactFloat64())
}

// Reset returns the draft to its pristine empty state, id counter included.
func Reset(d *models.InvoiceDraft) {
	*d = models.InvoiceDraft{}
}

// SetPeriod records the billing period on the draft.
func SetPeriod(d *models.InvoiceDraft, startDate, endDate string) {
	d.StartDate = startDate
	d.EndDate = endDate
}

func SetInvoiceNumber(d *models.InvoiceDraft, n int) {
	d.InvoiceNumber = n
}

func hasID(items []models.InvoiceItem, id int) bool {
	for _, item := range items {
		if item.ID != nil && *item.ID == id {
			return true
		}
	}
	return false
}
